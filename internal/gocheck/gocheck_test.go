// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/gocheck/logger"
)

// fakeRepo is a git.Repo with canned answers.
type fakeRepo struct {
	root     string
	upstream bool
	changes  []string
}

func (r *fakeRepo) Root(context.Context) (string, error) { return r.root, nil }

func (r *fakeRepo) HasUpstream(context.Context) (bool, error) { return r.upstream, nil }

func (r *fakeRepo) ChangedFiles(context.Context) ([]string, error) { return r.changes, nil }

// fakeAnalyzer returns canned results keyed by target directory.
type fakeAnalyzer struct {
	results map[string]*Result
	calls   []string
	err     error
}

func (a *fakeAnalyzer) Analyze(_ context.Context, dir, target string) (*Result, error) {
	a.calls = append(a.calls, target)
	if a.err != nil {
		return nil, a.err
	}
	if res, ok := a.results[target]; ok {
		return res, nil
	}
	return &Result{}, nil
}

// touch creates empty files below dir.
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

// testContext returns a context whose logger writes to the returned buffer.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logger.New(nil)
	l.Level.Set(slog.LevelDebug)
	l.Attach(logger.Console(&buf, l.Level, true))
	return logger.Put(context.Background(), l), &buf
}

func projectPath(root, name string) string {
	return filepath.Join(root, "golang", "cmd", name) + string(filepath.Separator)
}

func diag(severity, code, msg, file string, line int) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: severity,
		Message:  msg,
		Location: Position{File: file, Line: line},
	}
}
