// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package git answers the few questions a hook asks about the repository it
// runs in.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repo is a read-only view of a Git checkout.
type Repo interface {
	// Root returns the absolute path to the top-level directory of the
	// working tree.
	Root(ctx context.Context) (string, error)
	// HasUpstream reports whether the current branch tracks an upstream
	// branch.
	HasUpstream(ctx context.Context) (bool, error)
	// ChangedFiles returns the paths, relative to Root, of files changed by
	// commits on the current branch that are not on its upstream.
	ChangedFiles(ctx context.Context) ([]string, error)
}

// Exec is a [Repo] that runs the git binary.
type Exec struct {
	// Dir is the directory git runs in. Empty means the current directory.
	Dir string
	// Env holds extra environment variables in "key=value" form, appended
	// to the environment of the current process.
	Env []string
}

var _ Repo = (*Exec)(nil)

// Error is returned when git exits unsuccessfully.
type Error struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// ExitCode returns the exit status of git, or -1 if git did not exit
// normally or could not be started.
func (e *Error) ExitCode() int {
	var ee *exec.ExitError
	if errors.As(e.Err, &ee) {
		return ee.ExitCode()
	}
	return -1
}

// git exits with this status when a revision can't be resolved.
const exitFatal = 128

func (g *Exec) run(ctx context.Context, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.Dir
	if len(g.Env) > 0 {
		cmd.Env = append(os.Environ(), g.Env...)
	}
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &Error{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// Root implements [Repo].
func (g *Exec) Root(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(strings.TrimSpace(string(out))), nil
}

// HasUpstream implements [Repo].
func (g *Exec) HasUpstream(ctx context.Context) (bool, error) {
	_, err := g.run(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{upstream}")
	if err == nil {
		return true, nil
	}
	var gerr *Error
	if errors.As(err, &gerr) && gerr.ExitCode() == exitFatal {
		return false, nil
	}
	return false, err
}

// ChangedFiles implements [Repo].
func (g *Exec) ChangedFiles(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, "diff", "--name-only", "-z", "@{upstream}...HEAD")
	if err != nil {
		return nil, err
	}
	var files []string
	for name := range bytes.SplitSeq(out, []byte{0}) {
		if len(name) == 0 {
			continue
		}
		files = append(files, string(name))
	}
	return files, nil
}

// HooksDir returns the directory Git runs hooks from. It honors
// core.hooksPath and linked worktrees.
func (g *Exec) HooksDir(ctx context.Context) (string, error) {
	out, err := g.run(ctx, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}
	dir := filepath.FromSlash(strings.TrimSpace(string(out)))
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(g.Dir, dir)
	}
	return dir, nil
}
