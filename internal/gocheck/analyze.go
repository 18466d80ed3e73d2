// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"slices"
)

// Result is the raw output of one analyzer run.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Analyzer runs a static analysis tool against a single target.
type Analyzer interface {
	// Analyze runs the tool in dir against target and waits for it to
	// exit. A tool that ran to completion but reported problems is not an
	// error; its exit code is returned in the Result.
	Analyze(ctx context.Context, dir, target string) (*Result, error)
}

// CommandAnalyzer is an [Analyzer] that runs an external program.
type CommandAnalyzer struct {
	// Command is the program and its leading arguments. The target is
	// appended to them.
	Command []string
}

var _ Analyzer = (*CommandAnalyzer)(nil)

// Analyze implements [Analyzer].
func (a *CommandAnalyzer) Analyze(ctx context.Context, dir, target string) (*Result, error) {
	if len(a.Command) == 0 {
		return nil, errors.New("analyzer command is empty")
	}

	var stdout, stderr bytes.Buffer
	args := append(slices.Clone(a.Command[1:]), target)
	cmd := exec.CommandContext(ctx, a.Command[0], args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	res := &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	var ee *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &ee) && ee.Exited():
		res.ExitCode = ee.ExitCode()
		return res, nil
	default:
		return nil, fmt.Errorf("running %q: %w", a.Command[0], err)
	}
}
