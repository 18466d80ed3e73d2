// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package gocheck runs a static analyzer against the Go projects of a
// monorepo that were changed on the current branch.
//
// Projects are the immediate subdirectories of a project root, by default
// golang/cmd. A run has three steps: [Check.Discover] finds the projects,
// [Check.Analyze] runs the analyzer once per project, and [Report] prints
// the errors it found.
package gocheck

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"go.astrophena.name/gocheck/internal/git"
	"go.astrophena.name/gocheck/internal/progress"
	"go.astrophena.name/gocheck/logger"
)

// Check is a single run over a repository. Its results are reset by
// [Check.Run] and [Check.Discover].
type Check struct {
	Repo     git.Repo
	Analyzer Analyzer
	Config   Config
	// Printer receives the report. If nil, the report is discarded.
	Printer *Printer
	// Progress receives the progress indicator. If nil, it is discarded.
	Progress io.Writer
	// All makes Discover consider every Go file even if the branch has an
	// upstream.
	All bool

	root     string
	projects []string
	outcomes []BuildOutcome
}

// Run discovers projects, analyzes them, and reports the result. It returns
// the number of errors the analyzer reported.
func (c *Check) Run(ctx context.Context) (int, error) {
	if _, err := c.Discover(ctx); err != nil {
		return 0, err
	}
	if err := c.Analyze(ctx); err != nil {
		return 0, err
	}
	p := c.Printer
	if p == nil {
		p = NewPrinter(io.Discard, false)
	}
	return Report(p, c.outcomes), nil
}

// Analyze runs the analyzer against every discovered project, one at a
// time. Projects whose directory doesn't exist are skipped. A project the
// analyzer failed to run on, or whose output can't be parsed, stops the run.
func (c *Check) Analyze(ctx context.Context) error {
	if len(c.projects) == 0 {
		logger.Info(ctx, "no go projects to check")
		return nil
	}
	logger.Info(ctx, "checking go projects", slog.Int("count", len(c.projects)))

	w := c.Progress
	if w == nil {
		w = io.Discard
	}
	bar := progress.New(w, len(c.projects))
	defer bar.Finish()

	dir := c.Config.ModulePath(c.root)
	projectRoot := c.Config.ProjectRoot(c.root)
	for _, project := range c.projects {
		if err := c.analyze(ctx, dir, filepath.Join(projectRoot, project), project); err != nil {
			return err
		}
		bar.Add(project)
	}
	return nil
}

func (c *Check) analyze(ctx context.Context, dir, projectPath, project string) error {
	if !isDir(projectPath) {
		logger.Debug(ctx, "skipping missing project", slog.String("path", projectPath))
		return nil
	}

	logger.Debug(ctx, "running analyzer", slog.String("project", project), slog.String("dir", dir))
	res, err := c.Analyzer.Analyze(ctx, dir, projectPath+string(filepath.Separator))
	if err != nil {
		return fmt.Errorf("%s: %w", project, err)
	}
	if stderr := strings.TrimSpace(string(res.Stderr)); stderr != "" {
		logger.Debug(ctx, "analyzer stderr", slog.String("project", project), slog.String("stderr", stderr))
	}

	diags, err := ParseDiagnostics(res.Stdout)
	if err != nil {
		return fmt.Errorf("%s: %w", project, err)
	}
	c.outcomes = append(c.outcomes, BuildOutcome{
		Project:     project,
		ExitCode:    res.ExitCode,
		Diagnostics: diags,
	})
	return nil
}

// Projects returns the projects found by the last [Check.Discover].
func (c *Check) Projects() []string { return c.projects }

// Outcomes returns the outcomes recorded by the last run.
func (c *Check) Outcomes() []BuildOutcome { return c.outcomes }
