// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"go.astrophena.name/gocheck/cli"
	"go.astrophena.name/gocheck/internal/git"
	"go.astrophena.name/gocheck/internal/gocheck"
	"go.astrophena.name/gocheck/logger"
)

// hookScript returns the Git hook that runs gocheck from the Go module in
// moduleDir. Hooks run from the top of the work tree, which has no go.mod.
func hookScript(moduleDir string) string {
	return `#!/bin/sh
echo "==> Running staticcheck on changed Go projects..."
cd "$(git rev-parse --show-toplevel)"/` + shellQuote(filepath.ToSlash(moduleDir)) + ` || exit 1
exec go tool gocheck
`
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func main() { cli.Main(new(app)) }

type app struct {
	all     bool
	verbose bool
	noColor bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.all, "all", false, "Check all projects, not only the changed ones.")
	fs.BoolVar(&a.verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&a.noColor, "no-color", false, "Disable colored output.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: gocheck takes no arguments", cli.ErrInvalidArgs)
	}
	noColor := a.noColor || env.Getenv("NO_COLOR") != ""

	l := logger.New(nil)
	l.Attach(logger.Console(env.Stderr, l.Level, noColor || !isTerminal(env.Stderr)))
	ctx = logger.Put(ctx, l)
	if a.verbose {
		logger.LevelVar(ctx).Set(slog.LevelDebug)
	}

	errs, err := a.run(ctx, noColor)
	if err != nil {
		logger.Error(ctx, "check failed", slog.Any("err", err))
		return cli.Silent(err)
	}
	if errs > 0 {
		// The report has already been printed.
		return cli.Silent(fmt.Errorf("staticcheck reported %d errors", errs))
	}
	return nil
}

func (a *app) run(ctx context.Context, noColor bool) (int, error) {
	env := cli.GetEnv(ctx)

	repo := new(git.Exec)
	root, err := repo.Root(ctx)
	if err != nil {
		return 0, err
	}
	cfg, err := gocheck.LoadConfig(filepath.Join(root, gocheck.ConfigFile))
	if err != nil {
		return 0, err
	}

	if env.Getenv("CI") != "true" {
		if err := installHooks(ctx, repo, cfg); err != nil {
			return 0, err
		}
	}

	c := &gocheck.Check{
		Repo:     repo,
		Analyzer: &gocheck.CommandAnalyzer{Command: cfg.Analyzer},
		Config:   cfg,
		Printer:  gocheck.NewPrinter(env.Stdout, !noColor && isTerminal(env.Stdout)),
		Progress: env.Stderr,
		All:      a.all,
	}
	return c.Run(ctx)
}

func installHooks(ctx context.Context, repo *git.Exec, cfg gocheck.Config) error {
	if len(cfg.Hooks) == 0 {
		return nil
	}
	dir, err := repo.HooksDir(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	script := []byte(hookScript(cfg.ModuleDir))
	for _, hook := range cfg.Hooks {
		hookPath := filepath.Join(dir, hook)
		if _, err := os.Stat(hookPath); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := os.WriteFile(hookPath, script, 0o755); err != nil {
			return err
		}
		logger.Info(ctx, "installed git hook", slog.String("path", hookPath))
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
