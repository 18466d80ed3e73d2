// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Gocheck runs staticcheck against the Go projects changed on the current
branch and fails if it reports any errors. It is meant to run as a Git
pre-commit or pre-push hook.

Projects are the directories directly below golang/cmd. When the current
branch tracks an upstream branch, only projects with Go files changed by
commits that are not on the upstream yet are checked. Otherwise, or when
the -all flag is passed, every project is checked.

For each failed project gocheck prints the error diagnostics grouped by file,
followed by a summary. Diagnostics of other severities are not shown. The
exit status is 1 if there were errors.

A nonzero exit status of staticcheck is not an error by itself, but an
analyzer that cannot be started, is killed by a signal or is interrupted
stops the run with an error, as does output that is not one JSON diagnostic
with a severity per line.

On its first run in a non-CI environment, gocheck installs the Git hooks
that change into module_dir and call 'go tool gocheck' again, so the check
runs on every subsequent commit or push. Existing hooks are left alone.

Gocheck is configured through an optional .devtools.txtar file in the
repository root. This file is a txtar archive and can contain a gocheck.json
file with the following fields:

  - module_dir: The directory of the Go module, relative to the repository
    root (default "golang"). Staticcheck runs there.
  - project_dir: The directory holding projects, relative to module_dir
    (default "cmd").
  - analyzer: The analyzer command line (default ["staticcheck", "-f",
    "json"]). The project directory is appended to it. It must print one
    JSON diagnostic per line, such as ["go", "tool", "staticcheck", "-f",
    "json"].
  - hooks: Git hooks to install (default ["pre-commit", "pre-push"]).

Colors are disabled when the output is not a terminal, when the NO_COLOR
environment variable is set, or with the -no-color flag.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/gocheck/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
