// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Printer writes report lines at different levels.
type Printer struct {
	w    io.Writer
	fail *color.Color
	ok   *color.Color
}

// NewPrinter returns a Printer writing to w. Failure and success lines are
// colored only if colorize is true.
func NewPrinter(w io.Writer, colorize bool) *Printer {
	p := &Printer{
		w:    w,
		fail: color.New(color.FgRed),
		ok:   color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.fail, p.ok} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Info prints an uncolored line.
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Fail prints a failure line.
func (p *Printer) Fail(format string, args ...any) {
	p.fail.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	p.ok.Fprintln(p.w, fmt.Sprintf(format, args...))
}

// Blank prints an empty line.
func (p *Printer) Blank() { fmt.Fprintln(p.w) }

// banner prints text framed by lines of '=' as wide as text.
func banner(printf func(string, ...any), text string) {
	border := strings.Repeat("=", len(text))
	printf("%s", border)
	printf("%s", text)
	printf("%s", border)
}

// Report prints the error diagnostics of every failed outcome followed by a
// summary banner, and returns the number of errors.
//
// Only outcomes with a nonzero exit code are listed. Within one, a file
// header is printed whenever the file changes from the previous error.
// Diagnostics of other severities are ignored.
func Report(p *Printer, outcomes []BuildOutcome) int {
	if len(outcomes) == 0 {
		return 0
	}

	var errs int
	for _, o := range outcomes {
		if o.ExitCode == 0 {
			continue
		}
		p.Info("%s", o.Project)
		var prevFile string
		for _, d := range o.Diagnostics {
			if d.Severity != SeverityError {
				continue
			}
			if d.Location.File != prevFile {
				prevFile = d.Location.File
				p.Info("\t%s", filepath.Base(prevFile))
			}
			p.Fail("\t\t%s: %s (%s)", d.Code, d.Message, d.Location)
			errs++
		}
	}

	if errs > 0 {
		p.Blank()
		banner(p.Fail, fmt.Sprintf("|| staticcheck failed with %d errors ||", errs))
	} else {
		banner(p.OK, "|| staticcheck succeeded ||")
	}
	return errs
}
