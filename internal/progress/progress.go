// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package progress renders a single-line progress indicator.
//
// On a terminal the indicator is a gradient bar followed by a status message
// that is redrawn in place. Otherwise every step is printed on its own line.
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const (
	maxBarWidth = 40
	ellipsis    = "..."
)

// Bar tracks progress through a fixed number of steps.
type Bar struct {
	w       io.Writer
	total   int
	current int
	width   int // terminal width, 0 if w is not a terminal
	barW    int
	bar     progress.Model
}

// New returns a Bar for total steps that writes to w.
func New(w io.Writer, total int) *Bar {
	return newBar(w, total, terminalWidth(w))
}

func newBar(w io.Writer, total, width int) *Bar {
	b := &Bar{w: w, total: total, width: width}
	if width > 0 {
		b.barW = min(maxBarWidth, width/3)
		b.bar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(b.barW))
	}
	return b
}

// Add advances the bar by one step. name describes the completed step.
func (b *Bar) Add(name string) {
	b.current++
	if b.width == 0 {
		fmt.Fprintln(b.w, Message(b.current, b.total, name, 0))
		return
	}
	msgW := b.width - b.barW - 1
	msg := runewidth.FillRight(Message(b.current, b.total, name, msgW), max(msgW, 0))
	fmt.Fprintf(b.w, "\r%s %s", b.bar.ViewAs(b.percent()), msg)
}

// Finish ends the progress line.
func (b *Bar) Finish() {
	if b.width > 0 && b.current > 0 {
		fmt.Fprintln(b.w)
	}
}

func (b *Bar) percent() float64 {
	if b.total <= 0 {
		return 1
	}
	return min(float64(b.current)/float64(b.total), 1)
}

// Message formats the status line for step current of total, shortened to
// fit into width columns. A width of zero or less disables shortening. The
// "[current/total] Checked " prefix is never cut.
func Message(current, total int, name string, width int) string {
	prefix := fmt.Sprintf("[%d/%d] Checked ", current, total)
	if width <= 0 {
		return prefix + name
	}
	avail := width - runewidth.StringWidth(prefix)
	if avail <= 0 {
		return prefix
	}
	if runewidth.StringWidth(name) <= avail {
		return prefix + name
	}
	if avail <= len(ellipsis) {
		return prefix + runewidth.Truncate(name, avail, "")
	}
	return prefix + runewidth.Truncate(name, avail, ellipsis)
}

type fder interface {
	Fd() uintptr
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}
