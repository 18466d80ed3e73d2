// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// SeverityError is the severity of diagnostics that fail a check.
const SeverityError = "error"

// Position is a location in a source file.
type Position struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (p Position) String() string { return fmt.Sprintf("%s:%d", p.File, p.Line) }

// Related is additional information attached to a [Diagnostic].
type Related struct {
	Location Position `json:"location"`
	End      Position `json:"end"`
	Message  string   `json:"message"`
}

// Diagnostic is a single problem reported by the analyzer, in the format
// of staticcheck's JSON output.
type Diagnostic struct {
	Code     string    `json:"code"`
	Severity string    `json:"severity"`
	Location Position  `json:"location"`
	End      Position  `json:"end"`
	Message  string    `json:"message"`
	Related  []Related `json:"related,omitempty"`
}

// BuildOutcome is the result of analyzing one project.
type BuildOutcome struct {
	Project     string       `json:"project"`
	ExitCode    int          `json:"exit_code"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// errNoSeverity is reported for records such as null or {} that decode
// without error but carry no severity.
var errNoSeverity = errors.New("missing severity")

// ParseError is returned by [ParseDiagnostics] for a line that is not a
// diagnostic.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid diagnostic %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseDiagnostics decodes line-delimited JSON diagnostics. Blank lines are
// skipped. A record without a severity is rejected. The order of
// diagnostics is preserved.
func ParseDiagnostics(data []byte) ([]Diagnostic, error) {
	var (
		diags []Diagnostic
		n     int
	)
	for line := range bytes.Lines(data) {
		n++
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var d Diagnostic
		if err := json.Unmarshal(line, &d); err != nil {
			return nil, &ParseError{Line: n, Text: string(line), Err: err}
		}
		if d.Severity == "" {
			return nil, &ParseError{Line: n, Text: string(line), Err: errNoSeverity}
		}
		diags = append(diags, d)
	}
	return diags, nil
}
