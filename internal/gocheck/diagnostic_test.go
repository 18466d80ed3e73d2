// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"errors"
	"testing"

	"go.astrophena.name/gocheck/testutil"
)

func TestParseDiagnostics(t *testing.T) {
	const out = `{"code":"SA4006","severity":"error","location":{"file":"/r/a.go","line":10,"column":2},"end":{"file":"/r/a.go","line":10,"column":5},"message":"this value of x is never used"}

{"code":"ST1003","severity":"warning","location":{"file":"/r/b.go","line":3,"column":6},"end":{"file":"","line":0,"column":0},"message":"should not use underscores in Go names"}
   
`
	got, err := ParseDiagnostics([]byte(out))
	if err != nil {
		t.Fatalf("ParseDiagnostics(): %v", err)
	}
	testutil.AssertEqual(t, got, []Diagnostic{
		{
			Code:     "SA4006",
			Severity: "error",
			Location: Position{File: "/r/a.go", Line: 10, Column: 2},
			End:      Position{File: "/r/a.go", Line: 10, Column: 5},
			Message:  "this value of x is never used",
		},
		{
			Code:     "ST1003",
			Severity: "warning",
			Location: Position{File: "/r/b.go", Line: 3, Column: 6},
			Message:  "should not use underscores in Go names",
		},
	})
}

func TestParseDiagnosticsEmpty(t *testing.T) {
	for _, in := range []string{"", "\n\n", " \n\t\n"} {
		got, err := ParseDiagnostics([]byte(in))
		if err != nil {
			t.Fatalf("ParseDiagnostics(%q): %v", in, err)
		}
		testutil.AssertEqual(t, len(got), 0)
	}
}

func TestParseDiagnosticsMalformed(t *testing.T) {
	const out = "{\"code\":\"SA1\",\"severity\":\"error\"}\n\n-: main redeclared\n"
	_, err := ParseDiagnostics([]byte(out))
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("ParseDiagnostics() error = %v, want *ParseError", err)
	}
	testutil.AssertEqual(t, perr.Line, 3)
	testutil.AssertEqual(t, perr.Text, "-: main redeclared")
}

func TestParseDiagnosticsNoSeverity(t *testing.T) {
	cases := map[string]struct {
		in       string
		wantLine int
		wantText string
	}{
		"null": {
			in:       "null\n",
			wantLine: 1,
			wantText: "null",
		},
		"empty object": {
			in:       "{\"code\":\"SA1\",\"severity\":\"error\"}\n{}\n",
			wantLine: 2,
			wantText: "{}",
		},
		"empty severity": {
			in:       "{\"code\":\"SA1\",\"severity\":\"\",\"message\":\"x\"}\n",
			wantLine: 1,
			wantText: "{\"code\":\"SA1\",\"severity\":\"\",\"message\":\"x\"}",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseDiagnostics([]byte(tc.in))
			if got != nil {
				t.Errorf("ParseDiagnostics() = %v, want nil", got)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParseDiagnostics() error = %v, want *ParseError", err)
			}
			if !errors.Is(err, errNoSeverity) {
				t.Errorf("ParseDiagnostics() error = %v, want %v", err, errNoSeverity)
			}
			testutil.AssertEqual(t, perr.Line, tc.wantLine)
			testutil.AssertEqual(t, perr.Text, tc.wantText)
		})
	}
}

func TestPositionString(t *testing.T) {
	testutil.AssertEqual(t, Position{File: "/r/a.go", Line: 10, Column: 2}.String(), "/r/a.go:10")
}
