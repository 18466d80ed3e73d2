// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package progress

import (
	"bytes"
	"strings"
	"testing"

	"go.astrophena.name/gocheck/testutil"
)

func TestMessage(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		current int
		total   int
		name    string
		width   int
		want    string
	}{
		"no width does not shorten": {
			current: 1,
			total:   1,
			name:    "kafka-to-postgresql-v2",
			width:   0,
			want:    "[1/1] Checked kafka-to-postgresql-v2",
		},
		"fits": {
			current: 1,
			total:   2,
			name:    "foo",
			width:   80,
			want:    "[1/2] Checked foo",
		},
		"small width with ellipsis": {
			current: 2,
			total:   10,
			name:    "mqtt-to-postgresql",
			width:   23,
			want:    "[2/10] Checked mqtt-...",
		},
		"very small width keeps prefix only": {
			current: 3,
			total:   10,
			name:    "mqtt-to-postgresql",
			width:   10,
			want:    "[3/10] Checked ",
		},
		"very small width trims without ellipsis": {
			current: 2,
			total:   100,
			name:    "mqtt-to-postgresql",
			width:   18,
			want:    "[2/100] Checked mq",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Message(tc.current, tc.total, tc.name, tc.width)
			if got != tc.want {
				t.Fatalf("Message() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBarNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	b := New(&buf, 2)
	b.Add("foo")
	b.Add("bar")
	b.Finish()
	testutil.AssertEqual(t, buf.String(), "[1/2] Checked foo\n[2/2] Checked bar\n")
}

func TestBarTerminal(t *testing.T) {
	var buf bytes.Buffer
	b := newBar(&buf, 2, 80)
	b.Add("foo")
	b.Add("bar")
	b.Finish()

	got := buf.String()
	testutil.AssertEqual(t, strings.Count(got, "\r"), 2)
	if !strings.Contains(got, "[1/2] Checked foo") || !strings.Contains(got, "[2/2] Checked bar") {
		t.Errorf("missing status messages: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Finish() did not end the line: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("progress must be redrawn in place: %q", got)
	}
}

func TestBarEmpty(t *testing.T) {
	var buf bytes.Buffer
	b := newBar(&buf, 0, 80)
	b.Finish()
	testutil.AssertEqual(t, buf.String(), "")
}
