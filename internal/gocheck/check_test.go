// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"bytes"
	"strings"
	"testing"

	"go.astrophena.name/gocheck/testutil"
)

func TestRun(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"golang/cmd/foo/main.go",
		"golang/cmd/foo/util.go",
		"golang/cmd/bar/x.go",
		"README.md",
	)

	an := &fakeAnalyzer{results: map[string]*Result{
		projectPath(root, "foo"): {
			ExitCode: 1,
			Stdout: []byte(strings.Join([]string{
				`{"code":"SA1","severity":"error","location":{"file":"/r/a.go","line":10},"message":"unused var"}`,
				`{"code":"ST1000","severity":"warning","location":{"file":"/r/a.go","line":1},"message":"at least one file in a package should have a package comment"}`,
				`{"code":"SA2","severity":"error","location":{"file":"/r/a.go","line":12},"message":"shadow"}`,
			}, "\n")),
		},
	}}

	ctx, _ := testContext(t)
	var out bytes.Buffer
	c := &Check{
		Repo: &fakeRepo{
			root:     root,
			upstream: true,
			changes:  []string{"golang/cmd/foo/main.go", "README.md", "golang/cmd/bar/x.go", "golang/cmd/foo/util.go"},
		},
		Analyzer: an,
		Config:   DefaultConfig(),
		Printer:  NewPrinter(&out, false),
	}

	errs, err := c.Run(ctx)
	if err != nil {
		t.Fatalf("Run(): %v", err)
	}
	testutil.AssertEqual(t, errs, 2)
	testutil.AssertEqual(t, c.Projects(), []string{"foo", "bar"})
	testutil.AssertEqual(t, an.calls, []string{projectPath(root, "foo"), projectPath(root, "bar")})
	testutil.AssertEqual(t, out.String(), `foo
	a.go
		SA1: unused var (/r/a.go:10)
		SA2: shadow (/r/a.go:12)

======================================
|| staticcheck failed with 2 errors ||
======================================
`)

	// A second run starts from scratch.
	c.Repo = &fakeRepo{root: root, upstream: true}
	out.Reset()
	errs, err = c.Run(ctx)
	if err != nil {
		t.Fatalf("Run(): %v", err)
	}
	testutil.AssertEqual(t, errs, 0)
	testutil.AssertEqual(t, len(c.Projects()), 0)
	testutil.AssertEqual(t, len(c.Outcomes()), 0)
	testutil.AssertEqual(t, out.String(), "")
}
