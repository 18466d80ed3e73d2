// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/gocheck/syncx"
)

// Info describes the running binary.
type Info struct {
	// Name is the command name.
	Name string
	// Version is the module version, "devel" when built from a checkout.
	Version string
	// Commit is the VCS revision the binary was built from, if known.
	Commit string
	// Dirty reports whether the working tree had uncommitted changes.
	Dirty bool
	// Go is the Go toolchain version.
	Go string
}

// String returns a human-readable multi-line representation of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\nbuilt with %s\n", i.Go)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns the build information of the running binary.
func Version() Info { return info.Get(readInfo) }

// CmdName returns the name of the running command.
func CmdName() string { return Version().Name }

func readInfo() Info {
	i := Info{
		Name:    cmdName(os.Args[0]),
		Version: "devel",
		Go:      runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		i.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}

func cmdName(arg0 string) string {
	name := filepath.Base(arg0)
	return strings.TrimSuffix(name, ".exe")
}
