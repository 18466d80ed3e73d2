// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"go.astrophena.name/gocheck/logger"
)

// Discover returns the projects to check, in the order they were first
// seen, and remembers them for [Check.Analyze].
//
// When the current branch has an upstream and c.All is false, only files
// changed by commits not on the upstream are considered. Otherwise every Go
// file in the repository is.
func (c *Check) Discover(ctx context.Context) ([]string, error) {
	c.projects, c.outcomes = nil, nil

	root, err := c.Repo.Root(ctx)
	if err != nil {
		return nil, err
	}
	c.root = root

	var upstream bool
	if !c.All {
		upstream, err = c.Repo.HasUpstream(ctx)
		if err != nil {
			return nil, err
		}
	}

	var files []string
	if upstream {
		changes, err := c.Repo.ChangedFiles(ctx)
		if err != nil {
			return nil, err
		}
		for _, change := range changes {
			if isGoFile(change) {
				files = append(files, filepath.Join(root, filepath.FromSlash(change)))
			}
		}
	} else {
		logger.Debug(ctx, "no upstream, checking all files")
		files, err = goFiles(root)
		if err != nil {
			return nil, err
		}
	}

	projectRoot := c.Config.ProjectRoot(root)
	seen := make(map[string]bool)
	for _, file := range files {
		if !isRegular(file) {
			logger.Warn(ctx, "skipping non-existing file", slog.String("path", file))
			continue
		}
		name, ok := ProjectName(projectRoot, file)
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		c.projects = append(c.projects, name)
	}
	return c.projects, nil
}

// ProjectName returns the name of the project file belongs to: the first
// path component of its directory relative to projectRoot. It reports false
// if file is not inside a project directory or the name contains characters
// other than letters, digits, underscores and hyphens.
func ProjectName(projectRoot, file string) (string, bool) {
	dir, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(projectRoot, dir)
	if err != nil || rel == "." || !filepath.IsLocal(rel) {
		return "", false
	}
	name, _, _ := strings.Cut(rel, string(filepath.Separator))
	if !validName(name) {
		return "", false
	}
	return name, true
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

func isGoFile(path string) bool { return strings.HasSuffix(path, ".go") }

func isRegular(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}

// goFiles returns the Go files below root in lexical order. The .git
// directory is not descended into.
func goFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if isGoFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
