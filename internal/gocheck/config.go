// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package gocheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

// ConfigFile is the name of the archive, relative to the repository root,
// that holds the configuration of repository tools.
const ConfigFile = ".devtools.txtar"

// configMember is the archive member read by [LoadConfig].
const configMember = "gocheck.json"

// Config controls where projects are looked up and how they are analyzed.
type Config struct {
	// ModuleDir is the directory, relative to the repository root, that
	// holds the Go module. The analyzer runs there.
	ModuleDir string `json:"module_dir"`
	// ProjectDir is the directory, relative to ModuleDir, whose immediate
	// subdirectories are projects.
	ProjectDir string `json:"project_dir"`
	// Analyzer is the command line of the analyzer. The project directory
	// is appended as the last argument. It must make the analyzer print
	// one JSON object per line.
	Analyzer []string `json:"analyzer"`
	// Hooks lists the Git hooks that run gocheck.
	Hooks []string `json:"hooks"`
}

// DefaultConfig returns the configuration used when the repository doesn't
// provide one.
func DefaultConfig() Config {
	return Config{
		ModuleDir:  "golang",
		ProjectDir: "cmd",
		Analyzer:   []string{"staticcheck", "-f", "json"},
		Hooks:      []string{"pre-commit", "pre-push"},
	}
}

// LoadConfig reads the gocheck.json member of the txtar archive at path.
// Fields missing from it keep their default values. A missing archive or
// member is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	for _, f := range ar.Files {
		if f.Name != configMember {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(f.Data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("%s: %s: %w", path, configMember, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("%s: %s: %w", path, configMember, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if len(c.Analyzer) == 0 || c.Analyzer[0] == "" {
		return errors.New("analyzer command is empty")
	}
	for _, dir := range []string{c.ModuleDir, c.ProjectDir} {
		if !filepath.IsLocal(filepath.FromSlash(dir)) {
			return fmt.Errorf("directory %q must be relative and stay inside the repository", dir)
		}
	}
	for _, hook := range c.Hooks {
		if hook == "" || strings.ContainsAny(hook, `/\`) {
			return fmt.Errorf("invalid hook name %q", hook)
		}
	}
	return nil
}

// ModulePath returns the absolute path of the module directory in the
// repository rooted at root.
func (c Config) ModulePath(root string) string {
	return filepath.Join(root, filepath.FromSlash(c.ModuleDir))
}

// ProjectRoot returns the absolute path of the directory holding projects
// in the repository rooted at root.
func (c Config) ProjectRoot(root string) string {
	return filepath.Join(c.ModulePath(root), filepath.FromSlash(c.ProjectDir))
}
