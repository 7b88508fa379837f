package repo

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModuleInfo holds the parsed go.mod of the module enclosing a directory.
type ModuleInfo struct {
	Module   string
	File     *modfile.File
	FilePath string
}

// FindModule walks up from dir until it finds a go.mod file and parses it.
func FindModule(dir string) (*ModuleInfo, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}

	current := abs
	for {
		path := filepath.Join(current, "go.mod")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return ParseGoMod(path)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, fmt.Errorf("no go.mod found in %s or any parent directory", abs)
		}
		current = parent
	}
}

// ParseGoMod reads and parses a single go.mod file.
func ParseGoMod(path string) (*ModuleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read go.mod: %w", err)
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, fmt.Errorf("parse go.mod: %w", err)
	}
	if f.Module == nil {
		return nil, fmt.Errorf("%s is missing a module directive", path)
	}

	return &ModuleInfo{
		Module:   f.Module.Mod.Path,
		File:     f,
		FilePath: path,
	}, nil
}

// Dependency returns the version the module resolves modulePath to,
// honoring replace directives that pin a version. Replacements pointing at
// a local path carry no version and are reported as errors.
func (info *ModuleInfo) Dependency(modulePath string) (string, error) {
	if info == nil || info.File == nil {
		return "", fmt.Errorf("module info not loaded")
	}

	for _, r := range info.File.Replace {
		if r.Old.Path == modulePath {
			if r.New.Version == "" {
				return "", fmt.Errorf("dependency %s is replaced by a local path", modulePath)
			}
			return r.New.Version, nil
		}
	}

	for _, req := range info.File.Require {
		if req.Mod.Path == modulePath {
			if req.Mod.Version == "" {
				return "", fmt.Errorf("dependency %s has no version", modulePath)
			}
			return req.Mod.Version, nil
		}
	}

	return "", fmt.Errorf("dependency %s not found in %s", modulePath, info.FilePath)
}
