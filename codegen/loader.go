package codegen

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"
)

// PackageLoader resolves package patterns and caches the results.
type PackageLoader struct {
	cache map[string][]*PackageInfo
	mu    sync.RWMutex

	// Dir is the directory patterns are resolved in; empty means the
	// current directory.
	Dir string
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader(dir string) *PackageLoader {
	return &PackageLoader{
		cache: make(map[string][]*PackageInfo),
		Dir:   dir,
	}
}

// Load resolves patterns (e.g. "./...", "example.com/models") with the go
// command. Test variants are not loaded.
func (l *PackageLoader) Load(patterns ...string) ([]*PackageInfo, error) {
	key := strings.Join(patterns, " ")

	l.mu.RLock()
	if pkgs, ok := l.cache[key]; ok {
		l.mu.RUnlock()
		return pkgs, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Check again in case it was loaded while we were waiting for the lock
	if pkgs, ok := l.cache[key]; ok {
		return pkgs, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles,
		Dir:  l.Dir,
	}
	loaded, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages %q: %w", key, err)
	}
	if len(loaded) == 0 {
		return nil, fmt.Errorf("no packages match %q", key)
	}

	var pkgs []*PackageInfo
	for _, p := range loaded {
		if len(p.Errors) > 0 {
			return nil, fmt.Errorf("failed to load package %q: %v", p.PkgPath, p.Errors[0])
		}
		if len(p.GoFiles) == 0 {
			continue
		}
		pkgs = append(pkgs, &PackageInfo{
			Path:  p.PkgPath,
			Dir:   filepath.Dir(p.GoFiles[0]),
			Name:  p.Name,
			Files: slices.Clone(p.GoFiles),
		})
	}
	l.cache[key] = pkgs
	return pkgs, nil
}

// Invalidate drops every cached result, e.g. after files were added or
// removed.
func (l *PackageLoader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	clear(l.cache)
}
