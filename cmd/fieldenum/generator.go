package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/signadot/fieldenum/codegen"
)

// generator runs generation passes over the selected packages.
type generator struct {
	cfg      *Config
	cgCfg    *codegen.CodegenConfig
	patterns []string
	loader   *codegen.PackageLoader
	out      io.Writer
	diag     *diagnostics

	// outputs holds the absolute paths of the files generated so far.
	outputs map[string]bool
}

func newGenerator(cfg *Config, cgCfg *codegen.CodegenConfig, patterns []string, out io.Writer, errOut *os.File) *generator {
	return &generator{
		cfg:      cfg,
		cgCfg:    cgCfg,
		patterns: patterns,
		loader:   codegen.NewPackageLoader(cfg.Dir),
		out:      out,
		diag:     newDiagnostics(errOut),
		outputs:  map[string]bool{},
	}
}

func (g *generator) packages() ([]*codegen.PackageInfo, error) {
	if len(g.patterns) != 0 {
		return g.loader.Load(g.patterns...)
	}
	dir := g.cfg.Dir
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
	}
	packages, err := codegen.DiscoverPackages(dir, g.cfg.Recursive)
	if err != nil {
		return nil, fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("no Go packages found in %q", dir)
	}
	return packages, nil
}

// pass generates every package once. A package that fails is reported and
// left untouched; the others are still processed.
func (g *generator) pass() error {
	packages, err := g.packages()
	if err != nil {
		return err
	}

	failed, drift := 0, 0
	for _, pkg := range packages {
		theLog.Debug("processing package", "package", pkg.Path, "dir", pkg.Dir)
		res, err := codegen.GeneratePackage(pkg, g.cgCfg)
		if err != nil {
			g.diag.report(err)
			failed++
			continue
		}
		if abs, err := filepath.Abs(res.Output); err == nil {
			g.outputs[abs] = true
		}
		changed, err := g.emit(res)
		if err != nil {
			g.diag.report(err)
			failed++
			continue
		}
		if changed {
			drift++
		}
	}

	switch {
	case failed != 0:
		return fmt.Errorf("%d of %d packages failed", failed, len(packages))
	case g.cfg.Check && drift != 0:
		return errOutOfDate
	}
	return nil
}

// emit writes res, or compares it with the file on disk under -check. It
// reports whether the file on disk differs from res.
func (g *generator) emit(res *codegen.Result) (bool, error) {
	current, err := os.ReadFile(res.Output)
	switch {
	case errors.Is(err, os.ErrNotExist):
		current = nil
	case err != nil:
		return false, fmt.Errorf("failed to read %q: %w", res.Output, err)
	}

	if res.Code == nil {
		// nothing to generate: only a previously generated file matters
		if current == nil || !isGenerated(current) {
			return false, nil
		}
		if g.cfg.Check {
			fmt.Fprintf(g.out, "%s: stale generated file\n", relPath(res.Output))
			return true, nil
		}
		theLog.Info("removing stale file", "path", relPath(res.Output))
		if err := os.Remove(res.Output); err != nil {
			return false, fmt.Errorf("failed to remove %q: %w", res.Output, err)
		}
		return true, nil
	}

	if bytes.Equal(current, res.Code) {
		theLog.Debug("up to date", "path", relPath(res.Output))
		return false, nil
	}
	if current != nil && !isGenerated(current) {
		return false, fmt.Errorf("refusing to overwrite %q: not a generated file", res.Output)
	}
	if g.cfg.Check {
		writeDiff(g.out, relPath(res.Output), string(current), string(res.Code))
		return true, nil
	}
	if err := os.WriteFile(res.Output, res.Code, 0644); err != nil {
		return false, fmt.Errorf("failed to write output file %q: %w", res.Output, err)
	}
	theLog.Info("generated", "path", relPath(res.Output), "records", len(res.Records))
	return true, nil
}

func isGenerated(src []byte) bool {
	return bytes.HasPrefix(src, []byte(codegen.Header))
}

func relPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}
	return rel
}
