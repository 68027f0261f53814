package codegen

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create %q: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
}

func TestDiscoverPackages(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.go"), "package models\n")
	writeFile(t, filepath.Join(root, "a_test.go"), "package models\n")
	writeFile(t, filepath.Join(root, "sub", "b.go"), "package sub\n")
	writeFile(t, filepath.Join(root, "testdata", "c.go"), "package testdata\n")
	writeFile(t, filepath.Join(root, "_skip", "d.go"), "package skip\n")
	writeFile(t, filepath.Join(root, "empty", "README"), "nothing\n")

	packages, err := DiscoverPackages(root, false)
	if err != nil {
		t.Fatalf("failed to discover packages: %v", err)
	}
	if len(packages) != 1 {
		t.Fatalf("expected 1 package, got %d", len(packages))
	}
	if packages[0].Name != "models" {
		t.Errorf("expected package models, got %q", packages[0].Name)
	}
	if diff := cmp.Diff([]string{filepath.Join(root, "a.go")}, packages[0].Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	packages, err = DiscoverPackages(root, true)
	if err != nil {
		t.Fatalf("failed to discover packages: %v", err)
	}
	var names []string
	for _, pkg := range packages {
		names = append(names, pkg.Name)
	}
	sort.Strings(names)
	if diff := cmp.Diff([]string{"models", "sub"}, names); diff != "" {
		t.Errorf("packages mismatch (-want +got):\n%s", diff)
	}
}
