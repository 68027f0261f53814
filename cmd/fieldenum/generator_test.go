package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/signadot/fieldenum/codegen"
)

const modelSrc = `package models

//fieldenum:derive(FieldName, FieldType)
type Test struct {
	first        int
	second_field *string
}
`

func setup(t *testing.T, src string) (string, *Config) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "models.go"), []byte(src), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	return dir, &Config{Dir: dir}
}

func testGenerator(t *testing.T, cfg *Config, out *bytes.Buffer) *generator {
	t.Helper()
	cgCfg, err := cfg.codegenConfig()
	if err != nil {
		t.Fatalf("codegenConfig failed: %v", err)
	}
	return newGenerator(cfg, cgCfg, nil, out, os.Stderr)
}

func TestPassWritesAndChecks(t *testing.T) {
	dir, cfg := setup(t, modelSrc)
	out := filepath.Join(dir, "models_fieldenum.go")

	var buf bytes.Buffer
	if err := testGenerator(t, cfg, &buf).pass(); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	code, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected generated file: %v", err)
	}
	if !strings.HasPrefix(string(code), codegen.Header) {
		t.Errorf("generated file lacks the header:\n%s", code)
	}

	cfg.Check = true
	if err := testGenerator(t, cfg, &buf).pass(); err != nil {
		t.Fatalf("check on fresh output failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected check output:\n%s", buf.String())
	}

	updated := strings.Replace(modelSrc, "second_field *string", "second_field *string\n\tthird_field  bool", 1)
	if err := os.WriteFile(filepath.Join(dir, "models.go"), []byte(updated), 0644); err != nil {
		t.Fatalf("failed to update source: %v", err)
	}
	err = testGenerator(t, cfg, &buf).pass()
	if !errors.Is(err, errOutOfDate) {
		t.Fatalf("expected errOutOfDate, got %v", err)
	}
	diff := buf.String()
	if !strings.Contains(diff, "+++ ") || !strings.Contains(diff, "+\tTestFieldNameThirdField") {
		t.Errorf("unexpected diff:\n%s", diff)
	}
	after, _ := os.ReadFile(out)
	if !bytes.Equal(after, code) {
		t.Errorf("-check modified the generated file")
	}
}

func TestPassRemovesStaleOutput(t *testing.T) {
	dir, cfg := setup(t, modelSrc)
	out := filepath.Join(dir, "models_fieldenum.go")
	var buf bytes.Buffer
	if err := testGenerator(t, cfg, &buf).pass(); err != nil {
		t.Fatalf("pass failed: %v", err)
	}

	plain := strings.Replace(modelSrc, "//fieldenum:derive(FieldName, FieldType)\n", "", 1)
	if err := os.WriteFile(filepath.Join(dir, "models.go"), []byte(plain), 0644); err != nil {
		t.Fatalf("failed to update source: %v", err)
	}
	if err := testGenerator(t, cfg, &buf).pass(); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected stale output to be removed, stat error %v", err)
	}
}

func TestPassRefusesHandWrittenFile(t *testing.T) {
	dir, cfg := setup(t, modelSrc)
	cfg.OutputFile = "handwritten.go"
	hand := filepath.Join(dir, "handwritten.go")
	if err := os.WriteFile(hand, []byte("package models\n"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	var buf bytes.Buffer
	if err := testGenerator(t, cfg, &buf).pass(); err == nil {
		t.Fatal("expected a failure")
	}
	content, _ := os.ReadFile(hand)
	if string(content) != "package models\n" {
		t.Errorf("hand written file was overwritten:\n%s", content)
	}
}

func TestPassReportsFailedPackages(t *testing.T) {
	_, cfg := setup(t, `package models

//fieldenum:derive(FieldName)
type Mode int
`)
	var buf bytes.Buffer
	err := testGenerator(t, cfg, &buf).pass()
	if err == nil || !strings.Contains(err.Error(), "1 of 1 packages failed") {
		t.Errorf("expected a package failure, got %v", err)
	}
}

func TestConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldenum.yaml")
	if err := os.WriteFile(path, []byte("output: from_file.go\ntypes: [A]\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	cfg := &Config{ConfigFile: path, Types: "B, C", OutputFile: ""}
	cgCfg, err := cfg.codegenConfig()
	if err != nil {
		t.Fatalf("codegenConfig failed: %v", err)
	}
	if cgCfg.OutputFile != "from_file.go" {
		t.Errorf("OutputFile = %q", cgCfg.OutputFile)
	}
	if strings.Join(cgCfg.Types, ",") != "B,C" {
		t.Errorf("Types = %v", cgCfg.Types)
	}
}

func TestPassRecordsOutputsForRelativeDir(t *testing.T) {
	dir, _ := setup(t, modelSrc)
	t.Chdir(dir)

	g := testGenerator(t, &Config{Dir: "."}, &bytes.Buffer{})
	if err := g.pass(); err != nil {
		t.Fatalf("pass failed: %v", err)
	}
	for name, want := range map[string]bool{
		"models_fieldenum.go": false,
		"models.go":           true,
		"models_test.go":      false,
		"notes.txt":           false,
	} {
		if got := g.relevant(fsnotify.Event{Name: name, Op: fsnotify.Write}); got != want {
			t.Errorf("relevant(%q) = %v, want %v", name, got, want)
		}
	}
	abs := filepath.Join(dir, "models_fieldenum.go")
	if g.relevant(fsnotify.Event{Name: abs, Op: fsnotify.Write}) {
		t.Errorf("relevant(%q) = true for a generated file", abs)
	}
}
