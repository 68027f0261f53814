package codegen

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fieldenum/fieldenum"
)

func testPackage(t *testing.T, files map[string]string) *PackageInfo {
	t.Helper()
	dir := t.TempDir()
	pkg := &PackageInfo{Path: "example.com/models", Dir: dir, Name: "models"}
	for name, content := range files {
		path := filepath.Join(dir, name)
		writeFile(t, path, content)
		pkg.Files = append(pkg.Files, path)
	}
	return pkg
}

func TestGeneratePackage(t *testing.T) {
	pkg := testPackage(t, map[string]string{
		"a.go": `package models

import "time"

//fieldenum:derive(FieldName, FieldType)
type Event struct {
	id   string
	when time.Time
}

//fieldenum:derive(FieldName)
type internal struct {
	x int
}

type Untouched struct{}
`,
		"models_fieldenum.go": "this file is not Go and must be ignored\n",
	})

	cfg := NewCodegenConfig()
	cfg.Where = "exported"
	res, err := GeneratePackage(pkg, cfg)
	if err != nil {
		t.Fatalf("GeneratePackage failed: %v", err)
	}
	if res.Output != filepath.Join(pkg.Dir, "models_fieldenum.go") {
		t.Errorf("unexpected output path %q", res.Output)
	}
	if diff := cmp.Diff([]string{"Event"}, res.Records); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
	code := string(res.Code)
	for _, want := range []string{
		"package models",
		`"time"`,
		"type EventFieldTypeWhen struct {\n\tValue time.Time\n}",
		"func EventFieldNameByName(name string) (EventFieldName, bool) {",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("expected %q in generated code:\n%s", want, code)
		}
	}
	if strings.Contains(code, "internalFieldName") {
		t.Errorf("filtered record was generated:\n%s", code)
	}
}

func TestGeneratePackageNoRecords(t *testing.T) {
	pkg := testPackage(t, map[string]string{
		"a.go": "package models\n\ntype Plain struct{ x int }\n",
	})
	res, err := GeneratePackage(pkg, NewCodegenConfig())
	if err != nil {
		t.Fatalf("GeneratePackage failed: %v", err)
	}
	if res.Code != nil || len(res.Records) != 0 {
		t.Errorf("expected no output, got records %v", res.Records)
	}
}

func TestGeneratePackageReportsEveryRecord(t *testing.T) {
	pkg := testPackage(t, map[string]string{
		"a.go": `package models

//fieldenum:derive(FieldName)
type Empty struct {
	//fieldenum:field_name(skip)
	x int
}

//fieldenum:derive(FieldType)
type Mode int

//fieldenum:derive(FieldName)
type Fine struct {
	x int
}
`,
	})
	res, err := GeneratePackage(pkg, NewCodegenConfig())
	if res != nil {
		t.Errorf("expected no result on failure")
	}
	if !errors.Is(err, fieldenum.ErrEmpty) || !errors.Is(err, fieldenum.ErrNotStruct) {
		t.Fatalf("expected both failures to be reported, got %v", err)
	}
	if !strings.Contains(err.Error(), "a.go:4:6") {
		t.Errorf("error %q lacks the record position", err)
	}
}
