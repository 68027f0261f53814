package example

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/fieldenum/codegen"
)

func TestNameEnum(t *testing.T) {
	want := []string{"first", "second_field"}
	var got []string
	for _, n := range TestFieldNames() {
		got = append(got, n.Name())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	if TestFieldNameSecondField.String() != "second_field" {
		t.Errorf("String() = %q", TestFieldNameSecondField.String())
	}
	if got := TestFieldName(7).Name(); got != "TestFieldName(7)" {
		t.Errorf("out of range Name() = %q", got)
	}
	if !TestFieldNameFirst.Equal(TestFieldNameFirst.Clone()) || TestFieldNameFirst.Equal(TestFieldNameSecondField) {
		t.Errorf("Equal or Clone misbehaves")
	}
}

func TestLookupRoundTrip(t *testing.T) {
	for _, n := range TestFieldNames() {
		got, ok := TestFieldNameByName(n.Name())
		if !ok || got != n {
			t.Errorf("TestFieldNameByName(%q) = %v, %v", n.Name(), got, ok)
		}
	}
	for _, miss := range []string{"third", "fourth", "First", "SecondField", ""} {
		if n, ok := TestFieldNameByName(miss); ok {
			t.Errorf("TestFieldNameByName(%q) = %v, want absent", miss, n)
		}
	}
}

func TestArrayLengths(t *testing.T) {
	s := "two"
	rec := NewTest(1, &s)
	names := TestFieldNamesOf(&rec)
	values := rec.IntoFieldTypes()
	if len(names) != TestFieldNameVariantCount || len(values) != len(names) {
		t.Fatalf("lengths differ: names %d, values %d, count %d", len(names), len(values), TestFieldNameVariantCount)
	}
	if names != TestFieldNames() {
		t.Errorf("TestFieldNamesOf() = %v, want %v", names, TestFieldNames())
	}
	for i := range names {
		if names[i].Name() != values[i].Name() {
			t.Errorf("position %d: name %q, value of %q", i, names[i].Name(), values[i].Name())
		}
	}
}

func TestByValueConversion(t *testing.T) {
	s := "two"
	values := TestFieldTypesFrom(NewTest(1, &s))

	first, ok := values[0].(TestFieldTypeFirst)
	if !ok || first.Value != 1 {
		t.Errorf("values[0] = %#v", values[0])
	}
	second, ok := values[1].(TestFieldTypeSecondField)
	if !ok || second.Value != &s {
		t.Errorf("values[1] = %#v", values[1])
	}
}

func TestSerialization(t *testing.T) {
	type doc struct {
		Field  TestFieldName         `json:"field"`
		Counts map[TestFieldName]int `json:"counts"`
	}
	in := doc{
		Field:  TestFieldNameSecondField,
		Counts: map[TestFieldName]int{TestFieldNameFirst: 1},
	}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if want := `{"field":"second_field","counts":{"first":1}}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
	var out doc
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"field":"third"}`), &out); err == nil {
		t.Errorf("Unmarshal accepted a skipped field name")
	}
	if _, err := json.Marshal(TestFieldName(9)); err == nil {
		t.Errorf("Marshal accepted an invalid value")
	}
}

func TestGeneric(t *testing.T) {
	s := "two"
	rec := NewTestGen(1.5, &s)

	if got := TestGenFieldNamesOf(&rec); got != TestGenFieldNames() {
		t.Errorf("TestGenFieldNamesOf() = %v", got)
	}
	values := rec.IntoFieldTypes()
	if got := values[0].String(); got != "First(1.5)" {
		t.Errorf("String() = %q", got)
	}
	first, ok := values[0].Clone().(TestGenFieldTypeFirst[float64])
	if !ok || first.Value != 1.5 {
		t.Errorf("Clone() = %#v", values[0].Clone())
	}
	if values[1].Name() != "second_field" {
		t.Errorf("Name() = %q", values[1].Name())
	}
	if _, ok := any(values[0]).(TestGenFieldType[string]); ok {
		t.Errorf("a float64 variant satisfies TestGenFieldType[string]")
	}
}

func TestGeneratedFileIsCurrent(t *testing.T) {
	dir, err := filepath.Abs(".")
	if err != nil {
		t.Fatal(err)
	}
	pkg := &codegen.PackageInfo{
		Dir:   dir,
		Name:  "example",
		Files: []string{filepath.Join(dir, "example.go")},
	}
	res, err := codegen.GeneratePackage(pkg, codegen.NewCodegenConfig())
	if err != nil {
		t.Fatalf("GeneratePackage failed: %v", err)
	}
	committed, err := os.ReadFile(res.Output)
	if err != nil {
		t.Fatalf("failed to read %s: %v", res.Output, err)
	}
	if diff := cmp.Diff(string(committed), string(res.Code)); diff != "" {
		t.Errorf("example_fieldenum.go is stale, run go generate (-committed +generated):\n%s", diff)
	}
}
