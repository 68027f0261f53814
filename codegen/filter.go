package codegen

import (
	"fmt"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// RecordFilter selects the records to generate by name and by an optional
// boolean expression.
//
// The expression sees the variables
//
//	name      record name
//	pkg       package name
//	file      source file path
//	exported  whether the record is exported
//	generic   whether the record has type parameters
//	fields    declared field names, embedded fields excluded
//	kinds     requested enumerations, "FieldName" and/or "FieldType"
//	attrs     names of the record level directives
//
// e.g. `exported && !generic && "id" in fields`.
type RecordFilter struct {
	types []string
	prg   *vm.Program
}

// NewRecordFilter compiles where. An empty types list and an empty where
// select every record.
func NewRecordFilter(types []string, where string) (*RecordFilter, error) {
	f := &RecordFilter{types: types}
	if where == "" {
		return f, nil
	}
	prg, err := expr.Compile(where, expr.Env(recordEnv("", &RecordInfo{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", where, err)
	}
	f.prg = prg
	return f, nil
}

// Match reports whether r of package pkgName is selected.
func (f *RecordFilter) Match(pkgName string, r *RecordInfo) (bool, error) {
	if len(f.types) != 0 && !slices.Contains(f.types, r.Schema.Name) {
		return false, nil
	}
	if f.prg == nil {
		return true, nil
	}
	res, err := expr.Run(f.prg, recordEnv(pkgName, r))
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter for %s: %w", r.Schema.Name, err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

func recordEnv(pkgName string, r *RecordInfo) map[string]any {
	env := map[string]any{
		"name":     "",
		"pkg":      pkgName,
		"file":     r.FilePath,
		"exported": false,
		"generic":  false,
		"fields":   []string{},
		"kinds":    []string{},
		"attrs":    []string{},
	}
	if r.Schema == nil {
		return env
	}
	fields := []string{}
	for _, field := range r.Schema.Fields {
		if field.Name != "" {
			fields = append(fields, field.Name)
		}
	}
	kinds := []string{}
	for _, k := range r.Kinds {
		kinds = append(kinds, k.String())
	}
	attrs := []string{}
	for _, a := range r.Schema.Attrs {
		attrs = append(attrs, a.Name)
	}
	env["name"] = r.Schema.Name
	env["exported"] = r.Schema.Exported
	env["generic"] = !r.Schema.Generics.IsEmpty()
	env["fields"] = fields
	env["kinds"] = kinds
	env["attrs"] = attrs
	return env
}
