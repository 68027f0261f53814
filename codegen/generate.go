package codegen

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/signadot/fieldenum/debug"
	"github.com/signadot/fieldenum/fieldenum"
)

// Result is the outcome of generating one package.
type Result struct {
	Package *PackageInfo
	// Output is the path of the generated file.
	Output string
	// Code is the generated source, nil when the package has no selected
	// records.
	Code []byte
	// Records names the records generated, in source order.
	Records []string
}

// GeneratePackage parses every file of pkg, generates the requested
// enumerations of the selected records and renders them into a single
// file. Every record is generated before failing so that all diagnostics
// are reported; any failure leaves Code unset.
func GeneratePackage(pkg *PackageInfo, cfg *CodegenConfig) (*Result, error) {
	filter, err := NewRecordFilter(cfg.Types, cfg.Where)
	if err != nil {
		return nil, err
	}
	res := &Result{Package: pkg, Output: cfg.OutputPath(pkg)}
	opts := cfg.Options()

	var (
		sets []*fieldenum.DeclSet
		imps []ImportSpec
		errs []error
	)
	for _, filePath := range pkg.Files {
		if sameFile(filePath, res.Output) {
			continue
		}
		file, fset, err := ParseFile(filePath)
		if err != nil {
			return nil, err
		}
		records, err := ExtractRecords(fset, file, filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to extract records from %q: %w", filePath, err)
		}

		for _, r := range records {
			ok, err := filter.Match(pkg.Name, r)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			if debug.Records() {
				debug.LogAny(r.Schema)
			}
			ds, err := fieldenum.GenerateAll(r.Schema, r.Kinds, opts...)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if debug.Decls() {
				debug.LogAny(ds.Decls)
			}
			sets = append(sets, ds)
			imps = append(imps, r.Imports...)
			res.Records = append(res.Records, r.Schema.Name)
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	if len(sets) == 0 {
		return res, nil
	}

	code, err := Render(filepath.Base(res.Output), pkg.Name, imps, sets)
	if err != nil {
		return nil, err
	}
	res.Code = code
	return res, nil
}

func sameFile(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}
