package codegen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/fieldenum/directive"
	"github.com/signadot/fieldenum/record"
)

// DeriveDirective is the record directive requesting enumerations, e.g.
//
//	//fieldenum:derive(FieldName, FieldType)
const DeriveDirective = "derive"

// ParseFile parses a Go source file and returns its AST.
func ParseFile(filename string) (*ast.File, *token.FileSet, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, fset, nil
}

// ExtractRecords returns the records of file carrying a derive directive,
// in declaration order. Attributes and fields keep their source order.
func ExtractRecords(fset *token.FileSet, file *ast.File, filePath string) ([]*RecordInfo, error) {
	var records []*RecordInfo

	imports := ExtractImports(file)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}

			attrs, err := directive.ParseCommentGroup(typeDoc(genDecl, typeSpec))
			if err != nil {
				return nil, fmt.Errorf("%s: type %s: %w", fset.Position(typeSpec.Pos()), typeSpec.Name.Name, err)
			}
			kinds, ok, err := requestedKinds(attrs)
			if err != nil {
				return nil, fmt.Errorf("%s: type %s: %w", fset.Position(typeSpec.Pos()), typeSpec.Name.Name, err)
			}
			if !ok {
				continue
			}

			schema, err := schemaOf(fset, typeSpec, attrs)
			if err != nil {
				return nil, err
			}
			records = append(records, &RecordInfo{
				Schema:   schema,
				Kinds:    kinds,
				FilePath: filePath,
				Imports:  imports,
			})
		}
	}

	return records, nil
}

// typeDoc returns the doc comment of typeSpec. A lone spec in an
// unparenthesized declaration carries its doc on the GenDecl.
func typeDoc(genDecl *ast.GenDecl, typeSpec *ast.TypeSpec) *ast.CommentGroup {
	if typeSpec.Doc != nil {
		return typeSpec.Doc
	}
	if !genDecl.Lparen.IsValid() {
		return genDecl.Doc
	}
	return nil
}

// requestedKinds reads the derive directive among attrs. Its absence yields
// ok == false.
func requestedKinds(attrs []record.Attribute) ([]record.Kind, bool, error) {
	for _, attr := range attrs {
		if attr.Name != DeriveDirective {
			continue
		}
		if attr.Payload.Kind != record.PayloadList || len(attr.Payload.Tokens) == 0 {
			return nil, false, fmt.Errorf("%s directive needs a list of FieldName or FieldType", DeriveDirective)
		}
		var kinds []record.Kind
		seen := map[record.Kind]bool{}
		for _, tok := range attr.Payload.Tokens {
			k, ok := record.ParseKind(tok)
			if !ok {
				return nil, false, fmt.Errorf("%s directive: unknown enumeration %q", DeriveDirective, tok)
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			kinds = append(kinds, k)
		}
		return kinds, true, nil
	}
	return nil, false, nil
}

func schemaOf(fset *token.FileSet, typeSpec *ast.TypeSpec, attrs []record.Attribute) (*record.Schema, error) {
	name := typeSpec.Name.Name
	s := &record.Schema{
		Name:     name,
		Exported: record.IsExported(name),
		Attrs:    attrs,
		Generics: extractGenerics(fset, typeSpec.TypeParams),
		Pos:      fset.Position(typeSpec.Pos()),
	}

	structType, ok := typeSpec.Type.(*ast.StructType)
	if !ok || typeSpec.Assign.IsValid() {
		s.Shape = record.ShapeOther
		s.ShapeDesc = describeShape(typeSpec)
		return s, nil
	}
	s.Shape = record.ShapeStruct

	fields, err := extractFields(fset, structType)
	if err != nil {
		return nil, fmt.Errorf("%s: type %s: %w", s.Pos, name, err)
	}
	s.Fields = fields
	return s, nil
}

func extractGenerics(fset *token.FileSet, list *ast.FieldList) record.Generics {
	var g record.Generics
	if list == nil {
		return g
	}
	for _, field := range list.List {
		constraint := exprSource(fset, field.Type)
		idents := exprIdents(field.Type)
		for _, name := range field.Names {
			g.Params = append(g.Params, record.TypeParam{
				Name:       name.Name,
				Constraint: constraint,
				Idents:     slices.Clone(idents),
			})
		}
	}
	return g
}

// exprSource prints expr the way it is written in the source, struct tags
// included.
func exprSource(fset *token.FileSet, expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, fset, expr); err != nil {
		return types.ExprString(expr)
	}
	return buf.String()
}

// exprIdents returns every distinct identifier in expr, in order of
// appearance.
func exprIdents(expr ast.Expr) []string {
	var res []string
	seen := map[string]bool{}
	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && !seen[id.Name] {
			seen[id.Name] = true
			res = append(res, id.Name)
		}
		return true
	})
	return res
}

// extractFields flattens structType into one record.Field per declared name.
// Embedded fields get an empty Name.
func extractFields(fset *token.FileSet, structType *ast.StructType) ([]record.Field, error) {
	var fields []record.Field
	for _, field := range structType.Fields.List {
		attrs, err := fieldAttrs(field)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", fieldLabel(field), err)
		}
		typ := record.TypeExpr(exprSource(fset, field.Type))

		if len(field.Names) == 0 {
			fields = append(fields, record.Field{Type: typ, Attrs: attrs})
			continue
		}
		for _, name := range field.Names {
			fields = append(fields, record.Field{Name: name.Name, Type: typ, Attrs: attrs})
		}
	}
	return fields, nil
}

// fieldAttrs collects the attributes of field: doc directives, then struct
// tag keys, then trailing-comment directives.
func fieldAttrs(field *ast.Field) ([]record.Attribute, error) {
	attrs, err := directive.ParseCommentGroup(field.Doc)
	if err != nil {
		return nil, err
	}
	if field.Tag != nil {
		tag, err := strconv.Unquote(field.Tag.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid tag %s: %w", field.Tag.Value, err)
		}
		tagAttrs, err := directive.ParseTag(tag)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, tagAttrs...)
	}
	trailing, err := directive.ParseCommentGroup(field.Comment)
	if err != nil {
		return nil, err
	}
	return append(attrs, trailing...), nil
}

func fieldLabel(field *ast.Field) string {
	if len(field.Names) == 0 {
		return types.ExprString(field.Type)
	}
	names := make([]string, len(field.Names))
	for i, n := range field.Names {
		names[i] = n.Name
	}
	return strings.Join(names, ", ")
}

// describeShape names the kind of a non-struct type for error messages.
func describeShape(typeSpec *ast.TypeSpec) string {
	if typeSpec.Assign.IsValid() {
		return "an alias of " + types.ExprString(typeSpec.Type)
	}
	switch typeSpec.Type.(type) {
	case *ast.InterfaceType:
		return "an interface"
	case *ast.MapType:
		return "a map"
	case *ast.ArrayType:
		return "an array or slice"
	case *ast.FuncType:
		return "a function"
	case *ast.ChanType:
		return "a channel"
	}
	return types.ExprString(typeSpec.Type)
}

// ExtractImports extracts the imports of an AST file in source order.
// Blank and dot imports are skipped.
func ExtractImports(file *ast.File) []ImportSpec {
	var imports []ImportSpec
	for _, imp := range file.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		var name string
		if imp.Name != nil {
			name = imp.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		imports = append(imports, ImportSpec{Name: name, Path: p})
	}
	return imports
}
