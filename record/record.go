// Package record describes the input of field enum generation: a struct
// declaration reduced to its name, type parameters, fields and directives.
//
// A Schema is produced once per annotated struct by the parsing side
// (github.com/signadot/fieldenum/codegen) and consumed read-only by
// github.com/signadot/fieldenum/fieldenum.
package record

import "go/token"

// TypeExpr is the source text of a Go type expression, e.g. "*string" or
// "map[K]V". It is opaque to generation and re-emitted verbatim.
type TypeExpr string

// Shape is the syntactic shape of a declared type.
type Shape int

const (
	// ShapeStruct is a struct with (possibly embedded) fields.
	ShapeStruct Shape = iota
	// ShapeOther is any other type: an interface, a named basic type, ...
	ShapeOther
)

func (s Shape) String() string {
	switch s {
	case ShapeStruct:
		return "struct"
	case ShapeOther:
		return "non-struct"
	}
	return "unknown"
}

// Kind selects which of the two generated enumerations is meant.
type Kind int

const (
	// KindFieldName is the name enumeration: one unit constant per field.
	KindFieldName Kind = iota
	// KindFieldType is the typed-variant enumeration: one variant per field
	// carrying the field's value.
	KindFieldType
)

// Kinds lists every Kind in generation order.
var Kinds = []Kind{KindFieldName, KindFieldType}

// Suffix is appended to the record name to name the generated enum.
func (k Kind) Suffix() string {
	switch k {
	case KindFieldName:
		return "FieldName"
	case KindFieldType:
		return "FieldType"
	}
	return ""
}

func (k Kind) String() string {
	if s := k.Suffix(); s != "" {
		return s
	}
	return "Kind(?)"
}

// ParseKind maps "FieldName" and "FieldType" to their Kind.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Suffix() == s {
			return k, true
		}
	}
	return 0, false
}

// Field is one declared struct field.
type Field struct {
	// Name is the field identifier, "" for embedded fields.
	Name string
	// Type is the declared type.
	Type TypeExpr
	// Attrs are the directives attached to the field, in declaration order.
	Attrs []Attribute
}

// Accessible reports whether the field can be addressed by name.
func (f Field) Accessible() bool {
	return f.Name != "" && f.Name != "_"
}

// Schema is a record type ready for generation.
type Schema struct {
	Name     string
	Exported bool
	Shape    Shape
	// ShapeDesc describes a non-struct shape for diagnostics, e.g. "interface".
	ShapeDesc string
	Generics  Generics
	Fields    []Field
	// Attrs are the record level directives in declaration order.
	Attrs []Attribute
	Pos   token.Position
}

// IsExported reports whether name starts with an upper case letter.
func IsExported(name string) bool {
	return token.IsExported(name)
}

// RetainedField is a field that survived filtering, with the tag its
// variants are named by.
type RetainedField struct {
	Name string
	Type TypeExpr
	Tag  string
}

// Tags returns the tags of fs in order.
func Tags(fs []RetainedField) []string {
	res := make([]string, len(fs))
	for i := range fs {
		res[i] = fs[i].Tag
	}
	return res
}
