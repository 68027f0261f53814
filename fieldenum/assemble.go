package fieldenum

import "github.com/signadot/fieldenum/record"

// Variant is one member of a generated enum.
type Variant struct {
	// Tag is the variant identifier, e.g. SecondField.
	Tag string
	// Field is the original field spelling, e.g. second_field. It is the
	// canonical string of the variant.
	Field string
	// Payload is the wrapped field type, "" for unit variants.
	Payload record.TypeExpr
}

// Name returns the canonical string of v.
func (v Variant) Name() string {
	return v.Field
}

// Enum is one generated enumeration.
type Enum struct {
	Name   string
	Kind   record.Kind
	Record string
	// Exported mirrors the visibility of the record.
	Exported bool
	// Generics is empty for name enums and the record's own list for typed
	// enums.
	Generics record.Generics
	Derives  DeriveList
	Variants []Variant
}

// Len is the number of variants and the length of every generated array.
func (e *Enum) Len() int {
	return len(e.Variants)
}

// ByName scans the variants in order for the one whose canonical string is
// name. Matching is exact and case sensitive.
func (e *Enum) ByName(name string) (Variant, bool) {
	for _, v := range e.Variants {
		if v.Name() == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Qualified returns the Go identifier of variant v, e.g. TestFieldNameFirst.
func (e *Enum) Qualified(v Variant) string {
	return e.Name + v.Tag
}

// EnumName returns the name of the kind k enum generated for rec.
func EnumName(rec string, k record.Kind) string {
	return rec + k.Suffix()
}

// Assemble builds the kind k enum for s from its retained fields and the
// resolved derive list.
func Assemble(s *record.Schema, k record.Kind, fields []record.RetainedField, derives DeriveList) *Enum {
	e := &Enum{
		Name:     EnumName(s.Name, k),
		Kind:     k,
		Record:   s.Name,
		Exported: s.Exported,
		Derives:  derives,
		Variants: make([]Variant, len(fields)),
	}
	if k == record.KindFieldType {
		e.Generics = s.Generics.Clone()
	}
	for i, f := range fields {
		v := Variant{Tag: f.Tag, Field: f.Name}
		if k == record.KindFieldType {
			v.Payload = f.Type
		}
		e.Variants[i] = v
	}
	return e
}
