package fieldenum

import (
	"fmt"
	"strconv"

	"github.com/signadot/fieldenum/record"
)

// ConverterShape selects how a conversion routine is declared.
type ConverterShape int

const (
	// ShapeFromTarget is a free function named after the target array,
	// taking the record by value. Only valid for records without type
	// parameters.
	ShapeFromTarget ConverterShape = iota
	// ShapeIntoMethod is a method on the record taking it by value.
	ShapeIntoMethod
	// ShapeByReference is a free function over a pointer to the record,
	// whose pointer type is a synthesized type parameter.
	ShapeByReference
	// ShapeNameLookup is the reverse lookup from canonical string to variant.
	ShapeNameLookup
)

func (s ConverterShape) String() string {
	switch s {
	case ShapeFromTarget:
		return "from-target"
	case ShapeIntoMethod:
		return "into-method"
	case ShapeByReference:
		return "by-reference"
	case ShapeNameLookup:
		return "name-lookup"
	}
	return "ConverterShape(" + strconv.Itoa(int(s)) + ")"
}

// RefParamBase is the preferred name of the synthesized reference parameter.
const RefParamBase = "Ref"

// Mapping pairs a record field with the variant built from it.
type Mapping struct {
	Field string
	Tag   string
}

// Converter describes one generated routine.
type Converter struct {
	Shape  ConverterShape
	Record string
	// Len is the length of the produced array.
	Len int
	// RecordGenerics are the record's own type parameters, used to
	// instantiate the record and the target.
	RecordGenerics record.Generics
	// Generics are the type parameters of the routine itself. For
	// ShapeByReference they start with RefParam.
	Generics record.Generics
	// RefParam is the synthesized parameter name for ShapeByReference.
	RefParam string
	// Func is the free function name (ShapeFromTarget, ShapeByReference,
	// ShapeNameLookup).
	Func string
	// Method is the method declared on the record (ShapeIntoMethod, and the
	// delegating method of ShapeFromTarget).
	Method string
	// Fields maps record fields to variants in declaration order.
	Fields []Mapping
}

// Validate checks the structural invariants of c.
func (c *Converter) Validate() error {
	if c.Len != len(c.Fields) {
		return fmt.Errorf("%s converter for %s maps %d fields into an array of %d", c.Shape, c.Record, len(c.Fields), c.Len)
	}
	switch c.Shape {
	case ShapeFromTarget:
		if !c.RecordGenerics.IsEmpty() || !c.Generics.IsEmpty() {
			return fmt.Errorf("%w %s", ErrIncoherentConverter, c.Record)
		}
	case ShapeByReference:
		if len(c.Generics.Params) == 0 || c.Generics.Params[0].Name != c.RefParam {
			return fmt.Errorf("by-reference converter for %s lacks its reference parameter", c.Record)
		}
		if c.RecordGenerics.Has(c.RefParam) {
			return fmt.Errorf("reference parameter %s of %s collides with a declared parameter", c.RefParam, c.Record)
		}
	}
	return nil
}

// RefConstraint is the constraint of the synthesized reference parameter,
// e.g. "interface{ *Test[T] }".
func (c *Converter) RefConstraint() string {
	return refConstraint(c.Record, c.RecordGenerics)
}

func refConstraint(rec string, g record.Generics) string {
	return "interface{ *" + rec + g.Args() + " }"
}

// FreshParam returns base, or base followed by the smallest positive
// integer, such that the result names no parameter of g, no identifier
// their constraints refer to and none of reserved.
func FreshParam(base string, g record.Generics, reserved ...string) string {
	taken := map[string]bool{}
	for _, name := range g.Referenced() {
		taken[name] = true
	}
	for _, name := range reserved {
		taken[name] = true
	}
	name := base
	for i := 1; taken[name]; i++ {
		name = base + strconv.Itoa(i)
	}
	return name
}

// Synthesize derives the conversion routines of e from s and its retained
// fields.
//
// Typed-variant enums get a by-value conversion: ShapeFromTarget for records
// without type parameters, ShapeIntoMethod otherwise. Name enums get a
// by-reference conversion and the reverse name lookup.
func Synthesize(s *record.Schema, e *Enum, fields []record.RetainedField) ([]Converter, error) {
	mappings := make([]Mapping, len(fields))
	for i, f := range fields {
		mappings[i] = Mapping{Field: f.Name, Tag: f.Tag}
	}
	base := Converter{
		Record:         s.Name,
		Len:            len(fields),
		RecordGenerics: s.Generics.Clone(),
		Fields:         mappings,
	}

	var convs []Converter
	switch e.Kind {
	case record.KindFieldType:
		c := base
		c.Method = "Into" + e.Kind.Suffix() + "s"
		if s.Generics.IsEmpty() {
			c.Shape = ShapeFromTarget
			c.Func = e.Name + "sFrom"
		} else {
			c.Shape = ShapeIntoMethod
		}
		convs = append(convs, c)

	case record.KindFieldName:
		ref := base
		ref.Shape = ShapeByReference
		ref.Func = e.Name + "sOf"
		ref.RefParam = FreshParam(RefParamBase, s.Generics, s.Name, e.Name)
		ref.Generics = s.Generics.Prepend(record.TypeParam{
			Name:       ref.RefParam,
			Constraint: refConstraint(s.Name, s.Generics),
		})
		convs = append(convs, ref)

		lookup := base
		lookup.Shape = ShapeNameLookup
		lookup.Func = e.Name + "ByName"
		lookup.RecordGenerics = record.Generics{}
		convs = append(convs, lookup)

	default:
		return nil, fmt.Errorf("unknown kind %d", int(e.Kind))
	}

	for i := range convs {
		if err := convs[i].Validate(); err != nil {
			return nil, err
		}
	}
	return convs, nil
}
