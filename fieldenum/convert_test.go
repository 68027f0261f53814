package fieldenum

import (
	"errors"
	"testing"

	"github.com/signadot/fieldenum/record"
)

func TestFreshParam(t *testing.T) {
	tests := []struct {
		name     string
		generics         []string
		constraintIdents []string
		reserved         []string
		want             string
	}{
		{name: "no params", want: "Ref"},
		{name: "unrelated params", generics: []string{"T", "U"}, want: "Ref"},
		{name: "declared Ref", generics: []string{"Ref"}, want: "Ref1"},
		{name: "declared Ref and Ref1", generics: []string{"Ref1", "Ref"}, want: "Ref2"},
		{name: "record named Ref", reserved: []string{"Ref"}, want: "Ref1"},
		{name: "constraint mentions Ref", constraintIdents: []string{"Ref"}, want: "Ref1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g record.Generics
			for _, n := range tt.generics {
				g.Params = append(g.Params, record.TypeParam{Name: n, Constraint: "any"})
			}
			if tt.constraintIdents != nil {
				g.Params = append(g.Params, record.TypeParam{
					Name:       "T",
					Constraint: "interface{ " + tt.constraintIdents[0] + " }",
					Idents:     tt.constraintIdents,
				})
			}
			if got := FreshParam(RefParamBase, g, tt.reserved...); got != tt.want {
				t.Errorf("FreshParam() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSynthesizeRefParamCollision(t *testing.T) {
	s := &record.Schema{
		Name:  "Holder",
		Shape: record.ShapeStruct,
		Generics: record.Generics{Params: []record.TypeParam{
			{Name: "Ref", Constraint: "any"},
		}},
		Fields: []record.Field{{Name: "value", Type: "Ref"}},
	}
	d, err := Generate(s, record.KindFieldName)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	ref, ok := d.Converter(ShapeByReference)
	if !ok {
		t.Fatal("expected a by-reference converter")
	}
	if ref.RefParam != "Ref1" {
		t.Errorf("RefParam = %q, want Ref1", ref.RefParam)
	}
	if got := ref.Generics.Decl(); got != "[Ref1 interface{ *Holder[Ref] }, Ref any]" {
		t.Errorf("Generics.Decl() = %q", got)
	}
}

func TestSynthesizeRefParamAvoidsConstraintIdents(t *testing.T) {
	s := &record.Schema{
		Name:  "Holder",
		Shape: record.ShapeStruct,
		Generics: record.Generics{Params: []record.TypeParam{
			{Name: "T", Constraint: "Ref", Idents: []string{"Ref"}},
			{Name: "U", Constraint: "interface{ ~int | Ref1 }", Idents: []string{"Ref1"}},
		}},
		Fields: []record.Field{{Name: "value", Type: "T"}},
	}
	d, err := Generate(s, record.KindFieldName)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	ref, _ := d.Converter(ShapeByReference)
	if ref.RefParam != "Ref2" {
		t.Errorf("RefParam = %q, want Ref2", ref.RefParam)
	}
	want := "[Ref2 interface{ *Holder[T, U] }, T Ref, U interface{ ~int | Ref1 }]"
	if got := ref.Generics.Decl(); got != want {
		t.Errorf("Generics.Decl() = %q, want %q", got, want)
	}
}

func TestValidateRejectsIncoherentConverter(t *testing.T) {
	c := &Converter{
		Shape:  ShapeFromTarget,
		Record: "TestGen",
		Len:    1,
		RecordGenerics: record.Generics{Params: []record.TypeParam{
			{Name: "T", Constraint: "any"},
		}},
		Fields: []Mapping{{Field: "first", Tag: "First"}},
	}
	if err := c.Validate(); !errors.Is(err, ErrIncoherentConverter) {
		t.Errorf("Validate() = %v, want ErrIncoherentConverter", err)
	}

	c.RecordGenerics = record.Generics{}
	if err := c.Validate(); err != nil {
		t.Errorf("Validate() on non-generic record = %v", err)
	}

	c.Len = 2
	if err := c.Validate(); err == nil {
		t.Errorf("Validate() accepted a length mismatch")
	}
}

func TestTagName(t *testing.T) {
	for in, want := range map[string]string{
		"first":        "First",
		"second_field": "SecondField",
		"SecondField":  "SecondField",
		"_leading":     "Leading",
		"field_1":      "Field1",
		"größe":        "Größe",
		"café_au_lait": "CaféAuLait",
		"ä":            "Ä",
		"名前":           "名前",
		"名前_field":     "名前Field",
		"__":           "",
	} {
		if got := TagName(in); got != want {
			t.Errorf("TagName(%q) = %q, want %q", in, got, want)
		}
	}
}
