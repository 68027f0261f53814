package record

import (
	"slices"
	"strings"
)

// TypeParam is one declared type parameter.
type TypeParam struct {
	Name string
	// Constraint is the constraint source text, e.g. "any" or "~int | ~string".
	Constraint string
	// Idents are the identifiers Constraint refers to, e.g. Number in
	// "interface{ Number; String() string }".
	Idents []string
}

// Generics is the ordered type parameter list of a record.
type Generics struct {
	Params []TypeParam
}

// IsEmpty reports whether there are no type parameters.
func (g Generics) IsEmpty() bool {
	return len(g.Params) == 0
}

// Names returns the parameter names in order.
func (g Generics) Names() []string {
	res := make([]string, len(g.Params))
	for i := range g.Params {
		res[i] = g.Params[i].Name
	}
	return res
}

// Has reports whether a parameter is named name.
func (g Generics) Has(name string) bool {
	for i := range g.Params {
		if g.Params[i].Name == name {
			return true
		}
	}
	return false
}

// Decl renders the declaration form "[T any, U comparable]", or "" when
// there are no parameters.
func (g Generics) Decl() string {
	if g.IsEmpty() {
		return ""
	}
	parts := make([]string, len(g.Params))
	for i, p := range g.Params {
		parts[i] = p.Name + " " + p.Constraint
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Args renders the instantiation form "[T, U]", or "" when there are no
// parameters.
func (g Generics) Args() string {
	if g.IsEmpty() {
		return ""
	}
	return "[" + strings.Join(g.Names(), ", ") + "]"
}

// Referenced returns the parameter names of g together with every
// identifier their constraints refer to.
func (g Generics) Referenced() []string {
	var res []string
	for i := range g.Params {
		res = append(res, g.Params[i].Name)
		res = append(res, g.Params[i].Idents...)
	}
	return res
}

// Prepend returns a copy of g with p inserted before the existing
// parameters. g is left unchanged.
func (g Generics) Prepend(p TypeParam) Generics {
	return Generics{Params: append([]TypeParam{p.clone()}, g.Clone().Params...)}
}

// Clone returns a copy of g that shares no storage with it.
func (g Generics) Clone() Generics {
	if g.Params == nil {
		return Generics{}
	}
	params := make([]TypeParam, len(g.Params))
	for i := range g.Params {
		params[i] = g.Params[i].clone()
	}
	return Generics{Params: params}
}

func (p TypeParam) clone() TypeParam {
	p.Idents = slices.Clone(p.Idents)
	return p
}
