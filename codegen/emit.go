package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/signadot/fieldenum/debug"
	"github.com/signadot/fieldenum/fieldenum"
	"github.com/signadot/fieldenum/record"
)

// Render prints the declarations of sets as the Go source file filename of
// package pkgName. Imports lists candidate imports for field types; unused
// ones are dropped and the standard library imports needed by the
// generated methods are added.
func Render(filename, pkgName string, imps []ImportSpec, sets []*fieldenum.DeclSet) ([]byte, error) {
	e := &emitter{declared: map[string]string{}}

	e.p("%s\n\n", Header)
	e.p("package %s\n\n", pkgName)
	if len(imps) > 0 {
		e.p("import (\n")
		for _, imp := range dedupImports(imps) {
			if imp.Name != "" {
				e.p("\t%s %s\n", imp.Name, strconv.Quote(imp.Path))
			} else {
				e.p("\t%s\n", strconv.Quote(imp.Path))
			}
		}
		e.p(")\n\n")
	}

	for _, ds := range sets {
		for _, d := range ds.Decls {
			var err error
			switch d.Enum.Kind {
			case record.KindFieldName:
				err = e.nameEnum(d)
			case record.KindFieldType:
				err = e.typeEnum(d)
			default:
				err = fmt.Errorf("unknown kind %d", int(d.Enum.Kind))
			}
			if err != nil {
				return nil, fmt.Errorf("failed to render %s: %w", d.Enum.Name, err)
			}
		}
	}

	if debug.Render() {
		debug.Logf("%s", numbered(e.buf.Bytes()))
	}
	out, err := imports.Process(filename, e.buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, numbered(e.buf.Bytes()))
	}
	return out, nil
}

func dedupImports(imps []ImportSpec) []ImportSpec {
	seen := map[ImportSpec]bool{}
	var res []ImportSpec
	for _, imp := range imps {
		if seen[imp] {
			continue
		}
		seen[imp] = true
		res = append(res, imp)
	}
	return res
}

func numbered(src []byte) string {
	lines := strings.Split(string(src), "\n")
	var b strings.Builder
	for i, l := range lines {
		fmt.Fprintf(&b, "%4d %s\n", i+1, l)
	}
	return b.String()
}

type emitter struct {
	buf bytes.Buffer
	// declared maps generated package level identifiers to the enum that
	// declared them.
	declared map[string]string
}

func (e *emitter) p(format string, args ...any) {
	fmt.Fprintf(&e.buf, format, args...)
}

func (e *emitter) declare(owner string, names ...string) error {
	for _, n := range names {
		prev, ok := e.declared[n]
		switch {
		case ok && prev == owner:
			return fmt.Errorf("identifier %s is generated twice for %s", n, owner)
		case ok:
			return fmt.Errorf("identifier %s is generated for both %s and %s", n, prev, owner)
		}
		e.declared[n] = owner
	}
	return nil
}

// nameEnum prints the name enumeration: an int type with one constant per
// variant, its forward and reverse lookups, the all-variants array and the
// by-reference conversion.
func (e *emitter) nameEnum(d *fieldenum.Decl) error {
	en := d.Enum
	ref, ok := d.Converter(fieldenum.ShapeByReference)
	if !ok {
		return fmt.Errorf("missing %s converter", fieldenum.ShapeByReference)
	}
	lookup, ok := d.Converter(fieldenum.ShapeNameLookup)
	if !ok {
		return fmt.Errorf("missing %s converter", fieldenum.ShapeNameLookup)
	}
	all := en.Name + "s"

	names := []string{en.Name, all, ref.Func, lookup.Func}
	for _, v := range en.Variants {
		names = append(names, en.Qualified(v))
	}
	if en.Derives.Has(fieldenum.DeriveVariantCount) {
		names = append(names, en.Name+"VariantCount")
	}
	if err := e.declare(en.Name, names...); err != nil {
		return err
	}

	arr := fmt.Sprintf("[%d]%s", en.Len(), en.Name)

	e.p("// %s names the fields of %s.\n", en.Name, en.Record)
	e.p("type %s int\n\n", en.Name)
	e.p("const (\n")
	for i, v := range en.Variants {
		if i == 0 {
			e.p("\t%s %s = iota\n", en.Qualified(v), en.Name)
		} else {
			e.p("\t%s\n", en.Qualified(v))
		}
	}
	e.p(")\n\n")
	e.variantCount(en)

	e.p("// Name returns the name of the field n stands for.\n")
	e.p("func (n %s) Name() string {\n", en.Name)
	e.p("\tswitch n {\n")
	for _, v := range en.Variants {
		e.p("\tcase %s:\n\t\treturn %s\n", en.Qualified(v), strconv.Quote(v.Name()))
	}
	e.p("\t}\n")
	e.p("\treturn %s + strconv.Itoa(int(n)) + \")\"\n", strconv.Quote(en.Name+"("))
	e.p("}\n\n")

	e.p("// %s returns every %s in field declaration order.\n", all, en.Name)
	e.p("func %s() %s {\n", all, arr)
	e.variantArray(arr, ref.Fields, func(m fieldenum.Mapping) string {
		return en.Name + m.Tag
	})
	e.p("}\n\n")

	e.p("// %s returns the %s whose Name is name.\n", lookup.Func, en.Name)
	e.p("func %s(name string) (%s, bool) {\n", lookup.Func, en.Name)
	e.p("\tfor _, n := range %s() {\n", all)
	e.p("\t\tif n.Name() == name {\n\t\t\treturn n, true\n\t\t}\n")
	e.p("\t}\n\treturn 0, false\n}\n\n")

	e.p("// %s returns the names of the fields of the %s behind the given pointer.\n", ref.Func, en.Record)
	e.p("func %s%s(_ %s) %s {\n", ref.Func, ref.Generics.Decl(), ref.RefParam, arr)
	e.variantArray(arr, ref.Fields, func(m fieldenum.Mapping) string {
		return en.Name + m.Tag
	})
	e.p("}\n\n")

	if en.Derives.Has(fieldenum.DeriveDebug) {
		e.p("func (n %s) String() string {\n\treturn n.Name()\n}\n\n", en.Name)
	}
	if en.Derives.Equality() {
		e.p("// Equal reports whether n and o name the same field.\n")
		e.p("func (n %s) Equal(o %s) bool {\n\treturn n == o\n}\n\n", en.Name, en.Name)
	}
	if en.Derives.Has(fieldenum.DeriveClone) {
		e.p("func (n %s) Clone() %s {\n\treturn n\n}\n\n", en.Name, en.Name)
	}
	if en.Derives.Has(fieldenum.DeriveText) {
		e.p("func (n %s) MarshalText() ([]byte, error) {\n", en.Name)
		e.p("\tif _, ok := %s(n.Name()); !ok {\n", lookup.Func)
		e.p("\t\treturn nil, fmt.Errorf(\"invalid %s %%d\", int(n))\n\t}\n", en.Name)
		e.p("\treturn []byte(n.Name()), nil\n}\n\n")
		e.p("func (n *%s) UnmarshalText(text []byte) error {\n", en.Name)
		e.p("\tv, ok := %s(string(text))\n", lookup.Func)
		e.p("\tif !ok {\n\t\treturn fmt.Errorf(\"unknown %s %%q\", text)\n\t}\n", en.Name)
		e.p("\t*n = v\n\treturn nil\n}\n\n")
	}
	if en.Derives.Has(fieldenum.DeriveJSON) {
		e.p("func (n %s) MarshalJSON() ([]byte, error) {\n", en.Name)
		e.p("\tif _, ok := %s(n.Name()); !ok {\n", lookup.Func)
		e.p("\t\treturn nil, fmt.Errorf(\"invalid %s %%d\", int(n))\n\t}\n", en.Name)
		e.p("\treturn json.Marshal(n.Name())\n}\n\n")
		e.p("func (n *%s) UnmarshalJSON(data []byte) error {\n", en.Name)
		e.p("\tvar s string\n")
		e.p("\tif err := json.Unmarshal(data, &s); err != nil {\n\t\treturn err\n\t}\n")
		e.p("\tv, ok := %s(s)\n", lookup.Func)
		e.p("\tif !ok {\n\t\treturn fmt.Errorf(\"unknown %s %%q\", s)\n\t}\n", en.Name)
		e.p("\t*n = v\n\treturn nil\n}\n\n")
	}
	return nil
}

// typeEnum prints the typed-variant enumeration: a sealed interface, one
// struct per variant and the by-value conversion.
func (e *emitter) typeEnum(d *fieldenum.Decl) error {
	en := d.Enum
	decl, args := en.Generics.Decl(), en.Generics.Args()
	iface := en.Name + args
	// The marker takes the type parameters: instantiations must not share a
	// method set.
	marker := "is" + en.Name + "(" + strings.Join(en.Generics.Names(), ", ") + ")"

	names := []string{en.Name}
	for _, v := range en.Variants {
		names = append(names, en.Qualified(v))
	}
	if en.Derives.Has(fieldenum.DeriveVariantCount) {
		names = append(names, en.Name+"VariantCount")
	}
	from, hasFrom := d.Converter(fieldenum.ShapeFromTarget)
	into, hasInto := d.Converter(fieldenum.ShapeIntoMethod)
	switch {
	case hasFrom:
		names = append(names, from.Func)
	case !hasInto:
		return fmt.Errorf("missing by-value converter")
	}
	if err := e.declare(en.Name, names...); err != nil {
		return err
	}

	e.p("// %s holds the value of one field of %s.\n", en.Name, en.Record)
	e.p("type %s%s interface {\n", en.Name, decl)
	e.p("\t%s\n", marker)
	e.p("\t// Name returns the name of the field the value was taken from.\n")
	e.p("\tName() string\n")
	if en.Derives.Has(fieldenum.DeriveDebug) {
		e.p("\tString() string\n")
	}
	if en.Derives.Equality() {
		e.p("\tEqual(%s) bool\n", iface)
	}
	if en.Derives.Has(fieldenum.DeriveClone) {
		e.p("\tClone() %s\n", iface)
	}
	e.p("}\n\n")
	e.variantCount(en)

	for _, v := range en.Variants {
		vt := en.Qualified(v) + args
		e.p("// %s holds the value of %s.%s.\n", en.Qualified(v), en.Record, v.Field)
		e.p("type %s%s struct {\n\tValue %s\n}\n\n", en.Qualified(v), decl, v.Payload)
		e.p("func (%s) %s {}\n\n", vt, marker)
		e.p("func (%s) Name() string {\n\treturn %s\n}\n\n", vt, strconv.Quote(v.Name()))
		if en.Derives.Has(fieldenum.DeriveDebug) {
			e.p("func (v %s) String() string {\n", vt)
			e.p("\treturn fmt.Sprintf(%s, v.Value)\n}\n\n", strconv.Quote(v.Tag+"(%v)"))
		}
		if en.Derives.Equality() {
			e.p("func (v %s) Equal(o %s) bool {\n", vt, iface)
			e.p("\tw, ok := o.(%s)\n", vt)
			e.p("\treturn ok && v.Value == w.Value\n}\n\n")
		}
		if en.Derives.Has(fieldenum.DeriveClone) {
			e.p("func (v %s) Clone() %s {\n\treturn v\n}\n\n", vt, iface)
		}
	}

	if hasFrom {
		arr := fmt.Sprintf("[%d]%s", from.Len, en.Name)
		e.p("// %s converts src into one %s per field.\n", from.Func, en.Name)
		e.p("func %s(src %s) %s {\n", from.Func, from.Record, arr)
		e.variantArray(arr, from.Fields, func(m fieldenum.Mapping) string {
			return fmt.Sprintf("%s%s{Value: src.%s}", en.Name, m.Tag, m.Field)
		})
		e.p("}\n\n")
		e.p("// %s converts s into one %s per field.\n", from.Method, en.Name)
		e.p("func (s %s) %s() %s {\n\treturn %s(s)\n}\n\n", from.Record, from.Method, arr, from.Func)
		return nil
	}

	arr := fmt.Sprintf("[%d]%s", into.Len, iface)
	e.p("// %s converts s into one %s per field.\n", into.Method, en.Name)
	e.p("func (s %s%s) %s() %s {\n", into.Record, into.RecordGenerics.Args(), into.Method, arr)
	e.variantArray(arr, into.Fields, func(m fieldenum.Mapping) string {
		return fmt.Sprintf("%s%s%s{Value: s.%s}", en.Name, m.Tag, args, m.Field)
	})
	e.p("}\n\n")
	return nil
}

func (e *emitter) variantArray(arr string, fields []fieldenum.Mapping, elem func(fieldenum.Mapping) string) {
	e.p("\treturn %s{\n", arr)
	for _, m := range fields {
		e.p("\t\t%s,\n", elem(m))
	}
	e.p("\t}\n")
}

func (e *emitter) variantCount(en *fieldenum.Enum) {
	if !en.Derives.Has(fieldenum.DeriveVariantCount) {
		return
	}
	e.p("// %sVariantCount is the number of %s variants.\n", en.Name, en.Name)
	e.p("const %sVariantCount = %d\n\n", en.Name, en.Len())
}
