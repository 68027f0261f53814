package directive

import (
	"fmt"

	"github.com/signadot/fieldenum/record"
)

// Prefix starts every directive comment, as in `//fieldenum:field_name(skip)`.
const Prefix = "fieldenum:"

// DeriveSuffix is appended to a recognized name to form its derive-list
// override name, e.g. field_types_derive.
const DeriveSuffix = "_derive"

// Names is the configurable set of recognized attribute names: one family
// name applying to both generated kinds and one name per kind.
type Names struct {
	Family    string `yaml:"family"`
	FieldName string `yaml:"fieldName"`
	FieldType string `yaml:"fieldType"`
}

// DefaultNames returns field_types, field_name and field_type.
func DefaultNames() Names {
	return Names{
		Family:    "field_types",
		FieldName: "field_name",
		FieldType: "field_type",
	}
}

func (n Names) kindName(k record.Kind) string {
	switch k {
	case record.KindFieldName:
		return n.FieldName
	case record.KindFieldType:
		return n.FieldType
	}
	return ""
}

// SkipNames returns the attribute names which may mark a field skipped for
// kind k: the family name then the kind name.
func (n Names) SkipNames(k record.Kind) []string {
	return []string{n.Family, n.kindName(k)}
}

// DeriveNames returns the candidate derive-list override names for kind k:
// the family name then the kind name, both with DeriveSuffix.
func (n Names) DeriveNames(k record.Kind) []string {
	return []string{n.Family + DeriveSuffix, n.kindName(k) + DeriveSuffix}
}

// Validate checks that every name is set and the three names are distinct.
func (n Names) Validate() error {
	seen := map[string]string{}
	for _, x := range []struct{ role, name string }{
		{"family", n.Family},
		{"field name", n.FieldName},
		{"field type", n.FieldType},
	} {
		if x.name == "" {
			return fmt.Errorf("%s directive name is empty", x.role)
		}
		if !isIdent(x.name) {
			return fmt.Errorf("%s directive name %q is not an identifier", x.role, x.name)
		}
		if other, ok := seen[x.name]; ok {
			return fmt.Errorf("%s and %s directives share the name %q", other, x.role, x.name)
		}
		seen[x.name] = x.role
	}
	return nil
}
