package directive

import (
	"slices"

	"github.com/signadot/fieldenum/record"
)

const skipValue = "skip"

// IsSkip reports whether attrs mark a field skipped. The first attribute
// whose name is in names decides: its payload must be skip, either as the
// first entry of a list or as a name-value literal, quoted or not. Any other
// payload under a recognized name is an *Error. Attributes with other names
// are ignored.
func IsSkip(attrs []record.Attribute, names []string) (bool, error) {
	for i := range attrs {
		attr := &attrs[i]
		if !slices.Contains(names, attr.Name) {
			continue
		}
		if err := checkSkip(attr); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func checkSkip(attr *record.Attribute) error {
	var value string
	switch attr.Payload.Kind {
	case record.PayloadList:
		if len(attr.Payload.Tokens) == 0 {
			return &Error{Attr: attr.Name, Msg: "attribute value can't be empty"}
		}
		value = attr.Payload.Tokens[0]
	case record.PayloadNameValue:
		value = attr.Payload.Literal
	default:
		return &Error{Attr: attr.Name, Msg: "unknown attribute value, only `skip` allowed"}
	}
	if value != skipValue && value != `"`+skipValue+`"` {
		return &Error{Attr: attr.Name, Value: value, Msg: "only `skip` allowed"}
	}
	return nil
}

// DeriveOverride scans attrs in declaration order and returns the tokens of
// the first list-shaped attribute named by any of names. Attributes with a
// matching name but another payload shape are passed over. Earlier
// attributes win regardless of which candidate name they carry.
func DeriveOverride(attrs []record.Attribute, names []string) ([]string, bool) {
	for i := range attrs {
		attr := &attrs[i]
		if attr.Payload.Kind != record.PayloadList {
			continue
		}
		if slices.Contains(names, attr.Name) {
			return slices.Clone(attr.Payload.Tokens), true
		}
	}
	return nil, false
}

// DefaultDerives is the derive list used when no override is present.
func DefaultDerives(k record.Kind) []string {
	if k == record.KindFieldName {
		return []string{"Debug", "PartialEq", "Eq", "Clone", "Copy"}
	}
	return nil
}

// ResolveDerives returns the override for kind k if attrs carry one, and a
// copy of defaults otherwise. The two sources are never merged.
func ResolveDerives(attrs []record.Attribute, names Names, k record.Kind, defaults []string) []string {
	if derives, ok := DeriveOverride(attrs, names.DeriveNames(k)); ok {
		return derives
	}
	return slices.Clone(defaults)
}
