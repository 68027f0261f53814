package fieldenum

import (
	"fmt"
	"slices"

	"github.com/signadot/fieldenum/record"
)

// Derive names understood by the generator.
const (
	// DeriveDebug adds a String method.
	DeriveDebug = "Debug"
	// DerivePartialEq and DeriveEq add an Equal method.
	DerivePartialEq = "PartialEq"
	DeriveEq        = "Eq"
	// DeriveClone adds a Clone method.
	DeriveClone = "Clone"
	// DeriveCopy is accepted for compatibility; Go values are always copyable.
	DeriveCopy = "Copy"
	// DeriveVariantCount adds a <Enum>VariantCount constant.
	DeriveVariantCount = "VariantCount"
	// DeriveText adds MarshalText and UnmarshalText to a name enum.
	DeriveText = "Text"
	// DeriveJSON adds MarshalJSON and UnmarshalJSON to a name enum.
	DeriveJSON = "JSON"
)

var deriveKinds = map[string][]record.Kind{
	DeriveDebug:        record.Kinds,
	DerivePartialEq:    record.Kinds,
	DeriveEq:           record.Kinds,
	DeriveClone:        record.Kinds,
	DeriveCopy:         record.Kinds,
	DeriveVariantCount: record.Kinds,
	DeriveText:         {record.KindFieldName},
	DeriveJSON:         {record.KindFieldName},
}

// DeriveList is the resolved list of derive names attached to an enum.
type DeriveList []string

// Has reports whether name is in d.
func (d DeriveList) Has(name string) bool {
	return slices.Contains(d, name)
}

// Equality reports whether d asks for an Equal method.
func (d DeriveList) Equality() bool {
	return d.Has(DerivePartialEq) || d.Has(DeriveEq)
}

func (d DeriveList) validate(k record.Kind) error {
	for _, name := range d {
		kinds, ok := deriveKinds[name]
		if !ok {
			return fmt.Errorf("%w %q", ErrUnknownDerive, name)
		}
		if !slices.Contains(kinds, k) {
			return fmt.Errorf("%w %q for %s", ErrUnknownDerive, name, k)
		}
	}
	return nil
}
