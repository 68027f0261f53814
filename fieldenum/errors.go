package fieldenum

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/signadot/fieldenum/record"
)

var (
	// ErrNotStruct is returned for records that are not structs.
	ErrNotStruct = errors.New("can only be derived for structures")
	// ErrEmpty is returned when every field was filtered out.
	ErrEmpty = errors.New("can only be derived for non-empty structures")
	// ErrDuplicateTag is returned when two retained fields map to the same tag.
	ErrDuplicateTag = errors.New("duplicate variant tag")
	// ErrInvalidTag is returned when a field name maps to no usable tag,
	// e.g. a name made only of underscores.
	ErrInvalidTag = errors.New("field name yields no variant tag")
	// ErrIncoherentConverter is returned for a by-value conversion declared
	// against the target array of a generic record.
	ErrIncoherentConverter = errors.New("conversion into the array type cannot be declared for a generic record")
	// ErrUnknownDerive is returned for derive names the generator cannot honor.
	ErrUnknownDerive = errors.New("unsupported derive")
)

// GenerateError reports a fatal condition for one record and kind.
type GenerateError struct {
	Record string
	Kind   record.Kind
	Pos    token.Position
	Err    error
}

func (e *GenerateError) Error() string {
	msg := fmt.Sprintf("%s for %s: %v", e.Kind, e.Record, e.Err)
	if e.Pos.IsValid() {
		return e.Pos.String() + ": " + msg
	}
	return msg
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}

func genError(s *record.Schema, k record.Kind, err error) error {
	return &GenerateError{Record: s.Name, Kind: k, Pos: s.Pos, Err: err}
}
