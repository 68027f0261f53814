package fieldenum

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/signadot/fieldenum/directive"
	"github.com/signadot/fieldenum/record"
)

// FilterFields returns the fields of s that are kept for generation, in
// declaration order, each with its variant tag.
//
// A field is dropped when the skip test over skipNames says so or when it
// has no accessible name. The skip test runs first, so a malformed
// directive on an embedded field is still reported.
func FilterFields(s *record.Schema, skipNames []string) ([]record.RetainedField, error) {
	if s.Shape != record.ShapeStruct {
		if s.ShapeDesc != "" {
			return nil, fmt.Errorf("%w, %s is %s", ErrNotStruct, s.Name, s.ShapeDesc)
		}
		return nil, ErrNotStruct
	}

	var res []record.RetainedField
	tags := map[string]string{}
	for i := range s.Fields {
		f := &s.Fields[i]
		skip, err := directive.IsSkip(f.Attrs, skipNames)
		if err != nil {
			if f.Name != "" {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}
			return nil, fmt.Errorf("embedded field %s: %w", f.Type, err)
		}
		if skip || !f.Accessible() {
			continue
		}
		tag := TagName(f.Name)
		if tag == "" || !token.IsIdentifier("_"+tag) {
			return nil, fmt.Errorf("field %s: %w", f.Name, ErrInvalidTag)
		}
		if prev, ok := tags[tag]; ok {
			return nil, fmt.Errorf("%w %s for fields %s and %s", ErrDuplicateTag, tag, prev, f.Name)
		}
		tags[tag] = f.Name
		res = append(res, record.RetainedField{
			Name: f.Name,
			Type: f.Type,
			Tag:  tag,
		})
	}
	if len(res) == 0 {
		return nil, ErrEmpty
	}
	return res, nil
}

// TagName maps a field name to its variant tag: second_field becomes
// SecondField, first becomes First and größe becomes Größe.
//
// Words are separated by underscores. ASCII words go through strcase;
// others get their first letter upper cased and are otherwise kept.
func TagName(field string) string {
	var b strings.Builder
	for _, word := range strings.Split(field, "_") {
		if word == "" {
			continue
		}
		if isASCII(word) {
			b.WriteString(strcase.ToCamel(word))
			continue
		}
		r, n := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[n:])
	}
	return b.String()
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
