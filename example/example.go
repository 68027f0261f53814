// Package example holds records annotated for fieldenum and the code
// generated for them.
package example

//go:generate go run github.com/signadot/fieldenum/cmd/fieldenum

// Test is a record with two retained fields.
//
//fieldenum:derive(FieldName, FieldType)
//fieldenum:field_name_derive(Debug, PartialEq, Eq, Clone, Copy, VariantCount, Text, JSON)
type Test struct {
	first        int
	second_field *string
	//fieldenum:field_types(skip)
	third  bool
	fourth bool `field_types:"skip"`
}

// NewTest returns a Test with every field set.
func NewTest(first int, second *string) Test {
	return Test{first: first, second_field: second, third: true, fourth: true}
}

// TestGen is generic over its first field.
//
//fieldenum:derive(FieldName, FieldType)
//fieldenum:field_type_derive(Debug, Clone)
type TestGen[T any] struct {
	first        T
	second_field *string
}

// NewTestGen returns a TestGen with every field set.
func NewTestGen[T any](first T, second *string) TestGen[T] {
	return TestGen[T]{first: first, second_field: second}
}
