// Package fieldenum turns a record schema into the declarations of its two
// field enumerations.
//
// For a record
//
//	type Test struct {
//		first        int
//		second_field *string
//		third        bool // skipped
//	}
//
// the name enumeration TestFieldName has the unit variants First and
// SecondField, and the typed-variant enumeration TestFieldType has the
// variants First(int) and SecondField(*string). Generation runs in four
// steps, each a plain function over the previous step's output:
//
//   - directive resolution (package directive)
//   - FilterFields, which drops skipped and unnamed fields and names tags
//   - Assemble, which builds an Enum
//   - Synthesize, which describes the conversion routines as Converters
//
// Generate and GenerateAll run the steps in order. They have no side
// effects and either return a complete result or a *GenerateError.
//
// # Related Packages
//
//   - github.com/signadot/fieldenum/record - Input model
//   - github.com/signadot/fieldenum/codegen - Go source parsing and printing
package fieldenum
