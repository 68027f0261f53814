// Package directive classifies the attributes attached to records and
// fields.
//
// Directives are written as line comments with the "fieldenum:" prefix or,
// for fields, as struct tag keys:
//
//	//fieldenum:derive(FieldName, FieldType)
//	//fieldenum:field_types_derive(Debug, Eq)
//	type Test struct {
//		first int
//		//fieldenum:field_types(skip)
//		third bool
//		fourth bool `field_name:"skip"`
//	}
//
// Both skip syntaxes resolve through one classification (IsSkip); a
// recognized name with any value other than skip is an error. Derive-list
// overrides (DeriveOverride) follow declaration order: the first matching
// list wins.
package directive
