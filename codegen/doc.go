// Package codegen connects field enum generation to Go source.
//
// It finds struct types carrying a //fieldenum:derive directive, reduces
// them to record schemas, runs github.com/signadot/fieldenum/fieldenum on
// them and prints the result as a single *_fieldenum.go file per package.
//
// # Related Packages
//
//   - github.com/signadot/fieldenum/fieldenum - Generation
//   - github.com/signadot/fieldenum/directive - Directive syntax
package codegen
