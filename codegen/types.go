package codegen

import (
	"github.com/signadot/fieldenum/directive"
	"github.com/signadot/fieldenum/record"
)

// RecordInfo holds a record parsed from Go source together with the
// enumerations requested for it.
type RecordInfo struct {
	// Schema is the record handed to generation.
	Schema *record.Schema

	// Kinds lists the requested enumerations in the order of the derive
	// directive.
	Kinds []record.Kind

	// FilePath is the path to the source file containing the record.
	FilePath string

	// Imports are the imports of the file containing the record. Field
	// types may refer to them.
	Imports []ImportSpec
}

// ImportSpec is one import declaration. Name is empty unless the import
// is renamed.
type ImportSpec struct {
	Name string
	Path string
}

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path (e.g., "github.com/user/project/models")
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "models")
	Name string

	// Files contains paths to all .go files in the package
	Files []string
}

// CodegenConfig holds configuration for code generation
type CodegenConfig struct {
	// OutputFile is the output file for generated Go code
	// (default: <package>_fieldenum.go in the package directory)
	OutputFile string

	// Names are the recognized directive names.
	Names directive.Names

	// DefaultDerives replace the built-in derive lists, keyed by kind.
	DefaultDerives map[record.Kind][]string

	// Types restricts generation to the named records when not empty.
	Types []string

	// Where is an optional boolean expression over RecordEnv selecting the
	// records to generate.
	Where string
}

// DefaultOutputSuffix names generated files: <package>_fieldenum.go.
const DefaultOutputSuffix = "_fieldenum.go"

// Header is the first line of every generated file.
const Header = "// Code generated by fieldenum. DO NOT EDIT."
