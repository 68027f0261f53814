package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/signadot/fieldenum/directive"
	"github.com/signadot/fieldenum/fieldenum"
	"github.com/signadot/fieldenum/record"
)

// FileConfig is the content of a fieldenum.yaml configuration file:
//
//	names:
//	  family: field_enums
//	output: enums_fieldenum.go
//	derives:
//	  FieldName: [Debug, Eq, Text]
//	  FieldType: [VariantCount]
//	types: [Test]
//	where: exported
//
// Every key is optional. Unset names keep their defaults.
type FileConfig struct {
	Names   directive.Names     `yaml:"names"`
	Output  string              `yaml:"output"`
	Derives map[string][]string `yaml:"derives"`
	Types   []string            `yaml:"types"`
	Where   string              `yaml:"where"`
}

// LoadConfig reads the configuration file at path. Unknown keys are an
// error.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	fc := &FileConfig{}
	if err := yaml.UnmarshalWithOptions(data, fc, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to decode config %q: %w", path, err)
	}
	return fc, nil
}

// NewCodegenConfig returns a configuration with the default names.
func NewCodegenConfig() *CodegenConfig {
	return &CodegenConfig{Names: directive.DefaultNames()}
}

// Apply merges fc into cfg. Fields already set on cfg are kept so that
// command line flags win over the file.
func (fc *FileConfig) Apply(cfg *CodegenConfig) error {
	if fc.Names.Family != "" {
		cfg.Names.Family = fc.Names.Family
	}
	if fc.Names.FieldName != "" {
		cfg.Names.FieldName = fc.Names.FieldName
	}
	if fc.Names.FieldType != "" {
		cfg.Names.FieldType = fc.Names.FieldType
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = fc.Output
	}
	if len(cfg.Types) == 0 {
		cfg.Types = fc.Types
	}
	if cfg.Where == "" {
		cfg.Where = fc.Where
	}
	for name, derives := range fc.Derives {
		k, ok := record.ParseKind(name)
		if !ok {
			return fmt.Errorf("derives: unknown enumeration %q", name)
		}
		if cfg.DefaultDerives == nil {
			cfg.DefaultDerives = map[record.Kind][]string{}
		}
		cfg.DefaultDerives[k] = derives
	}
	return cfg.Names.Validate()
}

// Options turns cfg into generation options.
func (cfg *CodegenConfig) Options() []fieldenum.Option {
	opts := []fieldenum.Option{fieldenum.WithNames(cfg.Names)}
	for _, k := range record.Kinds {
		if d, ok := cfg.DefaultDerives[k]; ok {
			opts = append(opts, fieldenum.WithDefaultDerives(k, d))
		}
	}
	return opts
}

// OutputPath returns the generated file path for pkg. A relative
// OutputFile is taken relative to the package directory.
func (cfg *CodegenConfig) OutputPath(pkg *PackageInfo) string {
	out := cfg.OutputFile
	if out == "" {
		out = pkg.Name + DefaultOutputSuffix
	}
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(pkg.Dir, out)
}
