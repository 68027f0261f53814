package fieldenum

import (
	"slices"

	"github.com/signadot/fieldenum/directive"
	"github.com/signadot/fieldenum/record"
)

// Option configures generation.
type Option func(*config)

type config struct {
	names    directive.Names
	defaults map[record.Kind][]string
}

func newConfig(opts []Option) *config {
	cfg := &config{names: directive.DefaultNames()}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// WithNames sets the recognized directive names.
func WithNames(names directive.Names) Option {
	return func(c *config) {
		c.names = names
	}
}

// WithDefaultDerives replaces the built-in derive list used for kind k when
// a record carries no override.
func WithDefaultDerives(k record.Kind, derives []string) Option {
	return func(c *config) {
		if c.defaults == nil {
			c.defaults = map[record.Kind][]string{}
		}
		c.defaults[k] = slices.Clone(derives)
	}
}

func (c *config) derives(s *record.Schema, k record.Kind) DeriveList {
	defaults, ok := c.defaults[k]
	if !ok {
		defaults = directive.DefaultDerives(k)
	}
	return directive.ResolveDerives(s.Attrs, c.names, k, defaults)
}

// Decl is everything generated for one record and kind.
type Decl struct {
	Enum       *Enum
	Converters []Converter
	Retained   []record.RetainedField
}

// Converter returns the first converter of shape sh.
func (d *Decl) Converter(sh ConverterShape) (*Converter, bool) {
	for i := range d.Converters {
		if d.Converters[i].Shape == sh {
			return &d.Converters[i], true
		}
	}
	return nil, false
}

// DeclSet is everything generated for one record.
type DeclSet struct {
	Record *record.Schema
	Decls  []*Decl
}

// Decl returns the declaration of kind k, if generated.
func (ds *DeclSet) Decl(k record.Kind) (*Decl, bool) {
	for _, d := range ds.Decls {
		if d.Enum.Kind == k {
			return d, true
		}
	}
	return nil, false
}

// Generate runs the whole pipeline for kind k of s. Any failure is returned
// as a *GenerateError and nothing is produced.
func Generate(s *record.Schema, k record.Kind, opts ...Option) (*Decl, error) {
	return newConfig(opts).generate(s, k)
}

func (c *config) generate(s *record.Schema, k record.Kind) (*Decl, error) {
	retained, err := FilterFields(s, c.names.SkipNames(k))
	if err != nil {
		return nil, genError(s, k, err)
	}
	derives := c.derives(s, k)
	if err := derives.validate(k); err != nil {
		return nil, genError(s, k, err)
	}
	e := Assemble(s, k, retained, derives)
	convs, err := Synthesize(s, e, retained)
	if err != nil {
		return nil, genError(s, k, err)
	}
	return &Decl{Enum: e, Converters: convs, Retained: retained}, nil
}

// GenerateAll generates every kind in kinds for s, in the order given. It
// is all-or-nothing: the first failure is returned and no DeclSet is.
func GenerateAll(s *record.Schema, kinds []record.Kind, opts ...Option) (*DeclSet, error) {
	c := newConfig(opts)
	ds := &DeclSet{Record: s}
	for _, k := range kinds {
		d, err := c.generate(s, k)
		if err != nil {
			return nil, err
		}
		ds.Decls = append(ds.Decls, d)
	}
	return ds, nil
}
