package record

import (
	"strconv"
	"strings"
)

// PayloadKind tags the shape of an attribute payload.
type PayloadKind int

const (
	// PayloadNone is a bare attribute: `//fieldenum:field_name`.
	PayloadNone PayloadKind = iota
	// PayloadList is a parenthesized token list: `//fieldenum:field_name(skip)`.
	PayloadList
	// PayloadNameValue is a name bound to a literal: `field_name:"skip"` in a
	// struct tag or `//fieldenum:field_name="skip"`.
	PayloadNameValue
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadNone:
		return "none"
	case PayloadList:
		return "list"
	case PayloadNameValue:
		return "name-value"
	}
	return "PayloadKind(" + strconv.Itoa(int(k)) + ")"
}

// Payload is the value carried by an Attribute. Only the field matching
// Kind is meaningful.
type Payload struct {
	Kind PayloadKind
	// Tokens holds the list entries for PayloadList, as written.
	Tokens []string
	// Literal holds the value for PayloadNameValue, as written (a quoted
	// literal keeps its quotes).
	Literal string
}

// None returns an empty payload.
func None() Payload {
	return Payload{Kind: PayloadNone}
}

// List returns a list payload of the given tokens.
func List(tokens ...string) Payload {
	return Payload{Kind: PayloadList, Tokens: tokens}
}

// NameValue returns a name-value payload with the given literal.
func NameValue(lit string) Payload {
	return Payload{Kind: PayloadNameValue, Literal: lit}
}

func (p Payload) String() string {
	switch p.Kind {
	case PayloadList:
		return "(" + strings.Join(p.Tokens, ", ") + ")"
	case PayloadNameValue:
		return "=" + p.Literal
	}
	return ""
}

// Attribute is a single directive attached to a field or to a record.
type Attribute struct {
	Name    string
	Payload Payload
}

func (a Attribute) String() string {
	return a.Name + a.Payload.String()
}
