package directive

import "fmt"

// Error reports a recognized directive carrying a payload it cannot have.
type Error struct {
	Attr  string // directive name, e.g. "field_name"
	Value string // offending value, "" when there is none
	Msg   string
}

func (e *Error) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("directive %s: unknown attribute value `%s`, %s", e.Attr, e.Value, e.Msg)
	}
	return fmt.Sprintf("directive %s: %s", e.Attr, e.Msg)
}

// SyntaxError reports a directive comment or struct tag that cannot be parsed.
type SyntaxError struct {
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed directive %q: %v", e.Text, e.Err)
	}
	return fmt.Sprintf("malformed directive %q", e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
