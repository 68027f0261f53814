package directive

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/signadot/fieldenum/record"
)

// ParseComment parses one line comment, including its leading "//".
// Comments not starting with "//fieldenum:" are not directives and yield
// ok == false. Recognized forms:
//
//	//fieldenum:name(tok, ...)   list payload
//	//fieldenum:name="literal"   name-value payload
//	//fieldenum:name             no payload
func ParseComment(text string) (attr record.Attribute, ok bool, err error) {
	body, found := strings.CutPrefix(text, "//"+Prefix)
	if !found {
		return record.Attribute{}, false, nil
	}
	attr, err = parseBody(strings.TrimSpace(body))
	if err != nil {
		return record.Attribute{}, true, &SyntaxError{Text: text, Err: err}
	}
	return attr, true, nil
}

// ParseCommentGroup returns the directives found in g in order.
func ParseCommentGroup(g *ast.CommentGroup) ([]record.Attribute, error) {
	if g == nil {
		return nil, nil
	}
	var attrs []record.Attribute
	for _, c := range g.List {
		attr, ok, err := ParseComment(c.Text)
		if err != nil {
			return nil, err
		}
		if ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs, nil
}

func parseBody(body string) (record.Attribute, error) {
	if body == "" {
		return record.Attribute{}, errors.New("missing directive name")
	}
	eq := strings.IndexByte(body, '=')
	paren := strings.IndexByte(body, '(')
	if eq >= 0 && (paren < 0 || eq < paren) {
		name := strings.TrimSpace(body[:eq])
		lit := strings.TrimSpace(body[eq+1:])
		if !isIdent(name) {
			return record.Attribute{}, fmt.Errorf("invalid directive name %q", name)
		}
		if lit == "" {
			return record.Attribute{}, fmt.Errorf("missing value for %s", name)
		}
		return record.Attribute{Name: name, Payload: record.NameValue(lit)}, nil
	}

	expr, err := parser.ParseExpr(body)
	if err != nil {
		return record.Attribute{}, err
	}
	switch x := expr.(type) {
	case *ast.Ident:
		return record.Attribute{Name: x.Name, Payload: record.None()}, nil
	case *ast.CallExpr:
		fun, ok := x.Fun.(*ast.Ident)
		if !ok {
			return record.Attribute{}, fmt.Errorf("directive name must be an identifier, got %s", types.ExprString(x.Fun))
		}
		if x.Ellipsis.IsValid() {
			return record.Attribute{}, fmt.Errorf("unexpected ... in %s", fun.Name)
		}
		var tokens []string
		for _, arg := range x.Args {
			tokens = append(tokens, types.ExprString(arg))
		}
		return record.Attribute{Name: fun.Name, Payload: record.List(tokens...)}, nil
	}
	return record.Attribute{}, fmt.Errorf("unexpected %s", types.ExprString(expr))
}

// ParseTag turns the (unquoted) content of a struct tag into name-value
// attributes, one per key, in key order. It follows the conventional
// `key:"value" key2:"value2"` syntax of reflect.StructTag.
func ParseTag(tag string) ([]record.Attribute, error) {
	var attrs []record.Attribute
	orig := tag
	for tag != "" {
		i := 0
		for i < len(tag) && tag[i] == ' ' {
			i++
		}
		tag = tag[i:]
		if tag == "" {
			break
		}

		i = 0
		for i < len(tag) && tag[i] > ' ' && tag[i] != ':' && tag[i] != '"' && tag[i] != 0x7f {
			i++
		}
		if i == 0 || i+1 >= len(tag) || tag[i] != ':' || tag[i+1] != '"' {
			return nil, &SyntaxError{Text: orig, Err: errors.New("bad struct tag syntax")}
		}
		name := tag[:i]
		tag = tag[i+1:]

		i = 1
		for i < len(tag) && tag[i] != '"' {
			if tag[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(tag) {
			return nil, &SyntaxError{Text: orig, Err: fmt.Errorf("unterminated value for %s", name)}
		}
		qvalue := tag[:i+1]
		tag = tag[i+1:]

		value, err := strconv.Unquote(qvalue)
		if err != nil {
			return nil, &SyntaxError{Text: orig, Err: err}
		}
		attrs = append(attrs, record.Attribute{Name: name, Payload: record.NameValue(value)})
	}
	return attrs, nil
}

func isIdent(s string) bool {
	return token.IsIdentifier(s)
}
