package analyze

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrMalformedTypeExpr is returned for type expressions that cannot be parsed.
var ErrMalformedTypeExpr = errors.New("malformed type expression")

// TypeExpr is a parsed, unresolved type expression such as
// "java.util.Map<K, ? extends List<V>>[]".
type TypeExpr struct {
	Name     string      // Dotted name; empty for wildcards
	Args     []*TypeExpr // Type arguments
	Dims     int         // Number of trailing "[]"
	Wildcard bool        // True for "?" arguments
	Bound    *TypeExpr   // Wildcard bound, if any
	Super    bool        // True when Bound is a "super" bound
}

// String reconstructs the canonical text of the expression.
func (e *TypeExpr) String() string {
	var sb strings.Builder

	if e.Wildcard {
		sb.WriteString("?")

		if e.Bound != nil {
			if e.Super {
				sb.WriteString(" super ")
			} else {
				sb.WriteString(" extends ")
			}

			sb.WriteString(e.Bound.String())
		}

		return sb.String()
	}

	sb.WriteString(e.Name)

	if len(e.Args) > 0 {
		sb.WriteString("<")

		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(a.String())
		}

		sb.WriteString(">")
	}

	sb.WriteString(strings.Repeat("[]", e.Dims))

	return sb.String()
}

// IsQualified returns true if the name contains a package qualifier.
func (e *TypeExpr) IsQualified() bool {
	return strings.Contains(e.Name, ".")
}

// ParseTypeExpr parses a type expression.
func ParseTypeExpr(s string) (*TypeExpr, error) {
	p := &exprParser{src: s}

	p.next()

	expr, err := p.parseType(false)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrMalformedTypeExpr, s, err)
	}

	if p.tok != "" {
		return nil, fmt.Errorf("%w %q: unexpected %q", ErrMalformedTypeExpr, s, p.tok)
	}

	return expr, nil
}

type exprParser struct {
	src string
	pos int
	tok string
}

// next advances to the next token: an identifier, one of "<>,[]?", or "" at end.
func (p *exprParser) next() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}

	if p.pos >= len(p.src) {
		p.tok = ""
		return
	}

	r, size := utf8.DecodeRuneInString(p.src[p.pos:])
	if strings.ContainsRune("<>,[]?", r) {
		p.tok = p.src[p.pos : p.pos+size]
		p.pos += size

		return
	}

	start := p.pos
	for p.pos < len(p.src) {
		r, n := utf8.DecodeRuneInString(p.src[p.pos:])
		if r == utf8.RuneError || !isIdentRune(r) {
			break
		}

		p.pos += n
	}

	if start == p.pos {
		// Unknown character or invalid UTF-8: surface it as its own token so
		// the caller fails.
		p.pos += size
	}

	p.tok = p.src[start:p.pos]
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '.'
}

// checkName requires every dot-separated segment to be a non-empty identifier.
func checkName(name string) error {
	for seg := range strings.SplitSeq(name, ".") {
		r, _ := utf8.DecodeRuneInString(seg)
		if seg == "" || !(unicode.IsLetter(r) || r == '_' || r == '$') {
			return fmt.Errorf("expected type name, found %q", name)
		}
	}

	return nil
}

func (p *exprParser) expect(tok string) error {
	if p.tok != tok {
		return fmt.Errorf("expected %q, found %q", tok, p.tok)
	}

	p.next()

	return nil
}

func (p *exprParser) parseType(allowWildcard bool) (*TypeExpr, error) {
	if p.tok == "?" {
		if !allowWildcard {
			return nil, errors.New("wildcard outside of type arguments")
		}

		return p.parseWildcard()
	}

	if err := checkName(p.tok); err != nil {
		return nil, err
	}

	expr := &TypeExpr{Name: p.tok}
	p.next()

	if p.tok == "<" {
		p.next()

		for {
			arg, err := p.parseType(true)
			if err != nil {
				return nil, err
			}

			expr.Args = append(expr.Args, arg)

			if p.tok != "," {
				break
			}

			p.next()
		}

		if err := p.expect(">"); err != nil {
			return nil, err
		}
	}

	for p.tok == "[" {
		p.next()

		if err := p.expect("]"); err != nil {
			return nil, err
		}

		expr.Dims++
	}

	return expr, nil
}

func (p *exprParser) parseWildcard() (*TypeExpr, error) {
	p.next()

	expr := &TypeExpr{Wildcard: true}

	switch p.tok {
	case "extends", "super":
		expr.Super = p.tok == "super"
		p.next()

		bound, err := p.parseType(false)
		if err != nil {
			return nil, err
		}

		expr.Bound = bound
	}

	return expr, nil
}
