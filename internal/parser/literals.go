package parser

import (
	"strconv"
	"strings"

	"github.com/gint-lang/gint-lang/internal/ast"
	"github.com/gint-lang/gint-lang/internal/gaussian"
)

// digitRun scans one-or-more ASCII digits, where each digit may be
// followed by grouping underscores. The matched text keeps the
// underscores; conversion strips them.
func digitRun(c cursor) (cursor, string, bool) {
	if !isDigit(c.peek()) {
		return c, "", false
	}
	start := c.off
	for isDigit(c.peek()) {
		c = c.advance(1)
		for c.peek() == '_' {
			c = c.advance(1)
		}
	}
	return c, c.src[start:c.off], true
}

// convertDigits strips grouping underscores and converts the run to a
// signed 64-bit integer. Overflow fails the enclosing literal
// alternative like any other mismatch.
func convertDigits(text string) (int64, error) {
	return strconv.ParseInt(strings.ReplaceAll(text, "_", ""), 10, 64)
}

// literal parses a numeric literal. The imaginary form is tried first:
// the integer form would otherwise succeed on the digit prefix of "5i"
// and strand the trailing 'i' in the surrounding grammar.
func (p *Parser) literal(c cursor) (cursor, ast.Expr, error) {
	if rc, expr, err := p.imaginary(c); err == nil {
		return rc, expr, nil
	}
	return p.integer(c)
}

// integer parses a digit run as the literal (n, 0).
func (p *Parser) integer(c cursor) (cursor, ast.Expr, error) {
	rc, text, ok := digitRun(c)
	if !ok {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected integer literal"}
	}
	n, err := convertDigits(text)
	if err != nil {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "integer literal out of range"}
	}
	return rc, ast.NewValue(gaussian.New(n, 0)), nil
}

// imaginary parses an optional digit run immediately followed by 'i'.
// A bare "i" is the unit imaginary (0, 1); with digits the result is
// (0, n).
func (p *Parser) imaginary(c cursor) (cursor, ast.Expr, error) {
	rc, text, ok := digitRun(c)
	if !ok {
		rc, text = c, ""
	}
	rc, ok = rc.lit("i")
	if !ok {
		return c, nil, &SyntaxError{Pos: rc.pos(), Message: "expected imaginary literal"}
	}
	if text == "" {
		return rc, ast.NewValue(gaussian.New(0, 1)), nil
	}
	n, err := convertDigits(text)
	if err != nil {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "imaginary literal out of range"}
	}
	return rc, ast.NewValue(gaussian.New(0, n)), nil
}

// identifier scans a name: a letter or underscore, then letters,
// digits, underscores or primes. A name equal to a reserved word fails
// the whole alternative, which is what lets keyword-led forms match
// instead.
func (p *Parser) identifier(c cursor) (cursor, ast.Expr, error) {
	ch := c.peek()
	if !isLetter(ch) && ch != '_' {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected identifier"}
	}
	rc := c.advance(1)
	for {
		ch = rc.peek()
		if isLetter(ch) || isDigit(ch) || ch == '_' || ch == '\'' {
			rc = rc.advance(1)
			continue
		}
		break
	}
	name := c.src[c.off:rc.off]
	if reservedWords[name] {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "reserved word " + strconv.Quote(name)}
	}
	return rc, ast.NewIdent(name), nil
}
