package parser

import (
	"errors"

	"github.com/gint-lang/gint-lang/internal/ast"
)

// atom parses the tightest-binding syntactic forms. Alternatives are
// tried in order at the same position; a failed alternative consumes
// nothing. The order is load-bearing only in that keyword-led forms
// cannot collide with identifiers (reserved words fail the identifier
// parse) and the parenthesized form is a safe catch-all. A nesting
// bound hit inside a recursing alternative is final: trying further
// alternatives would only rediscover the same bound or mask it.
func (p *Parser) atom(c cursor, depth int) (cursor, ast.Expr, error) {
	if rc, expr, err := p.identifier(c); err == nil {
		return rc, expr, nil
	}
	if rc, expr, err := p.conditional(c, depth); err == nil || errors.Is(err, errTooDeep) {
		return rc, expr, err
	}
	if rc, expr, err := p.literal(c); err == nil {
		return rc, expr, nil
	}
	if rc, expr, err := p.modulus(c, depth); err == nil || errors.Is(err, errTooDeep) {
		return rc, expr, err
	}
	if rc, expr, err := p.negate(c, depth); err == nil || errors.Is(err, errTooDeep) {
		return rc, expr, err
	}
	if rc, expr, err := p.parens(c, depth); err == nil || errors.Is(err, errTooDeep) {
		return rc, expr, err
	}
	return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected expression"}
}

// conditional parses `if <expr> then <expr> else <expr>`. The keywords
// are matched literally; a name such as "ifx" never reaches this
// alternative because the identifier parse is tried first with maximal
// munch.
func (p *Parser) conditional(c cursor, depth int) (cursor, ast.Expr, error) {
	c2, ok := c.lit("if")
	if !ok {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected 'if'"}
	}
	c2, cond, err := p.expression(c2, depth+1)
	if err != nil {
		return c, nil, err
	}
	c2, ok = c2.lit("then")
	if !ok {
		return c, nil, &SyntaxError{Pos: c2.pos(), Message: "expected 'then'"}
	}
	c2, then, err := p.expression(c2, depth+1)
	if err != nil {
		return c, nil, err
	}
	c2, ok = c2.lit("else")
	if !ok {
		return c, nil, &SyntaxError{Pos: c2.pos(), Message: "expected 'else'"}
	}
	c2, els, err := p.expression(c2, depth+1)
	if err != nil {
		return c, nil, err
	}
	return c2, ast.NewCondExpr(cond, then, els), nil
}

// modulus parses `| <expr> |`.
func (p *Parser) modulus(c cursor, depth int) (cursor, ast.Expr, error) {
	c2, ok := c.lit("|")
	if !ok {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected '|'"}
	}
	c2, inner, err := p.expression(c2, depth+1)
	if err != nil {
		return c, nil, err
	}
	c2, ok = c2.lit("|")
	if !ok {
		return c, nil, &SyntaxError{Pos: c2.pos(), Message: "expected closing '|'"}
	}
	return c2, ast.NewUnaryExpr(ast.UnOpAbs, inner), nil
}

// negate parses a leading '-' applied to a factor, not a full
// expression, so unary minus binds tighter than any binary operator and
// chains: --5 nests two negations.
func (p *Parser) negate(c cursor, depth int) (cursor, ast.Expr, error) {
	c2, ok := c.lit("-")
	if !ok {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected '-'"}
	}
	c2, operand, err := p.factor(c2, depth+1)
	if err != nil {
		return c, nil, err
	}
	return c2, ast.NewUnaryExpr(ast.UnOpNeg, operand), nil
}

// parens parses `( <expr> )`. Parentheses group only; the inner
// expression is returned unchanged with no wrapper node.
func (p *Parser) parens(c cursor, depth int) (cursor, ast.Expr, error) {
	c2, ok := c.lit("(")
	if !ok {
		return c, nil, &SyntaxError{Pos: c.pos(), Message: "expected '('"}
	}
	c2, inner, err := p.expression(c2, depth+1)
	if err != nil {
		return c, nil, err
	}
	c2, ok = c2.lit(")")
	if !ok {
		return c, nil, &SyntaxError{Pos: c2.pos(), Message: "expected ')'"}
	}
	return c2, inner, nil
}
