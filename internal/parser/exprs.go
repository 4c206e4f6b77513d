package parser

import (
	"errors"

	"github.com/gint-lang/gint-lang/internal/ast"
)

// The three binary precedence levels share one shape: parse a single
// operand at the next tighter level, then fold zero-or-more
// (operator, operand) pairs left to right into a left-leaning tree.
// Lowest to highest binding: equality < additive < multiplicative.

type opEntry struct {
	lexeme string
	op     ast.BinOp
}

var (
	equalityOps       = []opEntry{{"==", ast.BinOpEq}, {"!=", ast.BinOpNotEq}}
	additiveOps       = []opEntry{{"+", ast.BinOpAdd}, {"-", ast.BinOpSub}}
	multiplicativeOps = []opEntry{{"*", ast.BinOpMul}, {"/", ast.BinOpDiv}, {"%", ast.BinOpRem}}
)

func (p *Parser) equality(c cursor, depth int) (cursor, ast.Expr, error) {
	return p.binary(c, depth, equalityOps, (*Parser).additive)
}

func (p *Parser) additive(c cursor, depth int) (cursor, ast.Expr, error) {
	return p.binary(c, depth, additiveOps, (*Parser).multiplicative)
}

func (p *Parser) multiplicative(c cursor, depth int) (cursor, ast.Expr, error) {
	return p.binary(c, depth, multiplicativeOps, (*Parser).factor)
}

// binary implements one precedence level. An operator that is not
// followed by a valid operand is not consumed: the fold stops and the
// operator is left for the caller, matching zero-or-more semantics.
// The one failure the fold may not stop on is the nesting bound, which
// must surface to the caller rather than be absorbed.
func (p *Parser) binary(c cursor, depth int, ops []opEntry, next func(*Parser, cursor, int) (cursor, ast.Expr, error)) (cursor, ast.Expr, error) {
	c, left, err := next(p, c, depth)
	if err != nil {
		return c, nil, err
	}

	for {
		op, oc, ok := matchOp(c.skipWS(), ops)
		if !ok {
			return c, left, nil
		}
		rc, right, err := next(p, oc, depth)
		if err != nil {
			if errors.Is(err, errTooDeep) {
				return c, nil, err
			}
			return c, left, nil
		}
		left = ast.NewInfixExpr(op, left, right)
		c = rc
	}
}

func matchOp(c cursor, ops []opEntry) (ast.BinOp, cursor, bool) {
	for _, e := range ops {
		if rest, ok := c.lit(e.lexeme); ok {
			return e.op, rest, true
		}
	}
	return 0, c, false
}

// factor parses an atom and folds zero-or-more trailing conjugate
// marks onto it. The natural grammar for conjugation is left-recursive
// (a factor followed by its own trailing mark); folding over the marks
// with an accumulator removes the recursion. Zero marks is a valid
// match, so no separate bare-atom alternative is needed.
func (p *Parser) factor(c cursor, depth int) (cursor, ast.Expr, error) {
	if err := p.checkDepth(c, depth); err != nil {
		return c, nil, err
	}
	c = c.skipWS()
	c, expr, err := p.atom(c, depth)
	if err != nil {
		return c, nil, err
	}
	c = c.skipWS()
	for {
		rest, ok := c.lit("^")
		if !ok {
			break
		}
		expr = ast.NewUnaryExpr(ast.UnOpConj, expr)
		c = rest
	}
	return c.skipWS(), expr, nil
}
