// Package parser converts source text into the expression AST. It is a
// hand-written recursive-descent parser over a positioned cursor:
// alternatives are tried in order at the same input position and a
// failed alternative consumes nothing, so backtracking is free. Three
// structurally identical precedence levels sit above a factor rule that
// folds the postfix conjugate mark, which removes the grammar's one
// left-recursive rule.
package parser

import "github.com/gint-lang/gint-lang/internal/ast"

// reservedWords may not be used as identifiers. The tail of the list is
// reserved for future grammar growth.
var reservedWords = map[string]bool{
	"if":       true,
	"else":     true,
	"then":     true,
	"i":        true,
	"let":      true,
	"print":    true,
	"println":  true,
	"while":    true,
	"fn":       true,
	"mut":      true,
	"break":    true,
	"continue": true,
	// Reserved for future use.
	"matrix": true,
	"return": true,
	"pi":     true,
	"tau":    true,
}

const defaultMaxDepth = 512

// Option configures a Parser.
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth bounds how deeply expressions may nest. Parenthesized
// groups, conditional branches, modulus bodies and unary negations each
// count one level; the bound turns adversarially deep input into a
// positioned error instead of stack exhaustion. Zero disables the
// bound.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		o.maxDepth = n
	}
}

// Parser holds the configuration shared by a parse. Parsing itself is
// pure: the same input always yields the same result, and a Parser may
// be reused freely.
type Parser struct {
	maxDepth int
}

// New returns a parser with the provided options applied.
func New(opts ...Option) *Parser {
	cfg := options{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{maxDepth: cfg.maxDepth}
}

// Parse parses input as a single complete expression; only surrounding
// whitespace may accompany it.
func (p *Parser) Parse(input string) (ast.Expr, error) {
	c, expr, err := p.expression(newCursor(input), 0)
	if err != nil {
		return nil, err
	}
	if !c.eof() {
		return nil, &SyntaxError{Pos: c.pos(), Message: "unexpected trailing input"}
	}
	return expr, nil
}

// Expression parses one leading expression and returns the unconsumed
// remainder of the input alongside it.
func (p *Parser) Expression(input string) (ast.Expr, string, error) {
	c, expr, err := p.expression(newCursor(input), 0)
	if err != nil {
		return nil, input, err
	}
	return expr, c.rest(), nil
}

// Parse parses input as a single complete expression using a parser
// built from opts.
func Parse(input string, opts ...Option) (ast.Expr, error) {
	return New(opts...).Parse(input)
}

// Expression parses one leading expression using a parser built from
// opts and returns the unconsumed remainder.
func Expression(input string, opts ...Option) (ast.Expr, string, error) {
	return New(opts...).Expression(input)
}

// expression is the grammar entry point: surrounding whitespace around
// the equality level.
func (p *Parser) expression(c cursor, depth int) (cursor, ast.Expr, error) {
	if err := p.checkDepth(c, depth); err != nil {
		return c, nil, err
	}
	c = c.skipWS()
	c, expr, err := p.equality(c, depth)
	if err != nil {
		return c, nil, err
	}
	return c.skipWS(), expr, nil
}

func (p *Parser) checkDepth(c cursor, depth int) error {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return &SyntaxError{Pos: c.pos(), Message: errTooDeep.Error(), err: errTooDeep}
	}
	return nil
}
