package ast

import "strings"

// The String methods render a node back to source text that re-parses
// to an equivalent tree. Compound forms print fully parenthesized, so
// associativity and precedence survive the round trip; parentheses are
// transparent to the grammar and add no nodes of their own.

func (e *Value) String() string {
	return e.Val.String()
}

func (e *Ident) String() string {
	return e.Name
}

func (e *InfixExpr) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(e.Left.String())
	b.WriteString(" ")
	b.WriteString(e.Op.String())
	b.WriteString(" ")
	b.WriteString(e.Right.String())
	b.WriteString(")")
	return b.String()
}

func (e *UnaryExpr) String() string {
	switch e.Op {
	case UnOpConj:
		// A negated operand must be grouped: -5^ would re-parse with
		// the conjugate mark binding to the atom, not the negation.
		if u, ok := e.Operand.(*UnaryExpr); ok && u.Op == UnOpNeg {
			return "(" + u.String() + ")^"
		}
		return e.Operand.String() + "^"
	case UnOpAbs:
		return "|" + e.Operand.String() + "|"
	default:
		return "-" + e.Operand.String()
	}
}

func (e *CondExpr) String() string {
	var b strings.Builder
	b.WriteString("(if ")
	b.WriteString(e.Cond.String())
	b.WriteString(" then ")
	b.WriteString(e.Then.String())
	b.WriteString(" else ")
	b.WriteString(e.Else.String())
	b.WriteString(")")
	return b.String()
}
