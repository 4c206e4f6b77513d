package ast

import "github.com/gint-lang/gint-lang/internal/gaussian"

// Expr represents an expression node. The tree handed out by the parser
// is strictly owned: every subtree has exactly one parent and nodes are
// never mutated after construction.
type Expr interface {
	// String renders the node as parseable source text (see print.go).
	String() string
	exprNode()
}

// BinOp identifies a binary operator.
type BinOp int

const (
	BinOpAdd BinOp = iota
	BinOpSub
	BinOpMul
	BinOpDiv
	BinOpRem
	BinOpEq
	BinOpNotEq
)

// String returns the operator's source lexeme.
func (op BinOp) String() string {
	switch op {
	case BinOpAdd:
		return "+"
	case BinOpSub:
		return "-"
	case BinOpMul:
		return "*"
	case BinOpDiv:
		return "/"
	case BinOpRem:
		return "%"
	case BinOpEq:
		return "=="
	case BinOpNotEq:
		return "!="
	default:
		return "?"
	}
}

// UnOp identifies a unary operator.
type UnOp int

const (
	// UnOpNeg is prefix negation: -z.
	UnOpNeg UnOp = iota
	// UnOpConj is postfix complex conjugation: z^.
	UnOpConj
	// UnOpAbs is the modulus form: |z|.
	UnOpAbs
)

// String returns the operator's source lexeme.
func (op UnOp) String() string {
	switch op {
	case UnOpNeg:
		return "-"
	case UnOpConj:
		return "^"
	case UnOpAbs:
		return "|"
	default:
		return "?"
	}
}

// Value represents a Gaussian-integer literal. The parser only ever
// constructs the forms (n, 0), (0, n) and (0, 1).
type Value struct {
	Val gaussian.Int
}

// NewValue constructs a literal node.
func NewValue(v gaussian.Int) *Value {
	return &Value{Val: v}
}

// exprNode marks Value as an expression.
func (*Value) exprNode() {}

// Ident represents a variable reference. Name is never empty and never
// a reserved word.
type Ident struct {
	Name string
}

// NewIdent constructs an identifier node.
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// InfixExpr represents a binary expression.
type InfixExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// NewInfixExpr constructs a binary expression node.
func NewInfixExpr(op BinOp, left, right Expr) *InfixExpr {
	return &InfixExpr{
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// exprNode marks InfixExpr as an expression.
func (*InfixExpr) exprNode() {}

// UnaryExpr represents a unary expression: prefix negation, postfix
// conjugation, or the |…| modulus form.
type UnaryExpr struct {
	Op      UnOp
	Operand Expr
}

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op UnOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{
		Op:      op,
		Operand: operand,
	}
}

// exprNode marks UnaryExpr as an expression.
func (*UnaryExpr) exprNode() {}

// CondExpr represents a conditional: if Cond then Then else Else.
type CondExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// NewCondExpr constructs a conditional node.
func NewCondExpr(cond, then, els Expr) *CondExpr {
	return &CondExpr{
		Cond: cond,
		Then: then,
		Else: els,
	}
}

// exprNode marks CondExpr as an expression.
func (*CondExpr) exprNode() {}
