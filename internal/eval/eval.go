// Package eval walks the expression AST and computes Gaussian-integer
// values. There is no boolean type: comparisons yield 1 or 0, and
// conditionals treat any nonzero value as true.
package eval

import (
	"errors"
	"fmt"

	"github.com/gint-lang/gint-lang/internal/ast"
	"github.com/gint-lang/gint-lang/internal/gaussian"
)

// ErrUnbound reports an identifier with no binding in the environment.
var ErrUnbound = errors.New("unbound identifier")

// Eval evaluates expr in env. Only the taken branch of a conditional is
// evaluated.
func Eval(expr ast.Expr, env *Env) (gaussian.Int, error) {
	switch e := expr.(type) {
	case *ast.Value:
		return e.Val, nil
	case *ast.Ident:
		v, ok := env.Lookup(e.Name)
		if !ok {
			return gaussian.Int{}, fmt.Errorf("%w: %s", ErrUnbound, e.Name)
		}
		return v, nil
	case *ast.UnaryExpr:
		return evalUnary(e, env)
	case *ast.InfixExpr:
		return evalInfix(e, env)
	case *ast.CondExpr:
		cond, err := Eval(e.Cond, env)
		if err != nil {
			return gaussian.Int{}, err
		}
		if cond.IsZero() {
			return Eval(e.Else, env)
		}
		return Eval(e.Then, env)
	default:
		return gaussian.Int{}, fmt.Errorf("unsupported expression %T", expr)
	}
}

func evalUnary(e *ast.UnaryExpr, env *Env) (gaussian.Int, error) {
	v, err := Eval(e.Operand, env)
	if err != nil {
		return gaussian.Int{}, err
	}
	switch e.Op {
	case ast.UnOpNeg:
		return v.Neg(), nil
	case ast.UnOpConj:
		return v.Conj(), nil
	case ast.UnOpAbs:
		// The magnitude of a Gaussian integer is rarely integral, so
		// |z| computes the norm Re²+Im².
		return gaussian.New(v.Norm(), 0), nil
	default:
		return gaussian.Int{}, fmt.Errorf("unsupported unary operator %q", e.Op)
	}
}

func evalInfix(e *ast.InfixExpr, env *Env) (gaussian.Int, error) {
	left, err := Eval(e.Left, env)
	if err != nil {
		return gaussian.Int{}, err
	}
	right, err := Eval(e.Right, env)
	if err != nil {
		return gaussian.Int{}, err
	}

	switch e.Op {
	case ast.BinOpAdd:
		return left.Add(right), nil
	case ast.BinOpSub:
		return left.Sub(right), nil
	case ast.BinOpMul:
		return left.Mul(right), nil
	case ast.BinOpDiv:
		q, err := left.Quo(right)
		if err != nil {
			return gaussian.Int{}, fmt.Errorf("%s / %s: %w", left, right, err)
		}
		return q, nil
	case ast.BinOpRem:
		r, err := left.Rem(right)
		if err != nil {
			return gaussian.Int{}, fmt.Errorf("%s %% %s: %w", left, right, err)
		}
		return r, nil
	case ast.BinOpEq:
		return boolInt(left.Equal(right)), nil
	case ast.BinOpNotEq:
		return boolInt(!left.Equal(right)), nil
	default:
		return gaussian.Int{}, fmt.Errorf("unsupported operator %q", e.Op)
	}
}

func boolInt(b bool) gaussian.Int {
	if b {
		return gaussian.New(1, 0)
	}
	return gaussian.Int{}
}
