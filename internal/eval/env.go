package eval

import "github.com/gint-lang/gint-lang/internal/gaussian"

// Env holds identifier bindings for an evaluation session.
type Env struct {
	vars map[string]gaussian.Int
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{vars: make(map[string]gaussian.Int)}
}

// Define binds name to val, replacing any existing binding.
func (e *Env) Define(name string, val gaussian.Int) {
	e.vars[name] = val
}

// Lookup returns the binding for name and whether it exists.
func (e *Env) Lookup(name string) (gaussian.Int, bool) {
	v, ok := e.vars[name]
	return v, ok
}
