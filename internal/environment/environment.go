// Package environment implements the chained variable scopes Lox programs
// evaluate against: a mapping from name to Value, paired with an optional
// enclosing scope that Get and Assign walk when a name isn't found locally.
package environment

import "github.com/koddsson/lox-interpreter/internal/value"

// Environment is a mapping from variable name to Value, paired with an
// optional enclosing Environment forming a lookup chain. The global
// environment has a nil enclosing pointer.
type Environment struct {
	values    map[string]value.Value
	enclosing *Environment
}

// New creates an Environment nested inside enclosing (nil for the global
// scope).
func New(enclosing *Environment) *Environment {
	return &Environment{
		values:    make(map[string]value.Value),
		enclosing: enclosing,
	}
}

// Define binds name to v in this environment, shadowing any binding of the
// same name in an enclosing environment. Redeclaring a name in the same
// environment simply overwrites it.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up name starting in this environment and walking outward through
// enclosing scopes, innermost first. It reports false if no environment in
// the chain defines name (Variable evaluation fails
// unless some enclosing environment contains the name).
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, false
}

// Assign updates name in the nearest environment of the chain that already
// defines it. It does not create a new binding; this is
// the normative behavior, resolving the two divergent implementations the
// source exhibited. It reports false if no environment in the chain defines
// name.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, v)
	}
	return false
}
