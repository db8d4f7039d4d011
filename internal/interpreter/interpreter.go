// Package interpreter walks a statement AST against a chained Environment,
// producing side effects (printing) and a value per statement. Evaluation
// stops at the first error, returned as an ordinary Go error since this
// language has no user-facing error-handling construct to preserve.
package interpreter

import (
	"fmt"
	"io"

	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/environment"
	"github.com/koddsson/lox-interpreter/internal/value"
)

// RuntimeError is any error the evaluator raises while executing a
// statement, other than division by zero (which gets its own sentinel so a
// caller can distinguish it without string comparison).
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// ErrDivisionByZero is returned when a Slash binary expression's right
// operand evaluates to 0.0. It is a single *RuntimeError sentinel value, so a
// caller tells it apart from every other runtime error by identity; both map
// to exit code 70.
var ErrDivisionByZero = &RuntimeError{Message: "Tried dividing by zero!"}

// Interpreter walks a statement AST. Globals is the root of the environment
// chain; Stdout is where Print statements write their display form.
type Interpreter struct {
	Globals *environment.Environment
	Stdout  io.Writer

	env *environment.Environment
}

// New creates an Interpreter with a fresh global environment.
func New(stdout io.Writer) *Interpreter {
	globals := environment.New(nil)
	return &Interpreter{Globals: globals, Stdout: stdout, env: globals}
}

// Interpret executes stmts in order against the interpreter's current
// environment, returning one Value per statement. It stops and returns the
// first error encountered (a RuntimeError halts
// interpretation; nothing after it runs).
func (in *Interpreter) Interpret(stmts []ast.Stmt) ([]value.Value, error) {
	results := make([]value.Value, 0, len(stmts))
	for _, s := range stmts {
		v, err := in.execute(s)
		if err != nil {
			return results, err
		}
		results = append(results, v)
	}
	return results, nil
}

func runtimeErrorf(format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...)}
}
