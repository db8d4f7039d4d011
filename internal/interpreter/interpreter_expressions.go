package interpreter

import (
	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/token"
	"github.com/koddsson/lox-interpreter/internal/value"
)

// eval dispatches a single expression to its evaluation rule.
func (in *Interpreter) eval(e ast.Expr) (value.Value, error) {
	switch e := e.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Grouping:
		return in.eval(e.Inner)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		v, ok := in.env.Get(e.Name.Lexeme)
		if !ok {
			return nil, runtimeErrorf("Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if !in.env.Assign(e.Name.Lexeme, v) {
			return nil, runtimeErrorf("Undefined variable '%s'.", e.Name.Lexeme)
		}
		return v, nil

	default:
		return nil, runtimeErrorf("unknown expression type %T", e)
	}
}

// literalValue lifts a Literal node's raw Go value (nil, bool, float64, or
// string, per ast.Literal's doc comment) to the matching runtime Value.
func literalValue(v interface{}) value.Value {
	switch v := v.(type) {
	case nil:
		return value.Nil{}
	case bool:
		return value.Bool(v)
	case float64:
		return value.Number(v)
	case string:
		return value.String(v)
	default:
		return value.Nil{}
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	operand, err := in.eval(e.Operand)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Minus:
		n, ok := operand.(value.Number)
		if !ok {
			return nil, runtimeErrorf("Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return value.Bool(!value.Truthy(operand)), nil
	default:
		return nil, runtimeErrorf("unknown unary operator %s", e.Op.Lexeme)
	}
}

func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	// Short-circuit is mandatory: the right operand is only
	// evaluated when the left side doesn't already determine the result.
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
		return in.eval(e.Right)
	}

	// And
	if !value.Truthy(left) {
		return left, nil
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Minus:
		return numericBinary(left, right, func(a, b float64) float64 { return a - b })
	case token.Star:
		return numericBinary(left, right, func(a, b float64) float64 { return a * b })
	case token.Slash:
		l, r, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeErrorf("Operands must be numbers.")
		}
		if r == 0 {
			return nil, ErrDivisionByZero
		}
		return value.Number(l / r), nil

	case token.Greater:
		return comparisonBinary(left, right, func(a, b float64) bool { return a > b })
	case token.GreaterEqual:
		return comparisonBinary(left, right, func(a, b float64) bool { return a >= b })
	case token.Less:
		return comparisonBinary(left, right, func(a, b float64) bool { return a < b })
	case token.LessEqual:
		return comparisonBinary(left, right, func(a, b float64) bool { return a <= b })

	case token.Plus:
		if l, r, ok := bothNumbers(left, right); ok {
			return value.Number(l + r), nil
		}
		if l, ok := left.(value.String); ok {
			if r, ok := right.(value.String); ok {
				return l + r, nil
			}
		}
		return nil, runtimeErrorf("Runtime error in binary expression!")

	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil

	default:
		return nil, runtimeErrorf("unknown binary operator %s", e.Op.Lexeme)
	}
}

func bothNumbers(a, b value.Value) (float64, float64, bool) {
	an, ok := a.(value.Number)
	if !ok {
		return 0, 0, false
	}
	bn, ok := b.(value.Number)
	if !ok {
		return 0, 0, false
	}
	return float64(an), float64(bn), true
}

func numericBinary(a, b value.Value, op func(a, b float64) float64) (value.Value, error) {
	l, r, ok := bothNumbers(a, b)
	if !ok {
		return nil, runtimeErrorf("Operands must be numbers.")
	}
	return value.Number(op(l, r)), nil
}

func comparisonBinary(a, b value.Value, op func(a, b float64) bool) (value.Value, error) {
	l, r, ok := bothNumbers(a, b)
	if !ok {
		return nil, runtimeErrorf("Operands must be numbers.")
	}
	return value.Bool(op(l, r)), nil
}
