package interpreter

import (
	"fmt"

	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/environment"
	"github.com/koddsson/lox-interpreter/internal/value"
)

// execute dispatches a single statement to its evaluation rule. Every
// statement produces a Value primarily so tests can observe per-statement
// results; user-visible output only comes from Print and from error
// messages.
func (in *Interpreter) execute(s ast.Stmt) (value.Value, error) {
	switch s := s.(type) {
	case *ast.ExpressionStmt:
		return in.eval(s.Expr)

	case *ast.PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.Stdout, v.Display())
		return value.Nil{}, nil

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = in.eval(s.Initializer)
			if err != nil {
				return nil, err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return value.Nil{}, nil

	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.env))

	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return nil, err
		}
		if value.Truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return value.Nil{}, nil

	case *ast.While:
		var result value.Value = value.Nil{}
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return nil, err
			}
			if !value.Truthy(cond) {
				return result, nil
			}
			result, err = in.execute(s.Body)
			if err != nil {
				return nil, err
			}
		}

	default:
		return nil, runtimeErrorf("unknown statement type %T", s)
	}
}

// executeBlock runs stmts against a fresh nested environment, restoring the
// interpreter's previous environment on every exit path — normal or error —
// so a block's scope is never visible outside it.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, block *environment.Environment) (value.Value, error) {
	previous := in.env
	in.env = block
	defer func() { in.env = previous }()

	var result value.Value = value.Nil{}
	for _, s := range stmts {
		v, err := in.execute(s)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}
