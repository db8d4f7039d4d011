package parser

import (
	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/token"
)

// forStmt → "for" "(" ( varDecl | exprStmt | ";" )
//                    expression? ";"
//                    expression? ")" statement
//
// There is no For node in the AST: this is the parser's one non-1-to-1
// transformation. It rewrites directly to
//
//	initializer? ; While(condition, Block([ body, Expression(increment) ]))
//
// where the inner Block is built only when an increment is present (without
// one, body is the While's body as-is), and the whole is wrapped in a
// top-level Block when an initializer is present, so the
// evaluator carries no special case for `for` at all.
//
// The "for" keyword itself is already consumed by statement's match call.
func (p *Parser) forStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer, err = p.varDecl()
	default:
		initializer, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(token.RightParen) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expr: increment}}}
	}

	if condition == nil {
		condition = &ast.Literal{Value: true}
	}
	body = &ast.While{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.Block{Statements: []ast.Stmt{initializer, body}}
	}

	return body, nil
}
