package parser

import (
	"github.com/koddsson/lox-interpreter/internal/ast"
	"github.com/koddsson/lox-interpreter/internal/token"
)

// expression → assignment
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment → IDENTIFIER "=" assignment | logic_or
//
// The left side is parsed as an or-expression first; only once a "="
// follows do we check it was actually a Variable. This lets `a = b = c`
// parse right-associatively without a dedicated lookahead. The "=" is
// never consumed as part of a non-Variable left side.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}, nil
		}
		return nil, p.errorAt(equals, "Invalid assignment target.")
	}

	return expr, nil
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}

	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}
