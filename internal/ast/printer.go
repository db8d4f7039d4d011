package ast

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// indentSize is the number of spaces added per nesting level.
const indentSize = 2

// Printer renders a statement tree as nested, indented lines, one node per
// line.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Print renders every statement in stmts and returns the accumulated text.
func Print(stmts []Stmt) string {
	p := &Printer{}
	for _, s := range stmts {
		p.printStmt(s)
	}
	return p.buf.String()
}

func (p *Printer) writeLine(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) printStmt(s Stmt) {
	switch s := s.(type) {
	case *ExpressionStmt:
		p.writeLine("Expression")
		p.nested(func() { p.printExpr(s.Expr) })
	case *PrintStmt:
		p.writeLine("Print")
		p.nested(func() { p.printExpr(s.Expr) })
	case *VarStmt:
		p.writeLine("Var %s", s.Name.Lexeme)
		if s.Initializer != nil {
			p.nested(func() { p.printExpr(s.Initializer) })
		}
	case *Block:
		p.writeLine("Block")
		p.nested(func() {
			for _, inner := range s.Statements {
				p.printStmt(inner)
			}
		})
	case *If:
		p.writeLine("If")
		p.nested(func() { p.printExpr(s.Condition) })
		p.writeLine("Then")
		p.nested(func() { p.printStmt(s.Then) })
		if s.Else != nil {
			p.writeLine("Else")
			p.nested(func() { p.printStmt(s.Else) })
		}
	case *While:
		p.writeLine("While")
		p.nested(func() { p.printExpr(s.Condition) })
		p.nested(func() { p.printStmt(s.Body) })
	default:
		p.writeLine("<unknown statement %T>", s)
	}
}

func (p *Printer) printExpr(e Expr) {
	switch e := e.(type) {
	case *Literal:
		p.writeLine("Literal %v", e.Value)
	case *Unary:
		p.writeLine("Unary %s", e.Op.Lexeme)
		p.nested(func() { p.printExpr(e.Operand) })
	case *Binary:
		p.writeLine("Binary %s", e.Op.Lexeme)
		p.nested(func() {
			p.printExpr(e.Left)
			p.printExpr(e.Right)
		})
	case *Logical:
		p.writeLine("Logical %s", e.Op.Lexeme)
		p.nested(func() {
			p.printExpr(e.Left)
			p.printExpr(e.Right)
		})
	case *Grouping:
		p.writeLine("Grouping")
		p.nested(func() { p.printExpr(e.Inner) })
	case *Variable:
		p.writeLine("Variable %s", e.Name.Lexeme)
	case *Assign:
		p.writeLine("Assign %s", e.Name.Lexeme)
		p.nested(func() { p.printExpr(e.Value) })
	default:
		p.writeLine("<unknown expression %T>", e)
	}
}

// Dump deep-prints a statement tree with github.com/davecgh/go-spew, used by
// the CLI's --debug flag where the structured Printer output above is too
// terse to diagnose a parser bug (e.g. it shows field names, slice lengths,
// and pointer identity that Printer intentionally omits).
func Dump(stmts []Stmt) string {
	return spew.Sdump(stmts)
}
