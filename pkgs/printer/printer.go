// Package printer renders Nitro syntax trees for humans: an indented block
// dump in the classic front-end layout and a YAML debug dump.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nitro-lang/nitro/pkgs/ast"
)

// Printer writes a tree as nested `Label: {` ... `}` blocks, children one
// tab deeper than their parent. Missing children print as `nullnode`.
type Printer struct {
	w     io.Writer
	depth int
	err   error // first write error, later writes are dropped
}

// New creates a printer writing to w
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print renders n and returns the first write error, if any
func (p *Printer) Print(n ast.Node) error {
	p.child(n)
	return p.err
}

// Sprint renders n into a string
func Sprint(n ast.Node) string {
	var b strings.Builder
	_ = New(&b).Print(n)
	return b.String()
}

func (p *Printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	prefix := strings.Repeat("\t", p.depth)
	_, p.err = fmt.Fprintf(p.w, prefix+format+"\n", args...)
}

// constant prints a literal block
func (p *Printer) constant(typ, value string) {
	p.line("Constant: {")
	p.line("Type: %s", typ)
	p.line("Value: %s", value)
	p.line("}")
}

// child prints n one level deeper, or nullnode at the current level
func (p *Printer) child(n ast.Node) {
	if ast.IsNil(n) {
		p.line("nullnode")
		return
	}
	n.Accept(p)
}

// section prints `label -> {`, the child one level deeper, and `}`
func (p *Printer) section(label string, n ast.Node) {
	p.line("%s -> {", label)
	p.depth++
	if ast.IsNil(n) {
		p.depth--
		p.line("nullnode")
	} else {
		n.Accept(p)
		p.depth--
	}
	p.line("}")
}

func (p *Printer) VisitInteger(n *ast.IntegerLiteral) {
	p.constant("Integer", strconv.FormatInt(n.Value, 10))
}

func (p *Printer) VisitFloat(n *ast.FloatLiteral) {
	p.constant("Float", strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (p *Printer) VisitBoolean(n *ast.BooleanLiteral) {
	if n.Value {
		p.constant("Boolean", "True")
	} else {
		p.constant("Boolean", "False")
	}
}

func (p *Printer) VisitString(n *ast.StringLiteral) {
	p.constant("String", n.Value)
}

func (p *Printer) VisitChar(n *ast.CharLiteral) {
	p.constant("Char", string(n.Value))
}

func (p *Printer) VisitNil(*ast.NilLiteral) {
	p.constant("Nil", "Nil")
}

func (p *Printer) VisitBinary(n *ast.BinaryExpr) {
	p.line("Binary Op: {")
	p.line("Type: %s", n.Op)
	p.section("Lhs", n.Left)
	p.section("Rhs", n.Right)
	p.line("}")
}

func (p *Printer) VisitUnary(n *ast.UnaryExpr) {
	p.line("Unary Op: {")
	p.line("Type: %s", n.Op)
	p.section("Branch", n.Operand)
	p.line("}")
}

func (p *Printer) VisitVarDecl(n *ast.VarDecl) {
	p.line("Variable Declaration: {")
	p.line("Name: %s", n.Name)
	p.section("Value", n.Value)
	p.line("}")
}

func (p *Printer) VisitInvocation(n *ast.Invocation) {
	p.line("Invocation: {")
	p.line("Name: %s", n.Name)
	for _, arg := range n.Args {
		p.section("Argument", arg)
	}
	p.line("}")
}

func (p *Printer) VisitBlock(n *ast.Block) {
	p.line("Statement Set: {")
	p.depth++
	for _, stmt := range n.Statements {
		p.child(stmt)
	}
	p.depth--
	p.line("}")
}

func (p *Printer) VisitConditional(n *ast.Conditional) {
	p.line("Conditional: {")
	for _, br := range n.Branches {
		p.section("Condition", br.Cond)
		p.section("Body", br.Body)
	}
	if n.Else != nil {
		p.section("Else", n.Else)
	}
	p.line("}")
}

func (p *Printer) VisitFuncDef(n *ast.FuncDef) {
	p.line("Function Definition: {")
	p.line("Name: %s", n.Name)
	p.line("Parameters: %s", strings.Join(n.Params, ", "))
	p.section("Body", n.Body)
	p.line("}")
}

func (p *Printer) VisitReturn(n *ast.Return) {
	p.line("Return: {")
	p.section("Value", n.Value)
	p.line("}")
}
