package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nitro-lang/nitro/pkgs/lexer"
)

// Node represents any node in the AST. The set of nodes is closed: only
// types in this package implement it.
type Node interface {
	// Token returns the token the node was built from, for diagnostics
	Token() lexer.Token
	// Accept dispatches to the Visitor method for the concrete node type
	Accept(v Visitor)
	// String renders the node as a compact s-expression
	String() string

	node()
}

// UnaryOp is a prefix operator
type UnaryOp int

const (
	Identity UnaryOp = iota // +x
	Negate                  // -x
	Not                     // !x
	BitwiseNot              // ~x
)

var unaryOpNames = [...]string{
	Identity:   "Identity",
	Negate:     "Negate",
	Not:        "Not",
	BitwiseNot: "BitwiseNot",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) && op >= 0 {
		return unaryOpNames[op]
	}
	return fmt.Sprintf("UnaryOp(%d)", int(op))
}

// BinaryOp is an infix operator
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mult
	Div
	Pow
	LShift
	RShift
	Greater
	GreaterEqual
	Less
	LessEqual
	Equal
	NotEqual
	BitwiseAnd
	BitwiseOr
	BitwiseXor
	And
	Or
)

var binaryOpNames = [...]string{
	Add:          "Add",
	Sub:          "Sub",
	Mult:         "Mult",
	Div:          "Div",
	Pow:          "Pow",
	LShift:       "LShift",
	RShift:       "RShift",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Equal:        "Equal",
	NotEqual:     "NotEqual",
	BitwiseAnd:   "BitwiseAnd",
	BitwiseOr:    "BitwiseOr",
	BitwiseXor:   "BitwiseXor",
	And:          "And",
	Or:           "Or",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) && op >= 0 {
		return binaryOpNames[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// Literals

// IntegerLiteral is a base-10 integer constant
type IntegerLiteral struct {
	Value int64
	Tok   lexer.Token
}

// FloatLiteral is a decimal floating point constant
type FloatLiteral struct {
	Value float64
	Tok   lexer.Token
}

// BooleanLiteral is true or false
type BooleanLiteral struct {
	Value bool
	Tok   lexer.Token
}

// StringLiteral holds the text between the quotes with escapes left as written
type StringLiteral struct {
	Value string
	Tok   lexer.Token
}

// CharLiteral is a single byte between single quotes
type CharLiteral struct {
	Value byte
	Tok   lexer.Token
}

// NilLiteral is the nil constant, also used for a let without initializer
type NilLiteral struct {
	Tok lexer.Token
}

// Expressions

// UnaryExpr applies a prefix operator to one operand
type UnaryExpr struct {
	Op      UnaryOp
	Operand Node
	Tok     lexer.Token
}

// BinaryExpr applies an infix operator to two operands
type BinaryExpr struct {
	Op    BinaryOp
	Left  Node
	Right Node
	Tok   lexer.Token
}

// Invocation names a variable or calls a function. A bare identifier is an
// invocation with no arguments.
type Invocation struct {
	Name string
	Args []Node
	Tok  lexer.Token
}

// Statements

// VarDecl is `let NAME [= expr]`. Value is a *NilLiteral when omitted.
type VarDecl struct {
	Name  string
	Value Node
	Tok   lexer.Token
}

// Block is an ordered statement sequence, also the root of a parse
type Block struct {
	Statements []Node
	Tok        lexer.Token
}

// Branch is one guarded arm of a Conditional
type Branch struct {
	Cond Node
	Body *Block
}

// Conditional is an if with any number of else-if arms and an optional else
type Conditional struct {
	Branches []Branch
	Else     *Block // nil when absent
	Tok      lexer.Token
}

// FuncDef is a named function with positional parameters
type FuncDef struct {
	Name   string
	Params []string
	Body   *Block
	Tok    lexer.Token
}

// Return exits a function. Value is nil for a bare return.
type Return struct {
	Value Node
	Tok   lexer.Token
}

func (*IntegerLiteral) node() {}
func (*FloatLiteral) node()   {}
func (*BooleanLiteral) node() {}
func (*StringLiteral) node()  {}
func (*CharLiteral) node()    {}
func (*NilLiteral) node()     {}
func (*UnaryExpr) node()      {}
func (*BinaryExpr) node()     {}
func (*Invocation) node()     {}
func (*VarDecl) node()        {}
func (*Block) node()          {}
func (*Conditional) node()    {}
func (*FuncDef) node()        {}
func (*Return) node()         {}

func (n *IntegerLiteral) Token() lexer.Token { return n.Tok }
func (n *FloatLiteral) Token() lexer.Token   { return n.Tok }
func (n *BooleanLiteral) Token() lexer.Token { return n.Tok }
func (n *StringLiteral) Token() lexer.Token  { return n.Tok }
func (n *CharLiteral) Token() lexer.Token    { return n.Tok }
func (n *NilLiteral) Token() lexer.Token     { return n.Tok }
func (n *UnaryExpr) Token() lexer.Token      { return n.Tok }
func (n *BinaryExpr) Token() lexer.Token     { return n.Tok }
func (n *Invocation) Token() lexer.Token     { return n.Tok }
func (n *VarDecl) Token() lexer.Token        { return n.Tok }
func (n *Block) Token() lexer.Token          { return n.Tok }
func (n *Conditional) Token() lexer.Token    { return n.Tok }
func (n *FuncDef) Token() lexer.Token        { return n.Tok }
func (n *Return) Token() lexer.Token         { return n.Tok }

func (n *IntegerLiteral) String() string { return strconv.FormatInt(n.Value, 10) }
func (n *FloatLiteral) String() string   { return strconv.FormatFloat(n.Value, 'g', -1, 64) }
func (n *BooleanLiteral) String() string { return strconv.FormatBool(n.Value) }
func (n *StringLiteral) String() string  { return `"` + n.Value + `"` }
func (n *CharLiteral) String() string    { return "'" + string(n.Value) + "'" }
func (n *NilLiteral) String() string     { return "nil" }

func (n *UnaryExpr) String() string {
	return fmt.Sprintf("%s(%s)", n.Op, nodeString(n.Operand))
}

func (n *BinaryExpr) String() string {
	return fmt.Sprintf("%s(%s, %s)", n.Op, nodeString(n.Left), nodeString(n.Right))
}

func (n *Invocation) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	return fmt.Sprintf("%s(%s)", n.Name, joinNodes(n.Args, ", "))
}

func (n *VarDecl) String() string {
	return fmt.Sprintf("Let(%s, %s)", n.Name, nodeString(n.Value))
}

func (n *Block) String() string {
	return "{" + joinNodes(n.Statements, "; ") + "}"
}

func (n *Conditional) String() string {
	var parts []string
	for _, branch := range n.Branches {
		parts = append(parts, fmt.Sprintf("%s -> %s", nodeString(branch.Cond), nodeString(branch.Body)))
	}
	if n.Else != nil {
		parts = append(parts, "else -> "+n.Else.String())
	}
	return "If(" + strings.Join(parts, ", ") + ")"
}

func (n *FuncDef) String() string {
	return fmt.Sprintf("Func(%s(%s), %s)", n.Name, strings.Join(n.Params, ", "), nodeString(n.Body))
}

func (n *Return) String() string {
	if n.Value == nil {
		return "Return()"
	}
	return fmt.Sprintf("Return(%s)", nodeString(n.Value))
}

// nodeString renders a possibly missing child. Parse errors can leave
// typed-nil children behind, so both nil forms are checked.
func nodeString(n Node) string {
	if IsNil(n) {
		return "<nil>"
	}
	return n.String()
}

func joinNodes(nodes []Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = nodeString(n)
	}
	return strings.Join(parts, sep)
}

// IsNil reports whether n is nil or a typed nil node pointer
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *FuncDef:
		return v == nil
	case *Conditional:
		return v == nil
	}
	return false
}
