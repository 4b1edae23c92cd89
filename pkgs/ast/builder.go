package ast

// Builders for constructing trees in tests and tools. Nodes built here carry
// a zero Token; compare them with cmpopts.IgnoreTypes(lexer.Token{}).

// Int creates an integer literal
func Int(v int64) *IntegerLiteral {
	return &IntegerLiteral{Value: v}
}

// Float creates a float literal
func Float(v float64) *FloatLiteral {
	return &FloatLiteral{Value: v}
}

// Bool creates a boolean literal
func Bool(v bool) *BooleanLiteral {
	return &BooleanLiteral{Value: v}
}

// Str creates a string literal from its unquoted contents
func Str(v string) *StringLiteral {
	return &StringLiteral{Value: v}
}

// Char creates a character literal
func Char(v byte) *CharLiteral {
	return &CharLiteral{Value: v}
}

// Nil creates the nil literal
func Nil() *NilLiteral {
	return &NilLiteral{}
}

// Bin creates a binary expression: LEFT OP RIGHT
func Bin(op BinaryOp, left, right Node) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right}
}

// Un creates a prefix expression: OP OPERAND
func Un(op UnaryOp, operand Node) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand}
}

// Id creates a bare identifier reference
func Id(name string) *Invocation {
	return &Invocation{Name: name}
}

// Call creates an invocation with arguments: NAME(ARGS...)
func Call(name string, args ...Node) *Invocation {
	return &Invocation{Name: name, Args: args}
}

// Let creates a variable declaration. A nil value becomes the nil literal,
// matching what the parser produces for `let x`.
func Let(name string, value Node) *VarDecl {
	if value == nil {
		value = Nil()
	}
	return &VarDecl{Name: name, Value: value}
}

// Blk creates a statement block
func Blk(statements ...Node) *Block {
	return &Block{Statements: statements}
}

// Arm creates one conditional branch
func Arm(cond Node, body ...Node) Branch {
	return Branch{Cond: cond, Body: Blk(body...)}
}

// If creates a conditional from its branches, without else
func If(branches ...Branch) *Conditional {
	return &Conditional{Branches: branches}
}

// IfElse creates a conditional with an else block
func IfElse(elseBody *Block, branches ...Branch) *Conditional {
	return &Conditional{Branches: branches, Else: elseBody}
}

// Func creates a function definition
func Func(name string, params []string, body ...Node) *FuncDef {
	return &FuncDef{Name: name, Params: params, Body: Blk(body...)}
}

// Ret creates a return statement. Pass nil for a bare return.
func Ret(value Node) *Return {
	return &Return{Value: value}
}
