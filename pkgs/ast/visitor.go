package ast

// Visitor has one method per node type. Accept on a node calls the
// matching method; visitors recurse into children by calling Accept on them.
type Visitor interface {
	VisitInteger(n *IntegerLiteral)
	VisitFloat(n *FloatLiteral)
	VisitBoolean(n *BooleanLiteral)
	VisitString(n *StringLiteral)
	VisitChar(n *CharLiteral)
	VisitNil(n *NilLiteral)
	VisitBinary(n *BinaryExpr)
	VisitUnary(n *UnaryExpr)
	VisitVarDecl(n *VarDecl)
	VisitInvocation(n *Invocation)
	VisitBlock(n *Block)
	VisitConditional(n *Conditional)
	VisitFuncDef(n *FuncDef)
	VisitReturn(n *Return)
}

func (n *IntegerLiteral) Accept(v Visitor) { v.VisitInteger(n) }
func (n *FloatLiteral) Accept(v Visitor)   { v.VisitFloat(n) }
func (n *BooleanLiteral) Accept(v Visitor) { v.VisitBoolean(n) }
func (n *StringLiteral) Accept(v Visitor)  { v.VisitString(n) }
func (n *CharLiteral) Accept(v Visitor)    { v.VisitChar(n) }
func (n *NilLiteral) Accept(v Visitor)     { v.VisitNil(n) }
func (n *BinaryExpr) Accept(v Visitor)     { v.VisitBinary(n) }
func (n *UnaryExpr) Accept(v Visitor)      { v.VisitUnary(n) }
func (n *VarDecl) Accept(v Visitor)        { v.VisitVarDecl(n) }
func (n *Invocation) Accept(v Visitor)     { v.VisitInvocation(n) }
func (n *Block) Accept(v Visitor)          { v.VisitBlock(n) }
func (n *Conditional) Accept(v Visitor)    { v.VisitConditional(n) }
func (n *FuncDef) Accept(v Visitor)        { v.VisitFuncDef(n) }
func (n *Return) Accept(v Visitor)         { v.VisitReturn(n) }
