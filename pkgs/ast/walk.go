package ast

import "fmt"

// Walk traverses the tree rooted at node in depth-first pre-order.
// If fn returns false the children of that node are skipped.
// Missing children left behind by a failed parse are not visited.
func Walk(node Node, fn func(Node) bool) {
	if IsNil(node) || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *IntegerLiteral, *FloatLiteral, *BooleanLiteral, *StringLiteral, *CharLiteral, *NilLiteral:
		// Leaf nodes
	case *UnaryExpr:
		Walk(n.Operand, fn)
	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Invocation:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	case *VarDecl:
		Walk(n.Value, fn)
	case *Block:
		for _, stmt := range n.Statements {
			Walk(stmt, fn)
		}
	case *Conditional:
		for _, branch := range n.Branches {
			Walk(branch.Cond, fn)
			if branch.Body != nil {
				Walk(branch.Body, fn)
			}
		}
		if n.Else != nil {
			Walk(n.Else, fn)
		}
	case *FuncDef:
		if n.Body != nil {
			Walk(n.Body, fn)
		}
	case *Return:
		if n.Value != nil {
			Walk(n.Value, fn)
		}
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", node))
	}
}

// Count returns the number of nodes in the tree rooted at node
func Count(node Node) int {
	count := 0
	Walk(node, func(Node) bool {
		count++
		return true
	})
	return count
}

// Find returns every node in the tree for which match returns true, in pre-order
func Find(node Node, match func(Node) bool) []Node {
	var found []Node
	Walk(node, func(n Node) bool {
		if match(n) {
			found = append(found, n)
		}
		return true
	})
	return found
}
