package printer

import (
	"bytes"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/nitro-lang/nitro/pkgs/ast"
)

// YAML dumps n as a YAML document. Every node becomes a mapping with a
// `node` kind, its position and its fields; missing children are null.
func YAML(n ast.Node) ([]byte, error) {
	b := &yamlBuilder{}
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{b.build(n)}}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// yamlBuilder is a visitor; each Visit leaves its mapping in out
type yamlBuilder struct {
	out *yaml.Node
}

func (b *yamlBuilder) build(n ast.Node) *yaml.Node {
	if ast.IsNil(n) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	n.Accept(b)
	return b.out
}

func (b *yamlBuilder) buildAll(nodes []ast.Node) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		seq.Content = append(seq.Content, b.build(n))
	}
	return seq
}

// mapping starts a node mapping with its kind and source position
func mapping(kind string, n ast.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	addField(m, "node", str(kind))
	addField(m, "pos", str(n.Token().Position()))
	return m
}

func addField(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, str(key), value)
}

func str(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func scalar(tag, v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v}
}

func (b *yamlBuilder) VisitInteger(n *ast.IntegerLiteral) {
	m := mapping("integer", n)
	addField(m, "value", scalar("!!int", strconv.FormatInt(n.Value, 10)))
	b.out = m
}

func (b *yamlBuilder) VisitFloat(n *ast.FloatLiteral) {
	m := mapping("float", n)
	addField(m, "value", scalar("!!float", strconv.FormatFloat(n.Value, 'g', -1, 64)))
	b.out = m
}

func (b *yamlBuilder) VisitBoolean(n *ast.BooleanLiteral) {
	m := mapping("boolean", n)
	addField(m, "value", scalar("!!bool", strconv.FormatBool(n.Value)))
	b.out = m
}

func (b *yamlBuilder) VisitString(n *ast.StringLiteral) {
	m := mapping("string", n)
	addField(m, "value", str(n.Value))
	b.out = m
}

func (b *yamlBuilder) VisitChar(n *ast.CharLiteral) {
	m := mapping("char", n)
	addField(m, "value", str(string(n.Value)))
	b.out = m
}

func (b *yamlBuilder) VisitNil(n *ast.NilLiteral) {
	b.out = mapping("nil", n)
}

func (b *yamlBuilder) VisitBinary(n *ast.BinaryExpr) {
	m := mapping("binary", n)
	addField(m, "op", str(n.Op.String()))
	addField(m, "left", b.build(n.Left))
	addField(m, "right", b.build(n.Right))
	b.out = m
}

func (b *yamlBuilder) VisitUnary(n *ast.UnaryExpr) {
	m := mapping("unary", n)
	addField(m, "op", str(n.Op.String()))
	addField(m, "operand", b.build(n.Operand))
	b.out = m
}

func (b *yamlBuilder) VisitVarDecl(n *ast.VarDecl) {
	m := mapping("let", n)
	addField(m, "name", str(n.Name))
	addField(m, "value", b.build(n.Value))
	b.out = m
}

func (b *yamlBuilder) VisitInvocation(n *ast.Invocation) {
	m := mapping("invocation", n)
	addField(m, "name", str(n.Name))
	if len(n.Args) > 0 {
		addField(m, "args", b.buildAll(n.Args))
	}
	b.out = m
}

func (b *yamlBuilder) VisitBlock(n *ast.Block) {
	m := mapping("block", n)
	addField(m, "statements", b.buildAll(n.Statements))
	b.out = m
}

func (b *yamlBuilder) VisitConditional(n *ast.Conditional) {
	m := mapping("if", n)

	branches := &yaml.Node{Kind: yaml.SequenceNode}
	for _, br := range n.Branches {
		arm := &yaml.Node{Kind: yaml.MappingNode}
		addField(arm, "cond", b.build(br.Cond))
		addField(arm, "body", b.build(br.Body))
		branches.Content = append(branches.Content, arm)
	}
	addField(m, "branches", branches)

	if n.Else != nil {
		addField(m, "else", b.build(n.Else))
	}
	b.out = m
}

func (b *yamlBuilder) VisitFuncDef(n *ast.FuncDef) {
	m := mapping("func", n)
	addField(m, "name", str(n.Name))

	params := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, name := range n.Params {
		params.Content = append(params.Content, str(name))
	}
	addField(m, "params", params)
	addField(m, "body", b.build(n.Body))
	b.out = m
}

func (b *yamlBuilder) VisitReturn(n *ast.Return) {
	m := mapping("return", n)
	addField(m, "value", b.build(n.Value))
	b.out = m
}
