// Package emit turns a translated program into its output document.
//
// The program is first lowered into a small tree of Nodes (document,
// instructions, operands) that carries exactly the attributes and text of the
// XML representation. Serializers only walk that tree, so the tree can be
// inspected, dumped and compared without producing XML.
package emit

import (
	"fmt"
	"strconv"

	"github.com/sarchlab/ipparse/core"
)

// NodeKind is the variant tag of a Node.
type NodeKind uint8

const (
	DocumentNode NodeKind = iota + 1
	InstructionNode
	OperandNode
)

func (k NodeKind) String() string {
	switch k {
	case DocumentNode:
		return "document"
	case InstructionNode:
		return "instruction"
	case OperandNode:
		return "operand"
	default:
		return fmt.Sprintf("NodeKind(%d)", uint8(k))
	}
}

// Attr is one element attribute.
type Attr struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Node is one element of the output tree.
type Node struct {
	Kind     NodeKind `yaml:"-"`
	Element  string   `yaml:"element"`
	Attrs    []Attr   `yaml:"attrs,omitempty"`
	Text     string   `yaml:"text,omitempty"`
	Children []*Node  `yaml:"children,omitempty"`
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Build lowers p into a document tree. An operand without an output type tag
// is a translator defect and yields an internal error.
func Build(p core.Program) (*Node, error) {
	doc := &Node{
		Kind:     DocumentNode,
		Element:  "program",
		Attrs:    []Attr{{Name: "language", Value: p.Language}},
		Children: make([]*Node, 0, len(p.Instructions)),
	}

	for _, inst := range p.Instructions {
		n, err := buildInstruction(inst)
		if err != nil {
			return nil, err
		}
		doc.Children = append(doc.Children, n)
	}

	return doc, nil
}

func buildInstruction(inst core.Instruction) (*Node, error) {
	if !inst.Opcode.Valid() {
		return nil, &core.Error{
			Kind: core.KindInternal,
			Line: inst.Line,
			Msg:  fmt.Sprintf("instruction %d has no opcode", inst.Order),
		}
	}

	n := &Node{
		Kind:    InstructionNode,
		Element: "instruction",
		Attrs: []Attr{
			{Name: "order", Value: strconv.Itoa(inst.Order)},
			{Name: "opcode", Value: inst.Opcode.String()},
		},
	}

	for i, arg := range inst.Args {
		tag, ok := arg.Kind.Tag()
		if !ok {
			return nil, &core.Error{
				Kind: core.KindInternal,
				Line: inst.Line,
				Msg:  fmt.Sprintf("operand %d of instruction %d has no type tag (%s)", i+1, inst.Order, arg.Kind),
			}
		}
		n.Children = append(n.Children, &Node{
			Kind:    OperandNode,
			Element: "arg" + strconv.Itoa(i+1),
			Attrs:   []Attr{{Name: "type", Value: tag}},
			Text:    arg.Canonical(),
		})
	}

	return n, nil
}
