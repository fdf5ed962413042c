package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Tree is a serializable view of a syntax tree.
type Tree struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Value    string  `json:"value,omitempty" yaml:"value,omitempty"`
	Children []*Tree `json:"children,omitempty" yaml:"children,omitempty"`
}

// Dump converts n into a Tree.
func Dump(n Node) *Tree {
	t := Visit[*Tree](n, labeler{})
	for _, c := range Children(n) {
		t.Children = append(t.Children, Dump(c))
	}
	return t
}

type labeler struct{}

func (labeler) VisitIntLiteral(n *IntLiteral) *Tree {
	return &Tree{Kind: "IntLiteral", Value: strconv.FormatInt(n.Val, 10)}
}

func (labeler) VisitBoolLiteral(n *BoolLiteral) *Tree {
	return &Tree{Kind: "BoolLiteral", Value: n.String()}
}

func (labeler) VisitIdentifier(n *Identifier) *Tree {
	return &Tree{Kind: "Identifier", Value: n.Name}
}

func (labeler) VisitBinOp(n *BinOp) *Tree     { return &Tree{Kind: "BinOp", Value: n.Op.String()} }
func (labeler) VisitUnOp(n *UnOp) *Tree       { return &Tree{Kind: "UnOp", Value: n.Op.String()} }
func (labeler) VisitEquation(*Equation) *Tree { return &Tree{Kind: "Equation"} }
func (labeler) VisitInput(*Input) *Tree       { return &Tree{Kind: "Input"} }
func (labeler) VisitBlock(*Block) *Tree       { return &Tree{Kind: "Block"} }
func (labeler) VisitIf(*If) *Tree             { return &Tree{Kind: "If"} }
func (labeler) VisitWhile(*While) *Tree       { return &Tree{Kind: "While"} }
func (labeler) VisitProgram(*Program) *Tree   { return &Tree{Kind: "Program"} }
func (labeler) VisitPrintCmd(*PrintCmd) *Tree { return &Tree{Kind: "PrintCmd"} }
func (labeler) VisitShowCmd(*ShowCmd) *Tree   { return &Tree{Kind: "ShowCmd"} }
func (labeler) VisitSolveCmd(*SolveCmd) *Tree { return &Tree{Kind: "SolveCmd"} }
func (labeler) VisitArgumentList(*ArgumentList) *Tree {
	return &Tree{Kind: "ArgumentList"}
}

func (labeler) VisitVarDec(n *VarDec) *Tree {
	return &Tree{Kind: "VarDec", Value: n.Type.String() + " " + n.Name}
}

func (labeler) VisitAssignment(n *Assignment) *Tree {
	return &Tree{Kind: "Assignment", Value: n.Name}
}

// WriteText writes the tree as an indented outline.
func WriteText(w io.Writer, t *Tree) {
	writeText(w, t, 0)
}

func writeText(w io.Writer, t *Tree, depth int) {
	indent := strings.Repeat("  ", depth)
	if t.Value != "" {
		fmt.Fprintf(w, "%s%s %s\n", indent, t.Kind, t.Value)
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, t.Kind)
	}
	for _, c := range t.Children {
		writeText(w, c, depth+1)
	}
}

// WriteJSON writes the tree as indented JSON.
func WriteJSON(w io.Writer, t *Tree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(t)
}

// WriteYAML writes the tree as YAML.
func WriteYAML(w io.Writer, t *Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}
