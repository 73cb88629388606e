package ast

import (
	"fmt"
	"strings"
)

var vectorDelimiters = map[NodeType][2]string{
	NodeTypeList:   {"(", ")"},
	NodeTypeVector: {"[", "]"},
	NodeTypeMap:    {"{", "}"},
}

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())

	if n.IsVector() {
		fmt.Printf("(%v)\n", n.Token())
		for _, child := range n.List() {
			printLevel(child, level+1)
		}
		return
	}

	fmt.Printf("%#v (%v)\n", n.Value(), n.Token())
}

// Encode transforms a node back into its textual representation
func Encode(n *Node) []byte {
	if n == nil {
		return []byte{}
	}

	switch n.Type() {
	case NodeTypeList, NodeTypeVector, NodeTypeMap:
		d := vectorDelimiters[n.Type()]
		children := []string{}
		for _, child := range n.List() {
			children = append(children, string(Encode(child)))
		}
		return []byte(d[0] + strings.Join(children, " ") + d[1])

	case NodeTypeString:
		return []byte(fmt.Sprintf("%q", n.Text()))

	default:
		return []byte(fmt.Sprintf("%v", n.Value()))
	}
}
