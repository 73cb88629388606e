// Package ast defines the data tree a parsed form becomes: a tagged union of
// leaf values (ints, symbols, strings) and vectors of child nodes (lists,
// vectors, maps).
//
// Value payloads are owned Go values copied out of the source buffer at
// construction time, so a tree never depends on its buffer staying alive.
package ast

import (
	"errors"
	"fmt"

	"github.com/xiam/lisp-reader/lexer"
)

// Node represents one element of the AST
type Node struct {
	p *Node

	nt  NodeType
	tok lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		tok: tok,
		v:   v,
	}
}

// NewInt creates and returns an orphaned node holding an integer
func NewInt(tok lexer.Token, v int64) *Node {
	return newNode(NodeTypeInt, tok, v)
}

// NewSymbol creates and returns an orphaned node holding a symbol name
func NewSymbol(tok lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewString creates and returns an orphaned node holding an unescaped string
func NewString(tok lexer.Token, v string) *Node {
	return newNode(NodeTypeString, tok, v)
}

// NewList creates and returns a node of type "list"
func NewList(tok lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// NewVector creates and returns a node of type "vector"
func NewVector(tok lexer.Token) *Node {
	return newNode(NodeTypeVector, tok, []*Node{})
}

// NewMap creates and returns a node of type "map"
func NewMap(tok lexer.Token) *Node {
	return newNode(NodeTypeMap, tok, []*Node{})
}

// Push appends a child node to a parent node of type "list", "vector" or
// "map". The parent exclusively owns its children.
func (n *Node) Push(node *Node) error {
	if !n.IsVector() {
		return errors.New("nodes of type value can't accept children")
	}
	n.v = append(n.v.([]*Node), node)
	node.p = n
	return nil
}

// PushList appends a new list node and returns it
func (n *Node) PushList(tok lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushVector appends a new vector node and returns it
func (n *Node) PushVector(tok lexer.Token) (*Node, error) {
	node := NewVector(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// PushMap appends a new map node and returns it
func (n *Node) PushMap(tok lexer.Token) (*Node, error) {
	node := NewMap(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// Token returns the token the node was built from
func (n Node) Token() lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the payload of a value node, or nil for vector nodes
func (n Node) Value() interface{} {
	if n.IsVector() {
		return nil
	}
	return n.v
}

// Int returns the payload of an integer node
func (n Node) Int() int64 {
	return n.v.(int64)
}

// Text returns the payload of a symbol or string node
func (n Node) Text() string {
	return n.v.(string)
}

// List returns all the children elements of a vector node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// IsValue returns true if the node is a leaf
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node holds children
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

// Parent returns the node holding this one, or nil for a root
func (n *Node) Parent() *Node {
	return n.p
}

func (n Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}
