// Package lispreader turns Lisp source text into data trees.
//
// It is the reader half of a Lisp: the lexer package scans a byte buffer
// into tokens, the parser package builds atoms and lists out of them, and
// the ast package holds the resulting trees. This package fronts the three
// with single-call helpers; an evaluator plugs in on top of the ast nodes.
package lispreader

import (
	"github.com/xiam/lisp-reader/ast"
	"github.com/xiam/lisp-reader/lexer"
	"github.com/xiam/lisp-reader/parser"
)

// Read tokenizes and parses a buffer, returning its first complete form. It
// returns parser.ErrNoForm when the buffer holds no form at all.
func Read(in []byte) (*ast.Node, error) {
	node, _, err := parser.Parse(in)
	return node, err
}

// ReadAll tokenizes and parses a buffer, returning every top-level form.
func ReadAll(in []byte) ([]*ast.Node, error) {
	return parser.ParseAll(in)
}

// Tokenize scans a buffer and returns its token sequence.
func Tokenize(in []byte) ([]lexer.Token, error) {
	return lexer.Tokenize(in)
}
