// Package parser builds data trees out of token sequences.
//
// The parser is a recursive descent over a finished token slice, advanced by
// a single cursor. Symbol and string text is copied out of the source buffer
// while building the tree, so the returned nodes do not keep the buffer
// alive.
package parser

import (
	"errors"
	"strconv"

	"github.com/xiam/lisp-reader/ast"
	"github.com/xiam/lisp-reader/lexer"
)

// wrapperSymbol names the symbol each reader-macro marker expands to.
var wrapperSymbol = map[lexer.TokenType]string{
	lexer.TokenQuote:         "quote",
	lexer.TokenQuasiquote:    "quasiquote",
	lexer.TokenUnquote:       "unquote",
	lexer.TokenSpliceUnquote: "splice-unquote",
	lexer.TokenDeref:         "deref",
}

var closingTypes = map[lexer.TokenType]bool{
	lexer.TokenCloseList:   true,
	lexer.TokenCloseVector: true,
	lexer.TokenCloseMap:    true,
}

// Parser consumes a token sequence in order and produces one data tree per
// call to ReadForm. It is not safe for concurrent use; each buffer gets its
// own Parser.
type Parser struct {
	buf    []byte
	tokens []lexer.Token
	pos    int
}

// New creates a parser over a token sequence and the buffer the tokens point
// into.
func New(buf []byte, tokens []lexer.Token) *Parser {
	return &Parser{
		buf:    buf,
		tokens: tokens,
	}
}

// Consumed returns how many tokens have been consumed so far, letting a
// caller parse a buffer holding several forms one form at a time.
func (p *Parser) Consumed() int {
	return p.pos
}

// ReadForm parses and returns the next complete form. It returns ErrNoForm
// once only comments remain.
func (p *Parser) ReadForm() (*ast.Node, error) {
	p.skipComments()

	tok, ok := p.next()
	if !ok {
		return nil, ErrNoForm
	}
	return p.readForm(tok)
}

func (p *Parser) skipComments() {
	for p.pos < len(p.tokens) && p.tokens[p.pos].Is(lexer.TokenComment) {
		p.pos++
	}
}

func (p *Parser) next() (lexer.Token, bool) {
	if p.pos >= len(p.tokens) {
		return lexer.Token{}, false
	}
	tok := p.tokens[p.pos]
	p.pos++
	return tok, true
}

// nextForm is ReadForm for positions where a form is required, so running
// out of tokens is an error rather than a normal stop.
func (p *Parser) nextForm() (*ast.Node, error) {
	node, err := p.ReadForm()
	if errors.Is(err, ErrNoForm) {
		return nil, ErrUnexpectedEOF
	}
	return node, err
}

func (p *Parser) readForm(tok lexer.Token) (*ast.Node, error) {
	switch tok.Type() {
	case lexer.TokenOpenList:
		return p.readVector(ast.NewList(tok), lexer.TokenCloseList)

	case lexer.TokenOpenVector:
		return p.readVector(ast.NewVector(tok), lexer.TokenCloseVector)

	case lexer.TokenOpenMap:
		return p.readVector(ast.NewMap(tok), lexer.TokenCloseMap)

	case lexer.TokenCloseList, lexer.TokenCloseVector, lexer.TokenCloseMap:
		return nil, ErrUnbalancedClose

	case lexer.TokenQuote, lexer.TokenQuasiquote, lexer.TokenUnquote,
		lexer.TokenSpliceUnquote, lexer.TokenDeref:
		return p.readWrapped(tok, wrapperSymbol[tok.Type()])

	case lexer.TokenMeta:
		return p.readMeta(tok)

	case lexer.TokenString:
		return ast.NewString(tok, unescape(tok.In(p.buf))), nil

	default:
		return p.readAtom(tok)
	}
}

// readVector collects children into node until the closing bracket of type
// closer is seen.
func (p *Parser) readVector(node *ast.Node, closer lexer.TokenType) (*ast.Node, error) {
	for {
		p.skipComments()
		if p.pos >= len(p.tokens) {
			return nil, ErrUnexpectedEOF
		}

		tok := p.tokens[p.pos]
		if tok.Is(closer) {
			p.pos++
			return node, nil
		}
		if closingTypes[tok.Type()] {
			return nil, ErrMismatchedBracket
		}

		child, err := p.nextForm()
		if err != nil {
			return nil, err
		}
		if err := node.Push(child); err != nil {
			return nil, err
		}
	}
}

// readWrapped expands a one-marker reader macro: 'f becomes (quote f), and
// likewise for quasiquote, unquote, splice-unquote and deref.
func (p *Parser) readWrapped(tok lexer.Token, name string) (*ast.Node, error) {
	form, err := p.nextForm()
	if err != nil {
		return nil, err
	}

	node := ast.NewList(tok)
	if err := node.Push(ast.NewSymbol(tok, name)); err != nil {
		return nil, err
	}
	if err := node.Push(form); err != nil {
		return nil, err
	}
	return node, nil
}

// readMeta expands ^m f into (with-meta f m): the metadata form is written
// first but lands last in the expansion.
func (p *Parser) readMeta(tok lexer.Token) (*ast.Node, error) {
	meta, err := p.nextForm()
	if err != nil {
		return nil, err
	}
	form, err := p.nextForm()
	if err != nil {
		return nil, err
	}

	node := ast.NewList(tok)
	if err := node.Push(ast.NewSymbol(tok, "with-meta")); err != nil {
		return nil, err
	}
	if err := node.Push(form); err != nil {
		return nil, err
	}
	if err := node.Push(meta); err != nil {
		return nil, err
	}
	return node, nil
}

func (p *Parser) readAtom(tok lexer.Token) (*ast.Node, error) {
	text := tok.In(p.buf)

	if isInteger(text) {
		i64, err := strconv.ParseInt(string(text), 10, 64)
		if err != nil {
			return nil, err
		}
		return ast.NewInt(tok, i64), nil
	}

	return ast.NewSymbol(tok, string(text)), nil
}

// isInteger reports whether text is ASCII digits with an optional leading
// minus. A bare minus is a symbol.
func isInteger(text []byte) bool {
	if len(text) > 0 && text[0] == '-' {
		text = text[1:]
	}
	if len(text) == 0 {
		return false
	}
	for _, b := range text {
		if b < '0' || b > '9' {
			return false
		}
	}
	return true
}

// unescape resolves the escape sequences of a raw string token, quotes
// included. One pass: \" and \\ map to the escaped byte, \n to a newline,
// and any other escaped byte to itself.
func unescape(raw []byte) string {
	body := raw[1 : len(raw)-1]

	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		b := body[i]
		if b == '\\' && i+1 < len(body) {
			i++
			if body[i] == 'n' {
				out = append(out, '\n')
			} else {
				out = append(out, body[i])
			}
			continue
		}
		out = append(out, b)
	}
	return string(out)
}

// Parse tokenizes a buffer and returns its first form along with the number
// of tokens consumed to build it.
func Parse(in []byte) (*ast.Node, int, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, 0, err
	}

	p := New(in, tokens)
	node, err := p.ReadForm()
	if err != nil {
		return nil, p.Consumed(), err
	}
	return node, p.Consumed(), nil
}

// ParseAll tokenizes a buffer and returns every top-level form in it. A
// buffer holding only comments and whitespace yields an empty slice.
func ParseAll(in []byte) ([]*ast.Node, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}

	p := New(in, tokens)
	nodes := []*ast.Node{}
	for {
		node, err := p.ReadForm()
		if errors.Is(err, ErrNoForm) {
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}
