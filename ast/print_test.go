package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xiam/lisp-reader/lexer"
)

func TestEncode(t *testing.T) {
	tok := lexer.Token{}

	list := NewList(tok)
	assert.NoError(t, list.Push(NewSymbol(tok, "+")))
	assert.NoError(t, list.Push(NewInt(tok, 1)))

	vec := NewVector(tok)
	assert.NoError(t, vec.Push(NewString(tok, "a\"b")))
	assert.NoError(t, list.Push(vec))

	m := NewMap(tok)
	assert.NoError(t, list.Push(m))

	assert.Equal(t, `(+ 1 ["a\"b"] {})`, string(Encode(list)))
	assert.Equal(t, ``, string(Encode(nil)))
}
