package lexer

import (
	"fmt"
)

// Token represents a known sequence of bytes (lexical unit). It is a view
// into the source buffer, a half-open range [start, end) that never copies
// nor owns text: the buffer must stay alive for as long as the token is used.
type Token struct {
	tt    TokenType
	start int
	end   int
}

// NewToken creates a lexical unit covering buf[start:end].
func NewToken(tt TokenType, start int, end int) Token {
	return Token{
		tt:    tt,
		start: start,
		end:   end,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the start and end byte offsets of the lexical unit
func (t Token) Pos() (int, int) {
	return t.start, t.end
}

// In returns the byte slice the token denotes within its source buffer.
func (t Token) In(buf []byte) []byte {
	return buf[t.start:t.end]
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

func (t Token) String() string {
	return fmt.Sprintf("(:%v [%d %d])", t.tt, t.start, t.end)
}
