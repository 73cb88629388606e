// Package lexer splits Lisp source text into tokens.
//
// The lexer operates on raw bytes and produces offset-pair tokens pointing
// back into the input buffer; it allocates nothing but the token slice. The
// buffer must outlive every token taken from it.
package lexer

type lexState func(*Lexer) lexState

// Lexer represents a lexical analyzer over an in-memory buffer. It performs
// a single forward scan with no backtracking; the zero value is not usable,
// call New.
type Lexer struct {
	buf []byte

	start int
	pos   int

	tokens  []Token
	lastErr error
}

// New initializes a Lexer object over the given buffer.
func New(buf []byte) *Lexer {
	return &Lexer{
		buf:    buf,
		tokens: []Token{},
	}
}

// Scan runs the analyzer over the whole buffer and returns the tokens found,
// in source order. The only scan failure is ErrUnterminatedString; stray
// bytes that match no token class are skipped, not reported.
func (lx *Lexer) Scan() ([]Token, error) {
	for state := lexDefaultState; state != nil; {
		state = state(lx)
	}

	if lx.lastErr != nil {
		return nil, lx.lastErr
	}
	return lx.tokens, nil
}

func (lx *Lexer) eof() bool {
	return lx.pos >= len(lx.buf)
}

func (lx *Lexer) peek() byte {
	if lx.eof() {
		return 0
	}
	return lx.buf[lx.pos]
}

// peekAt returns the byte n positions ahead of the cursor, or 0 past the end.
func (lx *Lexer) peekAt(n int) byte {
	if lx.pos+n >= len(lx.buf) {
		return 0
	}
	return lx.buf[lx.pos+n]
}

func (lx *Lexer) next() byte {
	b := lx.buf[lx.pos]
	lx.pos++
	return b
}

func (lx *Lexer) emit(tt TokenType) {
	lx.tokens = append(lx.tokens, Token{
		tt:    tt,
		start: lx.start,
		end:   lx.pos,
	})
	lx.start = lx.pos
}

func lexDefaultState(lx *Lexer) lexState {
	for !lx.eof() && isWhitespace(lx.peek()) {
		lx.pos++
	}
	lx.start = lx.pos

	if lx.eof() {
		return nil
	}

	b := lx.peek()
	switch {
	case b == '~' && lx.peekAt(1) == '@':
		lx.pos += 2
		lx.emit(TokenSpliceUnquote)
		return lexDefaultState

	case isSpecial(b):
		tt := specialType[b]
		lx.pos++
		lx.emit(tt)
		return lexDefaultState

	case b == '"':
		return lexString

	case b == ';':
		return lexComment

	default:
		return lexAtom
	}
}

func lexString(lx *Lexer) lexState {
	lx.next() // opening quote

	for !lx.eof() {
		switch lx.next() {
		case '\\':
			// an escaped byte never closes the literal
			if !lx.eof() {
				lx.pos++
			}
		case '"':
			lx.emit(TokenString)
			return lexDefaultState
		}
	}

	return lexStateError(ErrUnterminatedString)
}

// lexComment consumes ";" through the end of the line. The comment token
// includes the semicolon and excludes the newline.
func lexComment(lx *Lexer) lexState {
	lx.next() // ";"

	for !lx.eof() && lx.peek() != '\n' {
		lx.pos++
	}
	lx.emit(TokenComment)
	return lexDefaultState
}

func lexAtom(lx *Lexer) lexState {
	for !lx.eof() && !isAtomBreak(lx.peek()) {
		lx.pos++
	}

	if lx.pos == lx.start {
		// stray byte that starts no token class; skip it and keep scanning
		lx.pos++
		lx.start = lx.pos
		return lexDefaultState
	}

	lx.emit(TokenAtom)
	return lexDefaultState
}

func lexStateError(err error) lexState {
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

// Tokenize takes a buffer of bytes and returns all the tokens within it, or
// an error if a string literal is left unterminated.
func Tokenize(in []byte) ([]Token, error) {
	return New(in).Scan()
}
