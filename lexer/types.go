package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid       TokenType = iota
	TokenOpenList                // Open parenthesis: "("
	TokenCloseList               // Close parenthesis: ")"
	TokenOpenVector              // Open square bracket: "["
	TokenCloseVector             // Close square bracket: "]"
	TokenOpenMap                 // Open curly bracket: "{"
	TokenCloseMap                // Close curly bracket: "}"
	TokenQuote                   // Single quote: "'"
	TokenQuasiquote              // Backtick: "`"
	TokenUnquote                 // Tilde: "~"
	TokenSpliceUnquote           // Tilde followed by at-sign: "~@"
	TokenMeta                    // Caret: "^"
	TokenDeref                   // At-sign: "@"
	TokenString                  // Double-quoted literal, quotes and escapes included
	TokenComment                 // Semicolon to end of line
	TokenAtom                    // Anything else: symbols and numbers
)

var tokenValues = map[TokenType][]byte{
	TokenOpenList:    {'('},
	TokenCloseList:   {')'},
	TokenOpenVector:  {'['},
	TokenCloseVector: {']'},
	TokenOpenMap:     {'{'},
	TokenCloseMap:    {'}'},
	TokenQuote:       {'\''},
	TokenQuasiquote:  {'`'},
	TokenUnquote:     {'~'},
	TokenMeta:        {'^'},
	TokenDeref:       {'@'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:       "invalid",
	TokenOpenList:      "open_list",
	TokenCloseList:     "close_list",
	TokenOpenVector:    "open_vector",
	TokenCloseVector:   "close_vector",
	TokenOpenMap:       "open_map",
	TokenCloseMap:      "close_map",
	TokenQuote:         "quote",
	TokenQuasiquote:    "quasiquote",
	TokenUnquote:       "unquote",
	TokenSpliceUnquote: "splice_unquote",
	TokenMeta:          "meta",
	TokenDeref:         "deref",
	TokenString:        "string",
	TokenComment:       "comment",
	TokenAtom:          "atom",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// whitespace bytes are insignificant separators; comma is included so that
// argument-list style input reads naturally.
var whitespace = []byte(" \t\n\r\f,")

// specialType maps every one-byte marker to its token type.
var specialType = func() map[byte]TokenType {
	m := map[byte]TokenType{}
	for tt, values := range tokenValues {
		for _, b := range values {
			m[b] = tt
		}
	}
	return m
}()

func isWhitespace(b byte) bool {
	for _, v := range whitespace {
		if v == b {
			return true
		}
	}
	return false
}

func isSpecial(b byte) bool {
	_, ok := specialType[b]
	return ok
}

// isAtomBreak reports whether a byte terminates an atom run. Every byte of a
// multi-byte UTF-8 sequence is >= 0x80 and matches nothing in this set, so
// multi-byte glyphs are absorbed into atoms untouched.
func isAtomBreak(b byte) bool {
	return isWhitespace(b) || isSpecial(b) || b == '"' || b == ';'
}
