package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func getTokenTypes(tokens []Token) []TokenType {
	tt := make([]TokenType, 0, len(tokens))
	for i := range tokens {
		tt = append(tt, tokens[i].tt)
	}
	return tt
}

func getTokenTexts(buf []byte, tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for i := range tokens {
		texts = append(texts, string(tokens[i].In(buf)))
	}
	return texts
}

func TestTokenize(t *testing.T) {
	testCases := []struct {
		In  string
		Out []TokenType
	}{
		{
			`1`,
			[]TokenType{
				TokenAtom,
			},
		},
		{
			`(+ 1 2)`,
			[]TokenType{
				TokenOpenList,
				TokenAtom,
				TokenAtom,
				TokenAtom,
				TokenCloseList,
			},
		},
		{
			`~@(1 2)`,
			[]TokenType{
				TokenSpliceUnquote,
				TokenOpenList,
				TokenAtom,
				TokenAtom,
				TokenCloseList,
			},
		},
		{
			`~(1)`,
			[]TokenType{
				TokenUnquote,
				TokenOpenList,
				TokenAtom,
				TokenCloseList,
			},
		},
		{
			"'x `y @z",
			[]TokenType{
				TokenQuote,
				TokenAtom,
				TokenQuasiquote,
				TokenAtom,
				TokenDeref,
				TokenAtom,
			},
		},
		{
			`^{:a 1} x`,
			[]TokenType{
				TokenMeta,
				TokenOpenMap,
				TokenAtom,
				TokenAtom,
				TokenCloseMap,
				TokenAtom,
			},
		},
		{
			`[1, 2, 3]`,
			[]TokenType{
				TokenOpenVector,
				TokenAtom,
				TokenAtom,
				TokenAtom,
				TokenCloseVector,
			},
		},
		{
			`"hello world"`,
			[]TokenType{
				TokenString,
			},
		},
		{
			`; just a comment`,
			[]TokenType{
				TokenComment,
			},
		},
		{
			"(1) ; note\n(2)",
			[]TokenType{
				TokenOpenList,
				TokenAtom,
				TokenCloseList,
				TokenComment,
				TokenOpenList,
				TokenAtom,
				TokenCloseList,
			},
		},
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i].In))

		assert.NoError(t, err)
		assert.Equal(t, testCases[i].Out, getTokenTypes(tokens), "input: %q", testCases[i].In)
	}
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	testCases := []string{
		``,
		` `,
		"\t\n\r\f",
		`,,, ,`,
		" , \n,",
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))

		assert.NoError(t, err)
		assert.Empty(t, tokens, "input: %q", testCases[i])
	}
}

func TestTokenizeOffsets(t *testing.T) {
	buf := []byte(`(+ 1 2)`)

	tokens, err := Tokenize(buf)
	assert.NoError(t, err)

	expected := [][2]int{
		{0, 1},
		{1, 2},
		{3, 4},
		{5, 6},
		{6, 7},
	}

	positions := make([][2]int, 0, len(tokens))
	for i := range tokens {
		start, end := tokens[i].Pos()
		positions = append(positions, [2]int{start, end})
	}

	assert.Equal(t, expected, positions)
	assert.Equal(t, []string{"(", "+", "1", "2", ")"}, getTokenTexts(buf, tokens))
}

func TestTokenizeMultibyteAtom(t *testing.T) {
	buf := []byte(`cow花火🚀)`)

	tokens, err := Tokenize(buf)
	assert.NoError(t, err)

	assert.Equal(t, []TokenType{TokenAtom, TokenCloseList}, getTokenTypes(tokens))
	assert.Equal(t, []string{"cow花火🚀", ")"}, getTokenTexts(buf, tokens))

	// the atom ends exactly where the closing bracket starts
	_, end := tokens[0].Pos()
	start, _ := tokens[1].Pos()
	assert.Equal(t, end, start)
}

func TestTokenizeString(t *testing.T) {
	testCases := []struct {
		In   string
		Text string
	}{
		{`"hello"`, `"hello"`},
		{`"a\"b"`, `"a\"b"`},
		{`"a\\"`, `"a\\"`},
		{`"a b ; not a comment"`, `"a b ; not a comment"`},
		{`"multi
line"`, "\"multi\nline\""},
	}

	for i := range testCases {
		buf := []byte(testCases[i].In)

		tokens, err := Tokenize(buf)
		assert.NoError(t, err)

		assert.Equal(t, []TokenType{TokenString}, getTokenTypes(tokens))
		assert.Equal(t, testCases[i].Text, string(tokens[0].In(buf)))
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	testCases := []string{
		`"unterminated`,
		`"`,
		`"ends with escape\`,
		`"escaped quote only\"`,
		`(display "oops`,
	}

	for i := range testCases {
		tokens, err := Tokenize([]byte(testCases[i]))

		assert.Nil(t, tokens, "input: %q", testCases[i])
		assert.ErrorIs(t, err, ErrUnterminatedString, "input: %q", testCases[i])
	}
}

func TestTokenizeCommentSpan(t *testing.T) {
	buf := []byte("; just a comment")

	tokens, err := Tokenize(buf)
	assert.NoError(t, err)

	assert.Equal(t, []TokenType{TokenComment}, getTokenTypes(tokens))

	start, end := tokens[0].Pos()
	assert.Equal(t, 0, start)
	assert.Equal(t, len(buf), end)

	// line-scoped: a comment never swallows its newline
	buf = []byte("1 ; one\n2")

	tokens, err = Tokenize(buf)
	assert.NoError(t, err)
	assert.Equal(t, []string{"1", "; one", "2"}, getTokenTexts(buf, tokens))
}

func TestTokenizeRoundTrip(t *testing.T) {
	buf := []byte("(defn f [a b] ; sum\n  `(+ ~a ~@b \"s\\\"tr\" 花火))")

	tokens, err := Tokenize(buf)
	assert.NoError(t, err)

	for i := range tokens {
		slice := tokens[i].In(buf)

		again, err := Tokenize(slice)
		assert.NoError(t, err)
		assert.Len(t, again, 1, "token: %v", tokens[i])

		start, end := again[0].Pos()
		assert.Equal(t, 0, start)
		assert.Equal(t, len(slice), end)
		assert.Equal(t, tokens[i].Type(), again[0].Type())
	}
}
