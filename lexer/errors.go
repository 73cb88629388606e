package lexer

import (
	"errors"
)

// ErrUnterminatedString is returned when a string literal is opened but the
// input ends before an unescaped closing quote. It aborts the whole tokenize
// call; no partial token sequence is returned.
var ErrUnterminatedString = errors.New("unterminated string literal")
