package parser

import (
	"errors"
)

var (
	// ErrUnexpectedEOF is returned when a list or a reader-macro form is
	// left incomplete at the end of the input.
	ErrUnexpectedEOF = errors.New("unexpected EOF")

	// ErrUnbalancedClose is returned when a closing bracket appears with
	// no matching open bracket.
	ErrUnbalancedClose = errors.New("unbalanced closing bracket")

	// ErrMismatchedBracket is returned when a closing bracket kind does
	// not match the most recently opened bracket kind.
	ErrMismatchedBracket = errors.New("mismatched closing bracket")

	// ErrNoForm is returned when the remaining tokens contain no form at
	// all, only comments. It is the reader's way of saying "nothing left";
	// a caller draining a buffer form by form stops on it.
	ErrNoForm = errors.New("no form")
)
