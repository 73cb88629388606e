package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/xiam/lisp-reader/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Print the token sequence of a source file",
	Long:  `Tokenize scans a source file (or stdin) and prints one line per token: byte range, type and text.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

var tokenColors = map[lexer.TokenType]*color.Color{
	lexer.TokenString:  color.New(color.FgGreen),
	lexer.TokenComment: color.New(color.FgHiBlack),
	lexer.TokenAtom:    color.New(color.FgCyan),
}

func tokenColor(tt lexer.TokenType) *color.Color {
	if c, ok := tokenColors[tt]; ok {
		return c
	}
	return color.New(color.FgYellow)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	in, err := readInput(args)
	if err != nil {
		return err
	}

	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return fmt.Errorf("tokenize: %w", err)
	}

	for _, tok := range tokens {
		start, end := tok.Pos()
		text := tokenColor(tok.Type()).Sprintf("%s", tok.In(in))
		fmt.Fprintf(cmd.OutOrStdout(), "%4d..%-4d %-14s %s\n", start, end, tok.Type(), text)
	}
	return nil
}
