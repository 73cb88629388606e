package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xiam/lisp-reader/ast"
	"github.com/xiam/lisp-reader/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its forms",
	Long:  `Parse reads every top-level form out of a source file (or stdin) and prints each one back in canonical notation.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("tree", false, "dump the node tree instead of canonical notation")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	in, err := readInput(args)
	if err != nil {
		return err
	}

	tree, err := cmd.Flags().GetBool("tree")
	if err != nil {
		return err
	}

	nodes, err := parser.ParseAll(in)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	for _, node := range nodes {
		if tree {
			ast.Print(node)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ast.Encode(node))
	}
	return nil
}
