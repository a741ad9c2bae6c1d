package main

import (
	"fmt"

	"github.com/evaristocosta/javalang/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the raw token stream of a Java source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			source, err := readSource(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			tokens, err := parser.Tokenize(string(source))
			if err != nil {
				cliLog.Errorf("%s: %s", filename, err)
				return fmt.Errorf("tokenize %s: %w", filename, err)
			}

			for _, tok := range tokens {
				fmt.Printf("%-12s %-20q %s\n", tok.Kind, tok.Text, tok.Pos())
			}
			return nil
		},
	}
	return cmd
}
