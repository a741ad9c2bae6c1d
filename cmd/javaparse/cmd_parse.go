package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/evaristocosta/javalang/ast"
	"github.com/evaristocosta/javalang/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a Java source file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			source, err := readSource(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			displayName := filename
			if displayName == "-" {
				displayName = "<stdin>"
			}

			node, err := parser.Parse(string(source), parser.WithFile(displayName))
			if err != nil {
				cliLog.Errorf("%s: %s", displayName, err)
				return fmt.Errorf("parse %s: %w", displayName, err)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(node)
			}

			printTree(os.Stdout, node, 0)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the AST as JSON instead of an indented tree")
	return cmd
}

// printTree renders node as an indented outline: one line per node, giving
// its kind, name (if any), and position, then recursing into every declared
// attribute in order.
func printTree(w *os.File, node *ast.Node, depth int) {
	if node == nil {
		return
	}
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	label := node.Kind.String()
	if node.Str != "" {
		label += " " + node.Str
	}
	fmt.Fprintf(w, "%s%s (%s)\n", indent, label, node.Pos())

	for _, ann := range node.Annotations {
		printTree(w, ann, depth+1)
	}
	for _, attr := range node.Attrs() {
		for _, child := range attr.Nodes {
			printTree(w, child, depth+1)
		}
	}
}
