package main

import (
	"github.com/evaristocosta/javalang/internal/lspserver"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lspserver.NewServer("0.1.0", verbosity)
			return server.RunStdio()
		},
	}
}
