package main

import (
	"encoding/hex"
	"fmt"

	"github.com/nmetens/salsa20-go/keygen"
	"github.com/spf13/cobra"
)

func newGenkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genkey",
		Short: "Generate a random key and nonce",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := keygen.Key()
			if err != nil {
				return fmt.Errorf("generating key: %w", err)
			}
			nonce, err := keygen.Nonce()
			if err != nil {
				return fmt.Errorf("generating nonce: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "key:   %s\n", hex.EncodeToString(key[:]))
			fmt.Fprintf(cmd.OutOrStdout(), "nonce: %s\n", hex.EncodeToString(nonce[:]))
			return nil
		},
	}

	return cmd
}
