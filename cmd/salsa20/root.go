package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

// newRootCmd builds the salsa20 command tree: encrypt, decrypt, genkey and
// trace subcommands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "salsa20",
		Short: "Salsa20/20 stream cipher command-line tool",
		Long: "salsa20 encrypts and decrypts data with the Salsa20/20 stream cipher.\n" +
			"Keys, nonces and ciphertext are hex-encoded on the command line.",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "path to a YAML config file")

	root.AddCommand(newEncryptCmd())
	root.AddCommand(newDecryptCmd())
	root.AddCommand(newGenkeyCmd())
	root.AddCommand(newTraceCmd())

	return root
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".salsa20.yaml"
	}
	return home + "/.salsa20.yaml"
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
