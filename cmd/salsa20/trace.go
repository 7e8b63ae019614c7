package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/nmetens/salsa20-go/tracer"
	"github.com/spf13/cobra"
)

func newTraceCmd() *cobra.Command {
	var (
		keyHex   string
		nonceHex string
		counter  uint64
		ndjson   bool
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the Salsa20/20 block state after every doubleround",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("--key: %w", err)
			}
			nonce, err := hex.DecodeString(nonceHex)
			if err != nil {
				return fmt.Errorf("--nonce: %w", err)
			}

			report, err := tracer.Trace(key, nonce, counter)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			out := cmd.OutOrStdout()
			if cfg.TraceOutputPath != "" {
				f, err := os.Create(cfg.TraceOutputPath)
				if err != nil {
					return fmt.Errorf("opening trace output: %w", err)
				}
				defer f.Close()
				out = f
			}

			if ndjson {
				return report.MarshalNDJSON(out)
			}

			fmt.Fprintln(out, report.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (required)")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "8-byte nonce, hex-encoded (required)")
	cmd.Flags().Uint64Var(&counter, "counter", 0, "block counter")
	cmd.Flags().BoolVar(&ndjson, "ndjson", false, "emit one JSON object per round instead of a formatted report")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")

	return cmd
}
