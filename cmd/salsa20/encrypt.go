package main

import (
	"encoding/hex"
	"fmt"

	"github.com/nmetens/salsa20-go/historylog"
	"github.com/nmetens/salsa20-go/salsa20"
	"github.com/spf13/cobra"
)

func newEncryptCmd() *cobra.Command {
	var (
		keyHex      string
		nonceHex    string
		plainHex    string
		counter     uint64
		withHistory bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt hex-encoded plaintext with Salsa20/20",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("--key: %w", err)
			}
			nonce, err := hex.DecodeString(nonceHex)
			if err != nil {
				return fmt.Errorf("--nonce: %w", err)
			}
			plaintext, err := hex.DecodeString(plainHex)
			if err != nil {
				return fmt.Errorf("--plaintext: %w", err)
			}

			ciphertext, err := salsa20.StreamXOR(key, nonce, plaintext, counter)
			if err != nil {
				return err
			}

			if withHistory {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
				log, closer, err := openHistoryLog(cfg.HistoryLogPath)
				if err != nil {
					return fmt.Errorf("opening history log: %w", err)
				}
				if log != nil {
					log.Record(historylog.Encrypt, key, nonce, counter, len(plaintext))
					closer()
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(ciphertext))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (required)")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "8-byte nonce, hex-encoded (required)")
	cmd.Flags().StringVar(&plainHex, "plaintext", "", "plaintext, hex-encoded (required)")
	cmd.Flags().Uint64Var(&counter, "counter", 0, "initial block counter")
	cmd.Flags().BoolVar(&withHistory, "history", false, "append an NDJSON record to the configured history log")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("plaintext")

	return cmd
}
