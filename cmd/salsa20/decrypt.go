package main

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/nmetens/salsa20-go/historylog"
	"github.com/nmetens/salsa20-go/salsa20"
	"github.com/spf13/cobra"
)

func newDecryptCmd() *cobra.Command {
	var (
		keyHex      string
		nonceHex    string
		cipherHex   string
		counter     uint64
		withHistory bool
		verify      bool
	)

	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt hex-encoded ciphertext with Salsa20/20",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(keyHex)
			if err != nil {
				return fmt.Errorf("--key: %w", err)
			}
			nonce, err := hex.DecodeString(nonceHex)
			if err != nil {
				return fmt.Errorf("--nonce: %w", err)
			}
			ciphertext, err := hex.DecodeString(cipherHex)
			if err != nil {
				return fmt.Errorf("--ciphertext: %w", err)
			}

			plaintext, err := salsa20.StreamXOR(key, nonce, ciphertext, counter)
			if err != nil {
				return err
			}

			if verify {
				roundTrip, err := salsa20.StreamXOR(key, nonce, plaintext, counter)
				if err != nil {
					return err
				}
				if !bytes.Equal(roundTrip, ciphertext) {
					return fmt.Errorf("round-trip verification failed: re-encrypting the recovered plaintext did not reproduce the ciphertext")
				}
				fmt.Fprintln(cmd.ErrOrStderr(), "round-trip ok")
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
					log.Record(historylog.Decrypt, key, nonce, counter, len(ciphertext))
					closer()
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(plaintext))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyHex, "key", "", "32-byte key, hex-encoded (required)")
	cmd.Flags().StringVar(&nonceHex, "nonce", "", "8-byte nonce, hex-encoded (required)")
	cmd.Flags().StringVar(&cipherHex, "ciphertext", "", "ciphertext, hex-encoded (required)")
	cmd.Flags().Uint64Var(&counter, "counter", 0, "initial block counter")
	cmd.Flags().BoolVar(&withHistory, "history", false, "append an NDJSON record to the configured history log")
	cmd.Flags().BoolVar(&verify, "verify", false, "re-encrypt the recovered plaintext and confirm it reproduces the ciphertext")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("nonce")
	_ = cmd.MarkFlagRequired("ciphertext")

	return cmd
}
