package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vigenere/internal/cipher"
	"github.com/blackwell-systems/vigenere/internal/logging"
)

var (
	encryptKey  string
	encryptText string

	encryptCmd = &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text with a Vigenère key",
		Long: `Encrypt plaintext with a repeating Vigenère key.

The key is normalized first: everything except the letters A-Z is dropped and
the rest is uppercased, so "l3e-mon!" and "LEMON" are the same key. A key with
no letters is rejected.

Text is read from --text, then from the arguments, then from stdin.`,
		Example: `  # Encrypt an argument
  vigenere encrypt --key LEMON "Attack at dawn!"

  # Encrypt stdin
  echo "Attack at dawn!" | vigenere encrypt -k lemon`,
		RunE: runEncrypt,
	}
)

func init() {
	encryptCmd.Flags().StringVarP(&encryptKey, "key", "k", "", "encryption key (letters only are used)")
	encryptCmd.Flags().StringVarP(&encryptText, "text", "t", "", "text to encrypt")
	_ = encryptCmd.MarkFlagRequired("key")
}

func runEncrypt(cmd *cobra.Command, args []string) error {
	log := logger.Named("encrypt")

	c, err := cipher.New(encryptKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	text, err := readInput(cmd, encryptText, args)
	if err != nil {
		return err
	}
	log.Debug("encrypting",
		logging.Int("key_length", len(c.Key())),
		logging.Int("input_bytes", len(text)))

	fmt.Fprintln(cmd.OutOrStdout(), c.Encrypt(text))
	return nil
}
