package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vigenere/internal/cipher"
	"github.com/blackwell-systems/vigenere/internal/logging"
)

var (
	decryptKey  string
	decryptText string

	decryptCmd = &cobra.Command{
		Use:   "decrypt [text...]",
		Short: "Decrypt text with a Vigenère key",
		Long: `Decrypt ciphertext produced by 'vigenere encrypt' with the same key.

The key is normalized the same way as for encryption. Text is read from
--text, then from the arguments, then from stdin.`,
		Example: `  # Decrypt an argument
  vigenere decrypt --key LEMON "Lxfopv ef rnhr!"

  # Round trip
  echo "Attack at dawn!" | vigenere encrypt -k LEMON | vigenere decrypt -k LEMON`,
		RunE: runDecrypt,
	}
)

func init() {
	decryptCmd.Flags().StringVarP(&decryptKey, "key", "k", "", "decryption key (letters only are used)")
	decryptCmd.Flags().StringVarP(&decryptText, "text", "t", "", "text to decrypt")
	_ = decryptCmd.MarkFlagRequired("key")
}

func runDecrypt(cmd *cobra.Command, args []string) error {
	log := logger.Named("decrypt")

	c, err := cipher.New(decryptKey)
	if err != nil {
		return fmt.Errorf("failed to decrypt: %w", err)
	}

	text, err := readInput(cmd, decryptText, args)
	if err != nil {
		return err
	}
	log.Debug("decrypting",
		logging.Int("key_length", len(c.Key())),
		logging.Int("input_bytes", len(text)))

	fmt.Fprintln(cmd.OutOrStdout(), c.Decrypt(text))
	return nil
}
