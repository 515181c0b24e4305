package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vigenere/internal/analyzer"
	"github.com/blackwell-systems/vigenere/internal/cipher"
	"github.com/blackwell-systems/vigenere/internal/logging"
	"github.com/blackwell-systems/vigenere/internal/output"
)

var (
	crackText      string
	crackMaxKeyLen int
	crackKeyLen    int

	crackCmd = &cobra.Command{
		Use:   "crack [text...]",
		Short: "Recover the key of a Vigenère ciphertext",
		Long: `Recover the key of an English ciphertext without knowing it.

The key length is estimated with the index of coincidence: split the letters
into one column per key position, and the length whose columns look most like
English wins. Each key letter is then the shift that makes its column's letter
frequencies fit English best (chi-squared).

This works reliably on a few hundred letters or more. Short texts give poor
guesses.

Text is read from --text, then from the arguments, then from stdin.`,
		Example: `  # Estimate the key length and recover the key
  vigenere crack < ciphertext.txt

  # Skip the estimate when the key length is known
  vigenere crack --key-length 5 < ciphertext.txt

  # Try longer keys
  vigenere crack --max-key-length 40 < ciphertext.txt`,
		RunE: runCrack,
	}
)

func init() {
	crackCmd.Flags().StringVarP(&crackText, "text", "t", "", "ciphertext to crack")
	crackCmd.Flags().IntVar(&crackMaxKeyLen, "max-key-length", analyzer.DefaultMaxKeyLength, "longest key length to try")
	crackCmd.Flags().IntVar(&crackKeyLen, "key-length", 0, "known key length (skips the estimate)")
}

func runCrack(cmd *cobra.Command, args []string) error {
	log := logger.Named("crack")

	// Validate flags
	if crackMaxKeyLen <= 0 {
		return fmt.Errorf("invalid max-key-length: %d (must be positive)", crackMaxKeyLen)
	}
	if crackKeyLen < 0 {
		return fmt.Errorf("invalid key-length: %d (must be positive)", crackKeyLen)
	}

	text, err := readInput(cmd, crackText, args)
	if err != nil {
		return err
	}

	var rec *analyzer.Recovery
	if crackKeyLen > 0 {
		rec, err = analyzer.CrackWithLength(text, crackKeyLen)
	} else {
		rec, err = analyzer.Crack(text, crackMaxKeyLen)
	}
	if err != nil {
		return fmt.Errorf("failed to recover key: %w", err)
	}
	log.Debug("key recovered",
		logging.Int("key_length", rec.KeyLength),
		logging.String("key", string(rec.Key)),
		logging.Float64("ioc", rec.IoC),
		logging.Bool("length_given", crackKeyLen > 0))

	preview, err := cipher.Decrypt(text, string(rec.Key))
	if err != nil {
		return fmt.Errorf("failed to decrypt with recovered key: %w", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), output.RenderRecovery(rec, preview))
	return nil
}
