package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vigenere/internal/analyzer"
	"github.com/blackwell-systems/vigenere/internal/cipher"
	"github.com/blackwell-systems/vigenere/internal/logging"
	"github.com/blackwell-systems/vigenere/internal/output"
)

const (
	defaultKey  = "LEMON"
	defaultText = "Attack at dawn!"
)

var (
	verbose  bool
	demoKey  string
	demoText string

	// logger is set up by the root command before any subcommand runs.
	logger = logging.Nop()

	// RootCmd is the root command for vigenere
	RootCmd = &cobra.Command{
		Use:   "vigenere",
		Short: "Classical Vigenère cipher with frequency analysis",
		Long: `vigenere demonstrates a classical polyalphabetic substitution cipher.

Each letter of the text is shifted by the matching letter of a repeating key.
Non-letters pass through unchanged and do not use up a key position. Case is
preserved.

Run without a subcommand to see the full demonstration: the key and plaintext,
the ciphertext, the recovered plaintext, and a letter-frequency analysis of the
ciphertext.

This is a teaching tool. The Vigenère cipher offers no real security; see
'vigenere crack' for a demonstration of why.`,
		Example: `  # Run the demonstration
  vigenere

  # Run the demonstration with your own key and text
  vigenere --key SECRET --text "Meet me at noon"

  # Encrypt and decrypt
  vigenere encrypt --key LEMON "Attack at dawn!"
  echo "Lxfopv ef rnhr!" | vigenere decrypt --key LEMON

  # Frequency analysis
  vigenere analyze --table "Lxfopv ef rnhr!"

  # Recover the key from a long ciphertext
  vigenere crack < ciphertext.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.New(cmd.ErrOrStderr(), verbose)
		},
		RunE: runDemo,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs to stderr")

	RootCmd.Flags().StringVarP(&demoKey, "key", "k", defaultKey, "key for the demonstration")
	RootCmd.Flags().StringVarP(&demoText, "text", "t", defaultText, "plaintext for the demonstration")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2

	// Register subcommands
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(analyzeCmd)
	RootCmd.AddCommand(crackCmd)
}

// Execute runs the root command
func Execute() error {
	defer func() { _ = logger.Sync() }()
	return RootCmd.Execute()
}

// runDemo encrypts the demonstration text, decrypts it again, and prints the
// transcript followed by a frequency analysis of the ciphertext.
func runDemo(cmd *cobra.Command, args []string) error {
	log := logger.Named("demo")

	c, err := cipher.New(demoKey)
	if err != nil {
		return fmt.Errorf("failed to create cipher: %w", err)
	}
	log.Debug("key normalized", logging.String("key", string(c.Key())), logging.Int("key_length", len(c.Key())))

	encrypted := c.Encrypt(demoText)
	decrypted := c.Decrypt(encrypted)
	if decrypted != demoText {
		log.Error("round trip mismatch", logging.String("plain", demoText), logging.String("decrypted", decrypted))
	}

	report, err := analyzer.Analyze(encrypted)
	if err != nil {
		return fmt.Errorf("failed to analyze ciphertext: %w", err)
	}
	log.Debug("ciphertext analyzed",
		logging.Int("letters", report.Total),
		logging.Int("distinct", len(report.Letters)))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, output.RenderTranscript(demoKey, demoText, encrypted, decrypted))
	fmt.Fprint(out, output.RenderFrequencyReport(report))

	return nil
}
