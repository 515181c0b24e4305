package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/vigenere/internal/analyzer"
	"github.com/blackwell-systems/vigenere/internal/logging"
	"github.com/blackwell-systems/vigenere/internal/output"
)

var (
	analyzeText  string
	analyzeTable bool
	analyzeJSON  bool

	analyzeCmd = &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Show the letter frequency distribution of a text",
		Long: `Count how often each letter A-Z occurs in a text, ignoring case and
non-letters, and print each letter's share of the total.

Only letters that occur are listed, in alphabetical order. A text with no
letters is an error.

Text is read from --text, then from the arguments, then from stdin.`,
		Example: `  # Frequency section, as printed by the demonstration
  vigenere analyze "Lxfopv ef rnhr!"

  # Table with bars
  vigenere analyze --table < ciphertext.txt

  # Machine-readable
  vigenere analyze --json "Attack at dawn!"`,
		RunE: runAnalyze,
	}
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "text to analyze")
	analyzeCmd.Flags().BoolVar(&analyzeTable, "table", false, "render as a table with distribution bars")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the report as JSON")
	analyzeCmd.MarkFlagsMutuallyExclusive("table", "json")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := logger.Named("analyze")

	text, err := readInput(cmd, analyzeText, args)
	if err != nil {
		return err
	}

	report, err := analyzer.Analyze(text)
	if err != nil {
		return fmt.Errorf("failed to analyze text: %w", err)
	}
	log.Debug("text analyzed",
		logging.Int("letters", report.Total),
		logging.Int("distinct", len(report.Letters)),
		logging.Float64("ioc", analyzer.IndexOfCoincidence(text)))

	out := cmd.OutOrStdout()
	switch {
	case analyzeJSON:
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case analyzeTable:
		fmt.Fprint(out, output.RenderFrequencyTable(report))
	default:
		fmt.Fprint(out, output.RenderFrequencyReport(report))
	}
	return nil
}
