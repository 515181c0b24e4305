package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// errNoInput is returned when a command has no text to work on.
var errNoInput = errors.New("no input text provided. Use --text, pass the text as arguments, or pipe it to stdin")

// readInput returns the text a command should operate on:
// the --text flag if set, else the positional args joined by spaces,
// else everything on stdin with one trailing newline removed.
func readInput(cmd *cobra.Command, text string, args []string) (string, error) {
	if cmd.Flags().Changed("text") {
		return text, nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		// Nothing piped in; don't block waiting on the terminal.
		return "", errNoInput
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return trimNewline(string(data)), nil
}

// trimNewline removes a single trailing "\n" or "\r\n".
func trimNewline(s string) string {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	return strings.TrimSuffix(s, "\n")
}
