package app

import (
	"errors"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestTrimNewline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no newline", "abc", "abc"},
		{"unix newline", "abc\n", "abc"},
		{"windows newline", "abc\r\n", "abc"},
		{"only one removed", "abc\n\n", "abc\n"},
		{"lone carriage return kept", "abc\r", "abc\r"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trimNewline(tt.in); got != tt.want {
				t.Errorf("trimNewline(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestReadInput_TerminalStdin(t *testing.T) {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		t.Skip("no controlling terminal available")
	}
	defer tty.Close()

	cmd := &cobra.Command{}
	cmd.Flags().String("text", "", "")
	cmd.SetIn(tty)

	if _, err := readInput(cmd, "", nil); !errors.Is(err, errNoInput) {
		t.Errorf("readInput() error = %v, want errNoInput", err)
	}
}
