package app

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/blackwell-systems/vigenere/internal/analyzer"
)

func TestAnalyzeCommand_Flags(t *testing.T) {
	for _, name := range []string{"text", "table", "json"} {
		if analyzeCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %s not defined", name)
		}
	}
}

func TestAnalyzeCommand_Default(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "analyze", "AAB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\n=== Frequency analysis ===\nA: 2 (66.67%)\nB: 1 (33.33%)\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestAnalyzeCommand_Table(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	stdout, _, err := executeCommand(t, "Lxfopv ef rnhr!", "analyze", "--table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Letter", "Distribution", "16.67%", "Total letters: 12"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q\nGot:\n%s", want, stdout)
		}
	}
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "", "analyze", "--json", "--text", "AAB")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var report analyzer.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, stdout)
	}
	if report.Total != 3 || len(report.Letters) != 2 {
		t.Errorf("report = %+v, want total 3 with 2 letters", report)
	}
	if report.Letters[0].Letter != "A" || report.Letters[0].Count != 2 {
		t.Errorf("first letter = %+v, want A: 2", report.Letters[0])
	}
}

func TestAnalyzeCommand_TableAndJSONExclusive(t *testing.T) {
	if _, _, err := executeCommand(t, "", "analyze", "--table", "--json", "abc"); err == nil {
		t.Error("expected error when --table and --json are both set")
	}
}

func TestAnalyzeCommand_NoLetters(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"digits argument", "", []string{"analyze", "123"}},
		{"empty stdin", "", []string{"analyze"}},
		{"empty text flag", "ignored", []string{"analyze", "--text", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.stdin, tt.args...)
			if !errors.Is(err, analyzer.ErrNoAlphabeticContent) {
				t.Errorf("error = %v, want ErrNoAlphabeticContent", err)
			}
		})
	}
}
