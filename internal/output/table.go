// Package output provides terminal output utilities for vigenere.
//
// This package includes:
//   - The plain transcript and frequency section printed by the default run
//   - A column table view of a frequency report with proportional bars
//   - A summary of a key recovery attempt
//
// Every renderer returns a string; callers decide where to write it.
// ANSI color codes are never part of the plain transcript or frequency
// section, and elsewhere only appear when IsColorEnabled reports true.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/vigenere/internal/analyzer"
)

// ANSI color codes for table display
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// barWidth is the width of the distribution bar for the most frequent letter.
const barWidth = 40

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderTranscript renders the four-line encrypt/decrypt transcript.
func RenderTranscript(key, plain, encrypted, decrypted string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Key:   %s\n", key))
	sb.WriteString(fmt.Sprintf("Plain: %s\n", plain))
	sb.WriteString(fmt.Sprintf("Encrypted: %s\n", encrypted))
	sb.WriteString(fmt.Sprintf("Decrypted: %s\n", decrypted))
	return sb.String()
}

// RenderFrequencyReport renders the frequency section: a blank line, the
// section header, then "L: count (pp.pp%)" per letter.
func RenderFrequencyReport(report *analyzer.Report) string {
	var sb strings.Builder
	sb.WriteString("\n=== Frequency analysis ===\n")
	if report == nil {
		return sb.String()
	}
	for _, lf := range report.Letters {
		sb.WriteString(fmt.Sprintf("%s: %d (%.2f%%)\n", lf.Letter, lf.Count, lf.Percent))
	}
	return sb.String()
}

// RenderFrequencyTable renders a report as a table with a bar per letter,
// scaled so the most frequent letter fills barWidth.
func RenderFrequencyTable(report *analyzer.Report) string {
	if report == nil || len(report.Letters) == 0 {
		return "No letters to analyze.\n"
	}

	maxCount := 0
	for _, lf := range report.Letters {
		if lf.Count > maxCount {
			maxCount = lf.Count
		}
	}

	var sb strings.Builder

	// Header
	sb.WriteString(fmt.Sprintf("%-7s %-7s %-9s %s\n",
		"Letter", "Count", "Percent", "Distribution"))
	sb.WriteString(strings.Repeat("─", 66))
	sb.WriteString("\n")

	// Rows
	for _, lf := range report.Letters {
		bar := renderBar(lf.Count, maxCount, barWidth)
		if lf.Count == maxCount {
			bar = colorize(colorGreen, bar)
		}
		sb.WriteString(fmt.Sprintf("%-7s %-7d %-9s %s\n",
			lf.Letter,
			lf.Count,
			fmt.Sprintf("%.2f%%", lf.Percent),
			bar))
	}

	sb.WriteString(strings.Repeat("─", 66))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total letters: %d\n", report.Total))

	return sb.String()
}

// renderBar returns a bar of '=' proportional to n/peak, at least one
// character wide for any nonzero n.
func renderBar(n, peak, width int) string {
	if n <= 0 || peak <= 0 {
		return ""
	}
	filled := (n * width) / peak
	if filled < 1 {
		filled = 1
	}
	return strings.Repeat("=", filled)
}

// RenderRecovery renders the result of a key recovery attempt along with a
// preview of the text decrypted under the recovered key.
func RenderRecovery(rec *analyzer.Recovery, preview string) string {
	if rec == nil {
		return "No key recovered.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Key length:    %d\n", rec.KeyLength))
	sb.WriteString(fmt.Sprintf("Column IoC:    %.4f (English ≈ %.3f)\n", rec.IoC, analyzer.EnglishIoC))
	sb.WriteString(fmt.Sprintf("Recovered key: %s\n", colorize(colorBold, string(rec.Key))))
	if preview != "" {
		sb.WriteString("\n")
		sb.WriteString(colorize(colorGray, "Preview:"))
		sb.WriteString("\n")
		sb.WriteString(truncate(strings.Join(strings.Fields(preview), " "), 72))
		sb.WriteString("\n")
	}
	if rec.IoC < analyzer.EnglishIoC-0.015 {
		sb.WriteString("\n")
		sb.WriteString(colorize(colorYellow, "Warning: column IoC is far from English; the text may be too short or not English."))
		sb.WriteString("\n")
	}
	return sb.String()
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
