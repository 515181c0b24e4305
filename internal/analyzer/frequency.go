// Package analyzer computes letter statistics over text and uses them to
// recover Vigenère keys from ciphertext.
package analyzer

import (
	"errors"

	"github.com/blackwell-systems/vigenere/internal/cipher"
)

// ErrNoAlphabeticContent is returned when a text has no letters to analyze.
var ErrNoAlphabeticContent = errors.New("no alphabetic content to analyze")

// Count tallies the letters of text, case-insensitively.
func Count(text string) Table {
	var t Table
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !cipher.IsLetter(c) {
			continue
		}
		t[(c|0x20)-'a']++
	}
	return t
}

// Analyze builds the frequency report for text.
func Analyze(text string) (*Report, error) {
	return FromTable(Count(text))
}

// FromTable builds a report from precomputed counts.
func FromTable(t Table) (*Report, error) {
	total := t.Total()
	if total == 0 {
		return nil, ErrNoAlphabeticContent
	}

	report := &Report{Total: total}
	for i, n := range t {
		if n == 0 {
			continue
		}
		report.Letters = append(report.Letters, LetterFrequency{
			Letter:  string(rune('A' + i)),
			Count:   n,
			Percent: 100 * float64(n) / float64(total),
		})
	}
	return report, nil
}
