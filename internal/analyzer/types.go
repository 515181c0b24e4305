package analyzer

import "github.com/blackwell-systems/vigenere/internal/cipher"

// Table holds per-letter occurrence counts, index 0 = 'A'.
type Table [cipher.AlphabetSize]int

// Total returns the sum of all counts.
func (t Table) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// LetterFrequency is one row of a frequency report.
type LetterFrequency struct {
	Letter  string  `json:"letter"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // 0-100
}

// Report is the frequency distribution of a text's letters.
// Letters holds only nonzero counts, ordered A to Z.
type Report struct {
	Total   int               `json:"total"`
	Letters []LetterFrequency `json:"letters"`
}

// Recovery is the result of a key recovery attempt against a ciphertext.
type Recovery struct {
	KeyLength int
	Key       cipher.Key
	IoC       float64 // Average column index of coincidence at KeyLength
}
