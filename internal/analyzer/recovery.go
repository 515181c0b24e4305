package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/blackwell-systems/vigenere/internal/cipher"
)

// EnglishIoC is the index of coincidence of typical English text.
const EnglishIoC = 0.065

// DefaultMaxKeyLength bounds the key lengths EstimateKeyLength tries by default.
const DefaultMaxKeyLength = 20

// keyLengthTolerance lets a shorter key length win over a longer one whose
// IoC is only marginally closer to English. Multiples of the true length
// score about as well as the true length itself.
const keyLengthTolerance = 0.005

// englishFreq holds relative letter frequencies of English, A-Z.
var englishFreq = [cipher.AlphabetSize]float64{
	0.08167, 0.01492, 0.02782, 0.04253, 0.12702, 0.02228, 0.02015, // A-G
	0.06094, 0.06966, 0.00153, 0.00772, 0.04025, 0.02406, 0.06749, // H-N
	0.07507, 0.01929, 0.00095, 0.05987, 0.06327, 0.09056, 0.02758, // O-U
	0.00978, 0.02360, 0.00150, 0.01974, 0.00074, // V-Z
}

// letters returns the uppercased letters of text with everything else removed.
func letters(text string) string {
	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if cipher.IsLetter(c) {
			sb.WriteByte(c &^ 0x20)
		}
	}
	return sb.String()
}

// column returns every keyLen-th letter of text starting at offset.
func column(text string, offset, keyLen int) string {
	var sb strings.Builder
	for j := offset; j < len(text); j += keyLen {
		sb.WriteByte(text[j])
	}
	return sb.String()
}

// IndexOfCoincidence returns the probability that two letters drawn at random
// from text are equal. It is 0 when text has fewer than two letters.
func IndexOfCoincidence(text string) float64 {
	t := Count(text)
	n := t.Total()
	if n < 2 {
		return 0
	}
	sum := 0
	for _, c := range t {
		sum += c * (c - 1)
	}
	return float64(sum) / float64(n*(n-1))
}

// averageIoC splits text into keyLen columns and averages their IoC.
func averageIoC(text string, keyLen int) float64 {
	total := 0.0
	for i := 0; i < keyLen; i++ {
		total += IndexOfCoincidence(column(text, i, keyLen))
	}
	return total / float64(keyLen)
}

// EstimateKeyLength guesses the key length of a Vigenère ciphertext by
// finding the length whose columns look most like English.
func EstimateKeyLength(text string, maxLen int) (int, error) {
	if maxLen < 1 {
		return 0, fmt.Errorf("invalid max key length: %d (must be positive)", maxLen)
	}
	lt := letters(text)
	if len(lt) == 0 {
		return 0, ErrNoAlphabeticContent
	}
	if maxLen > len(lt) {
		maxLen = len(lt)
	}

	diffs := make([]float64, maxLen+1)
	minDiff := math.MaxFloat64
	for keyLen := 1; keyLen <= maxLen; keyLen++ {
		diffs[keyLen] = math.Abs(averageIoC(lt, keyLen) - EnglishIoC)
		if diffs[keyLen] < minDiff {
			minDiff = diffs[keyLen]
		}
	}

	for keyLen := 1; keyLen <= maxLen; keyLen++ {
		if diffs[keyLen] <= minDiff+keyLengthTolerance {
			return keyLen, nil
		}
	}
	return 1, nil
}

// chiSquared scores how far the observed counts, read with the given shift
// undone, are from English.
func chiSquared(observed Table, n, shift int) float64 {
	chi := 0.0
	for j := 0; j < cipher.AlphabetSize; j++ {
		expected := englishFreq[j] * float64(n)
		got := float64(observed[(j+shift)%cipher.AlphabetSize])
		chi += (got - expected) * (got - expected) / expected
	}
	return chi
}

// RecoverKey finds the most likely key of length keyLen by picking, for each
// column, the shift that best fits English letter frequencies.
func RecoverKey(text string, keyLen int) (cipher.Key, error) {
	if keyLen < 1 {
		return "", fmt.Errorf("invalid key length: %d (must be positive)", keyLen)
	}
	lt := letters(text)
	if len(lt) == 0 {
		return "", ErrNoAlphabeticContent
	}

	key := make([]byte, keyLen)
	for i := 0; i < keyLen; i++ {
		col := column(lt, i, keyLen)
		if len(col) == 0 {
			key[i] = 'A'
			continue
		}
		observed := Count(col)

		best, bestChi := 0, math.Inf(1)
		for shift := 0; shift < cipher.AlphabetSize; shift++ {
			if chi := chiSquared(observed, len(col), shift); chi < bestChi {
				best, bestChi = shift, chi
			}
		}
		key[i] = byte('A' + best)
	}
	return cipher.Key(key), nil
}

// minimalPeriod shortens a key that is an exact repetition of a shorter one,
// e.g. "LEMONLEMON" to "LEMON".
func minimalPeriod(key cipher.Key) cipher.Key {
	n := len(key)
	for p := 1; p < n; p++ {
		if n%p != 0 {
			continue
		}
		if strings.Repeat(string(key[:p]), n/p) == string(key) {
			return key[:p]
		}
	}
	return key
}

// Crack estimates the key length of ciphertext, trying lengths up to maxLen,
// and recovers the key.
func Crack(ciphertext string, maxLen int) (*Recovery, error) {
	keyLen, err := EstimateKeyLength(ciphertext, maxLen)
	if err != nil {
		return nil, err
	}
	return CrackWithLength(ciphertext, keyLen)
}

// CrackWithLength recovers the key of ciphertext assuming a key of keyLen.
func CrackWithLength(ciphertext string, keyLen int) (*Recovery, error) {
	key, err := RecoverKey(ciphertext, keyLen)
	if err != nil {
		return nil, err
	}
	key = minimalPeriod(key)
	return &Recovery{
		KeyLength: len(key),
		Key:       key,
		IoC:       averageIoC(letters(ciphertext), len(key)),
	}, nil
}
