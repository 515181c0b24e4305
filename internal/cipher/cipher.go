// Package cipher implements a repeating-key additive shift cipher
// (Vigenère) over the 26-letter Latin alphabet.
//
// Only ASCII letters are transformed. Every other byte passes through
// unchanged and does not consume a key position.
package cipher

import (
	"errors"
	"strings"
)

// AlphabetSize is the number of letters the cipher shifts over.
const AlphabetSize = 26

// ErrInvalidKey is returned when a key has no alphabetic characters.
var ErrInvalidKey = errors.New("invalid key: must contain at least one letter A-Z")

// Key is a normalized key: uppercase ASCII letters only.
type Key string

// Normalize keeps only the alphabetic characters of key, uppercased,
// in their original order.
func Normalize(key string) Key {
	var sb strings.Builder
	sb.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if IsLetter(c) {
			sb.WriteByte(toUpper(c))
		}
	}
	return Key(sb.String())
}

// Cipher holds a validated, normalized key.
type Cipher struct {
	key Key
}

// New normalizes key and returns a Cipher, or ErrInvalidKey if nothing
// alphabetic remains.
func New(key string) (*Cipher, error) {
	k := Normalize(key)
	if len(k) == 0 {
		return nil, ErrInvalidKey
	}
	return &Cipher{key: k}, nil
}

// Key returns the normalized key.
func (c *Cipher) Key() Key {
	return c.key
}

// Encrypt shifts each letter of plaintext forward by the current key letter.
func (c *Cipher) Encrypt(plaintext string) string {
	return c.transform(plaintext, shiftEnc)
}

// Decrypt shifts each letter of ciphertext back by the current key letter.
func (c *Cipher) Decrypt(ciphertext string) string {
	return c.transform(ciphertext, shiftDec)
}

// transform applies shift to every letter of text, advancing the key cursor
// only on letters and preserving case.
func (c *Cipher) transform(text string, shift func(l, k byte) byte) string {
	out := []byte(text)
	cursor := 0
	for i := 0; i < len(out); i++ {
		ch := out[i]
		if !IsLetter(ch) {
			continue
		}
		lower := isLower(ch)
		r := shift(toUpper(ch), c.key[cursor%len(c.key)])
		if lower {
			r = toLower(r)
		}
		out[i] = r
		cursor++
	}
	return string(out)
}

// Encrypt encrypts plaintext with the normalized form of key.
func Encrypt(plaintext, key string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Encrypt(plaintext), nil
}

// Decrypt decrypts ciphertext with the normalized form of key.
func Decrypt(ciphertext, key string) (string, error) {
	c, err := New(key)
	if err != nil {
		return "", err
	}
	return c.Decrypt(ciphertext), nil
}

func shiftEnc(p, k byte) byte {
	return 'A' + ((p-'A')+(k-'A'))%AlphabetSize
}

func shiftDec(c, k byte) byte {
	return 'A' + ((c-'A')+AlphabetSize-(k-'A'))%AlphabetSize
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z')
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func toUpper(c byte) byte {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
