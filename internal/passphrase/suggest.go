// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package passphrase

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SpecialChars is the set the trailing symbol of a suggestion is drawn from.
const SpecialChars = "!@#$%^&*"

const digits = "0123456789"

// Generator derives password suggestions from phrases. The zero value draws
// its random suffix from crypto/rand.
type Generator struct {
	// Rand supplies the bytes used for the random suffix. Nil means crypto/rand.Reader.
	Rand io.Reader
}

// NewGenerator returns a Generator reading random bytes from r.
func NewGenerator(r io.Reader) *Generator {
	return &Generator{Rand: r}
}

// Core returns the deterministic part of a suggestion: the initial of every
// word with the first number word replaced by its digits, then cased
// alternately (upper at even positions of the joined string, lower at odd).
func Core(phrase string) string {
	words := Words(phrase)
	if len(words) == 0 {
		return ""
	}

	initials := make([]string, len(words))
	for i, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		initials[i] = string(r)
	}
	for i, w := range words {
		if d, ok := NumberWord(w); ok {
			initials[i] = d
			break
		}
	}

	var b strings.Builder
	pos := 0
	for _, r := range strings.Join(initials, "") {
		if pos%2 == 0 {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		pos++
	}
	return b.String()
}

// Suggest builds a password suggestion from phrase: Core followed by one
// symbol from SpecialChars and one decimal digit, both drawn uniformly.
// The phrase is not re-validated; callers gate on Evaluate first. An empty
// phrase yields an empty suggestion.
func (g *Generator) Suggest(phrase string) (string, error) {
	core := Core(phrase)
	if core == "" {
		return "", nil
	}
	src := g.Rand
	if src == nil {
		src = rand.Reader
	}
	special, err := pick(src, SpecialChars)
	if err != nil {
		return "", fmt.Errorf("draw special character: %w", err)
	}
	digit, err := pick(src, digits)
	if err != nil {
		return "", fmt.Errorf("draw trailing digit: %w", err)
	}
	return core + string(special) + string(digit), nil
}

// BuildSuggestion builds a suggestion using crypto/rand. It never fails.
func BuildSuggestion(phrase string) string {
	// crypto/rand.Reader does not return errors.
	s, _ := (&Generator{}).Suggest(phrase)
	return s
}

// pick draws one byte of set uniformly, rejecting bytes that would bias the
// modulo. set must be ASCII and shorter than 256 bytes.
func pick(r io.Reader, set string) (byte, error) {
	n := len(set)
	limit := 256 - 256%n
	var buf [1]byte
	for {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		if int(buf[0]) < limit {
			return set[int(buf[0])%n], nil
		}
	}
}
