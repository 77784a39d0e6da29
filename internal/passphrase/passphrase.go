// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// Package passphrase checks a memorable phrase against the passphrase
// requirements and derives a password suggestion from it.
//
// A phrase is split on runs of whitespace. Requirements are evaluated on the
// lowercased words; the suggestion is built from the original casing.
package passphrase // import "github.com/toeirei/passbuilder/internal/passphrase"

import "strings"

// MinWords is the number of words a phrase needs to satisfy the length requirement.
const MinWords = 6

// Requirement identifies one of the checks a phrase is evaluated against.
type Requirement string

const (
	RequirementLength     Requirement = "length"
	RequirementNumberWord Requirement = "numberWord"
	RequirementUnique     Requirement = "unique"
)

// Requirements lists every requirement in display order.
var Requirements = []Requirement{RequirementLength, RequirementNumberWord, RequirementUnique}

// numberWords maps spelled-out numbers to their digit form.
var numberWords = map[string]string{
	"zero":  "0",
	"one":   "1",
	"two":   "2",
	"three": "3",
	"four":  "4",
	"five":  "5",
	"six":   "6",
	"seven": "7",
	"eight": "8",
	"nine":  "9",
	"ten":   "10",
}

// NumberWord returns the digit string for a spelled-out number between zero
// and ten. The lookup is case-insensitive.
func NumberWord(word string) (string, bool) {
	d, ok := numberWords[strings.ToLower(word)]
	return d, ok
}

// Result records which requirements a phrase satisfies.
type Result struct {
	Length     bool `json:"length" yaml:"length"`
	NumberWord bool `json:"numberWord" yaml:"numberWord"`
	Unique     bool `json:"unique" yaml:"unique"`
}

// Met reports whether the given requirement is satisfied. Unknown
// requirements are never met.
func (r Result) Met(req Requirement) bool {
	switch req {
	case RequirementLength:
		return r.Length
	case RequirementNumberWord:
		return r.NumberWord
	case RequirementUnique:
		return r.Unique
	}
	return false
}

// AllMet reports whether every requirement is satisfied.
func (r Result) AllMet() bool {
	return r.Length && r.NumberWord && r.Unique
}

// Words splits a phrase into its words, keeping their original casing and order.
func Words(phrase string) []string {
	// strings.Fields already trims and drops empty tokens.
	return strings.Fields(phrase)
}

// Evaluate checks a phrase against every requirement. Empty or
// whitespace-only input satisfies none of them.
func Evaluate(phrase string) Result {
	words := Words(phrase)
	seen := make(map[string]struct{}, len(words))
	var res Result
	for _, w := range words {
		w = strings.ToLower(w)
		if _, ok := numberWords[w]; ok {
			res.NumberWord = true
		}
		seen[w] = struct{}{}
	}
	res.Length = len(words) >= MinWords
	res.Unique = len(words) > 0 && len(seen) == len(words)
	return res
}
