// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package passphrase

import (
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name   string
		phrase string
		want   Result
	}{
		{"empty", "", Result{}},
		{"whitespace only", " \t\n  ", Result{}},
		{"example phrase", "five robots juggle citrus on saturday", Result{Length: true, NumberWord: true, Unique: true}},
		{"five words", "five robots juggle citrus saturday", Result{Length: false, NumberWord: true, Unique: true}},
		{"no number word", "red robots juggle citrus on saturday", Result{Length: true, NumberWord: false, Unique: true}},
		{"repeat differs only in case", "Five robots juggle five citrus on", Result{Length: true, NumberWord: true, Unique: false}},
		{"mixed whitespace", "  ten\trobots\n\njuggle   citrus on\r\nsaturday ", Result{Length: true, NumberWord: true, Unique: true}},
		{"number word case-insensitive", "ZERO", Result{Length: false, NumberWord: true, Unique: true}},
		{"number word must match whole token", "fives elevenths tens", Result{Length: false, NumberWord: false, Unique: true}},
		{"single word", "hello", Result{Unique: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Evaluate(tc.phrase)
			if got != tc.want {
				t.Fatalf("Evaluate(%q) = %+v, want %+v", tc.phrase, got, tc.want)
			}
		})
	}
}

func TestEvaluate_LengthBelowMinimumNeverMet(t *testing.T) {
	words := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	for n := 0; n < MinWords; n++ {
		if Evaluate(strings.Join(words[:n], " ")).Length {
			t.Fatalf("length met with %d words", n)
		}
	}
	if !Evaluate(strings.Join(words, " ")).Length {
		t.Fatalf("length not met with %d words", len(words))
	}
}

func TestEvaluate_EveryNumberWordRecognised(t *testing.T) {
	for _, w := range []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"} {
		if !Evaluate("count " + strings.ToUpper(w[:1]) + w[1:]).NumberWord {
			t.Fatalf("number word %q not recognised", w)
		}
	}
	if Evaluate("eleven twelve").NumberWord {
		t.Fatalf("eleven/twelve must not count as number words")
	}
}

func TestResult_MetAndAllMet(t *testing.T) {
	r := Result{Length: true, NumberWord: false, Unique: true}
	if !r.Met(RequirementLength) || r.Met(RequirementNumberWord) || !r.Met(RequirementUnique) {
		t.Fatalf("Met mismatch for %+v", r)
	}
	if r.Met(Requirement("bogus")) {
		t.Fatalf("unknown requirement reported as met")
	}
	if r.AllMet() {
		t.Fatalf("AllMet true with numberWord unmet")
	}
	if !(Result{true, true, true}).AllMet() {
		t.Fatalf("AllMet false with everything met")
	}
	if len(Requirements) != 3 || Requirements[0] != RequirementLength || Requirements[2] != RequirementUnique {
		t.Fatalf("unexpected requirement order: %v", Requirements)
	}
}

func TestNumberWord(t *testing.T) {
	if d, ok := NumberWord("Ten"); !ok || d != "10" {
		t.Fatalf("NumberWord(Ten) = %q, %v", d, ok)
	}
	if _, ok := NumberWord("eleven"); ok {
		t.Fatalf("eleven should not be a number word")
	}
}
