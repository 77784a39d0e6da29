// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/toeirei/passbuilder/internal/passphrase"
)

const goodPhrase = "five robots juggle citrus on saturday"

func TestInput_UpdatesChecklistAndClearsMessage(t *testing.T) {
	s := New(nil)
	s.Message = "stale"
	s.Input("five robots")

	if s.Message != "" {
		t.Fatalf("expected message cleared on input, got %q", s.Message)
	}
	want := passphrase.Result{Length: false, NumberWord: true, Unique: true}
	if s.Result != want {
		t.Fatalf("Result = %+v, want %+v", s.Result, want)
	}

	items := s.Checklist()
	if len(items) != 3 {
		t.Fatalf("expected 3 checklist items, got %d", len(items))
	}
	if items[0].Key != passphrase.RequirementLength || items[0].Met {
		t.Fatalf("unexpected length row: %+v", items[0])
	}
	if items[1].Label != "Include a number word (zero–ten)" || !items[1].Met {
		t.Fatalf("unexpected numberWord row: %+v", items[1])
	}
}

func TestSubmit_Unmet(t *testing.T) {
	s := New(bytes.NewReader([]byte{0, 0}))
	s.Suggestion = "old"
	s.Input("one two two")

	err := s.Submit()
	if !errors.Is(err, ErrRequirementsUnmet) {
		t.Fatalf("expected ErrRequirementsUnmet, got %v", err)
	}
	if s.Suggestion != "" {
		t.Fatalf("expected suggestion cleared, got %q", s.Suggestion)
	}
	if s.Message != "Tweak the phrase so all three checks light up." {
		t.Fatalf("unexpected message %q", s.Message)
	}
}

func TestSubmit_GeneratesSuggestion(t *testing.T) {
	s := New(bytes.NewReader([]byte{2, 7}))
	s.Input("  " + goodPhrase + "\n")

	if err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s.Suggestion != "5rJcOs#7" {
		t.Fatalf("Suggestion = %q, want 5rJcOs#7", s.Suggestion)
	}
	if s.Message != "Generated suggestion — customize it before you use it anywhere." {
		t.Fatalf("unexpected message %q", s.Message)
	}

	// Typing again keeps the suggestion visible but clears the message.
	s.Input(goodPhrase + " x")
	if s.Suggestion != "5rJcOs#7" || s.Message != "" {
		t.Fatalf("after input: suggestion=%q message=%q", s.Suggestion, s.Message)
	}
}

func TestSubmit_SourceFailure(t *testing.T) {
	s := New(bytes.NewReader(nil))
	s.Input(goodPhrase)
	if err := s.Submit(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if s.Suggestion != "" {
		t.Fatalf("expected no suggestion on failure, got %q", s.Suggestion)
	}
}

func TestZeroValueState_UsesDefaultGenerator(t *testing.T) {
	var s State
	s.Input(goodPhrase)
	if err := s.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(s.Suggestion) != 8 || s.Suggestion[:6] != "5rJcOs" {
		t.Fatalf("unexpected suggestion %q", s.Suggestion)
	}
}
