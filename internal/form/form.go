// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

// Package form holds the state behind the "Phrase to Password" form: the
// typed phrase, the live requirement checklist, the status message and the
// last generated suggestion. Front ends own a State value and re-render it
// after each call.
package form

import (
	"errors"
	"io"
	"strings"

	"github.com/toeirei/passbuilder/internal/i18n"
	"github.com/toeirei/passbuilder/internal/logging"
	"github.com/toeirei/passbuilder/internal/passphrase"
)

// ErrRequirementsUnmet is returned when a suggestion is requested for a
// phrase that does not satisfy every requirement.
var ErrRequirementsUnmet = errors.New("phrase does not meet all requirements")

// Item is one row of the requirement checklist.
type Item struct {
	Key   passphrase.Requirement `json:"key" yaml:"key"`
	Label string                 `json:"label" yaml:"label"`
	Met   bool                   `json:"met" yaml:"met"`
}

// State is the form as a front end renders it.
type State struct {
	Phrase     string
	Result     passphrase.Result
	Suggestion string
	Message    string

	gen *passphrase.Generator
}

// New returns an empty form. rnd feeds the random suffix of suggestions;
// nil uses crypto/rand.
func New(rnd io.Reader) *State {
	return &State{gen: passphrase.NewGenerator(rnd)}
}

// Input records an edit of the phrase. The checklist is re-evaluated and the
// status message cleared; the last suggestion stays until the next submit.
func (s *State) Input(text string) {
	s.Phrase = text
	s.Result = passphrase.Evaluate(text)
	s.Message = ""
}

// Submit evaluates the trimmed phrase and, when every requirement holds,
// generates a new suggestion. It returns ErrRequirementsUnmet otherwise.
func (s *State) Submit() error {
	phrase := strings.TrimSpace(s.Phrase)
	s.Result = passphrase.Evaluate(phrase)

	if !s.Result.AllMet() {
		logging.Debugf("submit rejected: length=%t numberWord=%t unique=%t",
			s.Result.Length, s.Result.NumberWord, s.Result.Unique)
		s.Message = i18n.T("message.unmet")
		s.Suggestion = ""
		return ErrRequirementsUnmet
	}

	suggestion, err := s.generator().Suggest(phrase)
	if err != nil {
		s.Message = ""
		s.Suggestion = ""
		return err
	}
	logging.Debugf("generated suggestion from %d words", len(passphrase.Words(phrase)))
	s.Suggestion = suggestion
	s.Message = i18n.T("message.generated")
	return nil
}

// Checklist returns the requirement rows in display order.
func (s *State) Checklist() []Item {
	return Checklist(s.Result)
}

// Checklist labels r for display.
func Checklist(r passphrase.Result) []Item {
	items := make([]Item, 0, len(passphrase.Requirements))
	for _, req := range passphrase.Requirements {
		items = append(items, Item{
			Key:   req,
			Label: i18n.T("requirement." + string(req)),
			Met:   r.Met(req),
		})
	}
	return items
}

func (s *State) generator() *passphrase.Generator {
	if s.gen == nil {
		s.gen = &passphrase.Generator{}
	}
	return s.gen
}
