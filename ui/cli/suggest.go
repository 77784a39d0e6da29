// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/passbuilder/internal/form"
	"github.com/toeirei/passbuilder/internal/i18n"
	"github.com/toeirei/passbuilder/internal/logging"
)

// suggestReport is the structured output of `suggest`.
type suggestReport struct {
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
	Message     string   `json:"message" yaml:"message"`
	Copied      bool     `json:"copied" yaml:"copied"`
}

func newSuggestCmd(a *app) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "suggest [words...]",
		Short: "Generate a password suggestion from a phrase",
		Long: `Derives a password from the phrase once it meets every requirement.
Each suggestion keeps the same initials-based core and gets a fresh random
symbol and digit. Reads the phrase from stdin when no words are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1, got %d", count)
			}
			phrase, err := readPhrase(cmd, args)
			if err != nil {
				return err
			}

			st := form.New(a.rand)
			st.Input(phrase)

			report := suggestReport{}
			for i := 0; i < count; i++ {
				if err := st.Submit(); err != nil {
					if errors.Is(err, form.ErrRequirementsUnmet) {
						fmt.Fprintln(cmd.ErrOrStderr(), st.Message)
					}
					return err
				}
				report.Suggestions = append(report.Suggestions, st.Suggestion)
			}
			report.Message = st.Message

			if a.cfg.Copy {
				if err := a.writeClipboard(report.Suggestions[0]); err != nil {
					logging.Warnf("could not copy suggestion to clipboard: %v", err)
				} else {
					report.Copied = true
				}
			}

			out := cmd.OutOrStdout()
			done, err := writeStructured(out, a.cfg.Output, report)
			if err != nil {
				return err
			}
			if !done {
				fmt.Fprintln(out, strings.Join(report.Suggestions, "\n"))
				msg := report.Message
				if report.Copied {
					msg += " " + i18n.T("cli.copied")
				}
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of suggestions to generate")
	cmd.Flags().Bool("copy", false, "Copy the first suggestion to the clipboard")
	return cmd
}
