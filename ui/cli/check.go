// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/toeirei/passbuilder/internal/form"
	"github.com/toeirei/passbuilder/internal/i18n"
	"github.com/toeirei/passbuilder/internal/passphrase"
)

var (
	metStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	unmetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// checkReport is the structured output of `check`.
type checkReport struct {
	Words        int         `json:"words" yaml:"words"`
	Requirements []form.Item `json:"requirements" yaml:"requirements"`
	AllMet       bool        `json:"allMet" yaml:"allMet"`
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [words...]",
		Short: "Check a phrase against the passphrase requirements",
		Long: `Evaluates the phrase and prints the requirement checklist.
Reads the phrase from stdin when no words are given. Exits non-zero
when any requirement is unmet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase, err := readPhrase(cmd, args)
			if err != nil {
				return err
			}
			result := passphrase.Evaluate(phrase)
			report := checkReport{
				Words:        len(passphrase.Words(phrase)),
				Requirements: form.Checklist(result),
				AllMet:       result.AllMet(),
			}

			out := cmd.OutOrStdout()
			done, err := writeStructured(out, a.cfg.Output, report)
			if err != nil {
				return err
			}
			if !done {
				for _, item := range report.Requirements {
					if item.Met {
						fmt.Fprintln(out, metStyle.Render(i18n.T("cli.checklist_met")+" "+item.Label))
					} else {
						fmt.Fprintln(out, unmetStyle.Render(i18n.T("cli.checklist_unmet")+" "+item.Label))
					}
				}
			}

			if !report.AllMet {
				fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("message.unmet"))
				return form.ErrRequirementsUnmet
			}
			return nil
		},
	}
}
