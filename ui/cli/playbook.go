// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/passbuilder/internal/form"
	"github.com/toeirei/passbuilder/internal/i18n"
	"github.com/toeirei/passbuilder/internal/passphrase"
)

type playbookReport struct {
	Steps        []form.Step `json:"steps" yaml:"steps"`
	Requirements []string    `json:"requirements" yaml:"requirements"`
}

func newPlaybookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "playbook",
		Short: "Show how to build a strong passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := playbookReport{Steps: form.Playbook()}
			for _, item := range form.Checklist(passphrase.Result{}) {
				report.Requirements = append(report.Requirements, item.Label)
			}

			out := cmd.OutOrStdout()
			done, err := writeStructured(out, a.cfg.Output, report)
			if err != nil || done {
				return err
			}

			fmt.Fprintln(out, i18n.T("playbook.title"))
			fmt.Fprintln(out)
			for i, step := range report.Steps {
				fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, step.Title, step.Detail)
			}
			fmt.Fprintln(out)
			for _, label := range report.Requirements {
				fmt.Fprintf(out, "- %s\n", label)
			}
			return nil
		},
	}
}
