// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.

package form

import (
	"fmt"

	"github.com/toeirei/passbuilder/internal/i18n"
)

// Step is one entry of the passphrase playbook.
type Step struct {
	Title  string `json:"title" yaml:"title"`
	Detail string `json:"detail" yaml:"detail"`
}

const playbookSteps = 3

// Playbook returns the guidance steps shown next to the form.
func Playbook() []Step {
	steps := make([]Step, 0, playbookSteps)
	for i := 1; i <= playbookSteps; i++ {
		steps = append(steps, Step{
			Title:  i18n.T(fmt.Sprintf("playbook.step%d.title", i)),
			Detail: i18n.T(fmt.Sprintf("playbook.step%d.detail", i)),
		})
	}
	return steps
}
