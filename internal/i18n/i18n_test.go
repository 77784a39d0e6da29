// Copyright (c) 2026 Passbuilder Team
// Passbuilder - passphrase to password builder
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import "testing"

func TestT_KnownMessages(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	cases := map[string]string{
		"requirement.length":     "Use six or more words",
		"requirement.numberWord": "Include a number word (zero–ten)",
		"requirement.unique":     "Avoid repeating words",
		"message.unmet":          "Tweak the phrase so all three checks light up.",
		"playbook.step3.title":   "Add a symbol",
	}
	for id, want := range cases {
		if got := T(id); got != want {
			t.Fatalf("T(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestT_FormattingAndFallback(t *testing.T) {
	if got := T("tui.copy_failed", "boom"); got != "Could not copy to clipboard: boom" {
		t.Fatalf("unexpected formatted message: %q", got)
	}
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected fallback to message ID, got %q", got)
	}
}

func TestT_LazyInit(t *testing.T) {
	localizer = nil
	if got := T("form.label"); got != "Your phrase" {
		t.Fatalf("expected lazy init to load catalog, got %q", got)
	}
}
