package form

import (
	"strings"
	"testing"
)

func TestPlaybook_StepsResolved(t *testing.T) {
	steps := Playbook()
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	if steps[0].Title != "Start with a phrase" {
		t.Fatalf("unexpected first step %q", steps[0].Title)
	}
	for i, s := range steps {
		if strings.HasPrefix(s.Title, "playbook.") || strings.HasPrefix(s.Detail, "playbook.") {
			t.Fatalf("step %d not resolved from catalog: %+v", i, s)
		}
	}
}
