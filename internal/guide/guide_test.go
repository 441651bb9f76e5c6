package guide

import "testing"

func TestBuildNumbersStagesInOrder(t *testing.T) {
	steps := Build()
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	if steps[0].Title != "1. Entry" || steps[4].Title != "5. Follow-up" {
		t.Fatalf("unexpected titles: %q .. %q", steps[0].Title, steps[4].Title)
	}
	for i, step := range steps {
		if step.Description == "" {
			t.Fatalf("step %d missing description", i)
		}
	}
}

func TestValues(t *testing.T) {
	values := Values()
	if len(values) != 3 || values[0].Name != "TRUST" {
		t.Fatalf("unexpected values: %+v", values)
	}
}
