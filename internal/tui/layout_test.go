package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		extra          int
		viewportWidth  int
		viewportHeight int
		inputWidth     int
	}{
		{name: "narrow", width: 80, height: 24, viewportWidth: 76, viewportHeight: 17, inputWidth: 62},
		{name: "wide with library", width: 200, height: 40, extra: 7, viewportWidth: 196, viewportHeight: 26, inputWidth: 182},
		{name: "tiny", width: 30, height: 10, viewportWidth: minViewportWidth, viewportHeight: 5, inputWidth: 26},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height, tc.extra)
			if layout.viewportWidth != tc.viewportWidth {
				t.Fatalf("viewport width mismatch: got %d want %d", layout.viewportWidth, tc.viewportWidth)
			}
			if layout.viewportHeight != tc.viewportHeight {
				t.Fatalf("viewport height mismatch: got %d want %d", layout.viewportHeight, tc.viewportHeight)
			}
			if layout.inputWidth != tc.inputWidth {
				t.Fatalf("input width mismatch: got %d want %d", layout.inputWidth, tc.inputWidth)
			}
		})
	}
}

func TestLibraryShrinksViewport(t *testing.T) {
	m := newTestModel(t)
	before := m.viewport.Height
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if got, want := m.viewport.Height, before-m.libraryRows(); got != want {
		t.Fatalf("viewport height with library = %d, want %d", got, want)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.viewport.Height != before {
		t.Fatalf("closing the library should restore height %d, got %d", before, m.viewport.Height)
	}
}

func TestWrapTextBreaksLongWords(t *testing.T) {
	got := wrapText("abcdefghijklmnopqrstuvwxyz", 10)
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
}

func TestHumanBytes(t *testing.T) {
	cases := map[int64]string{
		512:     "512 B",
		2048:    "2.0 KB",
		3 << 20: "3.0 MB",
	}
	for in, want := range cases {
		if got := humanBytes(in); got != want {
			t.Fatalf("humanBytes(%d) = %q, want %q", in, got, want)
		}
	}
}
