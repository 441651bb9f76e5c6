package render

import (
	"github.com/muesli/reflow/truncate"

	"github.com/csheth/plannie/internal/responder"
)

// SourceTitleWidth is the display width a source chip title is clipped to.
const SourceTitleWidth = 24

// SourceIcon returns the glyph drawn in front of a source chip.
func SourceIcon(t responder.SourceType) string {
	switch t {
	case responder.SourcePDF:
		return "▤"
	case responder.SourceURL:
		return "↗"
	default:
		return "≡"
	}
}

// SourceLabel is the chip text: icon, then the title clipped to width cells.
func SourceLabel(src responder.Source, width int) string {
	if width <= 0 {
		width = SourceTitleWidth
	}
	return SourceIcon(src.Type) + " " + truncate.StringWithTail(src.Title, uint(width), "…")
}
