// Package render maps a finished assistant message to the structured pieces
// the view draws. Everything here is a pure function of its inputs.
package render

import (
	"regexp"
	"strings"
)

// SpanKind distinguishes plain text from emphasized text.
type SpanKind int

const (
	SpanText SpanKind = iota
	SpanBold
)

// Span is a run of text inside one line.
type Span struct {
	Kind SpanKind
	Text string
}

// BlockKind classifies a formatted line.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockSpacer
)

// Block is one formatted line of an answer.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// Text joins the block's spans without markup.
func (b Block) Text() string {
	var sb strings.Builder
	for _, span := range b.Spans {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

const headingPrefix = "### "

var boldSpan = regexp.MustCompile(`\*\*.*?\*\*`)

// Format applies the two answer rules line by line: a line starting with
// "### " is a heading with the prefix removed, and every "**…**" span is
// emphasized with its delimiters removed. Blank lines become spacers.
func Format(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blocks = append(blocks, Block{Kind: BlockSpacer})
			continue
		}
		kind := BlockParagraph
		if strings.HasPrefix(line, headingPrefix) {
			kind = BlockHeading
			line = strings.TrimPrefix(line, headingPrefix)
		}
		blocks = append(blocks, Block{Kind: kind, Spans: Spans(line)})
	}
	return blocks
}

// Spans splits a single line into plain and bold runs.
func Spans(line string) []Span {
	var spans []Span
	pos := 0
	for _, loc := range boldSpan.FindAllStringIndex(line, -1) {
		if loc[0] > pos {
			spans = append(spans, Span{Kind: SpanText, Text: line[pos:loc[0]]})
		}
		spans = append(spans, Span{Kind: SpanBold, Text: line[loc[0]+2 : loc[1]-2]})
		pos = loc[1]
	}
	if pos < len(line) {
		spans = append(spans, Span{Kind: SpanText, Text: line[pos:]})
	}
	return spans
}
