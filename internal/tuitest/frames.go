package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one full repaint of the screen.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	csiSeq      = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)
	oscSeq      = regexp.MustCompile(`\x1b\][^\x07]*(\x07|\x1b\\)`)
	shiftChars  = strings.NewReplacer("\x0e", "", "\x0f", "")
)

// plainText strips carriage returns and escape sequences from terminal output.
func plainText(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = oscSeq.ReplaceAllString(s, "")
	s = csiSeq.ReplaceAllString(s, "")
	return shiftChars.Replace(s)
}

// trimScreen drops trailing spaces on every line and trailing blank lines.
func trimScreen(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// splitFrames cuts the stream at every screen clear. Blank repaints are
// skipped; a stream that never clears becomes a single frame.
func splitFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, chunk := range clearScreen.Split(stream, -1) {
		chunk = strings.TrimPrefix(strings.Trim(chunk, "\x00"), "\x1b[H")
		text := trimScreen(plainText(chunk))
		if strings.TrimSpace(text) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: chunk, Plain: text})
	}
	if len(frames) == 0 {
		if text := trimScreen(plainText(stream)); strings.TrimSpace(text) != "" {
			frames = append(frames, Frame{ANSI: stream, Plain: text})
		}
	}
	return frames
}

// FinalFrame returns the last repaint, or false when nothing was drawn.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// FrameContaining returns the first frame whose plain text contains text.
func (r *Recording) FrameContaining(text string) (Frame, bool) {
	if r == nil {
		return Frame{}, false
	}
	for _, frame := range r.Frames {
		if strings.Contains(frame.Plain, text) {
			return frame, true
		}
	}
	return Frame{}, false
}

// Contains reports whether text was drawn at any point. bubbletea repaints
// only the lines that changed, so the whole stream is searched, not frames.
func (r *Recording) Contains(text string) bool {
	if r == nil {
		return false
	}
	return strings.Contains(plainText(string(r.Raw)), text)
}
