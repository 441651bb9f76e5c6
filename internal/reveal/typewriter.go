package reveal

import "time"

// DefaultTypingDelay is the pause between two revealed characters.
const DefaultTypingDelay = 2 * time.Millisecond

// Typewriter reveals one message's content a rune at a time.
type Typewriter struct {
	token
	messageID string
	runes     []rune
	visible   int
	finished  bool
	delay     time.Duration
}

// NewTypewriter returns a typewriter positioned before the first rune.
func NewTypewriter(messageID, content string, delay time.Duration) *Typewriter {
	if delay < 0 {
		delay = 0
	}
	return &Typewriter{
		token:     newToken(),
		messageID: messageID,
		runes:     []rune(content),
		delay:     delay,
	}
}

// Revealed returns a typewriter that is already finished. Used for user
// messages and for assistant messages that are no longer the newest.
func Revealed(messageID, content string) *Typewriter {
	w := NewTypewriter(messageID, content, 0)
	w.visible = len(w.runes)
	w.finished = true
	return w
}

// Start schedules the first increment. Empty content finishes immediately.
func (w *Typewriter) Start() (Timer, bool) {
	if w.finished {
		return Timer{}, false
	}
	if len(w.runes) == 0 {
		w.finished = true
		return Timer{}, false
	}
	w.active = true
	return w.schedule(w.delay), true
}

// Advance reveals one more rune and re-arms itself until the content is
// fully visible.
func (w *Typewriter) Advance(tick Tick) (Timer, bool) {
	if w.finished || !w.accepts(tick) {
		return Timer{}, false
	}
	w.visible++
	if w.visible >= len(w.runes) {
		w.visible = len(w.runes)
		w.finished = true
		w.cancel()
		return Timer{}, false
	}
	return w.schedule(w.delay), true
}

// Cancel stops the chain without finishing it.
func (w *Typewriter) Cancel() {
	w.cancel()
}

// Complete jumps to the end and stops the chain.
func (w *Typewriter) Complete() {
	w.cancel()
	w.visible = len(w.runes)
	w.finished = true
}

// MessageID returns the id of the message being revealed.
func (w *Typewriter) MessageID() string {
	return w.messageID
}

// VisibleCount is the number of revealed runes.
func (w *Typewriter) VisibleCount() int {
	return w.visible
}

// Len is the total number of runes.
func (w *Typewriter) Len() int {
	return len(w.runes)
}

// Finished reports whether the whole content is visible.
func (w *Typewriter) Finished() bool {
	return w.finished
}

// Running reports whether a reveal chain is still scheduled.
func (w *Typewriter) Running() bool {
	return w.active && !w.finished
}

// Visible returns the revealed prefix.
func (w *Typewriter) Visible() string {
	return string(w.runes[:w.visible])
}
