// Package reveal drives the timed parts of an exchange: the reasoning
// indicator shown while a reply is pending and the character-by-character
// reveal of the newest assistant answer.
//
// Machines never own a goroutine or a timer. Each step returns a Timer
// request; whoever drives the machine (a tea.Tick in the TUI, a VirtualClock
// in tests) delivers the embedded Tick back after the delay. Every machine has
// a unique id and a tag that changes whenever it schedules or is cancelled, so
// a late Tick from a torn-down chain is recognised and dropped.
package reveal

import (
	"sync/atomic"
	"time"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Tick is delivered back to the machine that scheduled it.
type Tick struct {
	ID  int
	Tag int
}

// Timer asks the driver to deliver Tick after Delay.
type Timer struct {
	Delay time.Duration
	Tick  Tick
}

// token carries the id/tag pair shared by every machine in this package.
type token struct {
	id     int
	tag    int
	active bool
}

func newToken() token {
	return token{id: nextID()}
}

func (t *token) schedule(delay time.Duration) Timer {
	t.tag++
	return Timer{Delay: delay, Tick: Tick{ID: t.id, Tag: t.tag}}
}

func (t *token) accepts(tick Tick) bool {
	return t.active && tick.ID == t.id && tick.Tag == t.tag
}

func (t *token) cancel() {
	t.active = false
	t.tag++
}
