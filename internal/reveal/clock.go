package reveal

import (
	"sort"
	"time"
)

// Handler receives a due tick and may return a follow-up timer.
type Handler func(Tick) (Timer, bool)

// VirtualClock is a deterministic scheduler for driving machines without
// wall-clock waits. Timers fire in due order; ties fire in schedule order.
type VirtualClock struct {
	now     time.Duration
	seq     int
	pending []scheduled
}

type scheduled struct {
	due  time.Duration
	seq  int
	tick Tick
}

// NewVirtualClock returns a clock at time zero.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Schedule queues a timer relative to the current virtual time.
func (c *VirtualClock) Schedule(timer Timer) {
	c.seq++
	c.pending = append(c.pending, scheduled{due: c.now + timer.Delay, seq: c.seq, tick: timer.Tick})
}

// ScheduleIf queues timer when ok is true. It lets call sites forward a
// machine's (Timer, bool) result directly.
func (c *VirtualClock) ScheduleIf(timer Timer, ok bool) {
	if ok {
		c.Schedule(timer)
	}
}

// Now returns the elapsed virtual time.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Pending reports how many timers are queued.
func (c *VirtualClock) Pending() int {
	return len(c.pending)
}

// Advance moves the clock forward by d, firing every timer that becomes due.
// Follow-up timers returned by handle are fired too if they fall inside the
// window. It returns the number of ticks delivered.
func (c *VirtualClock) Advance(d time.Duration, handle Handler) int {
	target := c.now + d
	fired := 0
	for {
		idx := c.earliest()
		if idx < 0 || c.pending[idx].due > target {
			break
		}
		item := c.pending[idx]
		c.pending = append(c.pending[:idx], c.pending[idx+1:]...)
		c.now = item.due
		fired++
		if next, ok := handle(item.tick); ok {
			c.Schedule(next)
		}
	}
	c.now = target
	return fired
}

// RunUntilIdle fires timers until none remain or limit ticks were delivered.
func (c *VirtualClock) RunUntilIdle(limit int, handle Handler) int {
	fired := 0
	for fired < limit {
		idx := c.earliest()
		if idx < 0 {
			break
		}
		fired += c.Advance(c.pending[idx].due-c.now, handle)
	}
	return fired
}

func (c *VirtualClock) earliest() int {
	if len(c.pending) == 0 {
		return -1
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due == c.pending[j].due {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].due < c.pending[j].due
	})
	return 0
}
