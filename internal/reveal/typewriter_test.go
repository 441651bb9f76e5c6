package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypewriterRevealsMonotonically(t *testing.T) {
	content := "### 안녕\n**굵게**"
	w := NewTypewriter("m1", content, DefaultTypingDelay)
	clock := NewVirtualClock()
	require.Equal(t, 0, w.VisibleCount())
	require.False(t, w.Finished())

	clock.ScheduleIf(w.Start())
	prev := 0
	for !w.Finished() {
		require.Equal(t, 1, clock.Pending(), "exactly one timer in flight per machine")
		clock.Advance(DefaultTypingDelay, w.Advance)
		require.GreaterOrEqual(t, w.VisibleCount(), prev)
		prev = w.VisibleCount()
	}
	assert.Equal(t, len([]rune(content)), w.VisibleCount())
	assert.Equal(t, content, w.Visible())
	assert.Equal(t, 0, clock.Pending())

	clock.Advance(time.Second, w.Advance)
	assert.True(t, w.Finished(), "finished stays true")
	assert.Equal(t, w.Len(), w.VisibleCount())
}

func TestTypewriterCountsRunesNotBytes(t *testing.T) {
	w := NewTypewriter("m1", "가나다", time.Millisecond)
	clock := NewVirtualClock()
	clock.ScheduleIf(w.Start())
	clock.Advance(time.Millisecond, w.Advance)
	assert.Equal(t, "가", w.Visible())
	clock.Advance(2*time.Millisecond, w.Advance)
	assert.Equal(t, "가나다", w.Visible())
	assert.True(t, w.Finished())
}

func TestTypewriterCancelStopsChain(t *testing.T) {
	w := NewTypewriter("m1", "hello world", time.Millisecond)
	clock := NewVirtualClock()
	clock.ScheduleIf(w.Start())
	clock.Advance(3*time.Millisecond, w.Advance)
	require.Equal(t, 3, w.VisibleCount())

	w.Cancel()
	clock.Advance(time.Second, w.Advance)
	assert.Equal(t, 3, w.VisibleCount())
	assert.False(t, w.Finished())
	assert.Equal(t, 0, clock.Pending())
}

func TestTypewriterCompleteJumpsToEnd(t *testing.T) {
	w := NewTypewriter("m1", "hello", time.Millisecond)
	clock := NewVirtualClock()
	clock.ScheduleIf(w.Start())
	w.Complete()
	assert.True(t, w.Finished())
	assert.Equal(t, "hello", w.Visible())

	clock.Advance(time.Second, w.Advance)
	assert.Equal(t, 5, w.VisibleCount())
}

func TestEmptyContentFinishesImmediately(t *testing.T) {
	w := NewTypewriter("m1", "", time.Millisecond)
	_, ok := w.Start()
	assert.False(t, ok)
	assert.True(t, w.Finished())
}

func TestRevealedIsFinished(t *testing.T) {
	w := Revealed("u1", "question")
	assert.True(t, w.Finished())
	assert.False(t, w.Running())
	assert.Equal(t, "question", w.Visible())
	_, ok := w.Start()
	assert.False(t, ok)
}

func TestClockDispatchesToSeveralMachines(t *testing.T) {
	r := NewReasoning(DefaultPhases)
	w := NewTypewriter("m1", "abc", time.Second)
	clock := NewVirtualClock()
	clock.ScheduleIf(r.Start())
	clock.ScheduleIf(w.Start())

	dispatch := func(tick Tick) (Timer, bool) {
		if tick.ID == w.id {
			return w.Advance(tick)
		}
		return r.Advance(tick)
	}
	clock.Advance(2*time.Second, dispatch)
	assert.Equal(t, 1, r.Current())
	assert.Equal(t, 2, w.VisibleCount())
}
