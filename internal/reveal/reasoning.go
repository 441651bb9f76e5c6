package reveal

import (
	"math"
	"time"
)

// Phase is one labeled stage of the reasoning indicator.
type Phase struct {
	Label    string
	Duration time.Duration
}

// PhaseState describes how a phase should be drawn.
type PhaseState int

const (
	PhasePending PhaseState = iota
	PhaseActive
	PhaseDone
)

// DefaultPhases is the staged indicator shown while the responder thinks.
var DefaultPhases = []Phase{
	{Label: "사내 복지 DB 접속", Duration: 1800 * time.Millisecond},
	{Label: "2024년도 정책 데이터 파싱", Duration: 2200 * time.Millisecond},
	{Label: "사용자별 권한 필터링", Duration: 1500 * time.Millisecond},
	{Label: "시각적 그리드 구성", Duration: 1200 * time.Millisecond},
}

// DefaultRotatingLabels is the smaller label set of the rotating style.
var DefaultRotatingLabels = []string{
	"지식 베이스 검색 중",
	"관련 문서 분석 중",
	"답변 구성 중",
}

// Reasoning is the pending-reply progress indicator. In staged mode the
// phase index climbs from 0 to N-1 on a chain of single-shot timers and then
// holds; in rotating mode it wraps around on a fixed interval.
type Reasoning struct {
	token
	phases  []Phase
	rotate  bool
	current int
}

// NewReasoning builds a staged indicator.
func NewReasoning(phases []Phase) *Reasoning {
	return &Reasoning{token: newToken(), phases: append([]Phase(nil), phases...)}
}

// NewRotatingReasoning builds an indicator that cycles labels every interval.
func NewRotatingReasoning(labels []string, interval time.Duration) *Reasoning {
	phases := make([]Phase, len(labels))
	for i, label := range labels {
		phases[i] = Phase{Label: label, Duration: interval}
	}
	return &Reasoning{token: newToken(), phases: phases, rotate: true}
}

// Start resets the indicator to the first phase and returns the timer that
// advances it, if any.
func (r *Reasoning) Start() (Timer, bool) {
	r.active = true
	r.current = 0
	return r.next()
}

// Advance moves to the next phase when tick belongs to the live chain.
func (r *Reasoning) Advance(tick Tick) (Timer, bool) {
	if !r.accepts(tick) {
		return Timer{}, false
	}
	if r.rotate {
		r.current = (r.current + 1) % len(r.phases)
	} else if r.current < len(r.phases)-1 {
		r.current++
	}
	return r.next()
}

func (r *Reasoning) next() (Timer, bool) {
	if len(r.phases) == 0 {
		return Timer{}, false
	}
	if !r.rotate && r.current >= len(r.phases)-1 {
		return Timer{}, false
	}
	if r.rotate && len(r.phases) < 2 {
		return Timer{}, false
	}
	return r.schedule(r.phases[r.current].Duration), true
}

// Stop tears the indicator down. Ticks already in flight are ignored.
func (r *Reasoning) Stop() {
	r.cancel()
}

// Active reports whether the indicator is mounted.
func (r *Reasoning) Active() bool {
	return r.active
}

// Rotating reports whether the indicator cycles its labels.
func (r *Reasoning) Rotating() bool {
	return r.rotate
}

// Current returns the index of the phase in progress.
func (r *Reasoning) Current() int {
	return r.current
}

// Label returns the label of the phase in progress.
func (r *Reasoning) Label() string {
	if len(r.phases) == 0 {
		return ""
	}
	return r.phases[r.current].Label
}

// Phases returns the configured phases.
func (r *Reasoning) Phases() []Phase {
	return append([]Phase(nil), r.phases...)
}

// State reports how phase i should be drawn.
func (r *Reasoning) State(i int) PhaseState {
	switch {
	case i < r.current:
		return PhaseDone
	case i == r.current:
		return PhaseActive
	default:
		return PhasePending
	}
}

// Percent is the displayed progress: current/N, plus a head start of 5, capped at 100.
func (r *Reasoning) Percent() int {
	if len(r.phases) == 0 {
		return 100
	}
	pct := int(math.Round(float64(r.current)/float64(len(r.phases))*100)) + 5
	if pct > 100 {
		pct = 100
	}
	return pct
}
