package tui

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type jobKind string

type jobStatus string

const (
	jobKindRespond jobKind = "respond"
	jobKindImage   jobKind = "image"
)

const (
	jobStatusRunning   jobStatus = "running"
	jobStatusSucceeded jobStatus = "succeeded"
	jobStatusFailed    jobStatus = "failed"
)

type jobSnapshot struct {
	ID          string
	Kind        jobKind
	Status      jobStatus
	StartedAt   time.Time
	CompletedAt time.Time
	Err         string
	Duration    time.Duration
}

type jobSignalMsg struct {
	Snapshot jobSnapshot
}

type jobResultEnvelope struct {
	Snapshot jobSnapshot
	Payload  tea.Msg
}

type jobRunner func(context.Context) (tea.Msg, error)

type jobBus struct {
	counter int64
	log     *zap.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

func newJobBus(logger *zap.Logger) *jobBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &jobBus{log: logger}
	b.ctx, b.cancel = context.WithCancel(context.Background())
	return b
}

// CancelAll cancels the context of every job started so far. Jobs started
// afterwards get a fresh context.
func (b *jobBus) CancelAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cancel()
	b.ctx, b.cancel = context.WithCancel(context.Background())
}

func (b *jobBus) current() context.Context {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctx
}

func (b *jobBus) nextID(kind jobKind) string {
	idx := atomic.AddInt64(&b.counter, 1)
	return fmt.Sprintf("%s-%d", kind, idx)
}

// Start announces the job, then runs it off the program loop. The result comes
// back as a jobResultEnvelope carrying the runner's message.
func (b *jobBus) Start(kind jobKind, runner jobRunner) tea.Cmd {
	started, runCmd := b.prepare(kind, runner)
	startCmd := func() tea.Msg {
		return jobSignalMsg{Snapshot: started}
	}
	return tea.Sequence(startCmd, runCmd)
}

// prepare binds the runner to the bus context current at call time, so a
// later CancelAll reaches it.
func (b *jobBus) prepare(kind jobKind, runner jobRunner) (jobSnapshot, tea.Cmd) {
	id := b.nextID(kind)
	ctx := b.current()
	started := time.Now()
	startSnapshot := jobSnapshot{ID: id, Kind: kind, Status: jobStatusRunning, StartedAt: started}

	runCmd := func() tea.Msg {
		payload, err := runner(ctx)
		snapshot := jobSnapshot{
			ID:          id,
			Kind:        kind,
			StartedAt:   started,
			CompletedAt: time.Now(),
		}
		if err != nil {
			snapshot.Status = jobStatusFailed
			snapshot.Err = err.Error()
		} else {
			snapshot.Status = jobStatusSucceeded
		}
		snapshot.Duration = snapshot.CompletedAt.Sub(started)
		b.log.Debug("job finished",
			zap.String("job", id),
			zap.String("status", string(snapshot.Status)),
			zap.Duration("duration", snapshot.Duration),
			zap.Error(err),
		)
		return jobResultEnvelope{Snapshot: snapshot, Payload: payload}
	}
	return startSnapshot, runCmd
}
