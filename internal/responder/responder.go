package responder

import (
	"context"
	"slices"
	"time"
)

// DefaultLatency mirrors the simulated "thinking" delay of the mock backend.
const DefaultLatency = 1800 * time.Millisecond

// Config describes how to build a Responder.
type Config struct {
	Latency time.Duration
	Sleep   func(ctx context.Context, d time.Duration) error
}

// Responder answers a single user query with a structured Response.
type Responder interface {
	Respond(ctx context.Context, text string, history []Turn) (Response, error)
	Name() string
}

// Func adapts an ordinary function into a Responder.
type Func func(ctx context.Context, text string, history []Turn) (Response, error)

// Respond calls f(ctx, text, history).
func (f Func) Respond(ctx context.Context, text string, history []Turn) (Response, error) {
	return f(ctx, text, history)
}

// Name implements Responder.
func (f Func) Name() string { return "func" }

// Turn is a prior exchange handed to the responder. The assistant UI never
// forwards history, so callers currently pass nil.
type Turn struct {
	Role    string
	Content string
}

// SourceType selects the icon shown next to a citation.
type SourceType string

const (
	SourcePDF SourceType = "PDF"
	SourceURL SourceType = "URL"
	SourceDoc SourceType = "DOC"
)

// Source is a citation attached to a Response.
type Source struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Type  SourceType `json:"type"`
}

// StepStatus tags an analysis stage.
type StepStatus string

const (
	StepComplete StepStatus = "complete"
	StepLoading  StepStatus = "loading"
	StepPending  StepStatus = "pending"
)

// AnalysisStep is one labeled stage shown while an answer is mid-reveal.
type AnalysisStep struct {
	Label  string     `json:"label"`
	Status StepStatus `json:"status"`
}

// Response is the payload returned for one assistant turn.
type Response struct {
	Answer        string         `json:"answer"`
	Summary       string         `json:"summary,omitempty"`
	Sources       []Source       `json:"sources"`
	Images        []string       `json:"images,omitempty"`
	FollowUps     []string       `json:"followUps"`
	AnalysisSteps []AnalysisStep `json:"analysisSteps,omitempty"`
	NoInformation bool           `json:"noInformation,omitempty"`
}

// Clone returns a deep copy so callers can never alias fixture slices. Empty
// and nil slices keep their distinction.
func (r Response) Clone() Response {
	out := r
	out.Sources = slices.Clone(r.Sources)
	out.Images = slices.Clone(r.Images)
	out.FollowUps = slices.Clone(r.FollowUps)
	out.AnalysisSteps = slices.Clone(r.AnalysisSteps)
	return out
}

// New builds the keyword-routing mock responder.
func New(cfg Config) Responder {
	latency := cfg.Latency
	if latency < 0 {
		latency = 0
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	return &mockResponder{latency: latency, sleep: sleep}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
