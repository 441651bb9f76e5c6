// Package session is the only writer of the conversation: it gates
// submissions, runs the single outstanding responder call and applies its
// outcome, and resets the thread.
package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/csheth/plannie/internal/catalog"
	"github.com/csheth/plannie/internal/config"
	"github.com/csheth/plannie/internal/conversation"
	"github.com/csheth/plannie/internal/responder"
)

// FailurePrefix starts the content of an assistant message built from a
// responder failure.
const FailurePrefix = "데이터 로드 실패: "

// FallbackContent renders a responder failure as message text.
func FallbackContent(err error) string {
	return FailurePrefix + err.Error()
}

// Options configures a Controller.
type Options struct {
	Policy config.LibraryPolicy
	Logger *zap.Logger
}

// Controller mediates every mutation of the conversation store. It is driven
// from a single goroutine; only Execute may run elsewhere.
type Controller struct {
	store     *conversation.Store
	responder responder.Responder
	policy    config.LibraryPolicy
	log       *zap.Logger

	input       string
	libraryOpen bool
	inflight    *Call
	calls       uint64
}

// Call is one accepted submission waiting on the responder.
type Call struct {
	ID      uint64
	Text    string
	Epoch   uint64
	Started time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// Outcome is what the responder produced for a Call.
type Outcome struct {
	Call     *Call
	Response responder.Response
	Err      error
	Elapsed  time.Duration
}

// New wires a controller to its store and responder.
func New(store *conversation.Store, r responder.Responder, opts Options) *Controller {
	policy := opts.Policy
	if policy == "" {
		policy = config.PolicySubmit
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, responder: r, policy: policy, log: logger}
}

// Store exposes the conversation for reading.
func (c *Controller) Store() *conversation.Store {
	return c.store
}

// Pending reports whether a responder call is outstanding.
func (c *Controller) Pending() bool {
	return c.store.Pending()
}

// Policy is the configured library click behaviour.
func (c *Controller) Policy() config.LibraryPolicy {
	return c.policy
}

// Input returns the current draft text.
func (c *Controller) Input() string {
	return c.input
}

// SetInput records the draft text.
func (c *Controller) SetInput(text string) {
	c.input = text
}

// CanSubmit reports whether Submit(Input()) would be accepted.
func (c *Controller) CanSubmit() bool {
	return strings.TrimSpace(c.input) != "" && !c.store.Pending()
}

// LibraryOpen reports whether the recommendation library is shown.
func (c *Controller) LibraryOpen() bool {
	return c.libraryOpen
}

// ToggleLibrary opens or closes the recommendation library.
func (c *Controller) ToggleLibrary() bool {
	c.libraryOpen = !c.libraryOpen
	return c.libraryOpen
}

// CloseLibrary hides the recommendation library.
func (c *Controller) CloseLibrary() {
	c.libraryOpen = false
}

// Submit accepts text when it is non-blank and nothing is pending. The user
// message stores text exactly as given. The returned Call must be handed to
// Execute and its Outcome to Settle.
func (c *Controller) Submit(text string) (*Call, bool) {
	if strings.TrimSpace(text) == "" {
		return nil, false
	}
	if c.store.Pending() {
		c.log.Debug("submit gated: reply pending")
		return nil, false
	}

	c.store.Append(conversation.SenderUser, text, nil)
	c.input = ""
	c.libraryOpen = false
	c.store.SetPending(true)

	c.calls++
	ctx, cancel := context.WithCancel(context.Background())
	call := &Call{
		ID:      c.calls,
		Text:    text,
		Epoch:   c.store.Epoch(),
		Started: time.Now(),
		ctx:     ctx,
		cancel:  cancel,
	}
	c.inflight = call
	c.log.Info("submit accepted", zap.Uint64("call", call.ID), zap.String("route", string(responder.Classify(text))))
	return call, true
}

// SubmitInput submits the current draft.
func (c *Controller) SubmitInput() (*Call, bool) {
	return c.Submit(c.input)
}

// Select applies a library entry according to the configured policy. With
// the populate policy the draft is replaced and nothing is submitted.
func (c *Controller) Select(rec catalog.Recommendation) (*Call, bool) {
	if c.policy == config.PolicyPopulate {
		c.input = rec.Question
		c.libraryOpen = false
		return nil, false
	}
	return c.Submit(rec.Question)
}

// Execute runs the responder for call and blocks until it settles. It touches
// no controller state, so it may run off the program loop. A panic inside
// the responder is reported as an error.
func (c *Controller) Execute(call *Call) (out Outcome) {
	out.Call = call
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("responder panic: %v", r)
		}
		out.Elapsed = time.Since(call.Started)
	}()
	out.Response, out.Err = c.responder.Respond(call.ctx, call.Text, nil)
	return out
}

// Settle appends the assistant message for out and clears pending. Outcomes
// from before a reset are discarded and reported as not applied.
func (c *Controller) Settle(out Outcome) (conversation.Message, bool) {
	call := out.Call
	if call == nil || call != c.inflight || call.Epoch != c.store.Epoch() {
		c.log.Debug("stale outcome dropped", zap.Bool("nil_call", call == nil))
		return conversation.Message{}, false
	}
	defer func() {
		c.store.SetPending(false)
		c.inflight = nil
		call.cancel()
	}()

	if out.Err != nil {
		c.log.Warn("responder failed", zap.Uint64("call", call.ID), zap.Duration("elapsed", out.Elapsed), zap.Error(out.Err))
		return c.store.Append(conversation.SenderAssistant, FallbackContent(out.Err), nil), true
	}
	c.log.Info("responder settled",
		zap.Uint64("call", call.ID),
		zap.Duration("elapsed", out.Elapsed),
		zap.Bool("no_information", out.Response.NoInformation),
	)
	resp := out.Response
	return c.store.Append(conversation.SenderAssistant, resp.Answer, &resp), true
}

// Reset clears the thread, the draft and the pending flag and closes the
// library. An in-flight call is cancelled and its outcome will be dropped.
// It reports whether the thread changed.
func (c *Controller) Reset() bool {
	c.input = ""
	c.libraryOpen = false
	c.abort()
	changed := c.store.Reset()
	if changed {
		c.log.Info("conversation reset")
	}
	return changed
}

// Close cancels any in-flight call.
func (c *Controller) Close() {
	c.abort()
}

func (c *Controller) abort() {
	if c.inflight != nil {
		c.inflight.cancel()
		c.inflight = nil
	}
}
