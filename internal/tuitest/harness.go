// Package tuitest runs the built binary inside a pseudo terminal, scripts
// keystrokes against it and records everything it draws.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 120
	defaultHeight  = 32
	defaultTimeout = 5 * time.Second
)

// Step is one scripted interaction. The harness first sleeps for Delay, then
// waits until Until has been drawn when it is set, then writes Input.
type Step struct {
	Delay time.Duration
	Until string
	Input []byte
}

// Type returns a step that writes text as typed input.
func Type(text string) Step {
	return Step{Input: []byte(text)}
}

// Press returns a step that sends one key sequence.
func Press(key []byte) Step {
	return Step{Input: key}
}

// Wait returns a step that only pauses the script.
func Wait(d time.Duration) Step {
	return Step{Delay: d}
}

// WaitFor returns a step that blocks until text appears on screen.
func WaitFor(text string) Step {
	return Step{Until: text}
}

// Config describes the program under test and the script to replay.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
	AllowInterrupt   bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// acceptable reports whether a non-nil exit error still counts as a clean run.
func (c Config) acceptable(err error) bool {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && slices.Contains(c.AllowedExitCodes, exitErr.ExitCode()) {
		return true
	}
	return c.AllowInterrupt && strings.Contains(err.Error(), "signal: interrupt")
}

// Recording is the raw terminal stream plus the frames parsed from it.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// Run starts cfg.Command in a pseudo terminal, plays the script and waits for
// the program to exit. The whole run is bounded by cfg.Timeout.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cfg = cfg.withDefaults()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)
	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Height), Cols: uint16(cfg.Width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	term := newTerminal(ptmx)
	go term.pump()
	defer func() {
		cancel()
		term.Close()
	}()

	started := time.Now()
	for i, step := range cfg.Steps {
		if err := term.play(ctx, step); err != nil {
			return nil, fmt.Errorf("tuitest: step %d: %w", i, err)
		}
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()
	select {
	case err := <-exited:
		if err != nil && !cfg.acceptable(err) {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	raw := term.Close()
	return &Recording{Raw: raw, Frames: splitFrames(raw), Duration: time.Since(started)}, nil
}

// terminal collects program output and lets the script wait on it.
type terminal struct {
	in      *os.File
	mu      sync.Mutex
	out     bytes.Buffer
	changed chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newTerminal(in *os.File) *terminal {
	return &terminal{
		in:      in,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// pump copies the pty into the buffer until the pty is closed.
func (t *terminal) pump() {
	defer close(t.done)
	replies := newQueryResponder(t.in)
	buf := make([]byte, 4096)
	for {
		n, err := t.in.Read(buf)
		if n > 0 {
			replies.Feed(buf[:n])
			t.record(buf[:n])
		}
		if err != nil {
			return
		}
	}
}

func (t *terminal) record(chunk []byte) {
	t.mu.Lock()
	t.out.Write(chunk)
	t.mu.Unlock()
	select {
	case t.changed <- struct{}{}:
	default:
	}
}

func (t *terminal) drawn(text string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Contains(plainText(t.out.String()), text)
}

func (t *terminal) play(ctx context.Context, step Step) error {
	if step.Delay > 0 {
		select {
		case <-ctx.Done():
			return fmt.Errorf("script interrupted: %w", ctx.Err())
		case <-time.After(step.Delay):
		}
	}
	for step.Until != "" && !t.drawn(step.Until) {
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %q: %w", step.Until, ctx.Err())
		case <-t.done:
			if t.drawn(step.Until) {
				return t.write(step.Input)
			}
			return fmt.Errorf("program output ended before %q appeared", step.Until)
		case <-t.changed:
		}
	}
	return t.write(step.Input)
}

func (t *terminal) write(input []byte) error {
	if len(input) == 0 {
		return nil
	}
	if _, err := t.in.Write(input); err != nil {
		return fmt.Errorf("write input: %w", err)
	}
	return nil
}

// Close shuts the pty, waits for the reader to drain and returns the output.
func (t *terminal) Close() []byte {
	t.once.Do(func() {
		_ = t.in.Close()
		<-t.done
	})
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]byte(nil), t.out.Bytes()...)
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	if !slices.ContainsFunc(env, func(entry string) bool { return strings.HasPrefix(entry, "TERM=") }) {
		env = append(env, "TERM=xterm-256color")
	}
	return env
}

var (
	// KeyEnter submits the composer or activates the focused control.
	KeyEnter = []byte{'\r'}
	// KeyCtrlC requests the program to terminate.
	KeyCtrlC = []byte{3}
	// KeyEsc closes overlays and returns focus to the input.
	KeyEsc = []byte{27}
	// KeyTab moves focus to the next control.
	KeyTab = []byte{'\t'}
	// KeyShiftTab moves focus to the previous control.
	KeyShiftTab = []byte("\x1b[Z")
	// KeyDown moves the library cursor or scrolls the thread.
	KeyDown = []byte("\x1b[B")
	// KeyUp moves the library cursor or scrolls the thread.
	KeyUp = []byte("\x1b[A")
	// KeyCtrlG toggles the user flow overlay.
	KeyCtrlG = []byte{7}
	// KeyCtrlL toggles the recommendation library.
	KeyCtrlL = []byte{12}
	// KeyCtrlR resets the conversation.
	KeyCtrlR = []byte{18}
)
