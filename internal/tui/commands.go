package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/plannie/internal/media"
	"github.com/csheth/plannie/internal/reveal"
	"github.com/csheth/plannie/internal/session"
)

func respondJob(ctrl *session.Controller, call *session.Call) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		out := ctrl.Execute(call)
		return respondResultMsg{outcome: out}, out.Err
	}
}

func fetchImageJob(cache *media.Cache, messageID string, index int, url string) jobRunner {
	return func(parent context.Context) (tea.Msg, error) {
		asset, err := cache.Fetch(parent, url)
		return imageResultMsg{messageID: messageID, index: index, asset: asset, err: err}, err
	}
}

// tickCmd turns a reveal timer into a delayed program message.
func tickCmd(t reveal.Timer, wrap func(reveal.Tick) tea.Msg) tea.Cmd {
	tick := t.Tick
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return wrap(tick)
	})
}

func reasoningTick(t reveal.Tick) tea.Msg {
	return reasoningTickMsg{tick: t}
}

func typewriterTick(t reveal.Tick) tea.Msg {
	return typewriterTickMsg{tick: t}
}
