package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/plannie/internal/catalog"
	"github.com/csheth/plannie/internal/config"
	"github.com/csheth/plannie/internal/conversation"
	"github.com/csheth/plannie/internal/media"
	"github.com/csheth/plannie/internal/render"
	"github.com/csheth/plannie/internal/responder"
	"github.com/csheth/plannie/internal/reveal"
	"github.com/csheth/plannie/internal/session"
)

// Config wires runtime options into the TUI program.
type Config struct {
	Settings  *config.Config
	Responder responder.Responder
	Images    *media.Cache
	Logger    *zap.Logger
}

// New returns a tea.Model ready to be mounted into a Program.
func New(cfg Config) tea.Model {
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	r := cfg.Responder
	if r == nil {
		r = responder.New(responder.Config{Latency: settings.Responder.Latency})
	}
	ctrl := session.New(conversation.NewStore(), r, session.Options{
		Policy: settings.Library.OnSelect,
		Logger: logger,
	})

	input := textinput.New()
	input.Placeholder = inputPlaceholder
	input.Prompt = "› "
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if settings.Reveal.ReasoningStyle == config.StyleRotating && settings.Reveal.Ellipsis {
		spin.Spinner = spinner.Ellipsis
	}

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	return &model{
		config:        cfg,
		settings:      settings,
		log:           logger,
		ctrl:          ctrl,
		responderName: r.Name(),
		jobs:          newJobBus(logger),
		keys:          newKeyMap(),
		layout:        newPageLayout(),
		input:         input,
		spinner:       spin,
		viewport:      vp,
		expanded:      map[string]bool{},
		tiles:         map[string][]media.Tile{},
		focus:         focusInput,
		runningJobs:   map[string]jobSnapshot{},
		viewportDirty: true,
	}
}

type model struct {
	config        Config
	settings      *config.Config
	log           *zap.Logger
	ctrl          *session.Controller
	responderName string
	jobs          *jobBus
	keys          keyMap
	layout        pageLayout

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	reasoning *reveal.Reasoning
	typer     *reveal.Typewriter
	expanded  map[string]bool
	tiles     map[string][]media.Tile

	targets       []focusTarget
	focus         int
	libraryCursor int
	flowVisible   bool

	lastCall    *session.Call
	runningJobs map[string]jobSnapshot
	lastJob     *jobSnapshot

	viewportDirty bool
	followBottom  bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height, m.libraryRows())
		m.applyLayout()
		return m, nil
	case spinner.TickMsg:
		if !m.ctrl.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.markViewportDirty()
		return m, cmd
	case jobSignalMsg:
		m.runningJobs[msg.Snapshot.ID] = msg.Snapshot
		return m, nil
	case jobResultEnvelope:
		delete(m.runningJobs, msg.Snapshot.ID)
		snapshot := msg.Snapshot
		m.lastJob = &snapshot
		if msg.Payload == nil {
			return m, nil
		}
		return m.Update(msg.Payload)
	case respondResultMsg:
		return m, m.handleOutcome(msg.outcome)
	case reasoningTickMsg:
		if m.reasoning == nil {
			return m, nil
		}
		timer, ok := m.reasoning.Advance(msg.tick)
		m.markViewportDirty()
		if ok {
			return m, tickCmd(timer, reasoningTick)
		}
		return m, nil
	case typewriterTickMsg:
		return m, m.advanceTypewriter(msg.tick)
	case imageResultMsg:
		m.applyImage(msg)
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.jobs.CancelAll()
		m.ctrl.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Flow):
		m.flowVisible = !m.flowVisible
		return m, nil
	}
	if m.flowVisible {
		if key.Matches(msg, m.keys.Back) {
			m.flowVisible = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Library):
		m.toggleLibrary()
		return m, nil
	}
	if m.ctrl.LibraryOpen() {
		return m, m.handleLibraryKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.setFocus(focusInput)
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.focus != focusInput {
			return m, m.activate(m.focus)
		}
		return m, m.submitInput()
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus != focusInput {
		m.setFocus(focusInput)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetInput(m.input.Value())
	return m, cmd
}

func (m *model) handleLibraryKey(msg tea.KeyMsg) tea.Cmd {
	recs := catalog.Recommendations()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.libraryCursor > 0 {
			m.libraryCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.libraryCursor < len(recs)-1 {
			m.libraryCursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.ctrl.CloseLibrary()
		m.applyLayout()
	case key.Matches(msg, m.keys.Submit):
		return m.selectRecommendation(recs[m.libraryCursor])
	}
	return nil
}

func (m *model) toggleLibrary() {
	if m.ctrl.ToggleLibrary() {
		m.libraryCursor = 0
	}
	m.applyLayout()
}

func (m *model) selectRecommendation(rec catalog.Recommendation) tea.Cmd {
	call, ok := m.ctrl.Select(rec)
	m.applyLayout()
	if ok {
		return m.startCall(call)
	}
	m.syncInput()
	if !m.ctrl.LibraryOpen() {
		m.setFocus(focusInput)
		m.input.CursorEnd()
	}
	return nil
}

// activate runs the control at focus index idx.
func (m *model) activate(idx int) tea.Cmd {
	m.refreshViewportIfDirty()
	if idx < 0 || idx >= len(m.targets) {
		return nil
	}
	target := m.targets[idx]
	switch target.Kind {
	case targetCard, targetFollowUp:
		return m.submit(target.Text)
	case targetToggle:
		m.expanded[target.MessageID] = !m.expanded[target.MessageID]
		m.markViewportDirty()
	case targetEscalate:
		m.log.Info("support channel requested", zap.String("message", target.MessageID))
	case targetResetSearch:
		m.reset()
	}
	return nil
}

func (m *model) submitInput() tea.Cmd {
	m.ctrl.SetInput(m.input.Value())
	call, ok := m.ctrl.SubmitInput()
	if !ok {
		return nil
	}
	return m.startCall(call)
}

func (m *model) submit(text string) tea.Cmd {
	call, ok := m.ctrl.Submit(text)
	if !ok {
		return nil
	}
	return m.startCall(call)
}

func (m *model) startCall(call *session.Call) tea.Cmd {
	m.syncInput()
	m.setFocus(focusInput)
	m.applyLayout()
	m.stopReasoning()
	m.reasoning = m.newReasoning()
	m.lastCall = call
	cmds := []tea.Cmd{
		m.jobs.Start(jobKindRespond, respondJob(m.ctrl, call)),
		m.spinner.Tick,
	}
	if timer, ok := m.reasoning.Start(); ok {
		cmds = append(cmds, tickCmd(timer, reasoningTick))
	}
	m.followBottom = true
	m.markViewportDirty()
	return tea.Batch(cmds...)
}

func (m *model) newReasoning() *reveal.Reasoning {
	if m.settings.Reveal.ReasoningStyle == config.StyleRotating {
		return reveal.NewRotatingReasoning(reveal.DefaultRotatingLabels, m.settings.Reveal.RotateInterval)
	}
	return reveal.NewReasoning(reveal.DefaultPhases)
}

func (m *model) stopReasoning() {
	if m.reasoning != nil {
		m.reasoning.Stop()
		m.reasoning = nil
	}
}

func (m *model) handleOutcome(out session.Outcome) tea.Cmd {
	msg, applied := m.ctrl.Settle(out)
	if !applied {
		return nil
	}
	m.stopReasoning()
	m.followBottom = true
	m.markViewportDirty()

	var cmds []tea.Cmd
	if m.typer != nil && !m.typer.Finished() {
		m.typer.Complete()
		cmds = append(cmds, m.onRevealFinished(m.typer.MessageID()))
	}
	m.typer = reveal.NewTypewriter(msg.ID, msg.Content, m.settings.Reveal.TypingDelay)
	if timer, ok := m.typer.Start(); ok {
		cmds = append(cmds, tickCmd(timer, typewriterTick))
	} else {
		cmds = append(cmds, m.onRevealFinished(msg.ID))
	}
	return tea.Batch(cmds...)
}

func (m *model) advanceTypewriter(tick reveal.Tick) tea.Cmd {
	if m.typer == nil {
		return nil
	}
	wasFinished := m.typer.Finished()
	timer, ok := m.typer.Advance(tick)
	m.markViewportDirty()
	if ok {
		return tickCmd(timer, typewriterTick)
	}
	if !wasFinished && m.typer.Finished() {
		if m.viewport.AtBottom() {
			m.followBottom = true
		}
		return m.onRevealFinished(m.typer.MessageID())
	}
	return nil
}

// onRevealFinished starts image fetches for a message whose structured
// sections just became visible.
func (m *model) onRevealFinished(id string) tea.Cmd {
	msg, ok := m.ctrl.Store().Find(id)
	if !ok || msg.Response == nil || msg.NoInformation() {
		return nil
	}
	layout := render.LayoutImages(msg.Response.Images)
	if len(layout.Tiles) == 0 {
		return nil
	}
	urls := make([]string, len(layout.Tiles))
	for i, tile := range layout.Tiles {
		urls[i] = tile.URL
	}
	m.tiles[id] = media.NewTiles(urls)
	if m.config.Images == nil || !m.settings.Media.FetchImages {
		return nil
	}
	cmds := make([]tea.Cmd, len(urls))
	for i, url := range urls {
		cmds[i] = m.jobs.Start(jobKindImage, fetchImageJob(m.config.Images, id, i, url))
	}
	return tea.Batch(cmds...)
}

func (m *model) applyImage(msg imageResultMsg) {
	tiles, ok := m.tiles[msg.messageID]
	if !ok || msg.index < 0 || msg.index >= len(tiles) {
		return
	}
	if msg.err != nil {
		m.log.Warn("image fetch failed", zap.String("url", tiles[msg.index].URL), zap.Error(msg.err))
		tiles[msg.index].Failed(msg.err)
		return
	}
	if tiles[msg.index].Loaded(msg.asset) {
		m.markViewportDirty()
	}
}

func (m *model) reset() {
	m.ctrl.Reset()
	m.jobs.CancelAll()
	m.stopReasoning()
	if m.typer != nil {
		m.typer.Cancel()
		m.typer = nil
	}
	m.expanded = map[string]bool{}
	m.tiles = map[string][]media.Tile{}
	m.syncInput()
	m.setFocus(focusInput)
	m.applyLayout()
	m.viewport.GotoTop()
	m.markViewportDirty()
}

func (m *model) syncInput() {
	if m.input.Value() != m.ctrl.Input() {
		m.input.SetValue(m.ctrl.Input())
	}
}

func (m *model) setFocus(idx int) {
	m.focus = idx
	if idx == focusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.markViewportDirty()
}

// moveFocus cycles through the input and every rendered control.
func (m *model) moveFocus(delta int) {
	m.refreshViewportIfDirty()
	slots := len(m.targets) + 1
	pos := (m.focus + 1 + delta) % slots
	if pos < 0 {
		pos += slots
	}
	m.setFocus(pos - 1)
	m.refreshViewportIfDirty()
}

// typing reports whether an answer is still being revealed.
func (m *model) typing() bool {
	return m.typer != nil && !m.typer.Finished()
}

// finished reports whether message id renders in full.
func (m *model) finished(id string) bool {
	if m.typer == nil || m.typer.MessageID() != id {
		return true
	}
	return m.typer.Finished()
}
