package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/csheth/plannie/internal/catalog"
	"github.com/csheth/plannie/internal/conversation"
	"github.com/csheth/plannie/internal/media"
	"github.com/csheth/plannie/internal/render"
	"github.com/csheth/plannie/internal/responder"
	"github.com/csheth/plannie/internal/reveal"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		inputWidth:     60,
	}
}

// Update sizes the thread viewport for a window, leaving room for the header,
// composer, key hints, status bar and extra rows taken by the library panel.
func (l *pageLayout) Update(width, height, extra int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	l.inputWidth = innerWidth - 14
	if l.inputWidth < 20 {
		l.inputWidth = 20
	}
	const chrome = 7
	contentHeight := height - chrome - extra
	if contentHeight < 5 {
		contentHeight = 5
	}
	l.viewportHeight = contentHeight
}

func (m *model) libraryRows() int {
	if !m.ctrl.LibraryOpen() {
		return 0
	}
	return len(catalog.Recommendations()) + 3
}

func (m *model) applyLayout() {
	if m.layout.windowHeight > 0 {
		m.layout.Update(m.layout.windowWidth, m.layout.windowHeight, m.libraryRows())
	}
	m.viewport.Width = m.layout.viewportWidth
	m.viewport.Height = m.layout.viewportHeight
	m.input.Width = m.layout.inputWidth
	m.markViewportDirty()
}

type displayView struct {
	content string
	targets []focusTarget
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

// WriteLine writes s followed by a newline.
func (cb *contentBuilder) WriteLine(s string) {
	cb.WriteString(s)
	cb.WriteRune('\n')
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if m.viewportDirty {
		m.refreshViewport()
	}
}

func (m *model) refreshViewport() {
	m.viewportDirty = false
	atBottom := m.viewport.AtBottom()
	var view displayView
	if m.showEntry() {
		view = m.buildEntryContent()
	} else {
		view = m.buildThreadContent()
	}
	m.targets = view.targets
	if m.focus >= len(m.targets) {
		m.focus = focusInput
		m.input.Focus()
	}
	m.viewport.SetContent(view.content)
	if m.followBottom || (atBottom && m.typing()) {
		m.viewport.GotoBottom()
		m.followBottom = false
	}
	if m.focus != focusInput {
		m.ensureLineVisible(m.targets[m.focus].Line)
	}
}

func (m *model) ensureLineVisible(line int) {
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// showEntry reports whether the entry screen replaces the thread.
func (m *model) showEntry() bool {
	return m.ctrl.Store().Empty() && !m.ctrl.Pending()
}

func (m *model) buildEntryContent() displayView {
	cb := &contentBuilder{}
	var targets []focusTarget
	width := m.wrapWidth(2)

	cb.WriteRune('\n')
	cb.WriteLine(lipgloss.PlaceHorizontal(width, lipgloss.Center, headingStyle.Render(entryHeading)))
	cb.WriteLine(lipgloss.PlaceHorizontal(width, lipgloss.Center, helperStyle.Render(entryHelper)))
	cb.WriteRune('\n')

	for _, rec := range catalog.EntryCards() {
		target := focusTarget{Kind: targetCard, Text: rec.Question, Line: cb.Line()}
		focused := m.isFocused(len(targets))
		if rec == catalog.EdgeCase {
			label := fmt.Sprintf("%s %s", rec.Icon, rec.Title)
			cb.WriteRune('\n')
			target.Line = cb.Line()
			cb.WriteLine(focusLine(edgeCardStyle.Render(label), focused))
		} else {
			style := cardStyle
			if focused {
				style = cardFocusStyle
			}
			body := cardTitleStyle.Render(rec.Icon+"  "+rec.Title) + "\n" + helperStyle.Render(rec.Description)
			cb.WriteLine(style.Width(width - 4).Render(body))
		}
		targets = append(targets, target)
	}
	return displayView{content: cb.String(), targets: targets}
}

func (m *model) buildThreadContent() displayView {
	cb := &contentBuilder{}
	var targets []focusTarget
	width := m.wrapWidth(2)
	for _, msg := range m.ctrl.Store().Messages() {
		if cb.Line() > 0 {
			cb.WriteRune('\n')
		}
		if msg.IsAssistant() {
			m.writeAssistantMessage(cb, &targets, msg, width)
		} else {
			m.writeUserMessage(cb, msg, width)
		}
	}
	if m.ctrl.Pending() && m.reasoning != nil {
		if cb.Line() > 0 {
			cb.WriteRune('\n')
		}
		m.writeReasoning(cb, width)
	}
	return displayView{content: cb.String(), targets: targets}
}

func (m *model) writeUserMessage(cb *contentBuilder, msg conversation.Message, width int) {
	bubbleWidth := width * 3 / 4
	body := wrapText(msg.Content, bubbleWidth-2)
	cb.WriteLine(lipgloss.PlaceHorizontal(width, lipgloss.Right, userBubbleStyle.Render(body)))
}

func (m *model) writeAssistantMessage(cb *contentBuilder, targets *[]focusTarget, msg conversation.Message, width int) {
	finished := m.finished(msg.ID)
	plan := render.PlanMessage(msg.Content, msg.Response, finished)

	badge := badgeStyle.Render(plan.Badge)
	if plan.Badge == render.BadgeAlert {
		badge = alertBadgeStyle.Render(plan.Badge)
	}
	cb.WriteLine(markStyle.Render("PL") + " " + badge)

	if plan.ShowStepper() {
		cb.WriteLine(wrapText(stepperLine(plan.Stepper), width))
	}

	if plan.Typing {
		visible := ""
		if m.typer != nil && m.typer.MessageID() == msg.ID {
			visible = m.typer.Visible()
		}
		cb.WriteLine(wrapText(visible+"▌", width))
		return
	}

	lines := renderBlocks(plan.Blocks, width-2)
	clipped := false
	if plan.Collapsible && !m.expanded[msg.ID] && len(lines) > collapsedLines {
		lines = lines[:collapsedLines]
		clipped = true
	}
	body := strings.Join(lines, "\n")
	if msg.NoInformation() {
		body = noInfoBoxStyle.Width(width - 2).Render(body)
	}
	cb.WriteLine(body)
	if clipped {
		cb.WriteLine(fadeStyle.Render(strings.Repeat("░", width/2)))
	}

	if plan.Collapsible {
		label := "▾ " + expandLabel
		if m.expanded[msg.ID] {
			label = "▴ " + collapseLabel
		}
		m.writeControl(cb, targets, focusTarget{Kind: targetToggle, MessageID: msg.ID}, label, chipStyle)
	}

	if plan.Fallback {
		cb.WriteRune('\n')
		m.writeControl(cb, targets, focusTarget{Kind: targetEscalate, MessageID: msg.ID}, escalateLabel+" →", buttonStyle)
		m.writeControl(cb, targets, focusTarget{Kind: targetResetSearch, MessageID: msg.ID}, resetSearchLabel, ghostButtonStyle)
	}

	if plan.Summary != "" {
		cb.WriteRune('\n')
		summary := sectionHeaderStyle.Render("▌"+summaryLabel) + "\n" + summaryTextStyle.Render(wrapText(plan.Summary, width-6))
		cb.WriteLine(summaryBoxStyle.Width(width - 2).Render(summary))
	}

	if plan.Images.Kind != render.LayoutNone {
		cb.WriteRune('\n')
		cb.WriteLine(renderImageGrid(plan.Images, m.tiles[msg.ID], width-2))
	}

	if len(plan.Sources) > 0 {
		cb.WriteRune('\n')
		cb.WriteLine(helperStyle.Render("≡ " + sourcesLabel))
		cb.WriteLine(sourceChips(plan.Sources, width))
	}

	if len(plan.FollowUps) > 0 {
		cb.WriteRune('\n')
		cb.WriteLine(helperStyle.Render(followUpsLabel))
		for _, q := range plan.FollowUps {
			m.writeControl(cb, targets, focusTarget{Kind: targetFollowUp, MessageID: msg.ID, Text: q}, q, chipStyle)
		}
	}
}

// writeControl renders one focusable control on its own line. Chips switch to
// the focus style; buttons keep theirs and rely on the focus marker.
func (m *model) writeControl(cb *contentBuilder, targets *[]focusTarget, target focusTarget, label string, style lipgloss.Style) {
	target.Line = cb.Line()
	focused := m.isFocused(len(*targets))
	if focused && (target.Kind == targetFollowUp || target.Kind == targetToggle) {
		style = chipFocusStyle
	}
	cb.WriteLine(focusLine(style.Render(label), focused))
	*targets = append(*targets, target)
}

func (m *model) writeReasoning(cb *contentBuilder, width int) {
	r := m.reasoning
	if r.Rotating() {
		dots := "..."
		if m.settings.Reveal.Ellipsis {
			dots = m.spinner.View()
		}
		cb.WriteLine(markStyle.Render("PL") + " " + stepActiveStyle.Render(r.Label()+dots))
		return
	}

	cb.WriteLine(markStyle.Render("PL") + " " + stepActiveStyle.Render(reasoningHeader))
	parts := make([]string, 0, len(r.Phases()))
	for i, phase := range r.Phases() {
		switch r.State(i) {
		case reveal.PhaseDone:
			parts = append(parts, stepDoneStyle.Render("✓ "+phase.Label))
		case reveal.PhaseActive:
			parts = append(parts, stepActiveStyle.Render(m.spinner.View()+" "+phase.Label))
		default:
			parts = append(parts, stepPendingStyle.Render("✓ "+phase.Label))
		}
	}
	cb.WriteLine(wrapText(strings.Join(parts, stepPendingStyle.Render(" ─ ")), width))

	percent := r.Percent()
	barWidth := width - 8
	if barWidth < 10 {
		barWidth = 10
	}
	filled := barWidth * percent / 100
	bar := barFillStyle.Render(strings.Repeat("━", filled)) + barTrackStyle.Render(strings.Repeat("━", barWidth-filled))
	cb.WriteLine(bar + " " + percentStyle.Render(fmt.Sprintf("%d%%", percent)))
	cb.WriteLine(helperStyle.Render("• " + verifyingLabel))
}

func (m *model) isFocused(idx int) bool {
	return m.focus == idx
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func focusLine(label string, focused bool) string {
	if focused {
		return focusMarkStyle.Render("▸ ") + label
	}
	return "  " + label
}

func stepperLine(steps []responder.AnalysisStep) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		if step.Status == responder.StepComplete {
			parts[i] = stepDoneStyle.Render("✓ " + step.Label)
			continue
		}
		parts[i] = stepActiveStyle.Render(fmt.Sprintf("%d %s", i+1, step.Label))
	}
	return strings.Join(parts, stepPendingStyle.Render(" ─ "))
}

// renderBlocks styles formatted answer lines and wraps them to width.
func renderBlocks(blocks []render.Block, width int) []string {
	var lines []string
	for _, block := range blocks {
		switch block.Kind {
		case render.BlockSpacer:
			lines = append(lines, "")
		case render.BlockHeading:
			lines = append(lines, strings.Split(wrapText(renderSpans(block.Spans, headingStyle), width), "\n")...)
		default:
			lines = append(lines, strings.Split(wrapText(renderSpans(block.Spans, lipgloss.NewStyle()), width), "\n")...)
		}
	}
	return lines
}

func renderSpans(spans []render.Span, base lipgloss.Style) string {
	var b strings.Builder
	for _, span := range spans {
		if span.Kind == render.SpanBold {
			b.WriteString(boldSpanStyle.Render(span.Text))
			continue
		}
		b.WriteString(base.Render(span.Text))
	}
	return b.String()
}

// sourceChips lays source labels out left to right, wrapping at width.
func sourceChips(sources []responder.Source, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, src := range sources {
		chip := sourceChipStyle.Render(render.SourceLabel(src, render.SourceTitleWidth))
		w := lipgloss.Width(chip)
		if rowWidth > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if rowWidth > 0 {
			rowWidth++
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return strings.Join(rows, "\n")
}

// renderImageGrid draws the fixed tile arrangement for layout. tiles may be
// nil, in which case every tile shows its placeholder.
func renderImageGrid(layout render.ImageLayout, tiles []media.Tile, width int) string {
	tileAt := func(i int) media.Tile {
		if i < len(tiles) {
			return tiles[i]
		}
		return media.Tile{URL: layout.Tiles[i].URL}
	}
	switch layout.Kind {
	case render.LayoutSingle:
		return renderTile(tileAt(0), 0, width, tileHeight)
	case render.LayoutPair:
		half := (width - 1) / 2
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderTile(tileAt(0), 0, half, tileHeight),
			" ",
			renderTile(tileAt(1), 1, half, tileHeight),
		)
	case render.LayoutFeature:
		cell := (width - 1) / 3
		big := width - 1 - cell
		right := lipgloss.JoinVertical(lipgloss.Left,
			renderTile(tileAt(1), 1, cell, tileHeight),
			renderTile(tileAt(2), 2, cell, tileHeight),
		)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			renderTile(tileAt(0), 0, big, tileHeight*2),
			" ",
			right,
		)
	default:
		return ""
	}
}

func renderTile(tile media.Tile, index, width, height int) string {
	if tile.State == media.TileLoaded {
		label := fmt.Sprintf("▣ Ref %d", index+1)
		if tile.Asset.ContentType != "" {
			label += "\n" + tile.Asset.ContentType
		}
		label += "\n" + humanBytes(tile.Asset.Size)
		return tileLoadedStyle.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, label))
	}
	return tileSkeletonStyle.Render(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, "▢",
		lipgloss.WithWhitespaceChars("░")))
}

func humanBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func wrapText(text string, width int) string {
	if width < 10 {
		width = 10
	}
	return wrap.String(wordwrap.String(text, width), width)
}
