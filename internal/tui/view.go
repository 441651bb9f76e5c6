package tui

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/csheth/plannie/internal/catalog"
	"github.com/csheth/plannie/internal/guide"
)

func (m *model) View() string {
	if m.flowVisible {
		return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), "", m.flowView(), m.statusView())
	}
	m.refreshViewportIfDirty()
	parts := []string{m.headerView(), "", m.viewport.View()}
	if m.ctrl.LibraryOpen() {
		parts = append(parts, m.libraryView())
	}
	parts = append(parts, m.composerView(), m.keyHintsView(), m.statusView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *model) headerView() string {
	left := titleStyle.Render("PL") + " " + headingStyle.Render(appTitle) + " " + subtitleStyle.Render(appSubtitle)
	right := keyStyle.Render("Ctrl+G") + keyDescStyle.Render(" "+flowLabel+"  ") +
		keyStyle.Render("Ctrl+R") + keyDescStyle.Render(" "+resetLabel)
	width := m.layout.windowWidth
	if width <= 0 {
		width = m.wrapWidth(0)
	}
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *model) composerView() string {
	send := sendDisabledStyle.Render("⏎ 전송")
	if m.ctrl.CanSubmit() {
		send = sendEnabledStyle.Render("⏎ 전송")
	}
	library := helperStyle.Render("☰")
	if m.ctrl.LibraryOpen() {
		library = focusMarkStyle.Render("☰")
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, library, " ", m.input.View(), " ", send)
	return composerStyle.Width(m.layout.viewportWidth).Render(row)
}

func (m *model) libraryView() string {
	rows := []string{sectionHeaderStyle.Render(libraryTitle)}
	for idx, rec := range catalog.Recommendations() {
		line := fmt.Sprintf("%s %s  %s", rec.Icon, rec.Title, helperStyle.Render(rec.Description))
		if idx == m.libraryCursor {
			line = currentLineStyle.Render("▸ "+rec.Icon+" "+rec.Title) + "  " + helperStyle.Render(rec.Description)
		} else {
			line = "  " + line
		}
		rows = append(rows, line)
	}
	return libraryBoxStyle.Width(m.layout.viewportWidth).Render(strings.Join(rows, "\n"))
}

func (m *model) keyHintsView() string {
	var cells []string
	for _, binding := range m.keys.footerBindings() {
		help := binding.Help()
		cells = append(cells, keyStyle.Render(help.Key)+keyDescStyle.Render(" "+help.Desc))
	}
	return strings.Join(cells, " ")
}

func (m *model) statusView() string {
	stats := []string{
		fmt.Sprintf("Responder %s", m.responderName),
		fmt.Sprintf("메시지 %d", m.ctrl.Store().Len()),
	}
	switch {
	case m.ctrl.Pending():
		stats = append(stats, "응답 대기 중")
	case m.typing():
		stats = append(stats, "답변 작성 중")
	default:
		stats = append(stats, "준비됨")
	}
	if m.lastCall != nil {
		stats = append(stats, fmt.Sprintf("요청 #%d", m.lastCall.ID))
	}
	stats = append(stats, fmt.Sprintf("선택 %s", m.policyLabel()))
	stats = append(stats, m.jobStatusBadges()...)
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

func (m *model) policyLabel() string {
	return string(m.ctrl.Policy())
}

func (m *model) jobStatusBadges() []string {
	if len(m.runningJobs) == 0 {
		if m.lastJob != nil && m.lastJob.Status == jobStatusFailed {
			return []string{fmt.Sprintf("%s 실패", m.lastJob.Kind)}
		}
		return nil
	}
	counts := map[jobKind]int{}
	for _, snapshot := range m.runningJobs {
		counts[snapshot.Kind]++
	}
	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, string(kind))
	}
	sort.Strings(kinds)
	badges := make([]string, len(kinds))
	for i, kind := range kinds {
		badges[i] = fmt.Sprintf("%s×%d", kind, counts[jobKind(kind)])
	}
	return badges
}

func (m *model) flowView() string {
	lines := []string{sectionHeaderStyle.Render(guide.Title), ""}
	for _, step := range guide.Build() {
		lines = append(lines, headingStyle.Render(step.Title))
		lines = append(lines, helperStyle.Render("   "+step.Description))
	}
	lines = append(lines, "")
	var values []string
	for _, v := range guide.Values() {
		values = append(values, valueStyle.Render(v.Name)+" "+keyDescStyle.Render(v.Description))
	}
	lines = append(lines, strings.Join(values, "   "))
	lines = append(lines, "", keyStyle.Render(m.keys.Back.Help().Key)+keyDescStyle.Render(" 닫기"))
	return helpBoxStyle.Width(m.layout.viewportWidth).Render(strings.Join(lines, "\n"))
}

var ansiEscapeCodes = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

func stripANSI(text string) string {
	return ansiEscapeCodes.ReplaceAllString(text, "")
}
