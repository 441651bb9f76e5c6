package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Back    key.Binding
	Library key.Binding
	Up      key.Binding
	Down    key.Binding
	Reset   key.Binding
	Flow    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "전송 / 선택")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "다음 항목")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("Shift+Tab", "이전 항목")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "입력창으로")),
		Library: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("Ctrl+L", "추천 질문")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "위로")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "아래로")),
		Reset:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("Ctrl+R", resetLabel)),
		Flow:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("Ctrl+G", flowLabel)),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "종료")),
	}
}

// footerBindings are the hints shown under the composer.
func (k keyMap) footerBindings() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Library, k.Reset, k.Flow, k.Quit}
}
