package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("#2563eb")
	mutedColor  = lipgloss.Color("244")
	inkColor    = lipgloss.Color("#0f0f0f")

	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(inkColor).Padding(0, 1)
	subtitleStyle      = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headingStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0def4"))
	boldSpanStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#93c5fd"))

	badgeStyle      = lipgloss.NewStyle().Bold(true).Foreground(mutedColor)
	alertBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	markStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(inkColor).Padding(0, 1)

	userBubbleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accentColor).Padding(0, 1)
	noInfoBoxStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Foreground(mutedColor).Padding(0, 1)
	summaryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#93c5fd")).Padding(0, 1)
	summaryTextStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#bfdbfe"))
	fadeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))

	stepDoneStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	stepActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	stepPendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	percentStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60a5fa"))
	barFillStyle     = lipgloss.NewStyle().Foreground(accentColor)
	barTrackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("237"))

	chipStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1")).Background(lipgloss.Color("237")).Padding(0, 1)
	chipFocusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accentColor).Bold(true).Padding(0, 1)
	sourceChipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1")).Background(lipgloss.Color("236")).Padding(0, 1)
	buttonStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(accentColor).Bold(true).Padding(0, 2)
	ghostButtonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("237")).Padding(0, 2)
	focusMarkStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)

	tileSkeletonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Background(lipgloss.Color("235"))
	tileLoadedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e2e8f0")).Background(lipgloss.Color("24"))

	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	cardFocusStyle = cardStyle.Copy().BorderForeground(accentColor)
	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	edgeCardStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)

	composerStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	sendEnabledStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accentColor).Padding(0, 1)
	sendDisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("235")).Padding(0, 1)
	libraryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accentColor).Padding(0, 1)
	currentLineStyle  = lipgloss.NewStyle().Foreground(inkColor).Background(lipgloss.Color("#8ecae6"))

	statusBarStyle = lipgloss.NewStyle().Foreground(inkColor).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4"))
	helpBoxStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#7f5af0")).Padding(1, 2)
	valueStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(accentColor).Padding(0, 1)
)
