package tui

import (
	"github.com/csheth/plannie/internal/media"
	"github.com/csheth/plannie/internal/reveal"
	"github.com/csheth/plannie/internal/session"
)

const (
	appTitle     = "Plannie AI Prototype"
	appSubtitle  = "Unified Question Guide"
	resetLabel   = "대화 초기화"
	flowLabel    = "User Flow"
	entryHeading = "안녕하세요! 무엇을 도와드릴까요?"
	entryHelper  = "궁금한 내용을 입력하거나 아래 추천 질문을 선택해 보세요."
	libraryTitle = "추천 질문 라이브러리"

	inputPlaceholder = "무엇이든 물어보세요..."

	expandLabel   = "자세히 보기"
	collapseLabel = "간략히 보기"

	escalateLabel    = "인재개발팀 1:1 문의 채널 연결"
	resetSearchLabel = "검색어 초기화 및 다시 입력"

	reasoningHeader = "Deep Reasoning..."
	verifyingLabel  = "Knowledge verifying..."
	summaryLabel    = "Summary"
	sourcesLabel    = "Verification Sources"
	followUpsLabel  = "Follow-ups"
)

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	collapsedLines            = 8
	tileHeight                = 3
)

// focusInput is the focus index of the text input; actionable controls in the
// thread are numbered from zero.
const focusInput = -1

type targetKind int

const (
	targetCard targetKind = iota
	targetFollowUp
	targetToggle
	targetEscalate
	targetResetSearch
)

// focusTarget is one actionable control in the rendered thread.
type focusTarget struct {
	Kind      targetKind
	MessageID string
	Text      string
	Line      int
}

type reasoningTickMsg struct {
	tick reveal.Tick
}

type typewriterTickMsg struct {
	tick reveal.Tick
}

type respondResultMsg struct {
	outcome session.Outcome
}

type imageResultMsg struct {
	messageID string
	index     int
	asset     media.Asset
	err       error
}
