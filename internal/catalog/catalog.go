// Package catalog holds the fixed recommendation prompts offered on the
// entry screen and in the library panel.
package catalog

// Recommendation is a predefined prompt card. Question is submitted verbatim.
type Recommendation struct {
	Title       string
	Description string
	Question    string
	Icon        string
}

// EdgeCase is the entry-screen trigger that routes to the no-information reply.
var EdgeCase = Recommendation{
	Title:    "시스템: 정보 부재 시나리오(Edge Case) 테스트 실행하기",
	Question: "비공개 대외비 프로젝트 정보",
	Icon:     "⚠",
}

var recommendations = []Recommendation{
	{
		Title:       "복지 포인트 사용 기한",
		Description: "2024년 포인트 소멸 시점 및 연장 가능 여부",
		Question:    "올해 사내 복지 포인트 사용 기한은 언제까지인가요?",
		Icon:        "◷",
	},
	{
		Title:       "신규 프로젝트 기안",
		Description: "ERP 시스템 프로젝트 등록 및 필수 항목 가이드",
		Question:    "신규 프로젝트 기안 작성 시 필수 항목을 알려주세요.",
		Icon:        "▤",
	},
	{
		Title:       "사내 시설 예약 방법",
		Description: "필라테스 및 사내 카페테리아 이용 안내",
		Question:    "사내 필라테스 센터 예약 방법이 궁금합니다.",
		Icon:        "⌂",
	},
	{
		Title:       "소프트웨어 신청",
		Description: "업무용 툴 라이선스 구매 및 설치 프로세스",
		Question:    "업무용 소프트웨어 구매 신청 프로세스를 알려주세요.",
		Icon:        "⚙",
	},
}

// Recommendations returns a copy of the four standard cards.
func Recommendations() []Recommendation {
	out := make([]Recommendation, len(recommendations))
	copy(out, recommendations)
	return out
}

// EntryCards is the entry screen's card list: the standard set followed by
// the edge-case trigger.
func EntryCards() []Recommendation {
	return append(Recommendations(), EdgeCase)
}
