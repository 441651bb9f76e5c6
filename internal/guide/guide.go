package guide

import "fmt"

// Step is one stage of the user flow an exchange walks through.
type Step struct {
	Title       string
	Description string
}

// Value is a product principle shown under the flow.
type Value struct {
	Name        string
	Description string
}

// Title heads the flow explainer overlay.
const Title = "User Flow"

// Build returns the five-stage flow from entry to follow-up, numbered.
func Build() []Step {
	stages := []Step{
		{Title: "Entry", Description: "추천 질문 카드 혹은 자유 입력으로 대화 시작"},
		{Title: "Reasoning", Description: "실시간 데이터 분석 애니메이션으로 '생각 중' 단계 가시화"},
		{Title: "Response", Description: "Typing 효과와 함께 구조화된 답변 노출"},
		{Title: "Verification", Description: "출처(Sources) 제공을 통한 정보 신뢰성 확보"},
		{Title: "Follow-up", Description: "요약 및 추천 질문으로 대화 맥락 확장"},
	}
	for i := range stages {
		stages[i].Title = fmt.Sprintf("%d. %s", i+1, stages[i].Title)
	}
	return stages
}

// Values returns the core principles listed below the flow.
func Values() []Value {
	return []Value{
		{Name: "TRUST", Description: "근거 기반 답변"},
		{Name: "CLARITY", Description: "구조화된 요약"},
		{Name: "SEAMLESS", Description: "끊김없는 대화"},
	}
}
