package responder

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Route names the fixture a prompt resolves to.
type Route string

const (
	RouteImages   Route = "IMAGES"
	RouteTextOnly Route = "TEXT_ONLY"
	RouteNoInfo   Route = "NO_INFO"
)

const (
	keywordWelfarePoints = "복지 포인트"
	keywordThreeImages   = "이미지 3개"
	keywordNoInformation = "정보 없음"
	keywordConfidential  = "비공개 대외비"
)

type mockResponder struct {
	latency time.Duration
	sleep   func(ctx context.Context, d time.Duration) error
}

func (m *mockResponder) Name() string {
	return fmt.Sprintf("mock (latency %s)", m.latency)
}

func (m *mockResponder) Respond(ctx context.Context, text string, history []Turn) (Response, error) {
	if err := m.sleep(ctx, m.latency); err != nil {
		return Response{}, fmt.Errorf("mock responder interrupted: %w", err)
	}
	return Fixture(Classify(text)), nil
}

// Classify routes a prompt by case-sensitive substring match on its trimmed
// form. The first matching rule wins.
func Classify(text string) Route {
	prompt := strings.TrimSpace(text)
	switch {
	case strings.Contains(prompt, keywordWelfarePoints), strings.Contains(prompt, keywordThreeImages):
		return RouteImages
	case strings.Contains(prompt, keywordNoInformation), strings.Contains(prompt, keywordConfidential):
		return RouteNoInfo
	default:
		return RouteTextOnly
	}
}

// Fixture returns a copy of the canonical payload for route.
func Fixture(route Route) Response {
	switch route {
	case RouteImages:
		return imagesFixture.Clone()
	case RouteNoInfo:
		return noInfoFixture.Clone()
	default:
		return textOnlyFixture.Clone()
	}
}
