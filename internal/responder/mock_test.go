package responder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func instant(ctx context.Context, d time.Duration) error { return ctx.Err() }

func TestClassifyRoutesByKeywordPrecedence(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   Route
	}{
		{name: "welfare points", prompt: "올해 사내 복지 포인트 사용 기한은 언제까지인가요?", want: RouteImages},
		{name: "three images", prompt: "이미지 3개 보여줘", want: RouteImages},
		{name: "confidential", prompt: "비공개 대외비 프로젝트 정보", want: RouteNoInfo},
		{name: "no information keyword", prompt: "  정보 없음  ", want: RouteNoInfo},
		{name: "images beat no-info", prompt: "복지 포인트 정보 없음", want: RouteImages},
		{name: "default", prompt: "신규 프로젝트 기안 작성 시 필수 항목을 알려주세요.", want: RouteTextOnly},
		{name: "case sensitive ascii", prompt: "hello", want: RouteTextOnly},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.prompt))
		})
	}
}

func TestMockRespondReturnsExactFixtures(t *testing.T) {
	r := New(Config{Sleep: instant})
	ctx := context.Background()

	got, err := r.Respond(ctx, "올해 사내 복지 포인트 사용 기한은 언제까지인가요?", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(imagesFixture, got); diff != "" {
		t.Fatalf("images fixture mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, got.Sources, 3)
	assert.Len(t, got.Images, 3)
	assert.False(t, got.NoInformation)

	got, err = r.Respond(ctx, "비공개 대외비 프로젝트 정보", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(noInfoFixture, got); diff != "" {
		t.Fatalf("no-info fixture mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, got.NoInformation)

	got, err = r.Respond(ctx, "사내 필라테스 센터 예약 방법이 궁금합니다.", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(textOnlyFixture, got); diff != "" {
		t.Fatalf("text-only fixture mismatch (-want +got):\n%s", diff)
	}
}

func TestFixtureReturnsIndependentCopies(t *testing.T) {
	first := Fixture(RouteImages)
	first.Images[0] = "mutated"
	first.Sources[0].Title = "mutated"

	second := Fixture(RouteImages)
	assert.NotEqual(t, "mutated", second.Images[0])
	assert.NotEqual(t, "mutated", second.Sources[0].Title)
}

func TestMockRespondHonoursContextCancellation(t *testing.T) {
	r := New(Config{Latency: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := r.Respond(ctx, "anything", nil)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("responder did not observe cancellation")
	}
}

func TestMockRespondRoutesBlankPromptToTextOnly(t *testing.T) {
	r := New(Config{Sleep: instant})
	got, err := r.Respond(context.Background(), "   ", nil)
	require.NoError(t, err)
	if diff := cmp.Diff(textOnlyFixture, got); diff != "" {
		t.Fatalf("blank prompt fixture mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneKeepsEmptySlices(t *testing.T) {
	noInfo := Fixture(RouteNoInfo)
	require.NotNil(t, noInfo.Sources)
	require.NotNil(t, noInfo.Images)
	assert.Empty(t, noInfo.Sources)
	assert.Empty(t, noInfo.Images)

	textOnly := Fixture(RouteTextOnly)
	require.NotNil(t, textOnly.Images)
	assert.Empty(t, textOnly.Images)

	raw, err := json.Marshal(noInfo)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"sources":[]`)

	assert.Nil(t, Response{}.Clone().Sources)
}

func TestMockRespondWaitsConfiguredLatency(t *testing.T) {
	var slept time.Duration
	r := New(Config{Latency: DefaultLatency, Sleep: func(ctx context.Context, d time.Duration) error {
		slept = d
		return nil
	}})
	_, err := r.Respond(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultLatency, slept)
}

func TestFuncAdapter(t *testing.T) {
	boom := errors.New("boom")
	var f Responder = Func(func(ctx context.Context, text string, history []Turn) (Response, error) {
		return Response{}, boom
	})
	_, err := f.Respond(context.Background(), "x", nil)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "func", f.Name())
}
