package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/plannie/internal/responder"
)

func TestFormatHeadingAndBold(t *testing.T) {
	blocks := Format("### 제목\n기한은 **12월 31일**까지입니다.\n\n끝")

	want := []Block{
		{Kind: BlockHeading, Spans: []Span{{Kind: SpanText, Text: "제목"}}},
		{Kind: BlockParagraph, Spans: []Span{
			{Kind: SpanText, Text: "기한은 "},
			{Kind: SpanBold, Text: "12월 31일"},
			{Kind: SpanText, Text: "까지입니다."},
		}},
		{Kind: BlockSpacer},
		{Kind: BlockParagraph, Spans: []Span{{Kind: SpanText, Text: "끝"}}},
	}
	if diff := cmp.Diff(want, blocks); diff != "" {
		t.Fatalf("format mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatBoldInsideHeading(t *testing.T) {
	blocks := Format("### **중요** 안내")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockHeading, blocks[0].Kind)
	assert.Equal(t, []Span{{Kind: SpanBold, Text: "중요"}, {Kind: SpanText, Text: " 안내"}}, blocks[0].Spans)
	assert.Equal(t, "중요 안내", blocks[0].Text())
}

func TestFormatWhitespaceLineIsSpacer(t *testing.T) {
	blocks := Format("a\n   \nb")
	require.Len(t, blocks, 3)
	assert.Equal(t, BlockSpacer, blocks[1].Kind)
	assert.Empty(t, blocks[1].Spans)
}

func TestSpansLeavesUnclosedDelimiters(t *testing.T) {
	spans := Spans("**열림 만 있음")
	assert.Equal(t, []Span{{Kind: SpanText, Text: "**열림 만 있음"}}, spans)

	spans = Spans("**a** and **b**")
	assert.Equal(t, []Span{
		{Kind: SpanBold, Text: "a"},
		{Kind: SpanText, Text: " and "},
		{Kind: SpanBold, Text: "b"},
	}, spans)
}

func TestFormatHeadingNeedsSpace(t *testing.T) {
	blocks := Format("###붙음")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockParagraph, blocks[0].Kind)
	assert.Equal(t, "###붙음", blocks[0].Text())
}

func TestLayoutImagesBoundaries(t *testing.T) {
	urls := []string{"a", "b", "c", "d", "e"}
	cases := []struct {
		n     int
		kind  LayoutKind
		tiles int
	}{
		{0, LayoutNone, 0},
		{1, LayoutSingle, 1},
		{2, LayoutPair, 2},
		{3, LayoutFeature, 3},
		{5, LayoutFeature, 3},
	}
	for _, tc := range cases {
		layout := LayoutImages(urls[:tc.n])
		assert.Equal(t, tc.kind, layout.Kind, "n=%d", tc.n)
		assert.Len(t, layout.Tiles, tc.tiles, "n=%d", tc.n)
	}
}

func TestLayoutFeatureGeometry(t *testing.T) {
	layout := LayoutImages([]string{"a", "b", "c", "d"})
	assert.Equal(t, 3, layout.Columns)
	assert.Equal(t, 2, layout.Rows)

	want := []Tile{
		{Index: 0, URL: "a", Col: 0, Row: 0, ColSpan: 2, RowSpan: 2},
		{Index: 1, URL: "b", Col: 2, Row: 0, ColSpan: 1, RowSpan: 1},
		{Index: 2, URL: "c", Col: 2, Row: 1, ColSpan: 1, RowSpan: 1},
	}
	if diff := cmp.Diff(want, layout.Tiles); diff != "" {
		t.Fatalf("tiles mismatch (-want +got):\n%s", diff)
	}
}

func TestPlanWhileTyping(t *testing.T) {
	resp := responder.Fixture(responder.RouteImages)

	plan := PlanMessage(resp.Answer, &resp, false)
	assert.True(t, plan.Typing)
	assert.True(t, plan.ShowStepper())
	assert.Empty(t, plan.Summary)
	assert.Equal(t, LayoutNone, plan.Images.Kind)
	assert.Empty(t, plan.Sources)
	assert.Empty(t, plan.FollowUps)
	assert.Equal(t, BadgeAnalysis, plan.Badge)
}

func TestPlanFinishedShowsSections(t *testing.T) {
	resp := responder.Fixture(responder.RouteImages)

	plan := PlanMessage(resp.Answer, &resp, true)
	assert.False(t, plan.ShowStepper())
	assert.Equal(t, resp.Summary, plan.Summary)
	assert.Equal(t, LayoutFeature, plan.Images.Kind)
	assert.Equal(t, resp.Sources, plan.Sources)
	assert.Equal(t, resp.FollowUps, plan.FollowUps)
	assert.False(t, plan.Fallback)
	assert.NotEmpty(t, plan.Blocks)
}

func TestPlanNoInformationSuppressesSections(t *testing.T) {
	resp := responder.Fixture(responder.RouteNoInfo)
	resp.Summary = "should not show"
	resp.Images = []string{"x"}
	resp.Sources = []responder.Source{{ID: "s", Title: "t", Type: responder.SourceDoc}}
	resp.AnalysisSteps = []responder.AnalysisStep{{Label: "x", Status: responder.StepLoading}}

	typing := PlanMessage(resp.Answer, &resp, false)
	assert.False(t, typing.ShowStepper())
	assert.Equal(t, BadgeAlert, typing.Badge)

	plan := PlanMessage(resp.Answer, &resp, true)
	assert.True(t, plan.Fallback)
	assert.Empty(t, plan.Summary)
	assert.Equal(t, LayoutNone, plan.Images.Kind)
	assert.Empty(t, plan.Sources)
	assert.Equal(t, resp.FollowUps, plan.FollowUps)
}

func TestPlanWithoutResponse(t *testing.T) {
	plan := PlanMessage("데이터 로드 실패: boom", nil, true)
	assert.False(t, plan.Fallback)
	assert.Empty(t, plan.FollowUps)
	assert.Equal(t, "데이터 로드 실패: boom", plan.Blocks[0].Text())
}

func TestCollapsibleCountsRunes(t *testing.T) {
	assert.False(t, Collapsible(strings.Repeat("가", CollapseThreshold)))
	assert.True(t, Collapsible(strings.Repeat("가", CollapseThreshold+1)))

	long := strings.Repeat("a", CollapseThreshold+1)
	assert.False(t, PlanMessage(long, nil, false).Collapsible)
	assert.True(t, PlanMessage(long, nil, true).Collapsible)
}

func TestSourceLabelTruncates(t *testing.T) {
	src := responder.Source{ID: "1", Title: "2024 사내 복지 포인트 운영 규정 전문 및 부록", Type: responder.SourcePDF}
	label := SourceLabel(src, 10)
	assert.True(t, strings.HasPrefix(label, "▤ "))
	assert.True(t, strings.HasSuffix(label, "…"))

	short := SourceLabel(responder.Source{Title: "FAQ", Type: responder.SourceURL}, 0)
	assert.Equal(t, "↗ FAQ", short)
}
