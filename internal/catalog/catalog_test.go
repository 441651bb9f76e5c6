package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/plannie/internal/responder"
)

func TestRecommendationRoutes(t *testing.T) {
	recs := Recommendations()
	require.Len(t, recs, 4)
	assert.Equal(t, responder.RouteImages, responder.Classify(recs[0].Question))
	for _, rec := range recs[1:] {
		assert.Equal(t, responder.RouteTextOnly, responder.Classify(rec.Question), rec.Title)
	}
}

func TestEdgeCaseRoutesToNoInfo(t *testing.T) {
	cards := EntryCards()
	require.Len(t, cards, 5)
	assert.Equal(t, EdgeCase, cards[4])
	assert.Equal(t, responder.RouteNoInfo, responder.Classify(EdgeCase.Question))
}

func TestRecommendationsReturnsCopy(t *testing.T) {
	recs := Recommendations()
	recs[0].Question = "changed"
	assert.NotEqual(t, "changed", Recommendations()[0].Question)
}
