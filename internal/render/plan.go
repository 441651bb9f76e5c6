package render

import (
	"unicode/utf8"

	"github.com/csheth/plannie/internal/responder"
)

// CollapseThreshold is the answer length (in runes) above which a finished
// answer starts collapsed behind a "show more" toggle.
const CollapseThreshold = 400

const (
	BadgeAnalysis = "Analysis Result"
	BadgeAlert    = "System Alert"
)

// Plan lists which parts of an assistant message are drawn.
type Plan struct {
	Badge       string
	Stepper     []responder.AnalysisStep
	Typing      bool
	Blocks      []Block
	Collapsible bool
	Fallback    bool
	Summary     string
	Images      ImageLayout
	Sources     []responder.Source
	FollowUps   []string
}

// ShowStepper reports whether the analysis stepper is drawn.
func (p Plan) ShowStepper() bool {
	return len(p.Stepper) > 0
}

// Collapsible reports whether content is long enough to collapse.
func Collapsible(content string) bool {
	return utf8.RuneCountInString(content) > CollapseThreshold
}

// PlanMessage decides what an assistant message shows. While the reveal is
// running only the stepper (unless the reply is the no-information variant)
// and the raw revealed text are drawn. Once finished the answer is formatted
// and the structured sections appear; the no-information variant swaps
// summary, images and sources for the fallback action panel.
func PlanMessage(content string, resp *responder.Response, finished bool) Plan {
	plan := Plan{Badge: BadgeAnalysis}
	noInfo := resp != nil && resp.NoInformation
	if noInfo {
		plan.Badge = BadgeAlert
	}
	if !finished {
		plan.Typing = true
		if resp != nil && !noInfo {
			plan.Stepper = append(plan.Stepper, resp.AnalysisSteps...)
		}
		return plan
	}

	plan.Blocks = Format(content)
	plan.Collapsible = Collapsible(content)
	if resp == nil {
		return plan
	}
	plan.FollowUps = append(plan.FollowUps, resp.FollowUps...)
	if noInfo {
		plan.Fallback = true
		return plan
	}
	plan.Summary = resp.Summary
	plan.Images = LayoutImages(resp.Images)
	plan.Sources = append(plan.Sources, resp.Sources...)
	return plan
}
