// Package axis implements the AI Experience Impact Score (AXIS): a composite
// conversation-quality metric derived from three sub-scores.
package axis

import (
	"fmt"
	"math"
	"strconv"
)

// Tier is the qualitative label derived from an AXIS score.
type Tier string

const (
	TierPoor      Tier = "Poor"      // score < 3.0
	TierFair      Tier = "Fair"      // 3.0 <= score < 4.0
	TierExcellent Tier = "Excellent" // score >= 4.0
)

// Dimension is one scored factor of an assessment.
type Dimension struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// Assessment holds the three factor scores produced for one conversation.
type Assessment struct {
	RA Dimension `json:"ra"` // Resolution Accuracy
	IE Dimension `json:"ie"` // Interaction Effort
	HS Dimension `json:"hs"` // Handoff Smoothness
}

// Score computes the composite AXIS score: the arithmetic mean of the three
// sub-scores, rounded to one decimal place. Inputs are expected in [1,5];
// out-of-range inputs are a contract violation of the producer.
func Score(ra, ie, hs float64) float64 {
	return math.Round((ra+ie+hs)/3*10) / 10
}

// TierFor maps an AXIS score onto its qualitative tier.
func TierFor(score float64) Tier {
	switch {
	case score < 3.0:
		return TierPoor
	case score < 4.0:
		return TierFair
	default:
		return TierExcellent
	}
}

// FormatScore renders a score the way Front displays it: no trailing zero for
// whole numbers (4, not 4.0), one decimal otherwise (4.3).
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// ScoreTagName is the tag applied for the composite score, e.g. "AXIS: 4.3".
func ScoreTagName(score float64) string {
	return "AXIS: " + FormatScore(score)
}

// RangeTagName is the tag applied for the tier, e.g. "AXIS Range: Fair".
func RangeTagName(tier Tier) string {
	return "AXIS Range: " + string(tier)
}

// FormatComment renders the markdown comment posted back onto the
// conversation: composite score and tier, then each dimension as a bold
// score with an italicized explanation, in the fixed order RA, IE, HS.
func FormatComment(score float64, tier Tier, a Assessment) string {
	return fmt.Sprintf(`AXIS score: **%s** - %s
**RA: %s**
- _%s_

**IE: %s**
- _%s_

**HS: %s**
- _%s_`,
		FormatScore(score), tier,
		FormatScore(a.RA.Score), a.RA.Explanation,
		FormatScore(a.IE.Score), a.IE.Explanation,
		FormatScore(a.HS.Score), a.HS.Explanation,
	)
}
