package axis

import (
	"strings"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name       string
		ra, ie, hs float64
		want       float64
	}{
		{"all twos", 2, 2, 2, 2.0},
		{"all threes", 3, 3, 3, 3.0},
		{"all fours", 4, 4, 4, 4.0},
		{"mixed whole mean", 4, 5, 3, 4.0},
		{"rounds down", 4, 4, 5, 4.3},
		{"rounds up", 2, 3, 3, 2.7},
		{"low end", 1, 1, 1, 1.0},
		{"high end", 5, 5, 5, 5.0},
		{"fractional inputs", 1.5, 2.5, 3.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.ra, tt.ie, tt.hs); got != tt.want {
				t.Errorf("Score(%v, %v, %v) = %v, want %v", tt.ra, tt.ie, tt.hs, got, tt.want)
			}
		})
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Tier
	}{
		{1.0, TierPoor},
		{2.9, TierPoor},
		{2.95, TierPoor},
		{3.0, TierFair},
		{3.9, TierFair},
		{3.95, TierFair},
		{4.0, TierExcellent},
		{5.0, TierExcellent},
	}

	for _, tt := range tests {
		if got := TierFor(tt.score); got != tt.want {
			t.Errorf("TierFor(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestScoreTierAgreement(t *testing.T) {
	if tier := TierFor(Score(2, 2, 2)); tier != TierPoor {
		t.Errorf("aggregate(2,2,2) tier = %v, want Poor", tier)
	}
	if tier := TierFor(Score(3, 3, 3)); tier != TierFair {
		t.Errorf("aggregate(3,3,3) tier = %v, want Fair", tier)
	}
	if tier := TierFor(Score(4, 4, 4)); tier != TierExcellent {
		t.Errorf("aggregate(4,4,4) tier = %v, want Excellent", tier)
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{4.0, "4"},
		{4.3, "4.3"},
		{5.0, "5"},
		{2.7, "2.7"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestTagNames(t *testing.T) {
	if got := ScoreTagName(4.0); got != "AXIS: 4" {
		t.Errorf("ScoreTagName(4.0) = %q, want %q", got, "AXIS: 4")
	}
	if got := RangeTagName(TierExcellent); got != "AXIS Range: Excellent" {
		t.Errorf("RangeTagName = %q, want %q", got, "AXIS Range: Excellent")
	}
}

func TestFormatComment(t *testing.T) {
	a := Assessment{
		RA: Dimension{Score: 4, Explanation: "Resolved without escalation."},
		IE: Dimension{Score: 5, Explanation: "Single clarification needed."},
		HS: Dimension{Score: 3, Explanation: "Customer repeated their order number."},
	}

	comment := FormatComment(4.0, TierExcellent, a)

	for _, want := range []string{
		"AXIS score: **4** - Excellent",
		"**RA: 4**",
		"**IE: 5**",
		"**HS: 3**",
		"- _Resolved without escalation._",
		"- _Single clarification needed._",
		"- _Customer repeated their order number._",
	} {
		if !strings.Contains(comment, want) {
			t.Errorf("comment missing %q:\n%s", want, comment)
		}
	}

	// RA, IE, HS appear in that fixed order.
	ra := strings.Index(comment, "**RA:")
	ie := strings.Index(comment, "**IE:")
	hs := strings.Index(comment, "**HS:")
	if !(ra < ie && ie < hs) {
		t.Errorf("dimension order wrong: RA@%d IE@%d HS@%d", ra, ie, hs)
	}
}
