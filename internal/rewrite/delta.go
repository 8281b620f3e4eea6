package rewrite

import (
	"fmt"
	"math"

	"github.com/HartBrook/pronghorn/internal/analyze"
)

// inputCostPerMillionTokens is the fixed reference price used for cost
// projections, independent of the selected model's actual pricing.
const inputCostPerMillionTokens = 3.0

// Improvements captures before/after deltas between two analyses. Cost
// fields are absolute values, formatted: a zero token delta reports
// CostPerCall "0.000000".
type Improvements struct {
	ScoreDelta      float64 `json:"scoreDelta"`
	ScorePercent    float64 `json:"scorePercent"`
	EfficiencyDelta int     `json:"efficiencyDelta"`
	TokenDelta      int     `json:"tokenDelta"`
	TokenPercent    float64 `json:"tokenPercent"`
	CostPerCall     string  `json:"costPerCall"`
	CostPer1000     string  `json:"costPer1000"`
	CostPerYear     string  `json:"costPerYear"`
	IsBetter        bool    `json:"isBetter"`
}

// computeImprovements diffs the analysis before and after rewriting.
func computeImprovements(before, after *analyze.Report) Improvements {
	scoreDelta := round1(after.Overall.Score - before.Overall.Score)

	scorePercent := 0.0
	if before.Overall.Score != 0 {
		scorePercent = round1(scoreDelta / before.Overall.Score * 100)
	}

	tokenDelta := after.TokenCount - before.TokenCount
	tokenPercent := 0.0
	if before.TokenCount != 0 {
		tokenPercent = round1(float64(tokenDelta) / float64(before.TokenCount) * 100)
	}

	perCall := math.Abs(float64(tokenDelta)) * inputCostPerMillionTokens / 1e6
	per1000 := perCall * 1000
	perYear := per1000 * 365

	return Improvements{
		ScoreDelta:      scoreDelta,
		ScorePercent:    scorePercent,
		EfficiencyDelta: after.ContextEngineering.TokenEfficiency.Efficiency - before.ContextEngineering.TokenEfficiency.Efficiency,
		TokenDelta:      tokenDelta,
		TokenPercent:    tokenPercent,
		CostPerCall:     fmt.Sprintf("%.6f", perCall),
		CostPer1000:     fmt.Sprintf("%.4f", per1000),
		CostPerYear:     fmt.Sprintf("%.2f", perYear),
		IsBetter:        scoreDelta > 0,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
