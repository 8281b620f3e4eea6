package rewrite

import (
	"testing"

	"github.com/HartBrook/pronghorn/internal/analyze"
	"github.com/stretchr/testify/assert"
)

func deltaReport(tokens int, score float64, efficiency int) *analyze.Report {
	return &analyze.Report{
		TokenCount: tokens,
		ContextEngineering: analyze.ContextEngineering{
			TokenEfficiency: analyze.TokenEfficiency{Efficiency: efficiency},
		},
		Overall: analyze.Overall{Score: score, MaxScore: 10},
	}
}

func TestComputeImprovements(t *testing.T) {
	t.Run("identical reports", func(t *testing.T) {
		r := deltaReport(100, 5.0, 40)
		imp := computeImprovements(r, r)

		assert.Equal(t, 0.0, imp.ScoreDelta)
		assert.Equal(t, 0.0, imp.ScorePercent)
		assert.Equal(t, 0, imp.TokenDelta)
		assert.Equal(t, "0.000000", imp.CostPerCall)
		assert.Equal(t, "0.0000", imp.CostPer1000)
		assert.Equal(t, "0.00", imp.CostPerYear)
		assert.False(t, imp.IsBetter)
	})

	t.Run("improvement with fewer tokens", func(t *testing.T) {
		before := deltaReport(1000, 5.0, 10)
		after := deltaReport(900, 6.0, 20)
		imp := computeImprovements(before, after)

		assert.Equal(t, 1.0, imp.ScoreDelta)
		assert.Equal(t, 20.0, imp.ScorePercent)
		assert.Equal(t, 10, imp.EfficiencyDelta)
		assert.Equal(t, -100, imp.TokenDelta)
		assert.Equal(t, -10.0, imp.TokenPercent)
		// costs are absolute: 100 tokens at $3 per million
		assert.Equal(t, "0.000300", imp.CostPerCall)
		assert.Equal(t, "0.3000", imp.CostPer1000)
		assert.Equal(t, "109.50", imp.CostPerYear)
		assert.True(t, imp.IsBetter)
	})

	t.Run("score regression is not better", func(t *testing.T) {
		before := deltaReport(100, 7.0, 50)
		after := deltaReport(150, 6.5, 50)
		imp := computeImprovements(before, after)

		assert.Equal(t, -0.5, imp.ScoreDelta)
		assert.Equal(t, 50, imp.TokenDelta)
		assert.False(t, imp.IsBetter)
	})

	t.Run("zero baselines guard percentages", func(t *testing.T) {
		before := deltaReport(0, 0, 0)
		after := deltaReport(10, 4.0, 30)
		imp := computeImprovements(before, after)

		assert.Equal(t, 0.0, imp.ScorePercent)
		assert.Equal(t, 0.0, imp.TokenPercent)
		assert.True(t, imp.IsBetter)
	})
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, round1(1.24))
	assert.Equal(t, 1.3, round1(1.25))
	assert.Equal(t, -0.5, round1(-0.45))
}
