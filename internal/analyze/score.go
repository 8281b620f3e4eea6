package analyze

import "math"

// Sub-score weights. They sum to 1.0, so the weighted result is bounded by
// the largest sub-score and never exceeds 10.
const (
	weightComponents = 0.30
	weightEfficiency = 0.25
	weightAltitude   = 0.25
	weightModelFit   = 0.20
)

// altitudeScore maps the classification to a 0-10 sub-score. Too-low scores
// worse than too-high: over-prescription is harder to recover from.
func altitudeScore(a Altitude) float64 {
	switch a {
	case AltitudeJustRight:
		return 10
	case AltitudeTooHigh:
		return 5
	case AltitudeTooLow:
		return 3
	default:
		return 0
	}
}

// overallScore combines the four normalized sub-scores into a 0-10 score
// with one decimal place.
func overallScore(components Components, ce ContextEngineering, fit ModelFit) Overall {
	breakdown := Breakdown{
		Components: float64(components.Score) / 10,
		Efficiency: float64(ce.TokenEfficiency.Efficiency) / 10,
		Altitude:   altitudeScore(ce.Altitude),
		ModelFit:   float64(fit.Compatibility) / 10,
	}

	weighted := breakdown.Components*weightComponents +
		breakdown.Efficiency*weightEfficiency +
		breakdown.Altitude*weightAltitude +
		breakdown.ModelFit*weightModelFit

	score := math.Round(weighted*10) / 10

	return Overall{
		Score:     score,
		MaxScore:  10,
		Rating:    scoreRating(score),
		Breakdown: breakdown,
	}
}

// scoreRating buckets the overall score into a label and display color.
func scoreRating(score float64) Rating {
	switch {
	case score >= 9:
		return Rating{Label: "Excellent", Color: "green"}
	case score >= 7.5:
		return Rating{Label: "Very Good", Color: "teal"}
	case score >= 6:
		return Rating{Label: "Good", Color: "blue"}
	case score >= 4:
		return Rating{Label: "Fair", Color: "yellow"}
	default:
		return Rating{Label: "Needs Work", Color: "red"}
	}
}
