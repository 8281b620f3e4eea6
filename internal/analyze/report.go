package analyze

// Altitude classifies how an instruction balances rigid prescriptiveness
// against vague abstraction.
type Altitude string

const (
	AltitudeTooLow    Altitude = "too-low"
	AltitudeTooHigh   Altitude = "too-high"
	AltitudeJustRight Altitude = "just-right"
	AltitudeUnknown   Altitude = "unknown" // only before any analysis
)

// ComponentFlags records which of the 10 framework components are present,
// in fixed order.
type ComponentFlags struct {
	Role           bool `json:"role"`
	Tone           bool `json:"tone"`
	Background     bool `json:"background"`
	Task           bool `json:"task"`
	Examples       bool `json:"examples"`
	ChainOfThought bool `json:"chainOfThought"`
	OutputFormat   bool `json:"outputFormat"`
	Constraints    bool `json:"constraints"`
	Prefill        bool `json:"prefill"`
	XMLStructure   bool `json:"xmlStructure"`
}

// Components aggregates the flag checklist.
// Invariant: PresentCount+MissingCount == 10 and Score == PresentCount*10.
type Components struct {
	Flags        ComponentFlags `json:"flags"`
	PresentCount int            `json:"presentCount"`
	MissingCount int            `json:"missingCount"`
	Score        int            `json:"score"`
	Missing      []string       `json:"missing"`
}

// TokenEfficiency estimates how many of the prompt's tokens carry signal.
type TokenEfficiency struct {
	Total      int    `json:"total"`
	Useful     int    `json:"useful"`
	Efficiency int    `json:"efficiency"`
	Rating     string `json:"rating"`
}

// SignalDensity measures directive wording versus filler.
type SignalDensity struct {
	Density        int    `json:"density"`
	HighValueCount int    `json:"highValueCount"`
	FillerCount    int    `json:"fillerCount"`
	Rating         string `json:"rating"`
}

// Redundancy counts repeated 3-word phrases across the text.
type Redundancy struct {
	Score int    `json:"score"`
	Level string `json:"level"`
}

// ContextEngineering groups the context-quality metrics.
type ContextEngineering struct {
	TokenEfficiency TokenEfficiency `json:"tokenEfficiency"`
	SignalDensity   SignalDensity   `json:"signalDensity"`
	Altitude        Altitude        `json:"altitude"`
	Redundancy      Redundancy      `json:"redundancy"`
}

// ModelFit reports how well the prompt suits the chosen model.
type ModelFit struct {
	Compatibility int      `json:"compatibility"`
	Strengths     []string `json:"strengths"`
	Issues        []string `json:"issues"`
	Model         string   `json:"model"`
}

// Rating pairs a human label with a display color.
type Rating struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// Breakdown holds the four normalized 0-10 sub-scores.
type Breakdown struct {
	Components float64 `json:"components"`
	Efficiency float64 `json:"efficiency"`
	Altitude   float64 `json:"altitude"`
	ModelFit   float64 `json:"modelFit"`
}

// Overall is the weighted 0-10 score with its rating and breakdown.
type Overall struct {
	Score     float64   `json:"score"`
	MaxScore  int       `json:"maxScore"`
	Rating    Rating    `json:"rating"`
	Breakdown Breakdown `json:"breakdown"`
}

// Report is the full analysis of one prompt. Reports are produced fresh on
// every call and never mutated.
type Report struct {
	TokenCount         int                `json:"tokenCount"`
	Components         Components         `json:"components"`
	ContextEngineering ContextEngineering `json:"contextEngineering"`
	ModelFit           ModelFit           `json:"modelFit"`
	Overall            Overall            `json:"overallScore"`
}
