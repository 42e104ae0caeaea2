package models

// Chance is an ordinal admission-likelihood bucket, least to most favorable.
type Chance string

const (
	ChanceReach  Chance = "Reach"
	ChanceTarget Chance = "Target"
	ChanceLikely Chance = "Likely"
)

// Percentage maps the bucket onto the fixed gauge values shown in the UI.
func (c Chance) Percentage() int {
	switch c {
	case ChanceLikely:
		return 75
	case ChanceTarget:
		return 50
	default:
		return 25
	}
}

// Classification is the per-college verdict. Derived on every request,
// never persisted.
type Classification struct {
	Name        string `json:"name"`
	Chance      Chance `json:"chance"`
	AdmitRate   string `json:"admitRate"`
	AvgGPA      string `json:"avgGpa"`
	SATRange    string `json:"satRange"`
	GapAnalysis string `json:"gapAnalysis"`
}

// Summary counts classifications per bucket.
type Summary struct {
	Likely int `json:"likely"`
	Target int `json:"target"`
	Reach  int `json:"reach"`
}

// AggregateResult is the full derived analysis for one profile.
type AggregateResult struct {
	Colleges      []Classification `json:"colleges"`
	Summary       Summary          `json:"summary"`
	OverallChance Chance           `json:"overallChance"`
	Percentage    int              `json:"percentage"`
	SummaryText   string           `json:"summaryText"`
}
