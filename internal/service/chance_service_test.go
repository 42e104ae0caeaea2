package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepitus/college-chances-api/internal/models"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		gpa     float64
		sat     int
		avgGPA  float64
		satMin  int
		satMax  int
		chance  models.Chance
		gap     string
	}{
		{
			name: "sat at range floor with gpa exactly 0.2 below average is target",
			gpa:  3.5, sat: 1390, avgGPA: 3.7, satMin: 1390, satMax: 1540,
			chance: models.ChanceTarget, gap: "Good fit within range",
		},
		{
			name: "sat at range ceiling is still target",
			gpa:  3.7, sat: 1540, avgGPA: 3.7, satMin: 1390, satMax: 1540,
			chance: models.ChanceTarget, gap: "Good fit within range",
		},
		{
			name: "one point above ceiling with gpa barely above average is likely",
			gpa:  3.7001, sat: 1541, avgGPA: 3.7, satMin: 1390, satMax: 1540,
			chance: models.ChanceLikely, gap: "Strong candidate",
		},
		{
			name: "above ceiling but gpa equal to average falls to reach",
			gpa:  3.7, sat: 1541, avgGPA: 3.7, satMin: 1390, satMax: 1540,
			chance: models.ChanceReach, gap: "Close match",
		},
		{
			name: "below range on both axes reports the shortfall",
			gpa:  3.0, sat: 1200, avgGPA: 3.7, satMin: 1390, satMax: 1540,
			chance: models.ChanceReach, gap: "-0.7 GPA, -190 SAT",
		},
		{
			name: "sat shortfall only still formats zero gpa gap",
			gpa:  3.8, sat: 1300, avgGPA: 3.7, satMin: 1390, satMax: 1540,
			chance: models.ChanceReach, gap: "-0.0 GPA, -90 SAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chance, gap := Classify(tt.gpa, tt.sat, tt.avgGPA, tt.satMin, tt.satMax)
			assert.Equal(t, tt.chance, chance)
			assert.Equal(t, tt.gap, gap)
		})
	}
}

func TestSummarizeTieBreaks(t *testing.T) {
	mk := func(chances ...models.Chance) []models.Classification {
		out := make([]models.Classification, 0, len(chances))
		for _, c := range chances {
			out = append(out, models.Classification{Chance: c})
		}
		return out
	}

	tests := []struct {
		name    string
		input   []models.Classification
		overall models.Chance
	}{
		{"target wins tie against reach", mk(models.ChanceTarget, models.ChanceReach), models.ChanceTarget},
		{"likely tie with reach falls to reach", mk(models.ChanceLikely, models.ChanceReach), models.ChanceReach},
		{"likely needs strict majority over both", mk(models.ChanceLikely, models.ChanceLikely, models.ChanceTarget), models.ChanceLikely},
		{"all reach", mk(models.ChanceReach, models.ChanceReach), models.ChanceReach},
		{"empty input defaults to target via zero tie", mk(), models.ChanceTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, overall := Summarize(tt.input)
			assert.Equal(t, tt.overall, overall)
			assert.Equal(t, len(tt.input), summary.Likely+summary.Target+summary.Reach)
		})
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	nyu := models.College{Name: "New York University", AdmitRate: "12%", GPAAvg: "3.7", SATRange: "1390 - 1540"}

	t.Run("target profile", func(t *testing.T) {
		result := Analyze("3.8", "1450", []models.College{nyu})
		require.Len(t, result.Colleges, 1)
		assert.Equal(t, models.ChanceTarget, result.Colleges[0].Chance)
		assert.Equal(t, "Good fit within range", result.Colleges[0].GapAnalysis)
		assert.Equal(t, models.ChanceTarget, result.OverallChance)
		assert.Equal(t, 50, result.Percentage)
	})

	t.Run("likely profile", func(t *testing.T) {
		result := Analyze("3.9", "1560", []models.College{nyu})
		require.Len(t, result.Colleges, 1)
		assert.Equal(t, models.ChanceLikely, result.Colleges[0].Chance)
		assert.Equal(t, "Strong candidate", result.Colleges[0].GapAnalysis)
		assert.Equal(t, models.ChanceLikely, result.OverallChance)
		assert.Equal(t, 75, result.Percentage)
	})

	t.Run("reach profile formats the gap", func(t *testing.T) {
		result := Analyze("3.0", "1200", []models.College{nyu})
		require.Len(t, result.Colleges, 1)
		assert.Equal(t, models.ChanceReach, result.Colleges[0].Chance)
		assert.Equal(t, "-0.7 GPA, -190 SAT", result.Colleges[0].GapAnalysis)
		assert.Equal(t, 25, result.Percentage)
	})

	t.Run("fractional sat is truncated", func(t *testing.T) {
		result := Analyze("3.8", "1450.9", []models.College{nyu})
		require.Len(t, result.Colleges, 1)
		assert.Equal(t, models.ChanceTarget, result.Colleges[0].Chance)
	})

	t.Run("empty college metadata degrades to close match", func(t *testing.T) {
		blank := models.College{Name: "Unknown U"}
		result := Analyze("3.8", "1450", []models.College{blank})
		require.Len(t, result.Colleges, 1)
		assert.Equal(t, models.ChanceReach, result.Colleges[0].Chance)
		assert.Equal(t, "Close match", result.Colleges[0].GapAnalysis)
	})

	t.Run("unparseable profile degrades to close match", func(t *testing.T) {
		result := Analyze("", "not a number", []models.College{nyu})
		require.Len(t, result.Colleges, 1)
		assert.Equal(t, models.ChanceReach, result.Colleges[0].Chance)
		assert.Equal(t, "Close match", result.Colleges[0].GapAnalysis)
	})
}

func TestNarrativeTextTiers(t *testing.T) {
	assert.Contains(t, NarrativeText(2.8, 1300), "below the typical admitted range")
	assert.Contains(t, NarrativeText(3.6, 1150), "below the typical admitted range")
	assert.Contains(t, NarrativeText(3.2, 1450), "competitive for many colleges")
	assert.Contains(t, NarrativeText(3.8, 1250), "competitive for many colleges")
	assert.Contains(t, NarrativeText(3.8, 1500), "well-positioned for admission")
}

func TestParseSATRange(t *testing.T) {
	min, max := ParseSATRange("1390 - 1540")
	assert.Equal(t, 1390.0, min)
	assert.Equal(t, 1540.0, max)

	min, max = ParseSATRange("")
	assert.True(t, math.IsNaN(min))
	assert.True(t, math.IsNaN(max))

	min, max = ParseSATRange("1200")
	assert.Equal(t, 1200.0, min)
	assert.True(t, math.IsNaN(max))
}
