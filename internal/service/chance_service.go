package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/prepitus/college-chances-api/internal/models"
)

// Gap descriptions returned with each bucket. The frontend mirrors these,
// so their wording is part of the contract.
const (
	gapWithinRange     = "Good fit within range"
	gapStrongCandidate = "Strong candidate"
	gapCloseMatch      = "Close match"
)

// Classify buckets a profile against one college's numbers. Rules apply in
// precedence order, first match wins:
//
//  1. SAT inside the college range (inclusive both ends) and GPA no more
//     than 0.2 below the college average -> Target.
//  2. SAT strictly above the range and GPA strictly above average -> Likely.
//  3. Everything else -> Reach, with a gap description of the shortfall.
//
// Pure and deterministic; there are no error conditions.
func Classify(gpa float64, sat int, avgGPA float64, satMin, satMax int) (models.Chance, string) {
	return classify(gpa, float64(sat), avgGPA, float64(satMin), float64(satMax))
}

// classify is the float core. College metadata that failed to parse comes
// in as NaN; every comparison against NaN is false, so degenerate input
// falls through to Reach with the "Close match" description.
func classify(gpa, sat, avgGPA, satMin, satMax float64) (models.Chance, string) {
	if sat >= satMin && sat <= satMax && gpa >= avgGPA-0.2 {
		return models.ChanceTarget, gapWithinRange
	}
	if sat > satMax && gpa > avgGPA {
		return models.ChanceLikely, gapStrongCandidate
	}

	gpaGap := roundTenth(math.Max(0, avgGPA-gpa))
	satGap := math.Max(0, satMin-sat)
	if gpaGap > 0 || satGap > 0 {
		return models.ChanceReach, fmt.Sprintf("-%s GPA, -%s SAT", formatGPAGap(gpaGap), formatSATGap(satGap))
	}
	return models.ChanceReach, gapCloseMatch
}

// Summarize reduces per-college classifications to bucket counts and the
// overall bucket. The tie-break is deliberately asymmetric: Likely needs a
// strict majority over both other buckets, while Target wins ties against
// Reach. Preserved verbatim from the scoring rules.
func Summarize(classifications []models.Classification) (models.Summary, models.Chance) {
	var summary models.Summary
	for _, c := range classifications {
		switch c.Chance {
		case models.ChanceLikely:
			summary.Likely++
		case models.ChanceTarget:
			summary.Target++
		default:
			summary.Reach++
		}
	}

	overall := models.ChanceReach
	if summary.Likely > summary.Target && summary.Likely > summary.Reach {
		overall = models.ChanceLikely
	} else if summary.Target >= summary.Reach {
		overall = models.ChanceTarget
	}
	return summary, overall
}

// NarrativeText picks the outlook message tier from the raw profile,
// independent of the per-college results.
func NarrativeText(gpa, sat float64) string {
	switch {
	case sat < 1200 || gpa < 3.0:
		return fmt.Sprintf("Your GPA of %.1f and SAT score of %.0f place you below the typical admitted range for most colleges. Focus on improving both your GPA and SAT score to increase your admission chances.", gpa, sat)
	case sat < 1400 || gpa < 3.5:
		return fmt.Sprintf("Your GPA of %.1f and SAT score of %.0f are competitive for many colleges. Improving your SAT score by 50-100 points could significantly increase your admission chances at more selective institutions.", gpa, sat)
	default:
		return fmt.Sprintf("Your GPA of %.1f and SAT score of %.0f are strong and competitive for many selective colleges. You're well-positioned for admission to a wide range of institutions.", gpa, sat)
	}
}

// Analyze classifies the profile against every college and aggregates the
// outcome. Raw strings are parsed here; failures degrade to NaN rather
// than erroring, matching the documented upstream-validation gap.
func Analyze(gpaRaw, satRaw string, colleges []models.College) models.AggregateResult {
	gpa := parseNumber(gpaRaw)
	sat := math.Trunc(parseNumber(satRaw))

	results := make([]models.Classification, 0, len(colleges))
	for _, college := range colleges {
		satMin, satMax := ParseSATRange(college.SATRange)
		avgGPA := parseNumber(college.GPAAvg)
		chance, gap := classify(gpa, sat, avgGPA, satMin, satMax)
		results = append(results, models.Classification{
			Name:        college.Name,
			Chance:      chance,
			AdmitRate:   college.AdmitRate,
			AvgGPA:      college.GPAAvg,
			SATRange:    college.SATRange,
			GapAnalysis: gap,
		})
	}

	summary, overall := Summarize(results)
	return models.AggregateResult{
		Colleges:      results,
		Summary:       summary,
		OverallChance: overall,
		Percentage:    overall.Percentage(),
		SummaryText:   NarrativeText(gpa, sat),
	}
}

// ParseSATRange splits a "min - max" string. Either bound parses to NaN
// when missing or malformed.
func ParseSATRange(s string) (satMin, satMax float64) {
	satMin, satMax = math.NaN(), math.NaN()
	parts := strings.Split(s, " - ")
	if len(parts) > 0 {
		satMin = parseNumber(parts[0])
	}
	if len(parts) > 1 {
		satMax = parseNumber(parts[1])
	}
	return satMin, satMax
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func formatGPAGap(gap float64) string {
	return fmt.Sprintf("%.1f", gap)
}

func formatSATGap(gap float64) string {
	if math.IsNaN(gap) {
		return "NaN"
	}
	return strconv.Itoa(int(gap))
}
