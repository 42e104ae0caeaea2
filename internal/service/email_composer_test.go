package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepitus/college-chances-api/internal/models"
)

func TestEmailComposerRender(t *testing.T) {
	composer := NewEmailComposer()

	html, err := composer.Render(ReportEmailData{
		FirstName:     "Jane",
		GPA:           "3.8",
		SATScore:      "1450",
		OverallChance: models.ChanceTarget,
		Colleges: []models.Classification{
			{Name: "New York University", Chance: models.ChanceTarget, AdmitRate: "12%", GapAnalysis: "Good fit within range"},
			{Name: "Boston University", Chance: models.ChanceReach, AdmitRate: "19%", GapAnalysis: "-0.2 GPA, -40 SAT"},
		},
		Summary: models.Summary{Target: 1, Reach: 1},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Hello, Jane!")
	assert.Contains(t, html, "3.8")
	assert.Contains(t, html, "1450")
	assert.Contains(t, html, "New York University")
	assert.Contains(t, html, "Good fit within range")
	assert.Contains(t, html, "-0.2 GPA, -40 SAT")
	assert.Contains(t, html, "<strong>Total Colleges Analyzed:</strong> 2")
	// The coaching block only appears when the profile has reach schools.
	assert.Contains(t, html, "From Reach to Target")
	assert.Contains(t, html, "Start Your FREE Bootcamp Now")
}

func TestEmailComposerRenderDefaults(t *testing.T) {
	composer := NewEmailComposer()

	html, err := composer.Render(ReportEmailData{
		OverallChance: models.ChanceLikely,
		Summary:       models.Summary{Likely: 1},
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Hello, Student!")
	assert.Contains(t, html, "<strong>Total Colleges Analyzed:</strong> 0")
	assert.NotContains(t, html, "From Reach to Target")
}

func TestBadgeStyleByChance(t *testing.T) {
	assert.Contains(t, string(badgeStyle(models.ChanceLikely)), "#dcfce7")
	assert.Contains(t, string(badgeStyle(models.ChanceTarget)), "#fef3c7")
	assert.Contains(t, string(badgeStyle(models.ChanceReach)), "#fee2e2")
}
