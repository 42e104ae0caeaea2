package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Email", "Name"},
		Rows: []map[string]string{
			{"Email": "jane@example.com", "Name": "Jane"},
			{"Email": "sam@example.com", "Name": "Sam"},
		},
	}
}

func TestRenderCSV(t *testing.T) {
	content, err := RenderCSV(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Email,Name", lines[0])
	assert.Equal(t, "jane@example.com,Jane", lines[1])
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Dataset{})
	require.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	content, err := RenderPDF(sampleDataset(), "Captured Leads")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}
