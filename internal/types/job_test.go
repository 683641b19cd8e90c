package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescriptionJSONRoundTrip(t *testing.T) {
	original := JobDescription{
		CompanyName:      "Globex",
		PositionTitle:    "Platform Engineer",
		Responsibilities: "Design services.\nOperate clusters.",
		RequiredSkills:   []string{"Go", "Terraform", "AWS"},
		JobLocation:      "Remote",
		JobSummary:       "Own the platform layer.",
		AdditionalNotes:  "Visa sponsorship available.",
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded JobDescription
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestJobDescriptionDecodeMissingFields(t *testing.T) {
	var job JobDescription
	require.NoError(t, json.Unmarshal([]byte(`{"company_name": "Globex"}`), &job))

	assert.Equal(t, "Globex", job.CompanyName)
	assert.Empty(t, job.RequiredSkills)
	assert.Empty(t, job.AdditionalNotes)
}

func TestJobDescriptionIsBlank(t *testing.T) {
	assert.True(t, (&JobDescription{}).IsBlank())
	assert.False(t, (&JobDescription{CompanyName: "Globex"}).IsBlank())
	assert.False(t, (&JobDescription{RequiredSkills: []string{"Go"}}).IsBlank())
}
