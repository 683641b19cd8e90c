package store

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadProfileMissingFileReturnsBlank(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	profile, err := LoadProfile(path, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.True(t, profile.IsBlank())
}

func TestProfileSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_profile.json")
	original := &types.UserProfile{
		FullName:            "Jane Doe",
		ContactEmail:        "jane@example.com",
		PhoneNumber:         "555-0100",
		ProfessionalSummary: "Engineer.",
		Skills:              []string{"Go", "PostgreSQL"},
		Experiences: []types.Experience{
			{Company: "Acme", Role: "Engineer", Duration: "2019-2021", Description: "Built things."},
		},
		Education: []types.Education{
			{Institution: "State U", Degree: "BSc", GraduationYear: "2019"},
		},
	}

	require.NoError(t, SaveProfile(path, original))

	loaded, err := LoadProfile(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

// Records with nil slices marshal those fields as null; loading them back must
// still succeed and reproduce the record.
func TestMinimalRecordSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	profilePath := filepath.Join(dir, "user_profile.json")
	profile := &types.UserProfile{FullName: "Jane"}
	require.NoError(t, SaveProfile(profilePath, profile))
	loadedProfile, err := LoadProfile(profilePath, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, profile, loadedProfile)

	jobPath := filepath.Join(dir, "job_description.json")
	job := &types.JobDescription{CompanyName: "Globex"}
	require.NoError(t, SaveJob(jobPath, job))
	loadedJob, err := LoadJob(jobPath, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, job, loadedJob)
}

func TestSaveProfileOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_profile.json")
	require.NoError(t, SaveProfile(path, &types.UserProfile{FullName: "First"}))
	require.NoError(t, SaveProfile(path, &types.UserProfile{FullName: "Second"}))

	loaded, err := LoadProfile(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, "Second", loaded.FullName)
}

func TestSaveProfileWritesIndentedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_profile.json")
	require.NoError(t, SaveProfile(path, &types.UserProfile{FullName: "Jane"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"full_name\": \"Jane\"")
}

func TestLoadJobMissingFileReturnsBlank(t *testing.T) {
	job, err := LoadJob(filepath.Join(t.TempDir(), "nope.json"), discardLogger())
	require.NoError(t, err)
	assert.True(t, job.IsBlank())
}

func TestJobSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_description.json")
	original := &types.JobDescription{
		CompanyName:      "Globex",
		PositionTitle:    "Platform Engineer",
		Responsibilities: "Design services.",
		RequiredSkills:   []string{"Go", "Terraform", "AWS"},
		JobLocation:      "Remote",
		JobSummary:       "Own the platform.",
		AdditionalNotes:  "Visa sponsorship.",
	}

	require.NoError(t, SaveJob(path, original))

	loaded, err := LoadJob(path, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestLoadProfileRejectsInvalidData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_profile.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": [1, 2]}`), 0644))

	_, err := LoadProfile(path, discardLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoadJobRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_description.json")
	require.NoError(t, os.WriteFile(path, []byte(`{broken`), 0644))

	_, err := LoadJob(path, discardLogger())
	assert.Error(t, err)
}
