package history

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDocumentKindConstants(t *testing.T) {
	assert.Equal(t, "resume", DocResume)
	assert.Equal(t, "cover_letter", DocCoverLetter)
}

func TestRunType(t *testing.T) {
	run := Run{
		ID:              uuid.New(),
		Company:         "Globex",
		PositionTitle:   "Platform Engineer",
		Model:           "gemini-2.5-flash",
		ResumePath:      "job_app_resume_20260828_143005.txt",
		CoverLetterPath: "job_app_cover_letter_20260828_143005.txt",
	}

	assert.Equal(t, "Globex", run.Company)
	assert.Equal(t, "Platform Engineer", run.PositionTitle)
	assert.NotEqual(t, uuid.Nil, run.ID)
}
