package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/prompts"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// buildExperienceList enumerates the user's experiences 1-based, one line each.
func buildExperienceList(experiences []types.Experience) string {
	var sb strings.Builder
	for i, exp := range experiences {
		fmt.Fprintf(&sb, "%d. %s at %s (%s): %s\n", i+1, exp.Role, exp.Company, exp.Duration, exp.Description)
	}
	return sb.String()
}

// BuildCoverLetterPrompt assembles the cover-letter prompt: the format
// checklist, the user's name, summary, skills, enumerated experiences, and the
// job fields. Additional notes are passed through verbatim here, unlike the
// resume prompt.
func BuildCoverLetterPrompt(user *types.UserProfile, job *types.JobDescription) string {
	template := prompts.MustGet("generation.json", "cover-letter")
	return prompts.Format(template, map[string]string{
		"FormatInstructions":  prompts.MustGet("formats.json", "cover-letter-format"),
		"FullName":            user.FullName,
		"ProfessionalSummary": user.ProfessionalSummary,
		"Skills":              strings.Join(user.Skills, ", "),
		"Experiences":         buildExperienceList(user.Experiences),
		"CompanyName":         job.CompanyName,
		"PositionTitle":       job.PositionTitle,
		"Responsibilities":    job.Responsibilities,
		"RequiredSkills":      strings.Join(job.RequiredSkills, ", "),
		"JobLocation":         job.JobLocation,
		"JobSummary":          job.JobSummary,
		"AdditionalNotes":     job.AdditionalNotes,
	})
}

// GenerateCoverLetter asks the model to write a cover letter for the job.
// With no client configured it returns the sentinel error string and performs
// no network call.
func (g *Generator) GenerateCoverLetter(ctx context.Context, user *types.UserProfile, job *types.JobDescription) (string, error) {
	if g.Client == nil {
		return ErrNoKeyCoverLetter, nil
	}

	return g.generate(ctx, BuildCoverLetterPrompt(user, job), g.PostProcessLetter)
}
