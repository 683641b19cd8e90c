package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/prompts"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// BuildBaseResumeText renders a profile into the plain-text resume the model is
// asked to tailor. It is pure: the same profile always yields the same string.
func BuildBaseResumeText(user *types.UserProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Name: %s\n", user.FullName)
	fmt.Fprintf(&sb, "Email: %s\n", user.ContactEmail)
	fmt.Fprintf(&sb, "Phone: %s\n", user.PhoneNumber)

	sb.WriteString("\nProfessional Summary:\n")
	sb.WriteString(user.ProfessionalSummary)

	sb.WriteString("\n\nSkills:")
	for _, skill := range user.Skills {
		fmt.Fprintf(&sb, "\n- %s", skill)
	}

	sb.WriteString("\n\nExperience:")
	for _, exp := range user.Experiences {
		fmt.Fprintf(&sb, "\n%s at %s (%s)", exp.Role, exp.Company, exp.Duration)
		fmt.Fprintf(&sb, "\n  %s", exp.Description)
	}

	sb.WriteString("\n\nEducation:")
	for _, edu := range user.Education {
		fmt.Fprintf(&sb, "\n%s from %s - %s", edu.Degree, edu.Institution, edu.GraduationYear)
	}

	return sb.String()
}

// BuildResumePrompt assembles the full tailoring prompt: task instructions, the
// resume format checklist, the base resume text, and the job fields. Empty
// additional notes become "N/A" here (the cover-letter prompt passes them
// through verbatim instead; kept as the original tool behaves).
func BuildResumePrompt(user *types.UserProfile, job *types.JobDescription) string {
	notes := job.AdditionalNotes
	if notes == "" {
		notes = "N/A"
	}

	template := prompts.MustGet("generation.json", "tailor-resume")
	return prompts.Format(template, map[string]string{
		"FormatInstructions": prompts.MustGet("formats.json", "resume-format"),
		"BaseResume":         BuildBaseResumeText(user),
		"CompanyName":        job.CompanyName,
		"PositionTitle":      job.PositionTitle,
		"Responsibilities":   job.Responsibilities,
		"RequiredSkills":     strings.Join(job.RequiredSkills, ", "),
		"JobLocation":        job.JobLocation,
		"JobSummary":         job.JobSummary,
		"AdditionalNotes":    notes,
	})
}

// GenerateTailoredResume asks the model to rework the user's resume for the job.
// With no client configured it returns the sentinel error string and performs
// no network call.
func (g *Generator) GenerateTailoredResume(ctx context.Context, user *types.UserProfile, job *types.JobDescription) (string, error) {
	if g.Client == nil {
		return ErrNoKeyResume, nil
	}

	return g.generate(ctx, BuildResumePrompt(user, job), g.PostProcessResume)
}
