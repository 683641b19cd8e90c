// Package console gathers profile and job description records interactively.
// It reads from an injected reader so the prompt flows are testable.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Console prompts for record fields over a reader/writer pair.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New returns a Console reading from in and prompting on out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ask prints a prompt and returns the next line, trimmed. EOF yields "".
func (c *Console) ask(prompt string) string {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

// askMultiline reads lines until a blank line and joins them with newlines.
func (c *Console) askMultiline(prompt string) string {
	fmt.Fprintln(c.out, prompt)
	var lines []string
	for c.scanner.Scan() {
		line := c.scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// askYes prints a y/n prompt and reports whether the answer was "y".
func (c *Console) askYes(prompt string) bool {
	fmt.Fprintln(c.out, prompt)
	return strings.ToLower(c.ask("> ")) == "y"
}

// splitCommaList splits a comma-separated answer into trimmed non-empty items.
func splitCommaList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// GatherProfile prompts for every user profile field.
func (c *Console) GatherProfile() *types.UserProfile {
	fmt.Fprintln(c.out, "\n=== Gather User Profile Information ===")

	profile := &types.UserProfile{
		FullName:     c.ask("Full Name: "),
		ContactEmail: c.ask("Contact Email: "),
		PhoneNumber:  c.ask("Phone Number: "),
	}

	fmt.Fprintln(c.out, "\nProfessional Summary (one or two sentences):")
	profile.ProfessionalSummary = c.ask("> ")

	fmt.Fprintln(c.out, "\nList some key skills separated by commas (e.g. Go, Data Analysis, Leadership):")
	profile.Skills = splitCommaList(c.ask("> "))

	for c.askYes("\nAdd a work experience? (y/n)") {
		profile.Experiences = append(profile.Experiences, types.Experience{
			Company:     c.ask("Company Name: "),
			Role:        c.ask("Role/Position: "),
			Duration:    c.ask("Duration (e.g., 2019-2021): "),
			Description: c.ask("Brief Description of Responsibilities: "),
		})
	}

	for c.askYes("\nAdd an education entry? (y/n)") {
		profile.Education = append(profile.Education, types.Education{
			Institution:    c.ask("Institution Name: "),
			Degree:         c.ask("Degree (e.g. BSc in Computer Science): "),
			GraduationYear: c.ask("Graduation Year: "),
		})
	}

	return profile
}

// GatherJob prompts for every job description field.
func (c *Console) GatherJob() *types.JobDescription {
	fmt.Fprintln(c.out, "\n=== Gather Job Description ===")

	job := &types.JobDescription{
		CompanyName:   c.ask("Company Name: "),
		PositionTitle: c.ask("Position Title: "),
	}

	job.Responsibilities = c.askMultiline("\nProvide responsibilities or summary for this role (multi-line; end with blank line):")

	fmt.Fprintln(c.out, "\nList required skills separated by commas (e.g. React, Node.js, Team Management):")
	job.RequiredSkills = splitCommaList(c.ask("> "))

	job.JobLocation = c.ask("Job Location: ")
	job.JobSummary = c.askMultiline("\nProvide a quick job summary or desired qualifications (multi-line; end with blank line):")
	job.AdditionalNotes = c.ask("\nAny additional notes about the position or application process? ")

	return job
}

// AskChoice prompts for a single-letter choice and returns the answer
// lowercased, so "L" and "l" read the same.
func (c *Console) AskChoice(prompt string) string {
	return strings.ToLower(c.ask(prompt))
}
