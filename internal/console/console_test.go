package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherProfile(t *testing.T) {
	input := strings.Join([]string{
		"Jane Doe",
		"jane@example.com",
		"555-0100",
		"Backend engineer.",
		"Go, PostgreSQL, Kubernetes",
		"y",
		"Acme Corp",
		"Engineer",
		"2019-2021",
		"Built billing systems.",
		"n",
		"y",
		"State University",
		"BSc in Computer Science",
		"2019",
		"n",
	}, "\n") + "\n"

	var out bytes.Buffer
	profile := New(strings.NewReader(input), &out).GatherProfile()

	assert.Equal(t, "Jane Doe", profile.FullName)
	assert.Equal(t, "jane@example.com", profile.ContactEmail)
	assert.Equal(t, "555-0100", profile.PhoneNumber)
	assert.Equal(t, "Backend engineer.", profile.ProfessionalSummary)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Kubernetes"}, profile.Skills)

	require.Len(t, profile.Experiences, 1)
	assert.Equal(t, "Acme Corp", profile.Experiences[0].Company)
	assert.Equal(t, "Engineer", profile.Experiences[0].Role)

	require.Len(t, profile.Education, 1)
	assert.Equal(t, "State University", profile.Education[0].Institution)

	assert.Contains(t, out.String(), "=== Gather User Profile Information ===")
}

func TestGatherJob(t *testing.T) {
	input := strings.Join([]string{
		"Globex",
		"Platform Engineer",
		"Design services.",
		"Operate clusters.",
		"", // ends responsibilities
		"Go, Terraform, AWS",
		"Remote",
		"Own the platform layer.",
		"", // ends summary
		"Visa sponsorship available.",
	}, "\n") + "\n"

	var out bytes.Buffer
	job := New(strings.NewReader(input), &out).GatherJob()

	assert.Equal(t, "Globex", job.CompanyName)
	assert.Equal(t, "Platform Engineer", job.PositionTitle)
	assert.Equal(t, "Design services.\nOperate clusters.", job.Responsibilities)
	assert.Equal(t, []string{"Go", "Terraform", "AWS"}, job.RequiredSkills)
	assert.Equal(t, "Remote", job.JobLocation)
	assert.Equal(t, "Own the platform layer.", job.JobSummary)
	assert.Equal(t, "Visa sponsorship available.", job.AdditionalNotes)
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "Plain list", input: "Go, SQL, Leadership", want: []string{"Go", "SQL", "Leadership"}},
		{name: "Extra commas and spaces", input: " Go ,, SQL , ", want: []string{"Go", "SQL"}},
		{name: "Empty input", input: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitCommaList(tt.input))
		})
	}
}

func TestAskYes(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("Y\n"), &out)
	assert.True(t, c.askYes("Continue? (y/n)"))

	c = New(strings.NewReader("no\n"), &out)
	assert.False(t, c.askYes("Continue? (y/n)"))

	// EOF answers empty, treated as no.
	c = New(strings.NewReader(""), &out)
	assert.False(t, c.askYes("Continue? (y/n)"))
}

func TestAskChoiceLowercasesAnswer(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(" L \n"), &out)
	assert.Equal(t, "l", c.AskChoice("> "))

	c = New(strings.NewReader("c\n"), &out)
	assert.Equal(t, "c", c.AskChoice("> "))
}
