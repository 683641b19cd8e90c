package types

// JobDescription holds information about a specific job opening.
// AdditionalNotes is optional; the remaining fields follow the same
// absent-becomes-empty convention as UserProfile.
type JobDescription struct {
	CompanyName      string   `json:"company_name"`
	PositionTitle    string   `json:"position_title"`
	Responsibilities string   `json:"responsibilities"`
	RequiredSkills   []string `json:"required_skills"`
	JobLocation      string   `json:"job_location"`
	JobSummary       string   `json:"job_summary"`
	AdditionalNotes  string   `json:"additional_notes"`
}

// IsBlank reports whether the job description carries no data at all.
func (j *JobDescription) IsBlank() bool {
	return j.CompanyName == "" && j.PositionTitle == "" && j.Responsibilities == "" &&
		len(j.RequiredSkills) == 0 && j.JobLocation == "" && j.JobSummary == "" &&
		j.AdditionalNotes == ""
}

// Validate checks field formats. Empty fields are valid.
func (j *JobDescription) Validate() error {
	return validate.Struct(j)
}
