// Package types provides type definitions for the records persisted and
// exchanged throughout the job application assistant.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// UserProfile represents an applicant's personal and professional details.
// All fields are optional; absent JSON fields decode to zero values.
type UserProfile struct {
	FullName            string       `json:"full_name"`
	ContactEmail        string       `json:"contact_email" validate:"omitempty,email"`
	PhoneNumber         string       `json:"phone_number"`
	ProfessionalSummary string       `json:"professional_summary"`
	Skills              []string     `json:"skills"`
	Experiences         []Experience `json:"experiences"`
	Education           []Education  `json:"education"`
}

// Experience represents a single work history entry.
type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education represents a single education entry.
type Education struct {
	Institution    string `json:"institution"`
	Degree         string `json:"degree"`
	GraduationYear string `json:"graduation_year"`
}

// IsBlank reports whether the profile carries no data at all, which is what
// loading a missing profile file produces.
func (p *UserProfile) IsBlank() bool {
	return p.FullName == "" && p.ContactEmail == "" && p.PhoneNumber == "" &&
		p.ProfessionalSummary == "" && len(p.Skills) == 0 &&
		len(p.Experiences) == 0 && len(p.Education) == 0
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field formats (currently only the contact email).
// Records with empty fields are valid; presence is never required.
func (p *UserProfile) Validate() error {
	return validate.Struct(p)
}
