// Package store persists profile and job description records as JSON files and
// writes generated documents to timestamped output files.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/hchandra1/Job-Application-Assistant/internal/schemas"
	"github.com/hchandra1/Job-Application-Assistant/internal/types"
)

// Default record file names, matching the persisted file interface.
const (
	DefaultProfileFile = "user_profile.json"
	DefaultJobFile     = "job_description.json"
)

// LoadProfile reads a user profile from a JSON file. A missing file is not an
// error: it logs a warning and returns a blank profile. The file content is
// validated against the embedded schema before decoding.
func LoadProfile(path string, logger *slog.Logger) (*types.UserProfile, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Warn("no profile file found, returning a blank profile", "path", path)
		return &types.UserProfile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.UserProfileSchema, data); err != nil {
		return nil, fmt.Errorf("profile file %s is invalid: %w", path, err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	return &profile, nil
}

// SaveProfile writes a user profile to a JSON file as indented JSON,
// overwriting any existing file.
func SaveProfile(path string, profile *types.UserProfile) error {
	return saveJSON(path, profile, "profile")
}

// LoadJob reads a job description from a JSON file. A missing file logs a
// warning and returns a blank record.
func LoadJob(path string, logger *slog.Logger) (*types.JobDescription, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Warn("no job description file found, returning a blank job description", "path", path)
		return &types.JobDescription{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	if err := schemas.Validate(schemas.JobDescriptionSchema, data); err != nil {
		return nil, fmt.Errorf("job file %s is invalid: %w", path, err)
	}

	var job types.JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}
	return &job, nil
}

// SaveJob writes a job description to a JSON file as indented JSON,
// overwriting any existing file.
func SaveJob(path string, job *types.JobDescription) error {
	return saveJSON(path, job, "job description")
}

func saveJSON(path string, record any, what string) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", what, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s file %s: %w", what, path, err)
	}
	return nil
}
