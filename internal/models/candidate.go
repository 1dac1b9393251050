// internal/models/candidate.go
package models

import "time"

// Candidate is a stored candidate profile with the fields extracted from the
// uploaded CV.
type Candidate struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Email           string         `json:"email,omitempty"`
	RawText         string         `json:"rawText,omitempty"`
	SkillsExtracted []string       `json:"skillsExtracted"`
	ExperienceYears float64        `json:"experienceYears"`
	Education       EducationLevel `json:"educationLevel,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
