// internal/models/job.go
package models

import "time"

// Job is a stored job description. Skill extraction and file handling happen
// upstream; by the time a Job reaches the matching workers SkillsRequired is
// already populated.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	CompanyName     string    `json:"companyName"`
	Location        string    `json:"location,omitempty"`
	RawText         string    `json:"rawText,omitempty"`
	SkillsRequired  []string  `json:"skillsRequired"`
	ExperienceYears float64   `json:"experienceYears"`
	CreatedAt       time.Time `json:"createdAt"`
}
