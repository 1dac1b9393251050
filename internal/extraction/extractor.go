// internal/extraction/extractor.go

// Package extraction holds the best-effort text analysis collaborators the
// matching workers consume. Every extractor degrades to an empty result on
// unusable input; extraction never fails a scoring run.
package extraction

import (
	"ats-match-workers/internal/models"
)

// SkillExtractor detects skill mentions in free text.
type SkillExtractor interface {
	ExtractSkills(text string) []string
}

// ExperienceExtractor estimates years of experience from free text.
type ExperienceExtractor interface {
	ExtractExperienceYears(text string) float64
}

// EducationExtractor detects the highest education level mentioned in text.
type EducationExtractor interface {
	ExtractEducationLevel(text string) models.EducationLevel
}

// Extractor bundles the text analysis capabilities the ad-hoc score worker
// needs.
type Extractor interface {
	SkillExtractor
	ExperienceExtractor
	EducationExtractor
}
