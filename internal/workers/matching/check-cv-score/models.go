// internal/workers/matching/check-cv-score/models.go
package checkcvscore

import "ats-match-workers/internal/matching"

type Input struct {
	CVText                  string   `json:"cvText"`
	CVSkills                []string `json:"cvSkills,omitempty"`
	CVExperienceYears       float64  `json:"cvExperienceYears,omitempty"`
	CVEducation             string   `json:"cvEducation,omitempty"`
	JobTitle                string   `json:"jobTitle,omitempty"`
	RequiredSkillsCsv       string   `json:"requiredSkillsCsv"`
	RequiredExperienceYears float64  `json:"requiredExperienceYears,omitempty"`
	JobDescription          string   `json:"jobDescription,omitempty"`
}

// Output is transient; nothing in this path is persisted. The cv* fields
// echo the profile the score was computed from, whether supplied or derived
// from the CV text.
type Output struct {
	JobTitle          string                   `json:"jobTitle,omitempty"`
	MatchPercentage   float64                  `json:"matchPercentage"`
	MatchedSkills     []string                 `json:"matchedSkills"`
	MissingSkills     []string                 `json:"missingSkills"`
	KeywordMatches    map[string]bool          `json:"keywordMatches"`
	ExperienceMatch   bool                     `json:"experienceMatch"`
	SemanticScore     float64                  `json:"semanticScore"`
	Highlights        []matching.HighlightSpan `json:"highlights"`
	RequiredSkills    []string                 `json:"requiredSkills"`
	CVSkills          []string                 `json:"cvSkills"`
	CVExperienceYears float64                  `json:"cvExperienceYears"`
	CVEducation       string                   `json:"cvEducation"`
	TotalRequired     int                      `json:"totalRequired"`
	TotalMatched      int                      `json:"totalMatched"`
}
