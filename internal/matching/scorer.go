// internal/matching/scorer.go
package matching

import (
	"math"

	"ats-match-workers/internal/models"
)

// JobRequirement is the job side of a scoring call.
type JobRequirement struct {
	Title                   string
	RequiredSkills          SkillSet
	RequiredExperienceYears float64
}

// CandidateProfile is the candidate side of a scoring call.
type CandidateProfile struct {
	Name            string
	HeldSkills      SkillSet
	ExperienceYears float64
	Education       models.EducationLevel
	RawText         string
}

// MatchBreakdown is the structured scoring result. MatchedSkills and
// MissingSkills partition the required set and use the required-side casing;
// KeywordMatches has exactly one entry per required skill.
type MatchBreakdown struct {
	MatchPercentage float64         `json:"matchPercentage"`
	MatchedSkills   []string        `json:"matchedSkills"`
	MissingSkills   []string        `json:"missingSkills"`
	KeywordMatches  map[string]bool `json:"keywordMatches"`
	ExperienceMatch bool            `json:"experienceMatch"`
	SemanticScore   float64         `json:"semanticScore"`
}

// Weights is the score composition policy. Each weight is the share of the
// final percentage contributed by its signal; skill coverage scales with the
// covered fraction, experience is all-or-nothing, and the semantic signal
// (supplied as 0-1) is scaled to 0-100 and clamped before weighting.
type Weights struct {
	Skills     float64 `mapstructure:"skills"`
	Experience float64 `mapstructure:"experience"`
	Semantic   float64 `mapstructure:"semantic"`
}

// DefaultWeights is the documented default policy: 70% skill coverage,
// 20% experience bonus, 10% semantic signal.
var DefaultWeights = Weights{Skills: 0.70, Experience: 0.20, Semantic: 0.10}

// Scorer computes match breakdowns. It is pure: identical inputs always
// produce identical results, and the semantic signal is an input, never
// computed here.
type Scorer struct {
	weights Weights
}

// NewScorer returns a scorer with the given weight policy. A zero-value
// policy falls back to DefaultWeights.
func NewScorer(w Weights) *Scorer {
	if w == (Weights{}) {
		w = DefaultWeights
	}
	return &Scorer{weights: w}
}

// Score compares a requirement against a profile. semantic is an externally
// supplied similarity score in the 0-1 range, or 0 when unavailable.
func (s *Scorer) Score(req JobRequirement, profile CandidateProfile, semantic float64) MatchBreakdown {
	matched := make([]string, 0, req.RequiredSkills.Len())
	missing := make([]string, 0, req.RequiredSkills.Len())
	keywords := make(map[string]bool, req.RequiredSkills.Len())

	for _, skill := range req.RequiredSkills.Skills() {
		if profile.HeldSkills.Contains(skill) {
			matched = append(matched, skill)
			keywords[skill] = true
		} else {
			missing = append(missing, skill)
			keywords[skill] = false
		}
	}

	// An empty required set means there is nothing to miss: coverage is
	// defined as perfect rather than dividing by zero.
	coverage := 1.0
	if req.RequiredSkills.Len() > 0 {
		coverage = float64(len(matched)) / float64(req.RequiredSkills.Len())
	}

	experienceMatch := profile.ExperienceYears >= req.RequiredExperienceYears

	pct := coverage * s.weights.Skills * 100
	if experienceMatch {
		pct += s.weights.Experience * 100
	}
	pct += clamp(semantic*100, 0, 100) * s.weights.Semantic

	return MatchBreakdown{
		MatchPercentage: round1(clamp(pct, 0, 100)),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		KeywordMatches:  keywords,
		ExperienceMatch: experienceMatch,
		SemanticScore:   math.Max(semantic, 0),
	}
}

// Weights returns the active policy.
func (s *Scorer) Weights() Weights {
	return s.weights
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
