// internal/matching/scorer_test.go
package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer(DefaultWeights)

	tests := []struct {
		name            string
		req             JobRequirement
		profile         CandidateProfile
		semantic        float64
		expectedPct     float64
		expectedMatched []string
		expectedMissing []string
		expectedExp     bool
	}{
		{
			name: "half coverage with experience match",
			req: JobRequirement{
				RequiredSkills:          NewSkillSet("Python", "SQL"),
				RequiredExperienceYears: 3,
			},
			profile: CandidateProfile{
				HeldSkills:      NewSkillSet("python", "docker"),
				ExperienceYears: 5,
			},
			expectedPct:     55.0,
			expectedMatched: []string{"Python"},
			expectedMissing: []string{"SQL"},
			expectedExp:     true,
		},
		{
			name: "full coverage without experience",
			req: JobRequirement{
				RequiredSkills:          NewSkillSet("Go"),
				RequiredExperienceYears: 10,
			},
			profile: CandidateProfile{
				HeldSkills:      NewSkillSet("go"),
				ExperienceYears: 2,
			},
			expectedPct:     70.0,
			expectedMatched: []string{"Go"},
			expectedMissing: []string{},
			expectedExp:     false,
		},
		{
			name: "no required skills scores the experience bonus",
			req: JobRequirement{
				RequiredSkills:          NewSkillSet(),
				RequiredExperienceYears: 0,
			},
			profile: CandidateProfile{
				HeldSkills:      NewSkillSet("python"),
				ExperienceYears: 1,
			},
			expectedPct:     90.0,
			expectedMatched: []string{},
			expectedMissing: []string{},
			expectedExp:     true,
		},
		{
			name: "nothing matches",
			req: JobRequirement{
				RequiredSkills:          NewSkillSet("Rust", "C++"),
				RequiredExperienceYears: 8,
			},
			profile: CandidateProfile{
				HeldSkills:      NewSkillSet("python"),
				ExperienceYears: 1,
			},
			expectedPct:     0.0,
			expectedMatched: []string{},
			expectedMissing: []string{"Rust", "C++"},
			expectedExp:     false,
		},
		{
			name: "semantic signal tops up the score",
			req: JobRequirement{
				RequiredSkills:          NewSkillSet("Python"),
				RequiredExperienceYears: 2,
			},
			profile: CandidateProfile{
				HeldSkills:      NewSkillSet("python"),
				ExperienceYears: 4,
			},
			semantic:        0.8,
			expectedPct:     98.0,
			expectedMatched: []string{"Python"},
			expectedMissing: []string{},
			expectedExp:     true,
		},
		{
			name: "semantic above one is clamped",
			req: JobRequirement{
				RequiredSkills:          NewSkillSet("Python"),
				RequiredExperienceYears: 2,
			},
			profile: CandidateProfile{
				HeldSkills:      NewSkillSet("python"),
				ExperienceYears: 4,
			},
			semantic:        5.0,
			expectedPct:     100.0,
			expectedMatched: []string{"Python"},
			expectedMissing: []string{},
			expectedExp:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := scorer.Score(tt.req, tt.profile, tt.semantic)

			assert.Equal(t, tt.expectedPct, breakdown.MatchPercentage)
			assert.Equal(t, tt.expectedMatched, breakdown.MatchedSkills)
			assert.Equal(t, tt.expectedMissing, breakdown.MissingSkills)
			assert.Equal(t, tt.expectedExp, breakdown.ExperienceMatch)
		})
	}
}

func TestScorer_KeywordMatchesPartitionRequiredSet(t *testing.T) {
	scorer := NewScorer(DefaultWeights)

	req := JobRequirement{RequiredSkills: NewSkillSet("Python", "SQL", "Docker")}
	profile := CandidateProfile{HeldSkills: NewSkillSet("python", "docker")}

	breakdown := scorer.Score(req, profile, 0)

	require.Len(t, breakdown.KeywordMatches, 3)
	assert.True(t, breakdown.KeywordMatches["Python"])
	assert.False(t, breakdown.KeywordMatches["SQL"])
	assert.True(t, breakdown.KeywordMatches["Docker"])

	// Matched and missing partition the required set.
	assert.Len(t, breakdown.MatchedSkills, 2)
	assert.Len(t, breakdown.MissingSkills, 1)
	for _, skill := range breakdown.MatchedSkills {
		assert.NotContains(t, breakdown.MissingSkills, skill)
	}
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer(DefaultWeights)

	req := JobRequirement{
		RequiredSkills:          NewSkillSet("Python", "SQL", "Kubernetes"),
		RequiredExperienceYears: 4,
	}
	profile := CandidateProfile{
		HeldSkills:      NewSkillSet("python", "kubernetes"),
		ExperienceYears: 6,
	}

	first := scorer.Score(req, profile, 0.3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scorer.Score(req, profile, 0.3))
	}
}

func TestScorer_BoundsNeverExceeded(t *testing.T) {
	scorer := NewScorer(DefaultWeights)

	breakdown := scorer.Score(
		JobRequirement{RequiredSkills: NewSkillSet("Python"), RequiredExperienceYears: 0},
		CandidateProfile{HeldSkills: NewSkillSet("python"), ExperienceYears: 40},
		100,
	)
	assert.LessOrEqual(t, breakdown.MatchPercentage, 100.0)

	breakdown = scorer.Score(
		JobRequirement{RequiredSkills: NewSkillSet("Python")},
		CandidateProfile{},
		-5,
	)
	assert.GreaterOrEqual(t, breakdown.MatchPercentage, 0.0)
	assert.Equal(t, 0.0, breakdown.SemanticScore)
}

func TestNewScorer_ZeroWeightsFallBackToDefaults(t *testing.T) {
	scorer := NewScorer(Weights{})

	assert.Equal(t, DefaultWeights, scorer.Weights())
}
