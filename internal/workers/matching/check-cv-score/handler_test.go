// internal/workers/matching/check-cv-score/handler_test.go
package checkcvscore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/extraction"
	"ats-match-workers/internal/matching"
)

func newTestHandler(t *testing.T) *Handler {
	cfg := &Config{Timeout: 5 * time.Second}
	return NewHandler(cfg, matching.NewScorer(matching.DefaultWeights), extraction.NewDefaultExtractor(), logger.NewNoOpLogger())
}

func TestParseInput(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name         string
		payload      string
		expectErr    bool
		expectedCode errors.ErrorCode
	}{
		{
			name:    "valid payload",
			payload: `{"cvText": "Python developer", "requiredSkillsCsv": "Python, SQL"}`,
		},
		{
			name:    "job description instead of csv",
			payload: `{"cvText": "Python developer", "jobDescription": "We need Python"}`,
		},
		{
			name:         "missing cv text",
			payload:      `{"requiredSkillsCsv": "Python"}`,
			expectErr:    true,
			expectedCode: errors.ErrCodeValidationFailed,
		},
		{
			name:         "empty cv text",
			payload:      `{"cvText": "", "requiredSkillsCsv": "Python"}`,
			expectErr:    true,
			expectedCode: errors.ErrCodeValidationFailed,
		},
		{
			name:         "neither csv nor description",
			payload:      `{"cvText": "Python developer"}`,
			expectErr:    true,
			expectedCode: errors.ErrCodeValidationFailed,
		},
		{
			name:         "unknown field rejected",
			payload:      `{"cvText": "x", "requiredSkillsCsv": "Python", "resume": "y"}`,
			expectErr:    true,
			expectedCode: errors.ErrCodeValidationFailed,
		},
		{
			name:         "wrong type rejected",
			payload:      `{"cvText": "x", "requiredSkillsCsv": "Python", "cvExperienceYears": "five"}`,
			expectErr:    true,
			expectedCode: errors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.ParseInput([]byte(tt.payload))
			if !tt.expectErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, tt.expectedCode, stdErr.Code)
		})
	}
}

func TestExecute_ScoresAndHighlights(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		CVText:                  "Experienced Python engineer who also knows Docker",
		CVSkills:                []string{"python", "docker"},
		CVExperienceYears:       5,
		JobTitle:                "Backend Engineer",
		RequiredSkillsCsv:       "Python, SQL",
		RequiredExperienceYears: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 55.0, output.MatchPercentage)
	assert.Equal(t, []string{"Python"}, output.MatchedSkills)
	assert.Equal(t, []string{"SQL"}, output.MissingSkills)
	assert.True(t, output.ExperienceMatch)
	assert.Equal(t, 0.0, output.SemanticScore)
	assert.Equal(t, 2, output.TotalRequired)
	assert.Equal(t, 1, output.TotalMatched)
	assert.Equal(t, map[string]bool{"Python": true, "SQL": false}, output.KeywordMatches)

	// Python (required) and Docker (held) are both highlighted.
	require.Len(t, output.Highlights, 2)
	assert.Equal(t, matching.SpanSkillMatch, output.Highlights[0].Kind)
	assert.Equal(t, "Python", output.Highlights[0].Text)
	assert.Equal(t, matching.SpanSkillFound, output.Highlights[1].Kind)
	assert.Equal(t, "Docker", output.Highlights[1].Text)
}

func TestExecute_NoHeldSkills(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		CVText:            "Warehouse shift supervisor",
		CVSkills:          []string{"forklift"},
		RequiredSkillsCsv: "Go, Rust",
	})
	require.NoError(t, err)

	// Zero coverage, but the zero experience requirement is trivially met.
	assert.Equal(t, 20.0, output.MatchPercentage)
	assert.Empty(t, output.MatchedSkills)
	assert.Equal(t, []string{"Go", "Rust"}, output.MissingSkills)
	assert.True(t, output.ExperienceMatch)
}

func TestExecute_JobDescriptionEnrichesRequiredSet(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		CVText:            "Python and Kubernetes in production",
		CVSkills:          []string{"python", "kubernetes"},
		RequiredSkillsCsv: "Python",
		JobDescription:    "Must run workloads on kubernetes",
	})
	require.NoError(t, err)

	assert.Contains(t, output.RequiredSkills, "Python")
	assert.Contains(t, output.RequiredSkills, "kubernetes")
	assert.Equal(t, 2, output.TotalRequired)
	assert.Equal(t, 2, output.TotalMatched)
}

func TestExecute_SkillsExtractedFromCVWhenAbsent(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		CVText:            "Built services in Go with Redis caching",
		RequiredSkillsCsv: "Go, Redis, SQL",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "redis"}, output.CVSkills)
	assert.Len(t, output.MatchedSkills, 2)
	assert.Equal(t, []string{"SQL"}, output.MissingSkills)
}

func TestExecute_DerivesProfileFromCVText(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name              string
		input             Input
		expectedYears     float64
		expectedEducation string
		expectedExpMatch  bool
	}{
		{
			name: "experience and education derived when absent",
			input: Input{
				CVText:                  "Backend engineer with 6 years of experience in Python. Master of Science in software engineering.",
				CVSkills:                []string{"python"},
				RequiredSkillsCsv:       "Python",
				RequiredExperienceYears: 5,
			},
			expectedYears:     6,
			expectedEducation: "master",
			expectedExpMatch:  true,
		},
		{
			name: "explicit inputs win over the text",
			input: Input{
				CVText:                  "Over 10 years leading teams. PhD in physics.",
				CVSkills:                []string{"python"},
				CVExperienceYears:       2,
				CVEducation:             "bachelor",
				RequiredSkillsCsv:       "Python",
				RequiredExperienceYears: 5,
			},
			expectedYears:     2,
			expectedEducation: "bachelor",
			expectedExpMatch:  false,
		},
		{
			name: "no signal in the text degrades to defaults",
			input: Input{
				CVText:            "Python developer",
				CVSkills:          []string{"python"},
				RequiredSkillsCsv: "Python",
			},
			expectedYears:     0,
			expectedEducation: "unknown",
			expectedExpMatch:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), &tt.input)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedYears, output.CVExperienceYears)
			assert.Equal(t, tt.expectedEducation, output.CVEducation)
			assert.Equal(t, tt.expectedExpMatch, output.ExperienceMatch)
		})
	}
}
