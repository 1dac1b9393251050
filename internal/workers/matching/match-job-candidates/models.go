// internal/workers/matching/match-job-candidates/models.go
package matchjobcandidates

import (
	"ats-match-workers/internal/matching"
	"ats-match-workers/internal/models"
)

type Input struct {
	JobID string `json:"jobId"`
	// Job carries an inline payload; when set the store lookup is skipped.
	Job *models.Job `json:"job,omitempty"`
}

type Output struct {
	JobID           string                     `json:"jobId"`
	JobTitle        string                     `json:"jobTitle"`
	TotalCandidates int                        `json:"totalCandidates"`
	MatchesCreated  int                        `json:"matchesCreated"`
	MatchesUpdated  int                        `json:"matchesUpdated"`
	Results         []matching.CandidateResult `json:"results"`
}
