// internal/workers/matching/match-candidate-jobs/models.go
package matchcandidatejobs

import (
	"ats-match-workers/internal/matching"
	"ats-match-workers/internal/models"
)

type Input struct {
	CandidateID string `json:"candidateId"`
	// Candidate carries an inline payload; when set the store lookup is
	// skipped.
	Candidate *models.Candidate `json:"candidate,omitempty"`
}

type Output struct {
	CandidateID    string               `json:"candidateId"`
	CandidateName  string               `json:"candidateName"`
	TotalJobs      int                  `json:"totalJobs"`
	MatchesCreated int                  `json:"matchesCreated"`
	MatchesUpdated int                  `json:"matchesUpdated"`
	Results        []matching.JobResult `json:"results"`
}
