// internal/models/match.go
package models

import "time"

// Match is the persisted scoring result for one (job, candidate) pair. The
// pair identity is stable: rescoring updates the existing record in place, so
// a pair never has more than one Match row.
type Match struct {
	ID              string          `json:"id"`
	JobID           string          `json:"jobId"`
	CandidateID     string          `json:"candidateId"`
	MatchPercentage float64         `json:"matchPercentage"`
	KeywordMatches  map[string]bool `json:"keywordMatches"`
	SemanticScore   float64         `json:"semanticScore"`
	MatchedOn       time.Time       `json:"matchedOn"`
}
