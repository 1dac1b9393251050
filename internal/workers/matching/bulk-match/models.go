// internal/workers/matching/bulk-match/models.go
package bulkmatch

type Input struct {
	// RequestedBy is carried through for audit logging only.
	RequestedBy string `json:"requestedBy,omitempty"`
}

type Output struct {
	TotalJobs       int `json:"totalJobs"`
	TotalCandidates int `json:"totalCandidates"`
	TotalMatches    int `json:"totalMatches"`
	MatchesCreated  int `json:"matchesCreated"`
	MatchesUpdated  int `json:"matchesUpdated"`
}
