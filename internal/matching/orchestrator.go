// internal/matching/orchestrator.go
package matching

import (
	"context"
	"errors"
	"sort"

	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/models"
)

var (
	ErrMissingJobID       = errors.New("job id is required")
	ErrMissingCandidateID = errors.New("candidate id is required")
)

// MatchStore is the persistence surface the orchestrator needs. UpsertMatch
// must be atomic on the (job, candidate) pair identity so concurrent runs
// over overlapping pair sets cannot create duplicates.
type MatchStore interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	UpsertMatch(ctx context.Context, match models.Match) (created bool, err error)
}

// CandidateResult is one row of a job-to-candidates run.
type CandidateResult struct {
	CandidateID     string   `json:"candidateId"`
	CandidateName   string   `json:"candidateName"`
	MatchPercentage float64  `json:"matchPercentage"`
	MatchedSkills   []string `json:"matchedSkills"`
}

// JobResult is one row of a candidate-to-jobs run.
type JobResult struct {
	JobID           string   `json:"jobId"`
	JobTitle        string   `json:"jobTitle"`
	CompanyName     string   `json:"companyName"`
	MatchPercentage float64  `json:"matchPercentage"`
	MatchedSkills   []string `json:"matchedSkills"`
}

// JobRunSummary aggregates a one-job-against-all-candidates run.
type JobRunSummary struct {
	JobID           string            `json:"jobId"`
	JobTitle        string            `json:"jobTitle"`
	TotalCandidates int               `json:"totalCandidates"`
	Created         int               `json:"matchesCreated"`
	Updated         int               `json:"matchesUpdated"`
	Results         []CandidateResult `json:"results"`
}

// CandidateRunSummary aggregates a one-candidate-against-all-jobs run.
type CandidateRunSummary struct {
	CandidateID   string      `json:"candidateId"`
	CandidateName string      `json:"candidateName"`
	TotalJobs     int         `json:"totalJobs"`
	Created       int         `json:"matchesCreated"`
	Updated       int         `json:"matchesUpdated"`
	Results       []JobResult `json:"results"`
}

// BulkRunSummary aggregates a full cross-product run. TotalMatches counts
// created plus updated records; pairs that failed to persist are excluded.
type BulkRunSummary struct {
	TotalJobs       int `json:"totalJobs"`
	TotalCandidates int `json:"totalCandidates"`
	TotalMatches    int `json:"totalMatches"`
	Created         int `json:"matchesCreated"`
	Updated         int `json:"matchesUpdated"`
}

// Orchestrator drives pairwise scoring runs against the match store. All
// three run modes are idempotent: the store upserts on the pair identity, so
// rerunning never duplicates Match records.
type Orchestrator struct {
	store  MatchStore
	scorer *Scorer
	logger logger.Logger
}

func NewOrchestrator(store MatchStore, scorer *Scorer, log logger.Logger) *Orchestrator {
	return &Orchestrator{
		store:  store,
		scorer: scorer,
		logger: log.WithFields(map[string]interface{}{"component": "orchestrator"}),
	}
}

// MatchJobAgainstCandidates scores one job against every stored candidate,
// upserting a Match per pair. Results are sorted by percentage descending.
func (o *Orchestrator) MatchJobAgainstCandidates(ctx context.Context, job models.Job) (*JobRunSummary, error) {
	if job.ID == "" {
		return nil, ErrMissingJobID
	}

	candidates, err := o.store.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	summary := &JobRunSummary{
		JobID:           job.ID,
		JobTitle:        job.Title,
		TotalCandidates: len(candidates),
		Results:         make([]CandidateResult, 0, len(candidates)),
	}

	for _, candidate := range candidates {
		breakdown, created, err := o.scoreAndStore(ctx, job, candidate)
		if err != nil {
			o.logger.Warn("pair scoring failed, skipping", map[string]interface{}{
				"jobId":       job.ID,
				"candidateId": candidate.ID,
				"error":       err,
			})
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
		summary.Results = append(summary.Results, CandidateResult{
			CandidateID:     candidate.ID,
			CandidateName:   candidate.Name,
			MatchPercentage: breakdown.MatchPercentage,
			MatchedSkills:   breakdown.MatchedSkills,
		})
	}

	sort.SliceStable(summary.Results, func(i, j int) bool {
		return summary.Results[i].MatchPercentage > summary.Results[j].MatchPercentage
	})
	return summary, nil
}

// MatchCandidateAgainstJobs scores one candidate against every stored job.
func (o *Orchestrator) MatchCandidateAgainstJobs(ctx context.Context, candidate models.Candidate) (*CandidateRunSummary, error) {
	if candidate.ID == "" {
		return nil, ErrMissingCandidateID
	}

	jobs, err := o.store.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &CandidateRunSummary{
		CandidateID:   candidate.ID,
		CandidateName: candidate.Name,
		TotalJobs:     len(jobs),
		Results:       make([]JobResult, 0, len(jobs)),
	}

	for _, job := range jobs {
		breakdown, created, err := o.scoreAndStore(ctx, job, candidate)
		if err != nil {
			o.logger.Warn("pair scoring failed, skipping", map[string]interface{}{
				"jobId":       job.ID,
				"candidateId": candidate.ID,
				"error":       err,
			})
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
		summary.Results = append(summary.Results, JobResult{
			JobID:           job.ID,
			JobTitle:        job.Title,
			CompanyName:     job.CompanyName,
			MatchPercentage: breakdown.MatchPercentage,
			MatchedSkills:   breakdown.MatchedSkills,
		})
	}

	sort.SliceStable(summary.Results, func(i, j int) bool {
		return summary.Results[i].MatchPercentage > summary.Results[j].MatchPercentage
	})
	return summary, nil
}

// MatchAllPairs computes the full cross product of stored jobs and
// candidates. Every pair produces a Match, including pairs with no skills on
// either side.
func (o *Orchestrator) MatchAllPairs(ctx context.Context) (*BulkRunSummary, error) {
	jobs, err := o.store.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := o.store.ListCandidates(ctx)
	if err != nil {
		return nil, err
	}

	summary := &BulkRunSummary{
		TotalJobs:       len(jobs),
		TotalCandidates: len(candidates),
	}

	for _, job := range jobs {
		for _, candidate := range candidates {
			_, created, err := o.scoreAndStore(ctx, job, candidate)
			if err != nil {
				o.logger.Warn("pair scoring failed, skipping", map[string]interface{}{
					"jobId":       job.ID,
					"candidateId": candidate.ID,
					"error":       err,
				})
				continue
			}
			if created {
				summary.Created++
			} else {
				summary.Updated++
			}
		}
	}

	summary.TotalMatches = summary.Created + summary.Updated
	return summary, nil
}

// scoreAndStore computes the breakdown for one pair and upserts the Match.
// No semantic signal is available in batch runs, so it is stored as zero.
func (o *Orchestrator) scoreAndStore(ctx context.Context, job models.Job, candidate models.Candidate) (MatchBreakdown, bool, error) {
	if job.ID == "" {
		return MatchBreakdown{}, false, ErrMissingJobID
	}
	if candidate.ID == "" {
		return MatchBreakdown{}, false, ErrMissingCandidateID
	}

	breakdown := o.scorer.Score(
		JobRequirement{
			Title:                   job.Title,
			RequiredSkills:          NewSkillSet(job.SkillsRequired...),
			RequiredExperienceYears: job.ExperienceYears,
		},
		CandidateProfile{
			Name:            candidate.Name,
			HeldSkills:      NewSkillSet(candidate.SkillsExtracted...),
			ExperienceYears: candidate.ExperienceYears,
			Education:       candidate.Education,
			RawText:         candidate.RawText,
		},
		0,
	)

	created, err := o.store.UpsertMatch(ctx, models.Match{
		JobID:           job.ID,
		CandidateID:     candidate.ID,
		MatchPercentage: breakdown.MatchPercentage,
		KeywordMatches:  breakdown.KeywordMatches,
		SemanticScore:   breakdown.SemanticScore,
	})
	if err != nil {
		return MatchBreakdown{}, false, err
	}
	return breakdown, created, nil
}
