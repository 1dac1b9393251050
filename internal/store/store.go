// internal/store/store.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/models"
)

// Store is the Postgres-backed persistence layer for jobs, candidates and
// match records. Skill lists are stored as JSONB columns.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{db: db, logger: log}
}

const jobColumns = `id, title, company_name, location, raw_text, skills_required, experience_years, created_at`

const candidateColumns = `id, name, email, raw_text, skills_extracted, experience_years, education_level, created_at`

// ListJobs returns all stored jobs ordered by creation time.
func (s *Store) ListJobs(ctx context.Context) ([]models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs ORDER BY created_at`, jobColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to list jobs", err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to iterate jobs", err)
	}

	return jobs, nil
}

// GetJob returns the job with the given id, or a RECORD_NOT_FOUND error.
func (s *Store) GetJob(ctx context.Context, id string) (models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	job, err := scanJob(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Job{}, errors.New(errors.ErrCodeRecordNotFound, fmt.Sprintf("job %s not found", id))
	}
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

// ListCandidates returns all stored candidates ordered by creation time.
func (s *Store) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates ORDER BY created_at`, candidateColumns)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to list candidates", err)
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to iterate candidates", err)
	}

	return candidates, nil
}

// GetCandidate returns the candidate with the given id, or a RECORD_NOT_FOUND
// error.
func (s *Store) GetCandidate(ctx context.Context, id string) (models.Candidate, error) {
	query := fmt.Sprintf(`SELECT %s FROM candidates WHERE id = $1`, candidateColumns)

	candidate, err := scanCandidate(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return models.Candidate{}, errors.New(errors.ErrCodeRecordNotFound, fmt.Sprintf("candidate %s not found", id))
	}
	if err != nil {
		return models.Candidate{}, err
	}
	return candidate, nil
}

// UpsertMatch inserts or updates the match record for its (job, candidate)
// pair in a single statement, so concurrent runs over the same pair cannot
// create duplicates. It reports whether a new row was created.
func (s *Store) UpsertMatch(ctx context.Context, match models.Match) (bool, error) {
	keywords, err := json.Marshal(match.KeywordMatches)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, "failed to encode keyword matches", err)
	}

	matchedOn := match.MatchedOn
	if matchedOn.IsZero() {
		matchedOn = time.Now().UTC()
	}

	query := `
		INSERT INTO matches (id, job_id, candidate_id, match_percentage, keyword_matches, semantic_score, matched_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (job_id, candidate_id) DO UPDATE SET
			match_percentage = EXCLUDED.match_percentage,
			keyword_matches = EXCLUDED.keyword_matches,
			semantic_score = EXCLUDED.semantic_score,
			matched_on = EXCLUDED.matched_on
		RETURNING (xmax = 0) AS created`

	var created bool
	err = s.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		match.JobID,
		match.CandidateID,
		match.MatchPercentage,
		keywords,
		match.SemanticScore,
		matchedOn,
	).Scan(&created)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to upsert match", err)
	}

	return created, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (models.Job, error) {
	var (
		job       models.Job
		location  sql.NullString
		rawText   sql.NullString
		skillsRaw []byte
	)

	err := row.Scan(&job.ID, &job.Title, &job.CompanyName, &location, &rawText,
		&skillsRaw, &job.ExperienceYears, &job.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Job{}, err
	}
	if err != nil {
		return models.Job{}, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to scan job row", err)
	}

	job.Location = location.String
	job.RawText = rawText.String
	if len(skillsRaw) > 0 {
		if err := json.Unmarshal(skillsRaw, &job.SkillsRequired); err != nil {
			return models.Job{}, errors.Wrap(errors.ErrCodeInternal, "failed to decode job skills", err)
		}
	}

	return job, nil
}

func scanCandidate(row rowScanner) (models.Candidate, error) {
	var (
		candidate models.Candidate
		email     sql.NullString
		rawText   sql.NullString
		education sql.NullString
		skillsRaw []byte
	)

	err := row.Scan(&candidate.ID, &candidate.Name, &email, &rawText,
		&skillsRaw, &candidate.ExperienceYears, &education, &candidate.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Candidate{}, err
	}
	if err != nil {
		return models.Candidate{}, errors.Wrap(errors.ErrCodeStoreQueryFailed, "failed to scan candidate row", err)
	}

	candidate.Email = email.String
	candidate.RawText = rawText.String
	candidate.Education = models.ParseEducationLevel(education.String)
	if len(skillsRaw) > 0 {
		if err := json.Unmarshal(skillsRaw, &candidate.SkillsExtracted); err != nil {
			return models.Candidate{}, errors.Wrap(errors.ErrCodeInternal, "failed to decode candidate skills", err)
		}
	}

	return candidate, nil
}
