// internal/store/store_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/models"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db, logger.NewNoOpLogger()), mock
}

var jobRowColumns = []string{"id", "title", "company_name", "location", "raw_text", "skills_required", "experience_years", "created_at"}

var candidateRowColumns = []string{"id", "name", "email", "raw_text", "skills_extracted", "experience_years", "education_level", "created_at"}

func TestListJobs(t *testing.T) {
	s, mock := newTestStore(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM jobs ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(jobRowColumns).
			AddRow("job-1", "Backend Engineer", "Acme", "Berlin", "raw", []byte(`["python","sql"]`), 5.0, now).
			AddRow("job-2", "Data Engineer", "Globex", nil, nil, []byte(`[]`), 3.0, now))

	jobs, err := s.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "job-1", jobs[0].ID)
	assert.Equal(t, []string{"python", "sql"}, jobs[0].SkillsRequired)
	assert.Equal(t, "Berlin", jobs[0].Location)
	assert.Empty(t, jobs[1].SkillsRequired)
	assert.Empty(t, jobs[1].Location)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetJob_NotFound(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(jobRowColumns))

	_, err := s.GetJob(context.Background(), "missing")
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeRecordNotFound, stdErr.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListCandidates(t *testing.T) {
	s, mock := newTestStore(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM candidates ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow("cand-1", "Jordan Lee", "jordan@example.com", "cv text", []byte(`["python","docker"]`), 4.0, "master", now))

	candidates, err := s.ListCandidates(context.Background())
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	assert.Equal(t, "Jordan Lee", candidates[0].Name)
	assert.Equal(t, []string{"python", "docker"}, candidates[0].SkillsExtracted)
	assert.Equal(t, models.EducationMaster, candidates[0].Education)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCandidate_UnknownEducation(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery("SELECT (.+) FROM candidates WHERE id").
		WithArgs("cand-1").
		WillReturnRows(sqlmock.NewRows(candidateRowColumns).
			AddRow("cand-1", "Sam Roy", nil, nil, []byte(`[]`), 0.0, "bootcamp", time.Now()))

	candidate, err := s.GetCandidate(context.Background(), "cand-1")
	require.NoError(t, err)

	assert.Equal(t, models.EducationUnknown, candidate.Education)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMatch_Created(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery("INSERT INTO matches").
		WithArgs(sqlmock.AnyArg(), "job-1", "cand-1", 55.0, sqlmock.AnyArg(), 0.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created"}).AddRow(true))

	created, err := s.UpsertMatch(context.Background(), models.Match{
		JobID:           "job-1",
		CandidateID:     "cand-1",
		MatchPercentage: 55.0,
		KeywordMatches:  map[string]bool{"python": true, "sql": false},
	})
	require.NoError(t, err)
	assert.True(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMatch_Updated(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery("INSERT INTO matches").
		WithArgs(sqlmock.AnyArg(), "job-1", "cand-1", 70.0, sqlmock.AnyArg(), 0.0, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created"}).AddRow(false))

	created, err := s.UpsertMatch(context.Background(), models.Match{
		JobID:           "job-1",
		CandidateID:     "cand-1",
		MatchPercentage: 70.0,
		KeywordMatches:  map[string]bool{"python": true},
	})
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertMatch_QueryError(t *testing.T) {
	s, mock := newTestStore(t)

	mock.ExpectQuery("INSERT INTO matches").
		WillReturnError(assert.AnError)

	_, err := s.UpsertMatch(context.Background(), models.Match{JobID: "job-1", CandidateID: "cand-1"})
	require.Error(t, err)

	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeStoreQueryFailed, stdErr.Code)
}
