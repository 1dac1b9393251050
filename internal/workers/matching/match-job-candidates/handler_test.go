// internal/workers/matching/match-job-candidates/handler_test.go
package matchjobcandidates

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/matching"
	"ats-match-workers/internal/models"
	"ats-match-workers/internal/store"
)

func createTestConfig() *Config {
	return &Config{
		CacheTTL: time.Minute,
		Timeout:  5 * time.Second,
	}
}

func setupHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	log := logger.NewNoOpLogger()
	st := store.NewStore(db, log)
	orch := matching.NewOrchestrator(st, matching.NewScorer(matching.DefaultWeights), log)

	return NewHandler(createTestConfig(), st, rdb, orch, log), mock, mr
}

var candidateColumns = []string{"id", "name", "email", "raw_text", "skills_extracted", "experience_years", "education_level", "created_at"}

var jobColumns = []string{"id", "title", "company_name", "location", "raw_text", "skills_required", "experience_years", "created_at"}

func testJob() *models.Job {
	return &models.Job{
		ID:              "job-1",
		Title:           "Backend Engineer",
		CompanyName:     "Acme",
		SkillsRequired:  []string{"Python", "SQL"},
		ExperienceYears: 3,
	}
}

func TestExecute_InlineJob(t *testing.T) {
	h, mock, _ := setupHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM candidates ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(candidateColumns).
			AddRow("cand-1", "Jordan Lee", nil, nil, []byte(`["python","sql"]`), 5.0, "", time.Now()).
			AddRow("cand-2", "Sam Roy", nil, nil, []byte(`["go"]`), 1.0, "", time.Now()))
	mock.ExpectQuery("INSERT INTO matches").
		WillReturnRows(sqlmock.NewRows([]string{"created"}).AddRow(true))
	mock.ExpectQuery("INSERT INTO matches").
		WillReturnRows(sqlmock.NewRows([]string{"created"}).AddRow(true))

	output, err := h.Execute(context.Background(), &Input{Job: testJob()})
	require.NoError(t, err)

	assert.Equal(t, "job-1", output.JobID)
	assert.Equal(t, 2, output.TotalCandidates)
	assert.Equal(t, 2, output.MatchesCreated)
	assert.Equal(t, 0, output.MatchesUpdated)
	require.Len(t, output.Results, 2)
	assert.Equal(t, "cand-1", output.Results[0].CandidateID)
	assert.Equal(t, 90.0, output.Results[0].MatchPercentage)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_JobFromCache(t *testing.T) {
	h, mock, mr := setupHandler(t)

	cached, err := json.Marshal(testJob())
	require.NoError(t, err)
	require.NoError(t, mr.Set(jobCacheKeyPrefix+"job-1", string(cached)))

	// Only the candidate listing hits the database.
	mock.ExpectQuery("SELECT (.+) FROM candidates ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	output, err := h.Execute(context.Background(), &Input{JobID: "job-1"})
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", output.JobTitle)
	assert.Equal(t, 0, output.TotalCandidates)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_JobFromStorePopulatesCache(t *testing.T) {
	h, mock, mr := setupHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id").
		WithArgs("job-1").
		WillReturnRows(sqlmock.NewRows(jobColumns).
			AddRow("job-1", "Backend Engineer", "Acme", nil, nil, []byte(`["Python","SQL"]`), 3.0, time.Now()))
	mock.ExpectQuery("SELECT (.+) FROM candidates ORDER BY created_at").
		WillReturnRows(sqlmock.NewRows(candidateColumns))

	_, err := h.Execute(context.Background(), &Input{JobID: "job-1"})
	require.NoError(t, err)

	assert.True(t, mr.Exists(jobCacheKeyPrefix+"job-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecute_JobNotFound(t *testing.T) {
	h, mock, _ := setupHandler(t)

	mock.ExpectQuery("SELECT (.+) FROM jobs WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := h.Execute(context.Background(), &Input{JobID: "missing"})
	require.Error(t, err)
}
