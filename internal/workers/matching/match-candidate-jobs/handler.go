// internal/workers/matching/match-candidate-jobs/handler.go
package matchcandidatejobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/common/metrics"
	"ats-match-workers/internal/matching"
	"ats-match-workers/internal/models"
	"ats-match-workers/internal/store"
)

const (
	TaskType = "match-candidate-jobs"

	candidateCacheKeyPrefix = "match:candidate:"
)

type Handler struct {
	config       *Config
	store        *store.Store
	redis        *redis.Client
	orchestrator *matching.Orchestrator
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, st *store.Store, rdb *redis.Client, orch *matching.Orchestrator, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		store:        st,
		redis:        rdb,
		orchestrator: orch,
		errorHandler: errors.NewErrorHandler(scoped),
		logger:       scoped,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(ctx, client, job, errors.Wrap(errors.ErrCodeParseError, "parse input", err))
		return
	}
	if input.CandidateID == "" && input.Candidate == nil {
		h.fail(ctx, client, job, errors.New(errors.ErrCodeValidationFailed, "candidateId or an inline candidate is required"))
		return
	}

	start := time.Now()
	output, err := h.execute(ctx, &input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	metrics.MatchRunsCompleted.WithLabelValues(TaskType).Inc()
	metrics.MatchRunDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	metrics.MatchPairsScored.WithLabelValues("created").Add(float64(output.MatchesCreated))
	metrics.MatchPairsScored.WithLabelValues("updated").Add(float64(output.MatchesUpdated))

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	target := input.Candidate
	if target == nil {
		fetched, err := h.getCandidate(ctx, input.CandidateID)
		if err != nil {
			return nil, err
		}
		target = fetched
	}

	summary, err := h.orchestrator.MatchCandidateAgainstJobs(ctx, *target)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMatchRunFailed, "match run failed", err)
	}

	h.logger.Info("match run completed", map[string]interface{}{
		"candidateId":    summary.CandidateID,
		"totalJobs":      summary.TotalJobs,
		"matchesCreated": summary.Created,
		"matchesUpdated": summary.Updated,
	})

	return &Output{
		CandidateID:    summary.CandidateID,
		CandidateName:  summary.CandidateName,
		TotalJobs:      summary.TotalJobs,
		MatchesCreated: summary.Created,
		MatchesUpdated: summary.Updated,
		Results:        summary.Results,
	}, nil
}

// getCandidate resolves a candidate by id through the Redis cache, falling
// back to the store on a miss.
func (h *Handler) getCandidate(ctx context.Context, candidateID string) (*models.Candidate, error) {
	cacheKey := candidateCacheKeyPrefix + candidateID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var candidate models.Candidate
		if err := json.Unmarshal([]byte(val), &candidate); err == nil {
			return &candidate, nil
		}
	}

	candidate, err := h.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(candidate); err == nil {
		h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)
	}

	return &candidate, nil
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err := cmd.Send(ctx); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) fail(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	code := string(errors.ErrCodeInternal)
	if stdErr, ok := err.(*errors.StandardError); ok {
		code = string(stdErr.Code)
	}
	metrics.MatchRunsFailed.WithLabelValues(TaskType, code).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

// Execute exposes the core logic for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
