// internal/workers/matching/match-job-candidates/handler.go
package matchjobcandidates

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
	TaskType = "match-job-candidates"

	jobCacheKeyPrefix = "match:job:"
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
	if input.JobID == "" && input.Job == nil {
		h.fail(ctx, client, job, errors.New(errors.ErrCodeValidationFailed, "jobId or an inline job is required"))
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
	target := input.Job
	if target == nil {
		fetched, err := h.getJob(ctx, input.JobID)
		if err != nil {
			return nil, err
		}
		target = fetched
	}

	summary, err := h.orchestrator.MatchJobAgainstCandidates(ctx, *target)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMatchRunFailed, "match run failed", err)
	}

	h.logger.Info("match run completed", map[string]interface{}{
		"jobId":           summary.JobID,
		"totalCandidates": summary.TotalCandidates,
		"matchesCreated":  summary.Created,
		"matchesUpdated":  summary.Updated,
	})

	return &Output{
		JobID:           summary.JobID,
		JobTitle:        summary.JobTitle,
		TotalCandidates: summary.TotalCandidates,
		MatchesCreated:  summary.Created,
		MatchesUpdated:  summary.Updated,
		Results:         summary.Results,
	}, nil
}

// getJob resolves a job by id, going through the Redis cache before hitting
// the store. Cache problems fall through to the store silently.
func (h *Handler) getJob(ctx context.Context, jobID string) (*models.Job, error) {
	cacheKey := jobCacheKeyPrefix + jobID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var job models.Job
		if err := json.Unmarshal([]byte(val), &job); err == nil {
			return &job, nil
		}
	}

	job, err := h.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(job); err == nil {
		h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)
	}

	return &job, nil
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
	metrics.MatchRunsFailed.WithLabelValues(TaskType, errorCode(err)).Inc()
	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func errorCode(err error) string {
	if stdErr, ok := err.(*errors.StandardError); ok {
		return string(stdErr.Code)
	}
	return string(errors.ErrCodeInternal)
}

// Execute exposes the core logic for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
