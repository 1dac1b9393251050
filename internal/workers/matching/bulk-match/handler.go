// internal/workers/matching/bulk-match/handler.go
package bulkmatch

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/common/metrics"
	"ats-match-workers/internal/matching"
)

const (
	TaskType = "bulk-match"
)

type Handler struct {
	config       *Config
	orchestrator *matching.Orchestrator
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, orch *matching.Orchestrator, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
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
	summary, err := h.orchestrator.MatchAllPairs(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeMatchRunFailed, "bulk match run failed", err)
	}

	h.logger.Info("bulk match run completed", map[string]interface{}{
		"requestedBy":     input.RequestedBy,
		"totalJobs":       summary.TotalJobs,
		"totalCandidates": summary.TotalCandidates,
		"totalMatches":    summary.TotalMatches,
		"matchesCreated":  summary.Created,
		"matchesUpdated":  summary.Updated,
	})

	return &Output{
		TotalJobs:       summary.TotalJobs,
		TotalCandidates: summary.TotalCandidates,
		TotalMatches:    summary.TotalMatches,
		MatchesCreated:  summary.Created,
		MatchesUpdated:  summary.Updated,
	}, nil
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
