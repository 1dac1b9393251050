// internal/workers/data-access/search-records/handler.go
package searchrecords

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
)

const (
	TaskType = "search-records"

	maxPageSize = 100
)

type Handler struct {
	config       *Config
	client       *elasticsearch.Client
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		client:       client,
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
		h.errorHandler.HandleJobError(ctx, client, job, errors.Wrap(errors.ErrCodeParseError, "parse input", err))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	index, err := h.indexFor(input.Entity)
	if err != nil {
		return nil, err
	}

	from := input.Pagination.From
	if from < 0 {
		from = 0
	}
	size := input.Pagination.Size
	if size < 1 {
		size = h.config.DefaultSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	req, err := buildSearchRequest(index, input.Entity, input.Query, input.Skills, from, size)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeValidationFailed, "build search request", err)
	}

	start := time.Now()
	res, err := req.Do(ctx, h.client)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.New(errors.ErrCodeSearchTimeout, "search timed out")
		}
		return nil, errors.Wrap(errors.ErrCodeSearchQueryFailed, "search request failed", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil, errors.New(errors.ErrCodeIndexNotFound, fmt.Sprintf("index %s not found", index))
		}
		return nil, errors.New(errors.ErrCodeSearchQueryFailed, res.String())
	}

	output, err := decodeSearchResponse(res.Body, time.Since(start))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSearchQueryFailed, "decode search response", err)
	}

	h.logger.Info("search completed", map[string]interface{}{
		"entity":    input.Entity,
		"index":     index,
		"totalHits": output.TotalHits,
		"tookMs":    output.Took,
	})

	return output, nil
}

func (h *Handler) indexFor(entity string) (string, error) {
	switch entity {
	case "jobs":
		return h.config.JobsIndex, nil
	case "candidates":
		return h.config.CandidatesIndex, nil
	default:
		return "", errors.New(errors.ErrCodeValidationFailed, fmt.Sprintf("entity must be jobs or candidates, got %q", entity))
	}
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

// Execute exposes the core logic for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
