// internal/workers/matching/check-cv-score/handler.go
package checkcvscore

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"

	"ats-match-workers/internal/common/errors"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/common/metrics"
	"ats-match-workers/internal/extraction"
	"ats-match-workers/internal/matching"
	"ats-match-workers/internal/models"
)

const (
	TaskType = "check-cv-score"
)

// inputSchema rejects untyped payloads at the boundary before any scoring
// runs.
const inputSchema = `{
	"type": "object",
	"properties": {
		"cvText": {"type": "string", "minLength": 1},
		"cvSkills": {"type": "array", "items": {"type": "string"}},
		"cvExperienceYears": {"type": "number", "minimum": 0},
		"cvEducation": {"type": "string"},
		"jobTitle": {"type": "string"},
		"requiredSkillsCsv": {"type": "string"},
		"requiredExperienceYears": {"type": "number", "minimum": 0},
		"jobDescription": {"type": "string"}
	},
	"required": ["cvText"],
	"additionalProperties": false
}`

type Handler struct {
	config       *Config
	scorer       *matching.Scorer
	extractor    extraction.Extractor
	schema       *gojsonschema.Schema
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, scorer *matching.Scorer, extractor extraction.Extractor, log logger.Logger) *Handler {
	scoped := log.WithFields(map[string]interface{}{"taskType": TaskType})
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(inputSchema))
	if err != nil {
		scoped.Error("failed to compile input schema", map[string]interface{}{
			"error": err,
		})
	}
	return &Handler{
		config:       config,
		scorer:       scorer,
		extractor:    extractor,
		schema:       schema,
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

	input, err := h.parseInput([]byte(job.Variables))
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	start := time.Now()
	output, err := h.execute(ctx, input)
	if err != nil {
		h.fail(ctx, client, job, err)
		return
	}

	metrics.MatchRunsCompleted.WithLabelValues(TaskType).Inc()
	metrics.MatchRunDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())

	h.completeJob(ctx, client, job, output)
}

func (h *Handler) parseInput(raw []byte) (*Input, error) {
	if h.schema != nil {
		result, err := h.schema.Validate(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParseError, "parse input", err)
		}
		if !result.Valid() {
			details := make([]string, 0, len(result.Errors()))
			for _, desc := range result.Errors() {
				details = append(details, desc.String())
			}
			return nil, errors.New(errors.ErrCodeValidationFailed, strings.Join(details, "; "))
		}
	}

	var input Input
	if err := json.Unmarshal(raw, &input); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParseError, "parse input", err)
	}
	if strings.TrimSpace(input.RequiredSkillsCsv) == "" && strings.TrimSpace(input.JobDescription) == "" {
		return nil, errors.New(errors.ErrCodeValidationFailed, "requiredSkillsCsv or jobDescription is required")
	}

	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	required := matching.ParseSkillsCSV(input.RequiredSkillsCsv)
	// A job description enriches the required set, it never replaces the
	// explicit CSV.
	if input.JobDescription != "" && h.extractor != nil {
		extracted := h.extractor.ExtractSkills(input.JobDescription)
		required = required.Union(matching.NewSkillSet(extracted...))
	}

	heldSkills := input.CVSkills
	if len(heldSkills) == 0 && h.extractor != nil {
		heldSkills = h.extractor.ExtractSkills(input.CVText)
	}
	held := matching.NewSkillSet(heldSkills...)

	// Explicit inputs win; anything the caller leaves out is derived from
	// the CV text.
	experienceYears := input.CVExperienceYears
	education := models.ParseEducationLevel(input.CVEducation)
	if h.extractor != nil {
		if experienceYears == 0 {
			experienceYears = h.extractor.ExtractExperienceYears(input.CVText)
		}
		if education == models.EducationUnknown {
			education = h.extractor.ExtractEducationLevel(input.CVText)
		}
	}

	breakdown := h.scorer.Score(
		matching.JobRequirement{
			Title:                   input.JobTitle,
			RequiredSkills:          required,
			RequiredExperienceYears: input.RequiredExperienceYears,
		},
		matching.CandidateProfile{
			HeldSkills:      held,
			ExperienceYears: experienceYears,
			Education:       education,
			RawText:         input.CVText,
		},
		0,
	)

	highlights := matching.Annotate(input.CVText, required, held)

	h.logger.Info("cv score computed", map[string]interface{}{
		"jobTitle":        input.JobTitle,
		"matchPercentage": breakdown.MatchPercentage,
		"totalRequired":   required.Len(),
		"totalMatched":    len(breakdown.MatchedSkills),
		"highlights":      len(highlights),
	})

	return &Output{
		JobTitle:          input.JobTitle,
		MatchPercentage:   breakdown.MatchPercentage,
		MatchedSkills:     breakdown.MatchedSkills,
		MissingSkills:     breakdown.MissingSkills,
		KeywordMatches:    breakdown.KeywordMatches,
		ExperienceMatch:   breakdown.ExperienceMatch,
		SemanticScore:     breakdown.SemanticScore,
		Highlights:        highlights,
		RequiredSkills:    required.Skills(),
		CVSkills:          held.Skills(),
		CVExperienceYears: experienceYears,
		CVEducation:       education.String(),
		TotalRequired:     required.Len(),
		TotalMatched:      len(breakdown.MatchedSkills),
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

// ParseInput exposes boundary validation for tests.
func (h *Handler) ParseInput(raw []byte) (*Input, error) {
	return h.parseInput(raw)
}

// Execute exposes the core logic for tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
