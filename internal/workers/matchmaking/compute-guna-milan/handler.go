// internal/workers/matchmaking/compute-guna-milan/handler.go
package computegunamilan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"guna-milan-workers/internal/common/camunda"
	"guna-milan-workers/internal/common/config"
	"guna-milan-workers/internal/common/errors"
	"guna-milan-workers/internal/common/logger"
	"guna-milan-workers/internal/common/metrics"
	"guna-milan-workers/internal/common/observability"
	"guna-milan-workers/internal/common/validation"
	"guna-milan-workers/internal/gunamilan"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

const TaskType = config.TaskComputeGunaMilan

// reportNamespace scopes report IDs so equal inputs always map to the same ID.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:guna-milan:report"))

type Handler struct {
	config     *Config
	logger     logger.Logger
	store      ChartStore
	cache      ReportCache
	obs        *observability.Observability
	errHandler *errors.ErrorHandler
	retry      *camunda.RetryConfig
}

// HandlerOptions wires the worker. Store and Cache are optional: without a store a
// chartId cannot be resolved, without a cache every job is computed.
type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Store         ChartStore
	Cache         ReportCache
	Observability *observability.Observability
	Logger        logger.Logger
	RetryConfig   *camunda.RetryConfig
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	workerConfig := opts.CustomConfig
	if workerConfig == nil {
		workerConfig = LoadConfig(opts.AppConfig)
	}
	if err := workerConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	var loggerInstance logger.Logger
	if opts.Logger != nil {
		loggerInstance = opts.Logger
	} else {
		loggerInstance = logger.NewStructured("info", "json")
	}
	loggerInstance = loggerInstance.WithFields(map[string]interface{}{"taskType": TaskType})

	retry := opts.RetryConfig
	if retry == nil {
		retry = camunda.DefaultRetryConfig
	}

	cache := opts.Cache
	if !workerConfig.CachingEnabled() {
		cache = nil
	}

	return &Handler{
		config:     workerConfig,
		logger:     loggerInstance,
		store:      opts.Store,
		cache:      cache,
		obs:        opts.Observability,
		errHandler: errors.NewErrorHandler(loggerInstance),
		retry:      retry,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	ctx, span := h.obs.StartSpan(ctx, TaskType,
		attribute.Int64("job.key", job.GetKey()),
		attribute.Int64("process.instance.key", job.GetProcessInstanceKey()),
	)
	defer span.End()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
		"retries":            job.GetRetries(),
	})

	input, err := h.parseInput(job)
	if err != nil {
		h.failJob(ctx, client, job, err, startTime)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid input")
		return
	}

	output, err := h.execute(ctx, input)
	if err != nil {
		h.failJob(ctx, client, job, err, startTime)
		span.RecordError(err)
		span.SetStatus(codes.Error, "compute failed")
		return
	}

	span.SetAttributes(
		attribute.String("report.id", output.ReportID),
		attribute.Bool("report.cached", output.Cached),
	)

	if err := h.completeJob(ctx, client, job, output); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "COMPLETE_FAILED").Inc()
		h.obs.RecordJobProcessed(ctx, "complete_failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, "complete failed")
		return
	}

	duration := time.Since(startTime)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(duration.Seconds())
	h.obs.RecordJobProcessed(ctx, "completed")
	h.obs.RecordJobDuration(ctx, duration, "completed")
}

func (h *Handler) parseInput(job entities.Job) (*Input, error) {
	variables, err := job.GetVariablesAsMap()
	if err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}

	result := validation.ValidateInput(variables, GetInputSchema())
	if !result.Valid {
		return nil, errors.NewInputValidationFailedError(
			fmt.Sprintf("Validation errors: %v", result.GetErrorMessages()),
		).WithMetadata("validationErrors", result.Errors)
	}

	var input Input
	if err := json.Unmarshal([]byte(job.GetVariables()), &input); err != nil {
		return nil, errors.NewInputParsingFailedError(err)
	}
	return &input, nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	language := input.Language
	if language == "" {
		language = h.config.DefaultLanguage
	}
	language = string(gunamilan.ParseLanguage(language))

	male, female, err := h.resolvePersons(ctx, input)
	if err != nil {
		return nil, err
	}

	reportID, err := ReportID(male, female, language)
	if err != nil {
		return nil, errors.NewReportEncodeFailedError(err)
	}

	if result, ok := h.cachedResult(ctx, reportID); ok {
		h.logger.Info("report served from cache", map[string]interface{}{
			"reportId":  reportID,
			"requestId": input.RequestID,
		})
		return newOutput(reportID, input.RequestID, result, true), nil
	}

	_, span := h.obs.StartSpan(ctx, "gunamilan.evaluate", attribute.String("language", language))
	result := gunamilan.Evaluate(male, female, language)
	span.End()

	h.recordResult(ctx, reportID, result)
	h.storeResult(ctx, reportID, result)

	return newOutput(reportID, input.RequestID, result, false), nil
}

// resolvePersons loads referenced charts for both persons concurrently.
func (h *Handler) resolvePersons(ctx context.Context, input *Input) (gunamilan.PersonInput, gunamilan.PersonInput, error) {
	persons := [2]Person{input.Male, input.Female}
	resolved := [2]gunamilan.PersonInput{input.Male.PersonInput, input.Female.PersonInput}

	g, gctx := errgroup.WithContext(ctx)
	for i := range persons {
		if !persons[i].needsChart() {
			continue
		}
		g.Go(func() error {
			chartID := persons[i].ChartID
			if h.store == nil {
				return errors.NewChartStoreDisabledError(chartID)
			}
			chart, err := h.store.GetChart(gctx, chartID)
			if err != nil {
				return err
			}
			resolved[i] = persons[i].withChart(chart)
			h.logger.Debug("chart loaded", map[string]interface{}{"chartId": chartID})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return gunamilan.PersonInput{}, gunamilan.PersonInput{}, err
	}
	return resolved[0], resolved[1], nil
}

func (h *Handler) cachedResult(ctx context.Context, reportID string) (*gunamilan.Result, bool) {
	if h.cache == nil {
		return nil, false
	}
	result, ok, err := h.cache.Get(ctx, reportID)
	switch {
	case err != nil:
		metrics.ReportCacheRequests.WithLabelValues("error").Inc()
		h.logger.Warn("report cache read failed, recomputing", map[string]interface{}{
			"reportId": reportID,
			"error":    err.Error(),
		})
		return nil, false
	case !ok:
		metrics.ReportCacheRequests.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.ReportCacheRequests.WithLabelValues("hit").Inc()
	return result, true
}

func (h *Handler) storeResult(ctx context.Context, reportID string, result *gunamilan.Result) {
	if h.cache == nil {
		return
	}
	if err := h.cache.Set(ctx, reportID, result); err != nil {
		h.logger.Warn("report cache write failed", map[string]interface{}{
			"reportId": reportID,
			"error":    err.Error(),
		})
	}
}

func (h *Handler) recordResult(ctx context.Context, reportID string, result *gunamilan.Result) {
	notes := append(append([]gunamilan.Note{}, result.Male.Notes...), result.Female.Notes...)
	for _, note := range notes {
		metrics.FactDefaultsApplied.WithLabelValues(note.Field).Inc()
	}
	if len(notes) > 0 {
		h.logger.Warn("astro facts defaulted", map[string]interface{}{
			"reportId":    reportID,
			"maleNotes":   noteStrings(result.Male.Notes),
			"femaleNotes": noteStrings(result.Female.Notes),
		})
	}

	total := result.Ashtakoot.Total
	favorable := result.MatchMaking.Favorable
	metrics.GunaMilanTotalPoints.Observe(total)
	metrics.GunaMilanVerdicts.WithLabelValues(fmt.Sprintf("%t", favorable)).Inc()
	h.obs.RecordMatch(ctx, total, favorable, string(result.Language))

	h.logger.Info("guna milan computed", map[string]interface{}{
		"reportId":   reportID,
		"total":      total,
		"percentage": result.MatchMaking.Percentage,
		"favorable":  favorable,
		"rajjuDosha": result.Rajju.HasDosha,
		"language":   result.Language,
	})
}

func noteStrings(notes []gunamilan.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

// ReportID derives a stable ID from the engine version, the resolved persons and language.
// encoding/json sorts map keys, so equal inputs always encode identically.
func ReportID(male, female gunamilan.PersonInput, language string) (string, error) {
	return reportID(gunamilan.EngineVersion, male, female, language)
}

func reportID(version string, male, female gunamilan.PersonInput, language string) (string, error) {
	canonical, err := json.Marshal(struct {
		Version  string                `json:"version"`
		Language string                `json:"language"`
		Male     gunamilan.PersonInput `json:"male"`
		Female   gunamilan.PersonInput `json:"female"`
	}{version, language, male, female})
	if err != nil {
		return "", err
	}
	return uuid.NewSHA1(reportNamespace, canonical).String(), nil
}

func newOutput(reportID, requestID string, result *gunamilan.Result, cached bool) *Output {
	return &Output{
		ReportID:    reportID,
		RequestID:   requestID,
		GunaMilan:   result,
		TotalPoints: result.Ashtakoot.Total,
		Percentage:  result.MatchMaking.Percentage,
		Favorable:   result.MatchMaking.Favorable,
		Cached:      cached,
	}
}

func (h *Handler) completeJob(ctx context.Context, client worker.JobClient, job entities.Job, output *Output) error {
	err := camunda.Retry(ctx, h.retry, "complete job", func(ctx context.Context) error {
		cmd, err := client.NewCompleteJobCommand().
			JobKey(job.GetKey()).
			VariablesFromObject(output)
		if err != nil {
			return errors.NewReportEncodeFailedError(err)
		}
		_, err = cmd.Send(ctx)
		return err
	})
	if err != nil {
		h.logger.Error("failed to complete job", map[string]interface{}{
			"jobKey":   job.GetKey(),
			"reportId": output.ReportID,
			"error":    err.Error(),
		})
		return err
	}

	h.logger.Info("job completed", map[string]interface{}{
		"jobKey":    job.GetKey(),
		"reportId":  output.ReportID,
		"favorable": output.Favorable,
		"cached":    output.Cached,
	})
	return nil
}

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error, startTime time.Time) {
	stdErr := h.errHandler.HandleJobError(ctx, client, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.obs.RecordJobProcessed(ctx, "failed")
	h.obs.RecordJobDuration(ctx, time.Since(startTime), "failed")
}

// Execute runs the computation without a Zeebe job, for tests and the CLI.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
