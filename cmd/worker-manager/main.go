// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ats-match-workers/internal/common/camunda"
	"ats-match-workers/internal/common/config"
	"ats-match-workers/internal/common/database"
	"ats-match-workers/internal/common/logger"
	"ats-match-workers/internal/common/observability"
	"ats-match-workers/internal/extraction"
	"ats-match-workers/internal/matching"
	"ats-match-workers/internal/store"

	sr "ats-match-workers/internal/workers/data-access/search-records"
	bm "ats-match-workers/internal/workers/matching/bulk-match"
	ccs "ats-match-workers/internal/workers/matching/check-cv-score"
	mcj "ats-match-workers/internal/workers/matching/match-candidate-jobs"
	mjc "ats-match-workers/internal/workers/matching/match-job-candidates"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Zeebe client with retry ---
	zeebeClient, err := camunda.NewClientWithConfig(&camunda.ClientConfig{
		GatewayAddress:         cfg.Camunda.BrokerAddress,
		UsePlaintextConnection: true,
		RetryConfig: &camunda.RetryConfig{
			MaxRetries: 10,
			BaseDelay:  2 * time.Second,
			MaxDelay:   30 * time.Second,
		},
	})
	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
	if err != nil {
		zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
	}
	zapLog.Info("Elasticsearch connected successfully")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Shared matching components ---
	matchStore := store.NewStore(pg.DB, log)
	scorer := matching.NewScorer(matching.Weights{
		Skills:     cfg.Matching.Weights.Skills,
		Experience: cfg.Matching.Weights.Experience,
		Semantic:   cfg.Matching.Weights.Semantic,
	})
	orchestrator := matching.NewOrchestrator(matchStore, scorer, log)
	extractor := extraction.NewDefaultExtractor()
	cacheTTL := time.Duration(cfg.Matching.ProfileCacheTTL) * time.Second

	// --- Register workers ---
	var workers []*camunda.CamundaWorker

	if wcfg, ok := cfg.Workers[mjc.TaskType]; ok && wcfg.Enabled {
		handler := mjc.NewHandler(
			&mjc.Config{
				CacheTTL: cacheTTL,
				Timeout:  time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			matchStore, redisClient.Client, orchestrator, log,
		)
		workers = append(workers, camunda.NewWorker(
			zeebeClient, mjc.TaskType, wcfg.MaxJobsActive,
			time.Duration(wcfg.Timeout)*time.Millisecond, handler, zapLog,
		))
	}

	if wcfg, ok := cfg.Workers[mcj.TaskType]; ok && wcfg.Enabled {
		handler := mcj.NewHandler(
			&mcj.Config{
				CacheTTL: cacheTTL,
				Timeout:  time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			matchStore, redisClient.Client, orchestrator, log,
		)
		workers = append(workers, camunda.NewWorker(
			zeebeClient, mcj.TaskType, wcfg.MaxJobsActive,
			time.Duration(wcfg.Timeout)*time.Millisecond, handler, zapLog,
		))
	}

	if wcfg, ok := cfg.Workers[bm.TaskType]; ok && wcfg.Enabled {
		handler := bm.NewHandler(
			&bm.Config{
				Timeout: time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			orchestrator, log,
		)
		workers = append(workers, camunda.NewWorker(
			zeebeClient, bm.TaskType, wcfg.MaxJobsActive,
			time.Duration(wcfg.Timeout)*time.Millisecond, handler, zapLog,
		))
	}

	if wcfg, ok := cfg.Workers[ccs.TaskType]; ok && wcfg.Enabled {
		handler := ccs.NewHandler(
			&ccs.Config{
				Timeout: time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			scorer, extractor, log,
		)
		workers = append(workers, camunda.NewWorker(
			zeebeClient, ccs.TaskType, wcfg.MaxJobsActive,
			time.Duration(wcfg.Timeout)*time.Millisecond, handler, zapLog,
		))
	}

	if wcfg, ok := cfg.Workers[sr.TaskType]; ok && wcfg.Enabled {
		handler := sr.NewHandler(
			&sr.Config{
				JobsIndex:       cfg.Matching.JobsIndex,
				CandidatesIndex: cfg.Matching.CandidatesIndex,
				DefaultSize:     cfg.Matching.SearchResultSize,
				Timeout:         time.Duration(wcfg.Timeout) * time.Millisecond,
			},
			esClient.Client, log,
		)
		workers = append(workers, camunda.NewWorker(
			zeebeClient, sr.TaskType, wcfg.MaxJobsActive,
			time.Duration(wcfg.Timeout)*time.Millisecond, handler, zapLog,
		))
	}

	zapLog.Info("All workers registered", zap.Int("count", len(workers)))

	// --- Health & metrics server ---
	if cfg.Metrics.Enabled {
		go func() {
			http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "healthy",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "ready",
					"time":   time.Now().Format(time.RFC3339),
				})
			})
			http.Handle("/metrics", promhttp.Handler())

			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			zapLog.Info("Health/Metrics server listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, nil); err != nil {
				zapLog.Error("Health/Metrics server failed", zap.Error(err))
			}
		}()
	}

	// --- Graceful shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range workers {
		w.Stop(shutdownCtx)
	}

	if err := zeebeClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}
