package di

import (
	"context"
	"fmt"
	"time"

	"FinSight/internal/analysis"
	"FinSight/internal/domain/repository"
	domsvc "FinSight/internal/domain/service"
	"FinSight/internal/handler/api"
	internalrepo "FinSight/internal/repository"
	"FinSight/internal/usecase"
	"FinSight/pkg/cache"
	pkgch "FinSight/pkg/clickhouse"
	"FinSight/pkg/config"
	xhttp "FinSight/pkg/http"
	pkgkafka "FinSight/pkg/kafka"
	applogger "FinSight/pkg/logger"
	"FinSight/pkg/metrics"
	"FinSight/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideBenchmarkComparator loads the quartile table, applying the optional
// YAML override when configured.
func ProvideBenchmarkComparator(cfg *config.Config) (domsvc.BenchmarkComparator, error) {
	table := analysis.DefaultBenchmarks()
	if cfg.Benchmarks.Path != "" {
		loaded, err := analysis.LoadBenchmarks(cfg.Benchmarks.Path)
		if err != nil {
			return nil, fmt.Errorf("load benchmarks: %w", err)
		}
		table = loaded
	}
	return analysis.NewBenchmarkComparator(table), nil
}

// ProvideRatioCalculator creates the ratio engine.
func ProvideRatioCalculator() domsvc.RatioCalculator {
	return analysis.NewRatioCalculator()
}

// ProvideRiskAssessor creates the risk rule engine.
func ProvideRiskAssessor() domsvc.RiskAssessor {
	return analysis.NewRiskAssessor()
}

// ProvideCreditScorer creates the credit scoring engine.
func ProvideCreditScorer() domsvc.CreditScorer {
	return analysis.NewCreditScorer()
}

// ProvideRecommendationEngine creates the recommendation rule engine.
func ProvideRecommendationEngine() domsvc.RecommendationEngine {
	return analysis.NewRecommendationEngine()
}

// ProvideForecastGenerator creates the trend forecaster.
func ProvideForecastGenerator() domsvc.ForecastGenerator {
	return analysis.NewForecastGenerator()
}

// ProvideAssessmentStore selects the persistence backend from config.
func ProvideAssessmentStore(cfg *config.Config, l *applogger.Logger) (repository.AssessmentStore, error) {
	if cfg.Backend.Type != "clickhouse" {
		return internalrepo.NewMemoryAssessmentStore(), nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	store, err := internalrepo.NewCHAssessmentStore(ctx, client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	store.SetLogger(l)
	return store, nil
}

// ProvidePublisher creates the Kafka publisher, or a noop when disabled.
func ProvidePublisher(cfg *config.Config) (repository.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopPublisher{}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout, cfg.Kafka.ReadTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideCache selects the response cache backend from config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Type == "redis" {
		return cache.NewRedisCache(
			cache.WithAddr(cfg.Cache.Redis.Addr),
			cache.WithCredentials(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		)
	}
	return cache.NewMemoryCache(cache.WithMaxSize(cfg.Cache.MaxSize)), nil
}

// ProvideAssessor creates the assessment use case.
func ProvideAssessor(
	ratios domsvc.RatioCalculator,
	risk domsvc.RiskAssessor,
	scorer domsvc.CreditScorer,
	benchmarks domsvc.BenchmarkComparator,
	recommend domsvc.RecommendationEngine,
	forecast domsvc.ForecastGenerator,
	store repository.AssessmentStore,
	publisher repository.Publisher,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.Assessor {
	return usecase.NewAssessor(ratios, risk, scorer, benchmarks, recommend, forecast, store, publisher, m, l)
}

// ProvideHTTPHandler creates the Echo route handler.
func ProvideHTTPHandler(l *applogger.Logger, assessor *usecase.Assessor, c cache.Service) xhttp.Handler {
	return api.NewAssessmentsEchoHandler(l, assessor, c)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	store repository.AssessmentStore,
	publisher repository.Publisher,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, handler, store, publisher, c)
}
