package usecase

import (
	"context"
	"fmt"
	"time"

	"FinSight/internal/domain/models"
	domrepo "FinSight/internal/domain/repository"
	domsvc "FinSight/internal/domain/service"
	applogger "FinSight/pkg/logger"
)

// scorePlacement maps an overall score onto the health summary buckets.
func scorePlacement(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 65:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}

// Assessor orchestrates a full financial health assessment: ratios, risk,
// credit score, benchmark comparison, recommendations, cost savings.
type Assessor struct {
	ratios     domsvc.RatioCalculator
	risk       domsvc.RiskAssessor
	scorer     domsvc.CreditScorer
	benchmarks domsvc.BenchmarkComparator
	recommend  domsvc.RecommendationEngine
	forecast   domsvc.ForecastGenerator

	store     domrepo.AssessmentStore
	publisher domrepo.Publisher
	metrics   domrepo.Metrics
	logger    *applogger.Logger
}

// NewAssessor wires the engine components with the persistence layer.
func NewAssessor(
	ratios domsvc.RatioCalculator,
	risk domsvc.RiskAssessor,
	scorer domsvc.CreditScorer,
	benchmarks domsvc.BenchmarkComparator,
	recommend domsvc.RecommendationEngine,
	forecast domsvc.ForecastGenerator,
	store domrepo.AssessmentStore,
	publisher domrepo.Publisher,
	metrics domrepo.Metrics,
	logger *applogger.Logger,
) *Assessor {
	return &Assessor{
		ratios:     ratios,
		risk:       risk,
		scorer:     scorer,
		benchmarks: benchmarks,
		recommend:  recommend,
		forecast:   forecast,
		store:      store,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Assess runs the full pipeline for one snapshot, persists the result and
// publishes it best-effort.
func (a *Assessor) Assess(ctx context.Context, companyID string, s models.FinancialSnapshot) (*models.HealthAssessment, error) {
	start := time.Now()

	ratios := a.ratios.CalculateRatios(s)
	risk := a.risk.AssessRisks(s, ratios)
	credit := a.scorer.CalculateCreditScore(s, ratios)
	benchmark := a.benchmarks.CompareWithIndustry(s.Industry, ratios)
	recs := a.recommend.GenerateRecommendations(s, ratios)
	savings := a.recommend.IdentifyCostSavings(s)

	assessment := &models.HealthAssessment{
		CompanyID:       companyID,
		Industry:        s.Industry,
		OverallScore:    credit.Score,
		Rating:          credit.Rating,
		Ratios:          ratios,
		Risk:            risk,
		Credit:          credit,
		Benchmark:       benchmark,
		Recommendations: recs,
		CostSavings:     savings,
		AssessedAt:      time.Now().UTC(),
	}

	if err := a.store.Save(ctx, assessment); err != nil {
		if a.metrics != nil {
			a.metrics.RecordError("store_save")
		}
		return nil, fmt.Errorf("save assessment: %w", err)
	}

	if a.publisher != nil {
		if err := a.publisher.Publish(ctx, assessment); err != nil {
			// Publishing is best-effort: the assessment is already stored.
			if a.metrics != nil {
				a.metrics.RecordError("publish")
			}
			a.logger.Warn("assessment publish failed",
				applogger.String("company_id", companyID),
				applogger.Error(err),
			)
		}
	}

	if a.metrics != nil {
		a.metrics.RecordAssessment(s.Industry, credit.Rating)
		a.metrics.RecordScore(s.Industry, credit.Score)
		a.metrics.RecordLatency("assess", time.Since(start).Seconds())
	}

	a.logger.Info("assessment completed",
		applogger.String("company_id", companyID),
		applogger.String("industry", s.Industry),
		applogger.Float64("score", credit.Score),
		applogger.String("rating", credit.Rating),
		applogger.String("risk_level", string(risk.Level)),
	)
	return assessment, nil
}

// Dashboard returns the latest stored assessment together with a summary
// placement of its score.
type Dashboard struct {
	Placement  string                   `json:"placement"`
	Assessment *models.HealthAssessment `json:"assessment"`
}

func (a *Assessor) Dashboard(ctx context.Context, companyID string) (*Dashboard, error) {
	latest, err := a.store.Latest(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Placement:  scorePlacement(latest.OverallScore),
		Assessment: latest,
	}, nil
}

// Forecast projects health scores forward from the stored history.
func (a *Assessor) Forecast(ctx context.Context, companyID string, months int) (*models.Forecast, error) {
	history, err := a.store.History(ctx, companyID, 24)
	if err != nil {
		return nil, err
	}
	f, err := a.forecast.GenerateForecast(history, months)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// IndustryBenchmarks exposes the quartile table for one industry.
func (a *Assessor) IndustryBenchmarks(industry string) (map[string]models.Quartiles, bool) {
	return a.benchmarks.IndustryBenchmarks(industry)
}

// Health reports store availability.
func (a *Assessor) Health(ctx context.Context) error {
	return a.store.Health(ctx)
}
