//go:build wireinject
// +build wireinject

package di

import (
	"FinSight/pkg/config"
	"FinSight/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Engine components
		ProvideRatioCalculator,
		ProvideRiskAssessor,
		ProvideCreditScorer,
		ProvideBenchmarkComparator,
		ProvideRecommendationEngine,
		ProvideForecastGenerator,

		// Infrastructure
		ProvideAssessmentStore,
		ProvidePublisher,
		ProvideCache,

		// Use cases and HTTP surface
		ProvideAssessor,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
