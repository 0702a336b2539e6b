package analysis

import (
	"errors"
	"fmt"
	"time"

	"FinSight/internal/domain/models"
	domsvc "FinSight/internal/domain/service"
	"FinSight/pkg/util"
)

// ErrInsufficientData is returned when fewer than three historical scores are
// available. Callers surface it as a retryable condition, not a failure.
var ErrInsufficientData = errors.New("insufficient data for forecasting")

const minHistory = 3

// ForecastGenerator projects health scores forward on a linear trend with
// linearly decaying confidence.
//
// Trend convention: history arrives most-recent-first, and the trend is the
// average per-period delta from oldest to newest — (newest − oldest) / count —
// so a positive trend always means scores have been improving.
type ForecastGenerator struct {
	now func() time.Time
}

func NewForecastGenerator() *ForecastGenerator {
	return &ForecastGenerator{now: time.Now}
}

// NewForecastGeneratorAt pins the clock; used by tests for stable month labels.
func NewForecastGeneratorAt(now func() time.Time) *ForecastGenerator {
	return &ForecastGenerator{now: now}
}

func (g *ForecastGenerator) GenerateForecast(history []models.ScoreRecord, months int) (models.Forecast, error) {
	if len(history) < minHistory {
		return models.Forecast{}, ErrInsufficientData
	}

	newest := history[0].Score
	oldest := history[len(history)-1].Score
	trend := (newest - oldest) / float64(len(history))

	base := g.now()
	points := make([]models.ForecastPoint, 0, months)
	for i := 0; i < months; i++ {
		projected := max(0, min(100, newest+trend*float64(i+1)))
		points = append(points, models.ForecastPoint{
			Month:          util.MonthLabel(base, i+1),
			ProjectedScore: projected,
			Confidence:     max(0.5, 0.9-float64(i)*0.05),
		})
	}

	return models.Forecast{
		Period:      fmt.Sprintf("%d months", months),
		Trend:       trendDirection(trend),
		Points:      points,
		Methodology: "Trend-based projection with historical performance analysis",
	}, nil
}

func trendDirection(trend float64) string {
	switch {
	case trend > 0:
		return "improving"
	case trend < 0:
		return "declining"
	default:
		return "stable"
	}
}

var _ domsvc.ForecastGenerator = (*ForecastGenerator)(nil)
