package repository

import (
	"context"
	"errors"

	"FinSight/internal/domain/models"
)

// ErrNotFound is returned when a company has no stored assessments.
var ErrNotFound = errors.New("assessment not found")

// AssessmentStore persists completed assessments and serves back the score
// history the forecaster consumes. History is most-recent-first.
type AssessmentStore interface {
	Save(ctx context.Context, a *models.HealthAssessment) error
	Latest(ctx context.Context, companyID string) (*models.HealthAssessment, error)
	History(ctx context.Context, companyID string, limit int) ([]models.ScoreRecord, error)
	Health(ctx context.Context) error
	Close() error
}

// Publisher emits completed assessments for downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, a *models.HealthAssessment) error
	Close() error
}

// Metrics records operational signals without binding the domain to a backend.
type Metrics interface {
	RecordAssessment(industry, rating string)
	RecordScore(industry string, score float64)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
