package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"FinSight/internal/domain/models"
	domrepo "FinSight/internal/domain/repository"
	pkgch "FinSight/pkg/clickhouse"
	applogger "FinSight/pkg/logger"
)

const assessmentsTable = "assessments"

var assessmentSchema = []string{
	`CREATE TABLE IF NOT EXISTS ` + assessmentsTable + ` (
        company_id  String,
        assessed_at DateTime64(3),
        industry    LowCardinality(String),
        score       Float64,
        rating      LowCardinality(String),
        risk_level  LowCardinality(String),
        payload     String
    ) ENGINE = MergeTree()
    ORDER BY (company_id, assessed_at)`,
}

// CHAssessmentStore persists assessments in ClickHouse. The full assessment
// is stored as a JSON payload next to the queryable score columns.
type CHAssessmentStore struct {
	db *sql.DB
	l  *applogger.Logger
}

// NewCHAssessmentStore creates the store and ensures the schema exists.
func NewCHAssessmentStore(ctx context.Context, ch *pkgch.Client) (*CHAssessmentStore, error) {
	if err := ch.InitSchema(ctx, assessmentSchema); err != nil {
		return nil, fmt.Errorf("init assessments schema: %w", err)
	}
	return &CHAssessmentStore{db: ch.DB()}, nil
}

// SetLogger injects a structured logger.
func (s *CHAssessmentStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHAssessmentStore) Save(ctx context.Context, a *models.HealthAssessment) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal assessment: %w", err)
	}
	q := fmt.Sprintf("INSERT INTO %s (company_id, assessed_at, industry, score, rating, risk_level, payload) VALUES (?, ?, ?, ?, ?, ?, ?)", assessmentsTable)
	_, err = s.db.ExecContext(ctx, q,
		a.CompanyID,
		a.AssessedAt,
		a.Industry,
		a.OverallScore,
		a.Rating,
		string(a.Risk.Level),
		string(payload),
	)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse save assessment error",
				applogger.String("company_id", a.CompanyID),
				applogger.Error(err),
			)
		}
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

func (s *CHAssessmentStore) Latest(ctx context.Context, companyID string) (*models.HealthAssessment, error) {
	q := fmt.Sprintf("SELECT payload FROM %s WHERE company_id = ? ORDER BY assessed_at DESC LIMIT 1", assessmentsTable)
	var payload string
	if err := s.db.QueryRowContext(ctx, q, companyID).Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, domrepo.ErrNotFound
		}
		return nil, fmt.Errorf("latest assessment: %w", err)
	}
	var a models.HealthAssessment
	if err := json.Unmarshal([]byte(payload), &a); err != nil {
		return nil, fmt.Errorf("unmarshal assessment: %w", err)
	}
	return &a, nil
}

func (s *CHAssessmentStore) History(ctx context.Context, companyID string, limit int) ([]models.ScoreRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	q := fmt.Sprintf("SELECT score, assessed_at FROM %s WHERE company_id = ? ORDER BY assessed_at DESC LIMIT ?", assessmentsTable)
	rows, err := s.db.QueryContext(ctx, q, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("score history: %w", err)
	}
	defer rows.Close()

	var out []models.ScoreRecord
	for rows.Next() {
		var r models.ScoreRecord
		var at time.Time
		if err := rows.Scan(&r.Score, &at); err != nil {
			return nil, fmt.Errorf("scan score record: %w", err)
		}
		r.At = at
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if len(out) == 0 {
		return nil, domrepo.ErrNotFound
	}
	return out, nil
}

func (s *CHAssessmentStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *CHAssessmentStore) Close() error {
	return nil // connection owned by pkg client
}
