package repository

import (
	"context"
	"sync"

	"FinSight/internal/domain/models"
	domrepo "FinSight/internal/domain/repository"
)

// MemoryAssessmentStore keeps assessments in process memory, most recent
// first per company. Default backend for development and tests.
type MemoryAssessmentStore struct {
	mu   sync.RWMutex
	byID map[string][]*models.HealthAssessment
}

// NewMemoryAssessmentStore creates an empty in-memory store.
func NewMemoryAssessmentStore() *MemoryAssessmentStore {
	return &MemoryAssessmentStore{byID: make(map[string][]*models.HealthAssessment)}
}

func (s *MemoryAssessmentStore) Save(_ context.Context, a *models.HealthAssessment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.byID[a.CompanyID] = append([]*models.HealthAssessment{&cp}, s.byID[a.CompanyID]...)
	return nil
}

func (s *MemoryAssessmentStore) Latest(_ context.Context, companyID string) (*models.HealthAssessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.byID[companyID]
	if len(history) == 0 {
		return nil, domrepo.ErrNotFound
	}
	cp := *history[0]
	return &cp, nil
}

func (s *MemoryAssessmentStore) History(_ context.Context, companyID string, limit int) ([]models.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.byID[companyID]
	if len(history) == 0 {
		return nil, domrepo.ErrNotFound
	}
	if limit <= 0 || limit > len(history) {
		limit = len(history)
	}
	out := make([]models.ScoreRecord, 0, limit)
	for _, a := range history[:limit] {
		out = append(out, models.ScoreRecord{Score: a.OverallScore, At: a.AssessedAt})
	}
	return out, nil
}

func (s *MemoryAssessmentStore) Health(_ context.Context) error {
	return nil
}

func (s *MemoryAssessmentStore) Close() error {
	return nil
}
