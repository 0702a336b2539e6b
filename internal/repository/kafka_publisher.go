package repository

import (
	"context"

	"FinSight/internal/domain/models"
	domrepo "FinSight/internal/domain/repository"
	pkgkafka "FinSight/pkg/kafka"
)

// KafkaPublisher emits assessment events to Kafka, keyed by company so a
// company's history lands on one partition in order.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka-backed publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) domrepo.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, a *models.HealthAssessment) error {
	return p.producer.Publish(ctx, p.topic, []byte(a.CompanyID), map[string]interface{}{
		"company_id":  a.CompanyID,
		"industry":    a.Industry,
		"score":       a.OverallScore,
		"rating":      a.Rating,
		"risk_level":  a.Risk.Level,
		"assessed_at": a.AssessedAt,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher drops events. Used when Kafka is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, *models.HealthAssessment) error { return nil }
func (NoopPublisher) Close() error                                            { return nil }
