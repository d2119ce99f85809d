// Package activity publishes profile changes (children, bookmarks, visits) to Kafka.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"ainadeul/internal/platform/kafka/producer"
	"ainadeul/internal/profile/models"
	"ainadeul/pkg/platform/circuit"
)

// Producer is the subset of the Kafka producer used here.
type Producer interface {
	Produce(ctx context.Context, msg *producer.Message) error
}

// KafkaPublisher writes activity events keyed by user so one parent's events stay ordered.
type KafkaPublisher struct {
	producer Producer
	topic    string
}

func NewKafkaPublisher(p Producer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: p, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event models.ActivityEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal activity event: %w", err)
	}
	return p.producer.Produce(ctx, &producer.Message{
		Topic: p.topic,
		Key:   []byte(event.UserID),
		Value: value,
		Headers: map[string]string{
			"event_type": string(event.Type),
		},
	})
}

// NopPublisher discards events when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, models.ActivityEvent) error { return nil }

// Publisher is what GuardedPublisher wraps.
type Publisher interface {
	Publish(ctx context.Context, event models.ActivityEvent) error
}

// GuardedPublisher stops calling next while the breaker is open, so a
// broker outage fails fast instead of holding up profile requests.
type GuardedPublisher struct {
	next    Publisher
	breaker *circuit.Breaker
	logger  *slog.Logger
}

func NewGuardedPublisher(next Publisher, breaker *circuit.Breaker, logger *slog.Logger) *GuardedPublisher {
	return &GuardedPublisher{next: next, breaker: breaker, logger: logger}
}

func (p *GuardedPublisher) Publish(ctx context.Context, event models.ActivityEvent) error {
	if !p.breaker.Allow() {
		return circuit.ErrOpen
	}
	if err := p.next.Publish(ctx, event); err != nil {
		if p.breaker.RecordFailure() {
			p.logger.WarnContext(ctx, "activity publishing suspended", "breaker", p.breaker.Name(), "error", err)
		}
		return err
	}
	if p.breaker.RecordSuccess() {
		p.logger.InfoContext(ctx, "activity publishing resumed", "breaker", p.breaker.Name())
	}
	return nil
}
