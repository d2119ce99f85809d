package activity

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ainadeul/internal/platform/kafka/producer"
	"ainadeul/internal/profile/models"
	"ainadeul/pkg/platform/circuit"
)

type recordingProducer struct {
	messages []*producer.Message
	err      error
}

func (r *recordingProducer) Produce(_ context.Context, msg *producer.Message) error {
	r.messages = append(r.messages, msg)
	return r.err
}

func TestKafkaPublisher(t *testing.T) {
	rec := &recordingProducer{}
	pub := NewKafkaPublisher(rec, "ainadeul.activity")
	event := models.ActivityEvent{
		Type:       models.ActivityPlaceSaved,
		UserID:     "550e8400-e29b-41d4-a716-446655440001",
		SubjectID:  "550e8400-e29b-41d4-a716-446655440009",
		OccurredAt: time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, pub.Publish(context.Background(), event))
	require.Len(t, rec.messages, 1)

	msg := rec.messages[0]
	assert.Equal(t, "ainadeul.activity", msg.Topic)
	assert.Equal(t, []byte(event.UserID), msg.Key)
	assert.Equal(t, "place_saved", msg.Headers["event_type"])

	var decoded models.ActivityEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event, decoded)
}

func TestKafkaPublisherPropagatesErrors(t *testing.T) {
	rec := &recordingProducer{err: errors.New("broker unreachable")}
	err := NewKafkaPublisher(rec, "t").Publish(context.Background(), models.ActivityEvent{Type: models.ActivityVisitRecorded})
	assert.ErrorContains(t, err, "broker unreachable")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), models.ActivityEvent{}))
}

func TestGuardedPublisher(t *testing.T) {
	rec := &recordingProducer{err: errors.New("broker unreachable")}
	breaker := circuit.New("activity", circuit.WithFailureThreshold(2), circuit.WithCooldown(time.Hour))
	pub := NewGuardedPublisher(NewKafkaPublisher(rec, "ainadeul.activity"), breaker, slog.New(slog.NewTextHandler(io.Discard, nil)))
	event := models.ActivityEvent{Type: models.ActivityPlaceSaved, UserID: "u1"}

	assert.Error(t, pub.Publish(context.Background(), event))
	assert.Error(t, pub.Publish(context.Background(), event))
	assert.ErrorIs(t, pub.Publish(context.Background(), event), circuit.ErrOpen)
	assert.Len(t, rec.messages, 2, "open circuit skips the producer")

	breaker.Reset()
	rec.err = nil
	assert.NoError(t, pub.Publish(context.Background(), event))
	assert.Len(t, rec.messages, 3)
}
