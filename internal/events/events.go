// Package events publishes domain events for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Topics
const (
	TopicSessionRecorded     = "training.session.recorded"
	TopicReviewSubmitted     = "training.review.submitted"
	TopicGoalAchieved        = "training.goal.achieved"
	TopicNotificationCreated = "user.notification.created"
)

// Event is the envelope written to every topic.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Type       string          `json:"type"`
	Key        string          `json:"key"`
	OccurredAt time.Time       `json:"occurredAt"`
	Payload    json.RawMessage `json:"payload"`
}

// NewEvent wraps payload in an envelope keyed by key.
func NewEvent(topic, key string, occurredAt time.Time, payload interface{}) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:         uuid.New(),
		Type:       topic,
		Key:        key,
		OccurredAt: occurredAt.UTC(),
		Payload:    raw,
	}, nil
}

// Publisher delivers events to a topic.
type Publisher interface {
	Publish(ctx context.Context, topic string, evt Event) error
	Close() error
}

// PublishTimeout bounds a single Emit, independently of the caller's deadline.
var PublishTimeout = 500 * time.Millisecond

// Nop drops every event.
type Nop struct{}

func (Nop) Publish(context.Context, string, Event) error { return nil }
func (Nop) Close() error                                 { return nil }

// Emit builds and publishes an event, logging instead of failing: events are
// emitted after the state change has committed. Publishing is detached from
// ctx cancellation and bounded by PublishTimeout.
func Emit(ctx context.Context, p Publisher, topic, key string, at time.Time, payload interface{}) {
	if p == nil {
		return
	}
	evt, err := NewEvent(topic, key, at, payload)
	if err != nil {
		log.Printf("failed to encode %s event: %v", topic, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()
	if err := p.Publish(ctx, topic, evt); err != nil {
		log.Printf("failed to publish %s event %s: %v", topic, evt.ID, err)
	}
}
