package events

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher lazily manages one writer per topic.
type KafkaPublisher struct {
	brokers []string
	prefix  string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

var _ Publisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher; prefix is prepended to every topic.
func NewKafkaPublisher(brokers []string, prefix string) *KafkaPublisher {
	return &KafkaPublisher{
		brokers: brokers,
		prefix:  prefix,
		writers: make(map[string]*kafka.Writer),
	}
}

// Message renders evt as a Kafka message keyed by the event key.
func Message(evt Event) (kafka.Message, error) {
	value, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(evt.Key),
		Value: value,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(evt.ID.String())},
			{Key: "event-type", Value: []byte(evt.Type)},
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic string, evt Event) error {
	msg, err := Message(evt)
	if err != nil {
		return err
	}
	return p.writerForTopic(p.prefix+topic).WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) writerForTopic(topic string) *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if writer, ok := p.writers[topic]; ok {
		return writer
	}

	// Async writers return once a message is queued; delivery failures are
	// logged from Completion.
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(p.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
		BatchTimeout:           10 * time.Millisecond,
		Async:                  true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Printf("failed to deliver %d message(s) to %s: %v", len(messages), topic, err)
			}
		},
	}
	p.writers[topic] = writer
	return writer
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	for topic, writer := range p.writers {
		if err := writer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(p.writers, topic)
	}
	return firstErr
}
