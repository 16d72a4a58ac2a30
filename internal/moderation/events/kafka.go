// Package events publishes moderation decisions for other services.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"localdir/internal/moderation/models"
)

// KafkaPublisher produces one JSON record per decision, keyed by
// "<type>:<id>" so a given entity's decisions stay ordered on one partition.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// NewKafkaPublisher connects to brokers. The client is owned by the
// publisher; call Close on shutdown.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	if topic == "" {
		return nil, errors.New("kafka topic is required")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &KafkaPublisher{client: client, topic: topic, logger: logger}, nil
}

// EnsureTopic creates the decisions topic if it does not exist.
func (p *KafkaPublisher) EnsureTopic(ctx context.Context, partitions int32, replication int16) error {
	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, partitions, replication, nil, p.topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", p.topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

func (p *KafkaPublisher) PublishDecision(ctx context.Context, d models.Decision) error {
	value, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode decision: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(string(d.EntityType) + ":" + d.EntityID),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event", Value: []byte("moderation.decision")},
		},
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce decision: %w", err)
	}
	p.logger.DebugContext(ctx, "decision published",
		"topic", p.topic,
		"entity_type", d.EntityType,
		"entity_id", d.EntityID,
		"to", d.To,
	)
	return nil
}

func (p *KafkaPublisher) Close() {
	p.client.Close()
}

// NopPublisher drops decisions. Used when Kafka is not configured.
type NopPublisher struct{}

func (NopPublisher) PublishDecision(context.Context, models.Decision) error { return nil }
