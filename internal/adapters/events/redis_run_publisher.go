package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medora/tenant-seeder/internal/domain/entities"
	"github.com/medora/tenant-seeder/internal/domain/providers"
	redisclient "github.com/medora/tenant-seeder/internal/infrastructure/clients/redis"
)

// RedisRunPublisher implements RunEventPublisher using Redis Pub/Sub
type RedisRunPublisher struct {
	client  *redisclient.Client
	channel string
}

// NewRedisRunPublisher creates a publisher writing to channel
func NewRedisRunPublisher(client *redisclient.Client, channel string) providers.RunEventPublisher {
	return &RedisRunPublisher{client: client, channel: channel}
}

// PublishRunCompleted publishes the event as JSON
func (p *RedisRunPublisher) PublishRunCompleted(ctx context.Context, event *entities.SeedRunEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal run event: %w", err)
	}

	receivers, err := p.client.Client().Publish(ctx, p.channel, data).Result()
	if err != nil {
		return fmt.Errorf("failed to publish run event: %w", err)
	}

	log.Debug().
		Str("channel", p.channel).
		Str("run_id", event.RunID).
		Int64("receivers", receivers).
		Msg("published run event")
	return nil
}

// NoopRunPublisher is used when SEED_EVENTS_ENABLED is false
type NoopRunPublisher struct{}

// PublishRunCompleted does nothing
func (NoopRunPublisher) PublishRunCompleted(context.Context, *entities.SeedRunEvent) error {
	return nil
}
