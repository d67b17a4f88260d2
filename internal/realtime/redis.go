package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"lido-club-backend/internal/logger"

	"github.com/go-redis/redis/v8"
)

// RedisBroker fans events out through Redis pub/sub so every API instance sees them
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker connects to Redis and verifies the connection
func NewRedisBroker(addr, password string, db int) (*RedisBroker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisBroker{client: client}, nil
}

// Publish serializes the event and publishes it on channel
func (b *RedisBroker) Publish(ctx context.Context, channel string, eventType string, payload interface{}) error {
	event, err := newEvent(channel, eventType, payload)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	return b.client.Publish(ctx, channel, raw).Err()
}

// Subscribe opens a Redis subscription and forwards decoded events to handler until closed
func (b *RedisBroker) Subscribe(ctx context.Context, channel string, handler Handler) (Subscription, error) {
	pubsub := b.client.Subscribe(ctx, channel)

	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	sub := &redisSubscription{pubsub: pubsub, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		log := logger.New().WithField("channel", channel)
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.WithError(err).Warn("dropping malformed realtime event")
				continue
			}
			handler(event)
		}
	}()

	return sub, nil
}

// Close closes the Redis client
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

type redisSubscription struct {
	pubsub *redis.PubSub
	done   chan struct{}
	once   sync.Once
	err    error
}

func (s *redisSubscription) Close() error {
	s.once.Do(func() {
		s.err = s.pubsub.Close()
		<-s.done
	})
	return s.err
}

// Ping checks that Redis is reachable
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}
