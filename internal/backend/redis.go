package backend

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/raihan324/Food-Application/internal/logging"
)

// Redis stores values as plain Redis strings and carries the change signal
// over pub/sub. Every published message bears the writer's instance id so
// that watchers can drop signals originating from their own handle; Redis
// itself delivers publications to all subscribers, writer included.
type Redis struct {
	client     *redis.Client
	instanceID string
	log        logging.Logger
}

func NewRedis(client *redis.Client, log logging.Logger) *Redis {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Redis{
		client:     client,
		instanceID: uuid.NewString(),
		log:        log,
	}
}

func changeChannel(key string) string {
	return fmt.Sprintf("fooddesk:changed:%s", key)
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	pipe := r.client.Pipeline()
	pipe.Set(ctx, key, value, 0)
	pipe.Publish(ctx, changeChannel(key), r.instanceID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Redis) Watch(ctx context.Context, key string) (<-chan struct{}, error) {
	sub := r.client.Subscribe(ctx, changeChannel(key))

	// Force the subscription to be established before returning so a write
	// issued right after Watch cannot slip past the subscriber.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", key, err)
	}

	msgs := sub.Channel()
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if msg.Payload == r.instanceID {
					continue
				}
				r.log.Debug(ctx, "change signal received", "key", key)
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out, nil
}
