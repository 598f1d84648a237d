package pkg

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SocketPayload is the message shape the Socket.IO bridge expects on the
// per-conversation room channel.
type SocketPayload struct {
	Event     string      `json:"event"`
	Data      interface{} `json:"data"`
	ID        int         `json:"id"`
	RequestID string      `json:"requestId"`
}

// SocketEmitter publishes room messages for out-of-band socket listeners.
type SocketEmitter interface {
	Publish(ctx context.Context, room string, payload SocketPayload) error
}

// RedisSocketEmitter mirrors events to the Socket.IO server through Redis
// pub/sub; the socket server subscribes to the room channels and forwards
// to connected clients.
type RedisSocketEmitter struct {
	client *redis.Client
}

func NewRedisSocketEmitter(addr string) *RedisSocketEmitter {
	return &RedisSocketEmitter{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// NewRedisSocketEmitterWithClient wraps an existing client, used by tests.
func NewRedisSocketEmitterWithClient(client *redis.Client) *RedisSocketEmitter {
	return &RedisSocketEmitter{client: client}
}

func (e *RedisSocketEmitter) Publish(ctx context.Context, room string, payload SocketPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal socket payload: %w", err)
	}
	if err := e.client.Publish(ctx, room, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", room, err)
	}
	return nil
}

// Close closes the underlying Redis connection.
func (e *RedisSocketEmitter) Close() error {
	return e.client.Close()
}
