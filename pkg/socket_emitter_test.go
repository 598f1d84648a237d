package pkg

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSocketEmitter_Publish(t *testing.T) {
	s := miniredis.RunT(t)

	ctx := context.Background()
	subClient := redis.NewClient(&redis.Options{Addr: s.Addr()})
	defer subClient.Close()

	room := "user:conversation:abc"
	sub := subClient.Subscribe(ctx, room)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	emitter := NewRedisSocketEmitterWithClient(redis.NewClient(&redis.Options{Addr: s.Addr()}))
	defer emitter.Close()

	payload := SocketPayload{
		Event:     "message:chunk",
		Data:      map[string]interface{}{"content": "你好"},
		ID:        1,
		RequestID: "req-1",
	}
	require.NoError(t, emitter.Publish(ctx, room, payload))

	recvCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	msg, err := sub.ReceiveMessage(recvCtx)
	require.NoError(t, err)

	var got SocketPayload
	require.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
	assert.Equal(t, "message:chunk", got.Event)
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "req-1", got.RequestID)
}

func TestRedisSocketEmitter_PublishError(t *testing.T) {
	// A closed server makes the publish fail; the caller is responsible for
	// swallowing it.
	srv, err := miniredis.Run()
	require.NoError(t, err)
	emitter := NewRedisSocketEmitter(srv.Addr())
	defer emitter.Close()
	srv.Close()

	err = emitter.Publish(context.Background(), "room", SocketPayload{Event: "done"})
	assert.Error(t, err)
}
