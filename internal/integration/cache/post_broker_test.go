package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pawz-connect/backend/internal/domain/entity"
)

func TestPostBroker_PublishSubscribe(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	broker := NewPostBroker(client)
	ctx := context.Background()

	events, stop, err := broker.Subscribe(ctx)
	require.NoError(t, err)

	post := entity.NewPost(uuid.New(), "New friend!", entity.PostVisibilityPublic)
	require.NoError(t, broker.Publish(ctx, entity.NewPostEvent(entity.PostEventInsert, post)))

	select {
	case event := <-events:
		assert.Equal(t, entity.PostEventInsert, event.Event)
		assert.Equal(t, post.ID, event.Post.ID)
		assert.Equal(t, "New friend!", event.Post.Content)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for post event")
	}

	stop()
	stop()

	_, open := <-events
	assert.False(t, open)
}

func TestPostBroker_ContextCancelClosesStream(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, stop, err := NewPostBroker(client).Subscribe(ctx)
	require.NoError(t, err)
	defer stop()

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("stream was not closed after cancel")
	}
}

func TestPostBroker_MalformedPayloadIsSkipped(t *testing.T) {
	server, err := miniredis.Run()
	require.NoError(t, err)
	defer server.Close()

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	defer client.Close()

	ctx := context.Background()
	broker := NewPostBroker(client)
	events, stop, err := broker.Subscribe(ctx)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, client.Publish(ctx, PostsChannel, "{not json").Err())
	post := entity.NewPost(uuid.New(), "after garbage", entity.PostVisibilityPublic)
	require.NoError(t, broker.Publish(ctx, entity.NewPostEvent(entity.PostEventUpdate, post)))

	select {
	case event := <-events:
		assert.Equal(t, post.ID, event.Post.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for post event")
	}
}
