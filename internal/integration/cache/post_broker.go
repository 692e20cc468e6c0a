package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

const (
	// PostsChannel is the pub/sub channel post changes are broadcast on.
	PostsChannel = "posts"

	subscriberBuffer = 16
)

// PostBroker relays post events over Redis pub/sub. Delivery is best effort:
// subscribers that connect late or fall behind miss events.
type PostBroker struct {
	client  *redis.Client
	channel string
}

var (
	_ adapter.PostEventPublisher  = (*PostBroker)(nil)
	_ adapter.PostEventSubscriber = (*PostBroker)(nil)
)

// NewPostBroker creates a broker on PostsChannel.
func NewPostBroker(client *redis.Client) *PostBroker {
	return &PostBroker{
		client:  client,
		channel: PostsChannel,
	}
}

// Publish broadcasts an event to every current subscriber.
func (b *PostBroker) Publish(ctx context.Context, event entity.PostEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal post event: %w", err)
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish post event: %w", err)
	}
	return nil
}

// Subscribe returns a channel of events that is closed once ctx is done or
// the returned stop function is called. stop blocks until the relay exits.
func (b *PostBroker) Subscribe(ctx context.Context) (<-chan entity.PostEvent, func(), error) {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to %s: %w", b.channel, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	events := make(chan entity.PostEvent, subscriberBuffer)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(events)
		defer func() { _ = pubsub.Close() }()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event entity.PostEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					slog.Warn("Dropping malformed post event", "error", err, "channel", msg.Channel)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}

	return events, stop, nil
}
