package post

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pawz-connect/backend/internal/application/adapter"
	"github.com/pawz-connect/backend/internal/domain/entity"
)

// StreamFeedInput represents the input for following realtime post changes.
type StreamFeedInput struct {
	ViewerID uuid.UUID
}

// StreamFeedOutput carries the event channel. Events stops when the context
// ends or Close is called; Close must be called once.
type StreamFeedOutput struct {
	Events <-chan entity.PostEvent
	Close  func()
}

// StreamFeedUseCase relays post events the viewer is allowed to see.
type StreamFeedUseCase struct {
	subscriber adapter.PostEventSubscriber
}

// NewStreamFeedUseCase creates a new StreamFeedUseCase instance.
func NewStreamFeedUseCase(subscriber adapter.PostEventSubscriber) *StreamFeedUseCase {
	return &StreamFeedUseCase{
		subscriber: subscriber,
	}
}

// Execute subscribes and filters out events for posts hidden from the viewer.
func (uc *StreamFeedUseCase) Execute(ctx context.Context, input StreamFeedInput) (*StreamFeedOutput, error) {
	ctx, cancel := context.WithCancel(ctx)

	events, unsubscribe, err := uc.subscriber.Subscribe(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to subscribe to post events: %w", err)
	}

	out := make(chan entity.PostEvent)
	done := make(chan struct{})

	go func() {
		defer close(done)
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				if !visibleEvent(event, input.ViewerID) {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return &StreamFeedOutput{
		Events: out,
		Close: func() {
			cancel()
			unsubscribe()
			<-done
		},
	}, nil
}

func visibleEvent(event entity.PostEvent, viewerID uuid.UUID) bool {
	return event.Post.Visibility == entity.PostVisibilityPublic || event.Post.AuthorID == viewerID
}
