package webhooks

import (
	"context"
	"errors"
	"log"
)

// Handler processes one validated webhook delivery.
type Handler func(ctx context.Context, payload *Payload) error

// HandlerMap routes deliveries to handlers by event type.
type HandlerMap map[Event]Handler

// Dispatch routes payload to the handler registered for its event. A missing
// handler is a logged no-op, not an error: publications emit every subscribed
// event and receivers commonly care about a subset. A present handler's error
// propagates to the caller.
func Dispatch(ctx context.Context, payload *Payload, handlers HandlerMap) error {
	if payload == nil {
		return errors.New("webhooks: dispatch called with nil payload")
	}

	handler, ok := handlers[payload.Event]
	if !ok {
		log.Printf("webhooks: no handler registered for event %s", payload.Event)
		return nil
	}
	return handler(ctx, payload)
}
