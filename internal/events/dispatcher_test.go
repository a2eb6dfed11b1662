package events

import (
	"context"
	"errors"
	"testing"
)

func TestDispatcher(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers to subscribers", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var received []Event
		d.Subscribe(EventBookingCreated, func(_ context.Context, e Event) error {
			received = append(received, e)
			return nil
		})

		if err := d.Publish(ctx, Event{ID: "e1", Type: EventBookingCreated, Subject: "booking-1"}); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		if len(received) != 1 || received[0].Subject != "booking-1" {
			t.Errorf("received = %+v, want one event for booking-1", received)
		}
	})

	t.Run("ignores unrelated event types", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		called := false
		d.Subscribe(EventBookingCancelled, func(_ context.Context, _ Event) error {
			called = true
			return nil
		})

		_ = d.Publish(ctx, Event{Type: EventBookingCreated})
		if called {
			t.Error("handler for a different event type was invoked")
		}
	})

	t.Run("handler error does not stop others", func(t *testing.T) {
		d := NewInMemoryDispatcher()
		var secondCalled bool
		d.Subscribe(EventBookingCreated, func(_ context.Context, _ Event) error {
			return errors.New("boom")
		})
		d.Subscribe(EventBookingCreated, func(_ context.Context, _ Event) error {
			secondCalled = true
			return nil
		})

		if err := d.Publish(ctx, Event{Type: EventBookingCreated}); err != nil {
			t.Fatalf("Publish() error = %v", err)
		}
		if !secondCalled {
			t.Error("second handler not invoked after first errored")
		}
	})
}
