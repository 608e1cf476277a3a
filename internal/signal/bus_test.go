package signal

import (
	"testing"

	"github.com/google/uuid"
)

func TestBus_PublishInvokesSubscribers(t *testing.T) {
	bus := NewBus()

	var got []Trigger
	bus.Subscribe(TriggerLibraryUpdated, func(tr Trigger) {
		got = append(got, tr)
	})

	bus.Publish(TriggerLibraryUpdated)
	bus.Publish(TriggerLibraryUpdated)

	if len(got) != 2 {
		t.Fatalf("expected 2 invocations, got %d", len(got))
	}
	if got[0] != TriggerLibraryUpdated {
		t.Errorf("handler received trigger %v", got[0])
	}
}

func TestBus_TriggersAreIndependent(t *testing.T) {
	bus := NewBus()

	fired := 0
	bus.Subscribe(TriggerFavoriteUpdate, func(Trigger) { fired++ })

	bus.Publish(TriggerLibraryUpdated)

	if fired != 0 {
		t.Errorf("unrelated trigger fired the handler %d times", fired)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	fired := 0
	unsub := bus.Subscribe(TriggerGuideUpdated, func(Trigger) { fired++ })

	bus.Publish(TriggerGuideUpdated)
	unsub()
	bus.Publish(TriggerGuideUpdated)

	if fired != 1 {
		t.Errorf("expected 1 invocation, got %d", fired)
	}
	if bus.SubscriberCount(TriggerGuideUpdated) != 0 {
		t.Errorf("expected 0 subscribers after unsubscribe, got %d", bus.SubscriberCount(TriggerGuideUpdated))
	}
}

func TestBus_UnsubscribeIsIdempotent(t *testing.T) {
	bus := NewBus()

	unsub := bus.Subscribe(TriggerTvPlayback, func(Trigger) {})
	survivor := 0
	bus.Subscribe(TriggerTvPlayback, func(Trigger) { survivor++ })

	unsub()
	unsub()

	bus.Publish(TriggerTvPlayback)

	if survivor != 1 {
		t.Errorf("remaining subscriber must survive double unsubscribe, fired %d", survivor)
	}
	if bus.SubscriberCount(TriggerTvPlayback) != 1 {
		t.Errorf("expected 1 subscriber, got %d", bus.SubscriberCount(TriggerTvPlayback))
	}
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	bus := NewBus()

	// Publishing must not deadlock when a handler subscribes.
	bus.Subscribe(TriggerMoviePlayback, func(Trigger) {
		bus.Subscribe(TriggerMoviePlayback, func(Trigger) {})
	})

	bus.Publish(TriggerMoviePlayback)

	if bus.SubscriberCount(TriggerMoviePlayback) != 2 {
		t.Errorf("expected 2 subscribers, got %d", bus.SubscriberCount(TriggerMoviePlayback))
	}
}

func TestDeletions(t *testing.T) {
	d := NewDeletions()

	if _, ok := d.Last(); ok {
		t.Error("fresh record must be empty")
	}

	first := uuid.New()
	second := uuid.New()

	d.Set(first)
	d.Set(second)

	id, ok := d.Last()
	if !ok {
		t.Fatal("expected a recorded deletion")
	}
	if id != second {
		t.Error("later deletion must replace the earlier one")
	}

	d.Clear()
	if _, ok := d.Last(); ok {
		t.Error("cleared record must be empty")
	}
}
