package notify

import (
	"sync"
	"testing"
	"time"
)

type blockingStore struct {
	mu      sync.Mutex
	events  []Event
	release chan struct{}
}

func (s *blockingStore) Store(ev Event) error {
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *blockingStore) stored() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

func TestDispatcher_DeliversToStore(t *testing.T) {
	store := &blockingStore{}
	d := NewDispatcher(store, nil)

	d.Dispatch(Event{
		AppointmentID: 42,
		Type:          "booking_confirmation",
		Recipients: []Recipient{
			{UserID: 1, Message: "Your appointment has been booked successfully"},
			{UserID: 2, Message: "New appointment booking received"},
		},
	})

	deadline := time.After(2 * time.Second)
	for {
		if events := store.stored(); len(events) == 1 {
			if events[0].AppointmentID != 42 || len(events[0].Recipients) != 2 {
				t.Fatalf("delivered event mangled: %+v", events[0])
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("event never reached the store")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

// Dispatch must return immediately even when the worker is wedged and
// the queue overflows. Overflow drops, it never blocks the caller.
func TestDispatcher_NonBlockingWhenFull(t *testing.T) {
	store := &blockingStore{release: make(chan struct{})}
	d := NewDispatcher(store, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		// worker capacity plus queue capacity plus overflow
		for i := 0; i < 150; i++ {
			d.Dispatch(Event{AppointmentID: uint(i + 1), Type: "status_change"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch blocked on a full queue")
	}

	close(store.release)
}
