package notify

import "log"

// Event is one appointment lifecycle fact fanned out to its recipients.
// Emission is fire-and-forget: the booking flow never waits on it and
// never fails because of it.
type Event struct {
	AppointmentID uint
	Type          string // booking_confirmation | status_change | reminder
	Status        string
	Recipients    []Recipient
}

type Recipient struct {
	UserID  uint
	Message string
}

// Notifier is the emission contract the booking core depends on.
type Notifier interface {
	Dispatch(ev Event)
}

// Store persists events; Sink is the production implementation.
type Store interface {
	Store(ev Event) error
}

type Dispatcher struct {
	store     Store
	publisher *Publisher
	queue     chan Event
}

func NewDispatcher(store Store, publisher *Publisher) *Dispatcher {
	d := &Dispatcher{
		store:     store,
		publisher: publisher,
		queue:     make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.store.Store(ev); err != nil {
			log.Println("notification error:", err)
		}

		if d.publisher != nil {
			if err := d.publisher.Publish(ev); err != nil {
				log.Println("notification publish error:", err)
			}
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// queued
	default:
		// queue full: drop rather than block the request path
		log.Println("notification queue full, dropping event")
	}
}
