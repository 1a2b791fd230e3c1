package notify

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const appointmentTopic = "appointment_events"

// Publisher mirrors notification events onto a Kafka topic for downstream
// consumers (email/SMS workers). Optional: a nil Publisher is skipped.
type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(broker string) *Publisher {
	if broker == "" {
		return nil
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        appointmentTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

type eventPayload struct {
	EventID       string `json:"event_id"`
	AppointmentID uint   `json:"appointment_id"`
	Type          string `json:"type"`
	Status        string `json:"status,omitempty"`
	UserIDs       []uint `json:"user_ids"`
}

func (p *Publisher) Publish(ev Event) error {
	userIDs := make([]uint, 0, len(ev.Recipients))
	for _, rcpt := range ev.Recipients {
		userIDs = append(userIDs, rcpt.UserID)
	}

	value, err := json.Marshal(eventPayload{
		EventID:       uuid.NewString(),
		AppointmentID: ev.AppointmentID,
		Type:          ev.Type,
		Status:        ev.Status,
		UserIDs:       userIDs,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(ev.AppointmentID), 10)),
		Value: value,
	})
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
