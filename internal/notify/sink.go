package notify

import (
	"gorm.io/gorm"

	"github.com/chretie17/nadege-backend/internal/models"
)

// Sink persists notifications as appointment_notifications rows, the
// table the portal's notification feed reads from.
type Sink struct {
	db *gorm.DB
}

func NewSink(db *gorm.DB) *Sink {
	return &Sink{db: db}
}

func (s *Sink) Store(ev Event) error {
	rows := make([]models.AppointmentNotification, 0, len(ev.Recipients))
	for _, rcpt := range ev.Recipients {
		rows = append(rows, models.AppointmentNotification{
			AppointmentID:    ev.AppointmentID,
			UserID:           rcpt.UserID,
			NotificationType: ev.Type,
			Message:          rcpt.Message,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	return s.db.Create(&rows).Error
}
