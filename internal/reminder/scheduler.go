package reminder

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/models"
	"github.com/chretie17/nadege-backend/internal/notify"
	"github.com/chretie17/nadege-backend/internal/timezone"
)

// Scheduler emits next-day reminders for appointments still active.
// Same best-effort rules as every other notification: failures are
// logged, nothing retries.
type Scheduler struct {
	db       *gorm.DB
	notifier notify.Notifier
	tz       string
	spec     string
	cron     *cron.Cron
}

func New(db *gorm.DB, notifier notify.Notifier, tz, spec string) *Scheduler {
	return &Scheduler{
		db:       db,
		notifier: notifier,
		tz:       tz,
		spec:     spec,
		cron:     cron.New(cron.WithLocation(timezone.Location(tz))),
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	tomorrow := timezone.NowIn(s.tz).AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	err := s.db.
		Where("appointment_date = ? AND status IN ('pending', 'confirmed')", tomorrow).
		Find(&appointments).Error
	if err != nil {
		log.Println("reminder query error:", err)
		return
	}

	for _, ap := range appointments {
		display := domain.FormatDisplay(ap.AppointmentTime)
		s.notifier.Dispatch(notify.Event{
			AppointmentID: ap.ID,
			Type:          models.NotificationReminder,
			Status:        ap.Status,
			Recipients: []notify.Recipient{
				{UserID: ap.PatientID, Message: "Reminder: you have an appointment tomorrow at " + display},
				{UserID: ap.DoctorID, Message: "Reminder: appointment scheduled tomorrow at " + display},
			},
		})
	}

	if len(appointments) > 0 {
		log.Printf("reminders dispatched for %d appointments on %s", len(appointments), tomorrow)
	}
}
