package booking

import (
	"context"

	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/models"
	"github.com/chretie17/nadege-backend/internal/notify"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookInput struct {
	PatientID uint
	DoctorID  uint

	Date string // "2006-01-02"
	Time string // "HH:MM" or "HH:MM:SS"

	Reason string
}

type BookOutput struct {
	AppointmentID   uint   `json:"appointment_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

// ======================================================
// USE CASE
// ======================================================

type Book struct {
	repo     domain.Repository
	notifier notify.Notifier
	timezone string
}

func NewBook(
	repo domain.Repository,
	notifier notify.Notifier,
	tz string,
) *Book {
	return &Book{
		repo:     repo,
		notifier: notifier,
		timezone: tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Book) Execute(
	ctx context.Context,
	in BookInput,
) (*BookOutput, error) {

	// --------------------------------------------------
	// Date must not be in the past (today is bookable)
	// --------------------------------------------------
	date, err := parseDate(in.Date, uc.timezone)
	if err != nil {
		return nil, err
	}
	if isPastDate(date, uc.timezone) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Cannot book appointments for past dates")
	}

	// --------------------------------------------------
	// Normalize the slot time to the stored form
	// --------------------------------------------------
	slotTime, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, err
	}
	timeOfDay := slotTime.Format("15:04:05")

	// --------------------------------------------------
	// Fast occupancy check before touching the directory
	// --------------------------------------------------
	occupied, err := uc.repo.CountActive(ctx, in.DoctorID, date, timeOfDay)
	if err != nil {
		return nil, err
	}
	if occupied > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken, "This time slot is no longer available")
	}

	// --------------------------------------------------
	// Both parties must exist with the right role
	// --------------------------------------------------
	isPatient, err := uc.repo.UserHasRole(ctx, in.PatientID, models.RolePatient)
	if err != nil {
		return nil, err
	}
	if !isPatient {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Patient not found")
	}

	isDoctor, err := uc.repo.UserHasRole(ctx, in.DoctorID, models.RoleDoctor)
	if err != nil {
		return nil, err
	}
	if !isDoctor {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "Doctor not found")
	}

	// --------------------------------------------------
	// Atomic re-check + insert (the ledger owns the race)
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		Status:          string(domain.InitialStatus()),
		Reason:          in.Reason,
	}

	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Best-effort notifications, never blocks the booking
	// --------------------------------------------------
	uc.notifier.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		Type:          models.NotificationBookingConfirmation,
		Recipients: []notify.Recipient{
			{UserID: in.PatientID, Message: "Your appointment has been booked successfully"},
			{UserID: in.DoctorID, Message: "New appointment booking received"},
		},
	})

	return &BookOutput{
		AppointmentID:   ap.ID,
		AppointmentDate: in.Date,
		AppointmentTime: domain.FormatDisplay(timeOfDay),
	}, nil
}
