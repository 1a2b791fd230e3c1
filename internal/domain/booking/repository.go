package booking

import (
	"context"
	"time"

	"github.com/chretie17/nadege-backend/internal/models"
)

type Repository interface {
	// -------- User directory (read-only collaborator) --------
	UserHasRole(
		ctx context.Context,
		userID uint,
		role string,
	) (bool, error)

	// -------- Availability store --------
	GetSchedule(
		ctx context.Context,
		doctorID uint,
	) ([]models.DoctorAvailability, error)

	GetAvailableWindows(
		ctx context.Context,
		doctorID uint,
		day string,
	) ([]models.DoctorAvailability, error)

	UpsertDay(
		ctx context.Context,
		window *models.DoctorAvailability,
	) error

	ReplaceSchedule(
		ctx context.Context,
		doctorID uint,
		windows []models.DoctorAvailability,
	) error

	DeleteDay(
		ctx context.Context,
		doctorID uint,
		day string,
	) error

	// -------- Booking ledger --------
	ListBookedTimes(
		ctx context.Context,
		doctorID uint,
		date time.Time,
	) ([]string, error)

	CountActive(
		ctx context.Context,
		doctorID uint,
		date time.Time,
		timeOfDay string,
	) (int64, error)

	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
