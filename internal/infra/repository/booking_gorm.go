package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

const dateLayout = "2006-01-02"

// --------------------------------------------------
// User directory
// --------------------------------------------------

func (r *BookingGormRepository) UserHasRole(
	ctx context.Context,
	userID uint,
	role string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role = ?", userID, role).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Availability store
// --------------------------------------------------

func (r *BookingGormRepository) GetSchedule(
	ctx context.Context,
	doctorID uint,
) ([]models.DoctorAvailability, error) {

	var windows []models.DoctorAvailability
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Find(&windows).Error; err != nil {
		return nil, err
	}

	// Monday-first ordering, mirroring the portal's weekly view
	sort.SliceStable(windows, func(i, j int) bool {
		return domain.WeekdayIndex(windows[i].DayOfWeek) < domain.WeekdayIndex(windows[j].DayOfWeek)
	})

	return windows, nil
}

func (r *BookingGormRepository) GetAvailableWindows(
	ctx context.Context,
	doctorID uint,
	day string,
) ([]models.DoctorAvailability, error) {

	var windows []models.DoctorAvailability
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ? AND is_available = true", doctorID, day).
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

// UpsertDay is a single INSERT ... ON CONFLICT on uniq_doctor_day, so
// two concurrent writes for the same (doctor, day) both succeed and the
// later one wins, rather than one of them surfacing the violation.
func (r *BookingGormRepository) UpsertDay(
	ctx context.Context,
	window *models.DoctorAvailability,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "day_of_week"}},
			DoUpdates: clause.AssignmentColumns([]string{"start_time", "end_time", "is_available", "updated_at"}),
		}).
		Create(window).Error
}

func (r *BookingGormRepository) ReplaceSchedule(
	ctx context.Context,
	doctorID uint,
	windows []models.DoctorAvailability,
) error {

	// all-or-nothing: a half-replaced schedule must never be observable
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("doctor_id = ?", doctorID).
			Delete(&models.DoctorAvailability{}).Error; err != nil {
			return err
		}

		if len(windows) == 0 {
			return nil
		}

		return tx.Create(&windows).Error
	})
}

func (r *BookingGormRepository) DeleteDay(
	ctx context.Context,
	doctorID uint,
	day string,
) error {

	res := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, day).
		Delete(&models.DoctorAvailability{})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness(httperr.CodeNotFound, "Availability not found")
	}

	return nil
}

// --------------------------------------------------
// Booking ledger
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND appointment_date = ? AND status IN ('pending', 'confirmed')",
			doctorID, date.Format(dateLayout),
		).
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *BookingGormRepository) CountActive(
	ctx context.Context,
	doctorID uint,
	date time.Time,
	timeOfDay string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ('pending', 'confirmed')",
			doctorID, date.Format(dateLayout), timeOfDay,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// BookSlot performs the occupancy check and the insert inside one
// transaction: matching active rows are locked FOR UPDATE before the
// count, and the partial unique index on active slots backstops the
// phantom-insert window. Either path surfaces as slot_taken.
func (r *BookingGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ('pending', 'confirmed')",
				ap.DoctorID, ap.AppointmentDate.Format(dateLayout), ap.AppointmentTime,
			).
			Pluck("id", &ids).Error; err != nil {
			return err
		}

		if len(ids) > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken, "This time slot is no longer available")
		}

		return tx.Create(ap).Error
	})

	if err != nil && isDuplicateSlot(err) {
		return httperr.ErrBusiness(httperr.CodeSlotTaken, "This time slot is no longer available")
	}

	return err
}

func isDuplicateSlot(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "uniq_active_slot")
}

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound, "Appointment not found")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
