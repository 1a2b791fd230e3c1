// Package bookingtest provides in-memory doubles for the booking core,
// shared by usecase and handler tests.
package bookingtest

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/models"
	"github.com/chretie17/nadege-backend/internal/notify"
)

// FakeRepo mirrors the gorm repository's observable behavior, including
// the atomic check-and-insert in BookSlot.
type FakeRepo struct {
	mu sync.Mutex

	Roles        map[uint]string
	Schedule     map[uint][]models.DoctorAvailability
	Appointments []*models.Appointment

	nextAppointmentID uint
	nextWindowID      uint
}

func NewFakeRepo() *FakeRepo {
	return &FakeRepo{
		Roles:    make(map[uint]string),
		Schedule: make(map[uint][]models.DoctorAvailability),
	}
}

const dateLayout = "2006-01-02"

// -------- User directory --------

func (f *FakeRepo) UserHasRole(_ context.Context, userID uint, role string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Roles[userID] == role, nil
}

// -------- Availability store --------

func (f *FakeRepo) GetSchedule(_ context.Context, doctorID uint) ([]models.DoctorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	windows := append([]models.DoctorAvailability(nil), f.Schedule[doctorID]...)
	sort.SliceStable(windows, func(i, j int) bool {
		return domain.WeekdayIndex(windows[i].DayOfWeek) < domain.WeekdayIndex(windows[j].DayOfWeek)
	})
	return windows, nil
}

func (f *FakeRepo) GetAvailableWindows(_ context.Context, doctorID uint, day string) ([]models.DoctorAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var windows []models.DoctorAvailability
	for _, w := range f.Schedule[doctorID] {
		if w.DayOfWeek == day && w.IsAvailable {
			windows = append(windows, w)
		}
	}
	return windows, nil
}

func (f *FakeRepo) UpsertDay(_ context.Context, window *models.DoctorAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	windows := f.Schedule[window.DoctorID]
	for i, w := range windows {
		if w.DayOfWeek == window.DayOfWeek {
			window.ID = w.ID
			windows[i] = *window
			return nil
		}
	}

	f.nextWindowID++
	window.ID = f.nextWindowID
	f.Schedule[window.DoctorID] = append(windows, *window)
	return nil
}

func (f *FakeRepo) ReplaceSchedule(_ context.Context, doctorID uint, windows []models.DoctorAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	replacement := make([]models.DoctorAvailability, 0, len(windows))
	for _, w := range windows {
		f.nextWindowID++
		w.ID = f.nextWindowID
		replacement = append(replacement, w)
	}
	f.Schedule[doctorID] = replacement
	return nil
}

func (f *FakeRepo) DeleteDay(_ context.Context, doctorID uint, day string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	windows := f.Schedule[doctorID]
	for i, w := range windows {
		if w.DayOfWeek == day {
			f.Schedule[doctorID] = append(windows[:i], windows[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound, "Availability not found")
}

// -------- Booking ledger --------

func (f *FakeRepo) ListBookedTimes(_ context.Context, doctorID uint, date time.Time) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var times []string
	for _, ap := range f.Appointments {
		if ap.DoctorID == doctorID &&
			ap.AppointmentDate.Format(dateLayout) == date.Format(dateLayout) &&
			domain.IsActive(domain.Status(ap.Status)) {
			times = append(times, ap.AppointmentTime)
		}
	}
	return times, nil
}

func (f *FakeRepo) CountActive(_ context.Context, doctorID uint, date time.Time, timeOfDay string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.countActiveLocked(doctorID, date, timeOfDay), nil
}

func (f *FakeRepo) countActiveLocked(doctorID uint, date time.Time, timeOfDay string) int64 {
	var count int64
	for _, ap := range f.Appointments {
		if ap.DoctorID == doctorID &&
			ap.AppointmentDate.Format(dateLayout) == date.Format(dateLayout) &&
			ap.AppointmentTime == timeOfDay &&
			domain.IsActive(domain.Status(ap.Status)) {
			count++
		}
	}
	return count
}

// BookSlot re-checks occupancy and inserts under one lock, the same
// all-or-nothing the transactional repository gives.
func (f *FakeRepo) BookSlot(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.countActiveLocked(ap.DoctorID, ap.AppointmentDate, ap.AppointmentTime) > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotTaken, "This time slot is no longer available")
	}

	f.nextAppointmentID++
	ap.ID = f.nextAppointmentID
	stored := *ap
	f.Appointments = append(f.Appointments, &stored)
	return nil
}

func (f *FakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, ap := range f.Appointments {
		if ap.ID == id {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeNotFound, "Appointment not found")
}

func (f *FakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, stored := range f.Appointments {
		if stored.ID == ap.ID {
			cp := *ap
			f.Appointments[i] = &cp
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeNotFound, "Appointment not found")
}

var _ domain.Repository = (*FakeRepo)(nil)

// RecordingNotifier captures dispatched events for assertions.
type RecordingNotifier struct {
	mu     sync.Mutex
	Events []notify.Event
}

func (n *RecordingNotifier) Dispatch(ev notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, ev)
}

func (n *RecordingNotifier) Dispatched() []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notify.Event(nil), n.Events...)
}

var _ notify.Notifier = (*RecordingNotifier)(nil)
