package booking

import (
	"context"
	"testing"
	"time"

	"github.com/chretie17/nadege-backend/internal/domain/booking/bookingtest"
	"github.com/chretie17/nadege-backend/internal/models"
)

const (
	testPatientID = uint(1)
	testDoctorID  = uint(2)
)

// nextMonday returns the next strictly-future Monday as "2006-01-02".
func nextMonday() string {
	now := time.Now().UTC()
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).Format("2006-01-02")
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

func yesterday() string {
	return time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
}

func newSeededRepo(t *testing.T) *bookingtest.FakeRepo {
	t.Helper()

	repo := bookingtest.NewFakeRepo()
	repo.Roles[testPatientID] = models.RolePatient
	repo.Roles[testDoctorID] = models.RoleDoctor

	// the doctor takes bookings every day, 09:00-10:00
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		if err := repo.UpsertDay(context.Background(), &models.DoctorAvailability{
			DoctorID:    testDoctorID,
			DayOfWeek:   day,
			StartTime:   "09:00",
			EndTime:     "10:00",
			IsAvailable: true,
		}); err != nil {
			t.Fatalf("seed availability: %v", err)
		}
	}

	return repo
}
