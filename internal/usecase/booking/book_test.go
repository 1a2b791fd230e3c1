package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/chretie17/nadege-backend/internal/domain/booking/bookingtest"
	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/models"
)

func newBookUC(repo *bookingtest.FakeRepo) (*Book, *bookingtest.RecordingNotifier) {
	notifier := &bookingtest.RecordingNotifier{}
	return NewBook(repo, notifier, "UTC"), notifier
}

func TestBook_Success(t *testing.T) {
	repo := newSeededRepo(t)
	uc, notifier := newBookUC(repo)

	date := nextMonday()
	out, err := uc.Execute(context.Background(), BookInput{
		PatientID: testPatientID,
		DoctorID:  testDoctorID,
		Date:      date,
		Time:      "09:00",
		Reason:    "checkup",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.AppointmentID == 0 {
		t.Error("expected a ledger id")
	}
	if out.AppointmentDate != date {
		t.Errorf("date echo = %q, want %q", out.AppointmentDate, date)
	}
	if out.AppointmentTime != "9:00 AM" {
		t.Errorf("display time = %q, want 9:00 AM", out.AppointmentTime)
	}

	if len(repo.Appointments) != 1 {
		t.Fatalf("expected one ledger row, got %d", len(repo.Appointments))
	}
	ap := repo.Appointments[0]
	if ap.Status != "pending" {
		t.Errorf("new booking status = %q, want pending", ap.Status)
	}
	if ap.AppointmentTime != "09:00:00" {
		t.Errorf("stored time = %q, want normalized 09:00:00", ap.AppointmentTime)
	}
	if ap.Reason != "checkup" {
		t.Errorf("reason = %q", ap.Reason)
	}

	events := notifier.Dispatched()
	if len(events) != 1 {
		t.Fatalf("expected one notification event, got %d", len(events))
	}
	ev := events[0]
	if ev.Type != models.NotificationBookingConfirmation {
		t.Errorf("event type = %q", ev.Type)
	}
	if len(ev.Recipients) != 2 {
		t.Errorf("both parties must be notified, got %d recipients", len(ev.Recipients))
	}
}

func TestBook_DateBoundaries(t *testing.T) {
	repo := newSeededRepo(t)
	uc, _ := newBookUC(repo)

	if _, err := uc.Execute(context.Background(), BookInput{
		PatientID: testPatientID, DoctorID: testDoctorID,
		Date: yesterday(), Time: "09:00",
	}); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Errorf("yesterday must fail with invalid_input, got %v", err)
	}

	// today is not "past"
	if _, err := uc.Execute(context.Background(), BookInput{
		PatientID: testPatientID, DoctorID: testDoctorID,
		Date: today(), Time: "09:30",
	}); err != nil {
		t.Errorf("booking today must succeed, got %v", err)
	}
}

func TestBook_InvalidDate(t *testing.T) {
	repo := newSeededRepo(t)
	uc, _ := newBookUC(repo)

	_, err := uc.Execute(context.Background(), BookInput{
		PatientID: testPatientID, DoctorID: testDoctorID,
		Date: "next tuesday", Time: "09:00",
	})
	if !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Errorf("expected invalid_input, got %v", err)
	}
}

func TestBook_UnknownParties(t *testing.T) {
	repo := newSeededRepo(t)
	uc, _ := newBookUC(repo)

	_, err := uc.Execute(context.Background(), BookInput{
		PatientID: 99, DoctorID: testDoctorID,
		Date: nextMonday(), Time: "09:00",
	})
	if err == nil || err.Error() != "Patient not found" {
		t.Errorf("expected 'Patient not found', got %v", err)
	}

	_, err = uc.Execute(context.Background(), BookInput{
		PatientID: testPatientID, DoctorID: 99,
		Date: nextMonday(), Time: "09:00",
	})
	if err == nil || err.Error() != "Doctor not found" {
		t.Errorf("expected 'Doctor not found', got %v", err)
	}
}

func TestBook_SequentialDoubleBooking(t *testing.T) {
	repo := newSeededRepo(t)
	uc, _ := newBookUC(repo)

	in := BookInput{
		PatientID: testPatientID, DoctorID: testDoctorID,
		Date: nextMonday(), Time: "09:00",
	}

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeSlotTaken) {
		t.Errorf("second booking must fail with slot_taken, got %v", err)
	}

	if len(repo.Appointments) != 1 {
		t.Errorf("expected exactly one ledger row, got %d", len(repo.Appointments))
	}
}

// Two racing bookings for the same slot: exactly one may win. The check
// and the insert must act as one atomic unit, not as pass-the-check
// twice then insert twice.
func TestBook_ConcurrentDoubleBooking(t *testing.T) {
	repo := newSeededRepo(t)
	uc, _ := newBookUC(repo)

	in := BookInput{
		PatientID: testPatientID, DoctorID: testDoctorID,
		Date: nextMonday(), Time: "09:00",
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	start := make(chan struct{})

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = uc.Execute(context.Background(), in)
		}(i)
	}

	close(start)
	wg.Wait()

	var wins, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case httperr.IsBusiness(err, httperr.CodeSlotTaken):
			conflicts++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	if wins != 1 || conflicts != 1 {
		t.Errorf("expected exactly one success and one conflict, got %d/%d", wins, conflicts)
	}
	if len(repo.Appointments) != 1 {
		t.Errorf("expected exactly one ledger row, got %d", len(repo.Appointments))
	}
}
