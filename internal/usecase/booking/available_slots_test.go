package booking

import (
	"context"
	"testing"

	"github.com/chretie17/nadege-backend/internal/domain/booking/bookingtest"
	"github.com/chretie17/nadege-backend/internal/httperr"
)

func TestAvailableSlots_NoSchedule(t *testing.T) {
	repo := bookingtest.NewFakeRepo()
	uc := NewAvailableSlots(repo, "UTC", 0, false)

	res, err := uc.Execute(context.Background(), 7, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.AvailableSlots) != 0 {
		t.Errorf("expected no slots, got %d", len(res.AvailableSlots))
	}
	if res.AvailableSlots == nil {
		t.Error("slots must encode as [], not null")
	}
	if res.Message != "Doctor not available on this day" {
		t.Errorf("message = %q", res.Message)
	}
}

func TestAvailableSlots_BookingConsumesSlot(t *testing.T) {
	repo := newSeededRepo(t)
	slots := NewAvailableSlots(repo, "UTC", 0, false)
	book, _ := newBookUC(repo)

	date := nextMonday()

	res, err := slots.Execute(context.Background(), testDoctorID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.AvailableSlots) != 2 {
		t.Fatalf("09:00-10:00 should yield 2 slots, got %d", len(res.AvailableSlots))
	}
	if res.AvailableSlots[0].DisplayTime != "9:00 AM" {
		t.Errorf("first slot display = %q", res.AvailableSlots[0].DisplayTime)
	}
	if res.Message != "" {
		t.Errorf("unexpected message %q", res.Message)
	}

	if _, err := book.Execute(context.Background(), BookInput{
		PatientID: testPatientID, DoctorID: testDoctorID,
		Date: date, Time: "09:00",
	}); err != nil {
		t.Fatalf("booking failed: %v", err)
	}

	res, err = slots.Execute(context.Background(), testDoctorID, date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.AvailableSlots) != 1 {
		t.Fatalf("expected 1 free slot after booking, got %d", len(res.AvailableSlots))
	}
	if res.AvailableSlots[0].Time != "09:30:00" {
		t.Errorf("remaining slot = %q, want 09:30:00", res.AvailableSlots[0].Time)
	}
}

// Reading slots never mutates anything: two reads in a row agree.
func TestAvailableSlots_Idempotent(t *testing.T) {
	repo := newSeededRepo(t)
	uc := NewAvailableSlots(repo, "UTC", 0, false)

	first, err := uc.Execute(context.Background(), testDoctorID, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Execute(context.Background(), testDoctorID, nextMonday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first.AvailableSlots) != len(second.AvailableSlots) {
		t.Errorf("reads disagree: %d vs %d", len(first.AvailableSlots), len(second.AvailableSlots))
	}
}

func TestAvailableSlots_BadDates(t *testing.T) {
	repo := newSeededRepo(t)
	uc := NewAvailableSlots(repo, "UTC", 0, false)

	if _, err := uc.Execute(context.Background(), testDoctorID, yesterday()); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Errorf("past date must fail with invalid_input, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), testDoctorID, "13/01/2026"); !httperr.IsBusiness(err, httperr.CodeInvalidInput) {
		t.Errorf("malformed date must fail with invalid_input, got %v", err)
	}
}
