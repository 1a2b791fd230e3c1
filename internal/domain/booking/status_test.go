package booking

import (
	"testing"
	"time"

	"github.com/chretie17/nadege-backend/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled", "completed", "no_show"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) rejected a valid status: %v", valid, err)
		}
	}

	for _, invalid := range []string{"done", "PENDING", "", "noshow"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) accepted an invalid status", invalid)
		}
	}
}

func TestIsActive(t *testing.T) {
	if !IsActive(StatusPending) || !IsActive(StatusConfirmed) {
		t.Error("pending and confirmed must count toward occupancy")
	}
	for _, s := range []Status{StatusCancelled, StatusCompleted, StatusNoShow} {
		if IsActive(s) {
			t.Errorf("%s must not count toward occupancy", s)
		}
	}
}

func TestCanTransition_OpenByDefault(t *testing.T) {
	// non-strict mode mirrors the source system: anything goes
	if err := CanTransition(StatusCompleted, StatusPending, false); err != nil {
		t.Errorf("open mode should allow completed -> pending: %v", err)
	}
}

func TestCanTransition_Strict(t *testing.T) {
	if err := CanTransition(StatusPending, StatusConfirmed, true); err != nil {
		t.Errorf("pending -> confirmed should be allowed: %v", err)
	}
	if err := CanTransition(StatusCompleted, StatusCancelled, true); err != nil {
		t.Errorf("completed -> cancelled should be allowed: %v", err)
	}
	if err := CanTransition(StatusCompleted, StatusPending, true); err == nil {
		t.Error("completed -> pending must be rejected in strict mode")
	}
	if err := CanTransition(StatusCancelled, StatusConfirmed, true); err == nil {
		t.Error("cancelled -> confirmed must be rejected in strict mode")
	}
}

func TestApplyStatus_ConfirmStampsAudit(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	if err := ApplyStatus(ap, StatusConfirmed, 7, "", "", now, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.Status != "confirmed" {
		t.Errorf("status = %q, want confirmed", ap.Status)
	}
	if ap.ConfirmedBy == nil || *ap.ConfirmedBy != 7 {
		t.Error("confirmed_by not stamped with actor")
	}
	if ap.ConfirmedAt == nil || !ap.ConfirmedAt.Equal(now) {
		t.Error("confirmed_at not stamped")
	}
	if ap.CancelledBy != nil || ap.CancelledAt != nil {
		t.Error("cancellation fields must stay empty on confirmation")
	}
}

func TestApplyStatus_CancelStampsAuditAndReason(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	if err := ApplyStatus(ap, StatusCancelled, 9, "follow up later", "patient request", now, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ap.CancelledBy == nil || *ap.CancelledBy != 9 {
		t.Error("cancelled_by not stamped with actor")
	}
	if ap.CancelledAt == nil {
		t.Error("cancelled_at not stamped")
	}
	if ap.CancellationReason != "patient request" {
		t.Errorf("cancellation_reason = %q", ap.CancellationReason)
	}
	if ap.Notes != "follow up later" {
		t.Errorf("notes = %q", ap.Notes)
	}
}

func TestApplyStatus_StrictRejectsIllegalMove(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusCompleted)}

	err := ApplyStatus(ap, StatusConfirmed, 1, "", "", time.Now(), true)
	if err == nil {
		t.Fatal("expected strict mode to reject completed -> confirmed")
	}
	if ap.Status != string(StatusCompleted) {
		t.Error("appointment must be unchanged after a rejected transition")
	}
}
