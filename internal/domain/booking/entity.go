package booking

import (
	"time"

	"github.com/chretie17/nadege-backend/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ApplyStatus moves an appointment to target and stamps the audit fields
// the target requires. Confirmation stamps confirmed_by/confirmed_at,
// cancellation stamps cancelled_by/cancelled_at and keeps the reason.
func ApplyStatus(
	ap *models.Appointment,
	target Status,
	actorID uint,
	notes string,
	cancellationReason string,
	now time.Time,
	strict bool,
) error {
	if err := CanTransition(Status(ap.Status), target, strict); err != nil {
		return err
	}

	ap.Status = string(target)

	switch target {
	case StatusConfirmed:
		ap.ConfirmedBy = &actorID
		ap.ConfirmedAt = &now
	case StatusCancelled:
		ap.CancelledBy = &actorID
		ap.CancelledAt = &now
		if cancellationReason != "" {
			ap.CancellationReason = cancellationReason
		}
	}

	if notes != "" {
		ap.Notes = notes
	}

	return nil
}
