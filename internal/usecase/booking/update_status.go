package booking

import (
	"context"

	domain "github.com/chretie17/nadege-backend/internal/domain/booking"
	"github.com/chretie17/nadege-backend/internal/models"
	"github.com/chretie17/nadege-backend/internal/notify"
	"github.com/chretie17/nadege-backend/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID      uint
	Status             string
	UpdatedBy          uint
	Notes              string
	CancellationReason string
}

type UpdateStatus struct {
	repo     domain.Repository
	notifier notify.Notifier
	timezone string
	strict   bool
}

func NewUpdateStatus(
	repo domain.Repository,
	notifier notify.Notifier,
	tz string,
	strict bool,
) *UpdateStatus {
	return &UpdateStatus{
		repo:     repo,
		notifier: notifier,
		timezone: tz,
		strict:   strict,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	target, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.timezone)
	if err := domain.ApplyStatus(ap, target, in.UpdatedBy, in.Notes, in.CancellationReason, now, uc.strict); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	message := "Your appointment status has been updated to: " + string(target)
	uc.notifier.Dispatch(notify.Event{
		AppointmentID: ap.ID,
		Type:          models.NotificationStatusChange,
		Status:        string(target),
		Recipients: []notify.Recipient{
			{UserID: ap.PatientID, Message: message},
			{UserID: ap.DoctorID, Message: message},
		},
	})

	return ap, nil
}
