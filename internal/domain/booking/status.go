package booking

import (
	"github.com/chretie17/nadege-backend/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

func InitialStatus() Status {
	return StatusPending
}

// ParseStatus validates against the closed enum.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidInput, "Invalid status")
}

// IsActive reports whether a status counts toward slot occupancy.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transitions
// ===============================

// By default any target status is accepted regardless of the current
// one; strict mode narrows that to the table below. Cancellation stays
// open from every state either way.
var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
	StatusCancelled: {StatusCancelled},
	StatusCompleted: {StatusCancelled},
	StatusNoShow:    {StatusCancelled},
}

func CanTransition(from, to Status, strict bool) error {
	if !strict {
		return nil
	}
	for _, t := range allowedTransitions[from] {
		if t == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidInput,
		"Cannot change appointment from "+string(from)+" to "+string(to))
}
