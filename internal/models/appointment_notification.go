package models

import "time"

// AppointmentNotification rows are written by the notify dispatcher only;
// the booking core never blocks on them.
type AppointmentNotification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"not null;index" json:"appointment_id"`
	UserID        uint `gorm:"not null;index" json:"user_id"`

	NotificationType string `gorm:"size:30;not null" json:"notification_type"`
	Message          string `gorm:"size:255;not null" json:"message"`

	IsRead bool      `gorm:"default:false" json:"is_read"`
	SentAt time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

const (
	NotificationBookingConfirmation = "booking_confirmation"
	NotificationStatusChange        = "status_change"
	NotificationReminder            = "reminder"
)
