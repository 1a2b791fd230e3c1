package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint `gorm:"not null;index" json:"patient_id"`
	Patient   User `gorm:"foreignKey:PatientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DoctorID uint `gorm:"not null;index" json:"doctor_id"`
	Doctor   User `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	AppointmentDate time.Time `gorm:"type:date;not null" json:"appointment_date"`

	// time-of-day as "HH:MM:SS"
	AppointmentTime string `gorm:"size:8;not null" json:"appointment_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Reason string `gorm:"type:text" json:"reason"`
	Notes  string `gorm:"type:text" json:"notes"`

	ConfirmedBy *uint      `json:"confirmed_by"`
	ConfirmedAt *time.Time `json:"confirmed_at"`

	CancelledBy        *uint      `json:"cancelled_by"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason string     `gorm:"type:text" json:"cancellation_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
