package models

import "time"

// DoctorAvailability is one weekly window: a doctor is bookable on
// day_of_week between start_time and end_time. At most one row per
// (doctor, day).
type DoctorAvailability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID uint `gorm:"not null;uniqueIndex:uniq_doctor_day" json:"doctor_id"`

	DayOfWeek string `gorm:"size:10;not null;uniqueIndex:uniq_doctor_day" json:"day_of_week"`

	// time-of-day as "HH:MM" or "HH:MM:SS"
	StartTime string `gorm:"size:8;not null" json:"start_time"`
	EndTime   string `gorm:"size:8;not null" json:"end_time"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DoctorAvailability) TableName() string {
	return "doctor_availability"
}
