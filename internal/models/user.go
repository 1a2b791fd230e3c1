package models

import "time"

// User is the portal directory row shared by admins, doctors and patients.
// The booking core only reads it for existence/role checks.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'patient'" json:"role"`

	// doctor profile
	Specialization string `gorm:"size:100" json:"specialization,omitempty"`
	Experience     string `gorm:"size:100" json:"experience,omitempty"`
	Education      string `gorm:"size:255" json:"education,omitempty"`

	// patient profile
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)
