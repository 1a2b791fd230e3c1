package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/chretie17/nadege-backend/internal/config"
	"github.com/chretie17/nadege-backend/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.DoctorAvailability{},
		&models.Appointment{},
		&models.AppointmentNotification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	if err := CreateActiveSlotIndex(db); err != nil {
		log.Fatalf("failed to create active-slot index: %v", err)
	}

	return db
}

// CreateActiveSlotIndex enforces the slot occupancy invariant: at most
// one active booking per (doctor, date, time). The booking transaction
// checks first, the index is the backstop under concurrent inserts.
// Creation fails when the table already holds duplicate active rows,
// and startup must fail with it: without the index the invariant is
// open under concurrent inserts.
func CreateActiveSlotIndex(db *gorm.DB) error {
	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_slot
        ON appointments (doctor_id, appointment_date, appointment_time)
        WHERE status IN ('pending', 'confirmed')
    `).Error
}
