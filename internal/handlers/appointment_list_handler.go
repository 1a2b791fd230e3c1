package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/httpresp"
	"github.com/chretie17/nadege-backend/internal/models"
)

// Listing views over the ledger. Plain parameterized reads, no booking
// rules involved, so they go straight to the database.
type AppointmentListHandler struct {
	db *gorm.DB
}

func NewAppointmentListHandler(db *gorm.DB) *AppointmentListHandler {
	return &AppointmentListHandler{db: db}
}

type AppointmentRow struct {
	ID                 uint   `json:"id"`
	PatientID          uint   `json:"patient_id"`
	DoctorID           uint   `json:"doctor_id"`
	AppointmentDate    string `json:"appointment_date"`
	AppointmentTime    string `json:"appointment_time"`
	Status             string `json:"status"`
	Reason             string `json:"reason"`
	Notes              string `json:"notes"`
	CancellationReason string `json:"cancellation_reason"`

	PatientName          string `json:"patient_name,omitempty"`
	PatientEmail         string `json:"patient_email,omitempty"`
	PatientPhone         string `json:"patient_phone,omitempty"`
	DoctorName           string `json:"doctor_name,omitempty"`
	DoctorEmail          string `json:"doctor_email,omitempty"`
	DoctorSpecialization string `json:"doctor_specialization,omitempty"`
}

const appointmentColumns = `
	a.id,
	a.patient_id,
	a.doctor_id,
	to_char(a.appointment_date, 'YYYY-MM-DD') AS appointment_date,
	a.appointment_time,
	a.status,
	COALESCE(a.reason, '') AS reason,
	COALESCE(a.notes, '') AS notes,
	COALESCE(a.cancellation_reason, '') AS cancellation_reason
`

// GET /api/appointments
func (h *AppointmentListHandler) ListAll(c *gin.Context) {
	var rows []AppointmentRow
	err := h.db.
		Table("appointments a").
		Select(appointmentColumns+`,
			p.name AS patient_name, p.email AS patient_email, p.phone AS patient_phone,
			d.name AS doctor_name, d.email AS doctor_email,
			COALESCE(d.specialization, '') AS doctor_specialization`).
		Joins("JOIN users p ON a.patient_id = p.id").
		Joins("JOIN users d ON a.doctor_id = d.id").
		Order("a.appointment_date DESC, a.appointment_time DESC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.OK(c, rows)
}

// GET /api/appointments/patient/:patient_id
func (h *AppointmentListHandler) ListByPatient(c *gin.Context) {
	patientID, ok := paramUint(c, "patient_id")
	if !ok {
		return
	}

	var rows []AppointmentRow
	err := h.db.
		Table("appointments a").
		Select(appointmentColumns+`,
			d.name AS doctor_name, d.email AS doctor_email,
			COALESCE(d.specialization, '') AS doctor_specialization`).
		Joins("JOIN users d ON a.doctor_id = d.id").
		Where("a.patient_id = ?", patientID).
		Order("a.appointment_date DESC, a.appointment_time DESC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.OK(c, rows)
}

// GET /api/appointments/doctor/:doctor_id?date=&status=
func (h *AppointmentListHandler) ListByDoctor(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctor_id")
	if !ok {
		return
	}

	q := h.db.
		Table("appointments a").
		Select(appointmentColumns+`,
			p.name AS patient_name, p.email AS patient_email, p.phone AS patient_phone`).
		Joins("JOIN users p ON a.patient_id = p.id").
		Where("a.doctor_id = ?", doctorID)

	if date := c.Query("date"); date != "" {
		q = q.Where("a.appointment_date = ?", date)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("a.status = ?", status)
	}

	var rows []AppointmentRow
	if err := q.Order("a.appointment_date ASC, a.appointment_time ASC").Scan(&rows).Error; err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.OK(c, rows)
}

// GET /api/appointments/upcoming?user_id=&role=
func (h *AppointmentListHandler) Upcoming(c *gin.Context) {
	userID, ok := queryUint(c, "user_id")
	if !ok {
		return
	}
	role := c.Query("role")

	q := h.db.
		Table("appointments a").
		Where("a.appointment_date >= CURRENT_DATE").
		Where("a.status IN ('pending', 'confirmed')")

	if role == models.RolePatient {
		q = q.
			Select(appointmentColumns + `,
				d.name AS doctor_name, COALESCE(d.specialization, '') AS doctor_specialization`).
			Joins("JOIN users d ON a.doctor_id = d.id").
			Where("a.patient_id = ?", userID)
	} else {
		q = q.
			Select(appointmentColumns + `,
				p.name AS patient_name, p.phone AS patient_phone`).
			Joins("JOIN users p ON a.patient_id = p.id").
			Where("a.doctor_id = ?", userID)
	}

	var rows []AppointmentRow
	err := q.
		Order("a.appointment_date ASC, a.appointment_time ASC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.OK(c, rows)
}
