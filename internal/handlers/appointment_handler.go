package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chretie17/nadege-backend/internal/httperr"
	ucBooking "github.com/chretie17/nadege-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availableSlots *ucBooking.AvailableSlots
	book           *ucBooking.Book
	updateStatus   *ucBooking.UpdateStatus
}

func NewAppointmentHandler(
	availableSlots *ucBooking.AvailableSlots,
	book *ucBooking.Book,
	updateStatus *ucBooking.UpdateStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		availableSlots: availableSlots,
		book:           book,
		updateStatus:   updateStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	PatientID       uint   `json:"patient_id" binding:"required"`
	DoctorID        uint   `json:"doctor_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Reason          string `json:"reason"`
}

type UpdateStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	UpdatedBy          uint   `json:"updated_by" binding:"required"`
	Notes              string `json:"notes"`
	CancellationReason string `json:"cancellation_reason"`
}

// ======================================================
// ROUTES
// ======================================================

// GET /api/appointments/available-slots/:doctor_id/:date
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctor_id")
	if !ok {
		return
	}

	result, err := h.availableSlots.Execute(c.Request.Context(), doctorID, c.Param("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /api/appointments/book
func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput,
			"Patient ID, Doctor ID, appointment date, and time are required")
		return
	}

	out, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		Reason:    req.Reason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Appointment booked successfully",
		"appointment_id":   out.AppointmentID,
		"appointment_date": out.AppointmentDate,
		"appointment_time": out.AppointmentTime,
	})
}

// PUT /api/appointments/:id/status
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Status and updated_by are required")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucBooking.UpdateStatusInput{
		AppointmentID:      id,
		Status:             req.Status,
		UpdatedBy:          req.UpdatedBy,
		Notes:              req.Notes,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment " + ap.Status + " successfully"})
}
