package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chretie17/nadege-backend/internal/httperr"
	ucBooking "github.com/chretie17/nadege-backend/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getSchedule     *ucBooking.GetSchedule
	upsertDay       *ucBooking.UpsertDay
	replaceSchedule *ucBooking.ReplaceSchedule
	deleteDay       *ucBooking.DeleteDay
}

func NewAvailabilityHandler(
	getSchedule *ucBooking.GetSchedule,
	upsertDay *ucBooking.UpsertDay,
	replaceSchedule *ucBooking.ReplaceSchedule,
	deleteDay *ucBooking.DeleteDay,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getSchedule:     getSchedule,
		upsertDay:       upsertDay,
		replaceSchedule: replaceSchedule,
		deleteDay:       deleteDay,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetAvailabilityRequest struct {
	DayOfWeek   string `json:"day_of_week" binding:"required"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type ReplaceScheduleRequest struct {
	AvailabilitySchedule []SetAvailabilityRequest `json:"availability_schedule" binding:"required"`
}

// ======================================================
// ROUTES
// ======================================================

// GET /api/appointments/availability/:doctor_id
func (h *AvailabilityHandler) GetSchedule(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctor_id")
	if !ok {
		return
	}

	windows, err := h.getSchedule.Execute(c.Request.Context(), doctorID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, windows)
}

// POST /api/appointments/availability/:doctor_id
func (h *AvailabilityHandler) SetDay(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctor_id")
	if !ok {
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Day of week is required")
		return
	}

	err := h.upsertDay.Execute(c.Request.Context(), ucBooking.UpsertDayInput{
		DoctorID:    doctorID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
}

// PUT /api/appointments/availability/:doctor_id
func (h *AvailabilityHandler) ReplaceSchedule(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctor_id")
	if !ok {
		return
	}

	var req ReplaceScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Availability schedule must be an array")
		return
	}

	days := make([]ucBooking.ScheduleDayInput, 0, len(req.AvailabilitySchedule))
	for _, d := range req.AvailabilitySchedule {
		days = append(days, ucBooking.ScheduleDayInput{
			DayOfWeek:   d.DayOfWeek,
			StartTime:   d.StartTime,
			EndTime:     d.EndTime,
			IsAvailable: d.IsAvailable,
		})
	}

	if err := h.replaceSchedule.Execute(c.Request.Context(), doctorID, days); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability schedule updated successfully"})
}

// DELETE /api/appointments/availability/:doctor_id/:day_of_week
func (h *AvailabilityHandler) DeleteDay(c *gin.Context) {
	doctorID, ok := paramUint(c, "doctor_id")
	if !ok {
		return
	}

	if err := h.deleteDay.Execute(c.Request.Context(), doctorID, c.Param("day_of_week")); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted successfully"})
}

// ======================================================
// HELPERS
// ======================================================

func paramUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func queryUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "Invalid "+name)
		return 0, false
	}
	return uint(v), true
}
