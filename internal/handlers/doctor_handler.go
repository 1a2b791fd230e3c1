package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/httpresp"
	"github.com/chretie17/nadege-backend/internal/models"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

type DoctorRow struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
}

// GET /api/appointments/doctors
// List serves the directory behind the booking form.
func (h *DoctorHandler) List(c *gin.Context) {
	var rows []DoctorRow
	err := h.db.
		Model(&models.User{}).
		Select("id, name, email, phone, specialization, experience, education").
		Where("role = ?", models.RoleDoctor).
		Order("name ASC").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.OK(c, rows)
}
