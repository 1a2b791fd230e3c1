package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chretie17/nadege-backend/internal/cache"
	"github.com/chretie17/nadege-backend/internal/config"
	"github.com/chretie17/nadege-backend/internal/handlers"
	infraRepo "github.com/chretie17/nadege-backend/internal/infra/repository"
	"github.com/chretie17/nadege-backend/internal/notify"
	ucBooking "github.com/chretie17/nadege-backend/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier *notify.Dispatcher) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)
	scheduleCache := cache.NewScheduleCache(cfg.RedisAddr)

	// ======================================================
	// USE CASES (BOOKING CORE)
	// ======================================================
	getScheduleUC := ucBooking.NewGetSchedule(bookingRepo, scheduleCache)
	upsertDayUC := ucBooking.NewUpsertDay(bookingRepo, scheduleCache)
	replaceScheduleUC := ucBooking.NewReplaceSchedule(bookingRepo, scheduleCache)
	deleteDayUC := ucBooking.NewDeleteDay(bookingRepo, scheduleCache)

	availableSlotsUC := ucBooking.NewAvailableSlots(
		bookingRepo,
		cfg.ClinicTimezone,
		time.Duration(cfg.SlotIntervalMinutes)*time.Minute,
		cfg.DedupSlots,
	)

	bookUC := ucBooking.NewBook(bookingRepo, notifier, cfg.ClinicTimezone)

	updateStatusUC := ucBooking.NewUpdateStatus(
		bookingRepo,
		notifier,
		cfg.ClinicTimezone,
		cfg.StrictTransitions,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		getScheduleUC,
		upsertDayUC,
		replaceScheduleUC,
		deleteDayUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		availableSlotsUC,
		bookUC,
		updateStatusUC,
	)

	listHandler := handlers.NewAppointmentListHandler(db)
	doctorHandler := handlers.NewDoctorHandler(db)
	notificationHandler := handlers.NewNotificationHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		appointments := api.Group("/appointments")
		{
			appointments.GET("/doctors", doctorHandler.List)

			// availability store
			appointments.GET("/availability/:doctor_id", availabilityHandler.GetSchedule)
			appointments.POST("/availability/:doctor_id", availabilityHandler.SetDay)
			appointments.PUT("/availability/:doctor_id", availabilityHandler.ReplaceSchedule)
			appointments.DELETE("/availability/:doctor_id/:day_of_week", availabilityHandler.DeleteDay)

			// booking core
			appointments.GET("/available-slots/:doctor_id/:date", appointmentHandler.AvailableSlots)
			appointments.POST("/book", appointmentHandler.Book)
			appointments.PUT("/:id/status", appointmentHandler.UpdateStatus)

			// ledger views
			appointments.GET("", listHandler.ListAll)
			appointments.GET("/upcoming", listHandler.Upcoming)
			appointments.GET("/patient/:patient_id", listHandler.ListByPatient)
			appointments.GET("/doctor/:doctor_id", listHandler.ListByDoctor)
		}

		notifications := api.Group("/notifications")
		{
			notifications.GET("/:user_id", notificationHandler.List)
			notifications.GET("/:user_id/unread-count", notificationHandler.UnreadCount)
			notifications.PUT("/:user_id/read/:id", notificationHandler.MarkRead)
			notifications.PUT("/:user_id/read-all", notificationHandler.MarkAllRead)
		}
	}
}
