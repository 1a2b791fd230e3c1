package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chretie17/nadege-backend/internal/config"
	dbpkg "github.com/chretie17/nadege-backend/internal/db"
	"github.com/chretie17/nadege-backend/internal/middleware"
	"github.com/chretie17/nadege-backend/internal/notify"
	"github.com/chretie17/nadege-backend/internal/reminder"
	"github.com/chretie17/nadege-backend/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	publisher := notify.NewPublisher(cfg.KafkaBroker)
	defer publisher.Close()

	notifier := notify.NewDispatcher(notify.NewSink(db), publisher)

	reminders := reminder.New(db, notifier, cfg.ClinicTimezone, cfg.ReminderCron)
	if err := reminders.Start(); err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}
	defer reminders.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, notifier)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
