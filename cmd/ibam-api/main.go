package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	_ "ibamconsole/docs"

	"ibamconsole/config"
	"ibamconsole/internal/adapters/auth"
	delivery "ibamconsole/internal/delivery/http"
	"ibamconsole/internal/delivery/http/controllers"
	"ibamconsole/internal/delivery/http/middleware"
	"ibamconsole/internal/repository/postgres"
	"ibamconsole/internal/services"
)

// @title IBAM Console API
// @version 1.0
// @description Backend of the IBAM school administration console: schedule programs, sessions, and reference data.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	programRepo := postgres.NewProgramRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	departmentRepo := postgres.NewDepartmentRepository(db)
	teacherRepo := postgres.NewTeacherRepository(db)
	delegateRepo := postgres.NewDelegateRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	subjectRepo := postgres.NewSubjectRepository(db)
	roomRepo := postgres.NewRoomRepository(db)

	scheduleService := services.NewScheduleService(programRepo, sessionRepo, cfg.RequestTimeout)
	referenceService := services.NewReferenceService(
		departmentRepo, teacherRepo, delegateRepo, courseRepo, subjectRepo, roomRepo,
		cfg.RequestTimeout,
	)

	scheduleController := controllers.NewScheduleController(logger, scheduleService)
	referenceController := controllers.NewReferenceController(logger, referenceService)
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	mux := delivery.NewRouter(scheduleController, referenceController, verifier, logger)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
	}
}
