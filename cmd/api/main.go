package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kerjahub/roster-backend-go/internal/config"
	appHTTP "github.com/kerjahub/roster-backend-go/internal/handler/http"
	"github.com/kerjahub/roster-backend-go/internal/pkg/cron"
	"github.com/kerjahub/roster-backend-go/internal/pkg/database"
	"github.com/kerjahub/roster-backend-go/internal/pkg/fcm"
	"github.com/kerjahub/roster-backend-go/internal/pkg/jwt"
	"github.com/kerjahub/roster-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kerjahub/roster-backend-go/internal/service/attendance"
	masterService "github.com/kerjahub/roster-backend-go/internal/service/master"
	notificationService "github.com/kerjahub/roster-backend-go/internal/service/notification"
	profileService "github.com/kerjahub/roster-backend-go/internal/service/profile"
	rosterService "github.com/kerjahub/roster-backend-go/internal/service/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workPatternRepo := postgresql.NewWorkPatternRepository(db)
	storeLocationRepo := postgresql.NewStoreLocationRepository(db)
	rosterRepo := postgresql.NewRosterRepository(db)
	batchRepo := postgresql.NewBatchRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	fcmClient, err := fcm.NewClient(cfg.FCM.ServiceAccountJSON, cfg.FCM.Timeout)
	if err != nil {
		fmt.Println("Error initializing FCM client:", err)
		return
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, userRepo, fcmClient)
	masterSvc := masterService.NewMasterService(workPatternRepo, storeLocationRepo)
	rosterSvc := rosterService.NewRosterService(db, rosterRepo, batchRepo, employeeRepo, notificationSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, rosterRepo, workPatternRepo, storeLocationRepo)
	profileSvc := profileService.NewProfileService(employeeRepo, rosterRepo, workPatternRepo, storeLocationRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	rosterHandler := appHTTP.NewRosterHandler(rosterSvc)
	profileHandler := appHTTP.NewProfileHandler(profileSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	userHandler := appHTTP.NewUserHandler(userRepo)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		rosterHandler,
		profileHandler,
		notificationHandler,
		userHandler,
		masterHandler,
	)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		employeeRepo,
		workPatternRepo,
		userRepo,
		notificationSvc,
		cfg.Sweep.Interval,
		cfg.Sweep.StaleThreshold,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	scheduler.Stop()
	notificationSvc.Stop()
}
