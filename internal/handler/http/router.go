package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/roster-backend-go/internal/handler/http/middleware"
	"github.com/kerjahub/roster-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	attendanceHandler AttendanceHandler,
	rosterHandler RosterHandler,
	profileHandler ProfileHandler,
	notificationHandler NotificationHandler,
	userHandler UserHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "roster-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Get("/daily-hours", attendanceHandler.GetDailyHours)
			})

			r.Route("/rosters", func(r chi.Router) {
				r.Post("/submit", rosterHandler.Submit)
				r.Get("/booked", rosterHandler.GetBookedDates)
				r.Get("/my", rosterHandler.GetMyRosters)
				r.Delete("/{rosterID}", rosterHandler.Cancel)

				// Supervisor decisions
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{rosterID}/approve", rosterHandler.Approve)
					r.Post("/{rosterID}/reject", rosterHandler.Reject)
					r.Post("/{rosterID}/reset", rosterHandler.Reset)
				})
			})

			r.Route("/roster-batches", func(r chi.Router) {
				r.Delete("/{batchID}", rosterHandler.CancelBatch)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/{batchID}/approve", rosterHandler.ApproveBatch)
					r.Post("/{batchID}/reject", rosterHandler.RejectBatch)
				})
			})

			// Catalog management
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/work-patterns", masterHandler.CreateWorkPattern)
				r.Post("/store-locations", masterHandler.CreateStoreLocation)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/work", profileHandler.GetWorkProfile)
			})
			r.Get("/shifts/available", profileHandler.GetAvailableShifts)

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Patch("/{notificationID}/read", notificationHandler.MarkAsRead)
				r.Delete("/{notificationID}", notificationHandler.Delete)
			})

			r.Put("/users/me/push-token", userHandler.UpdatePushToken)
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
