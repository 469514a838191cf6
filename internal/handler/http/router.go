package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/peoplehr/hrms-backend-go/internal/domain/user"
	"github.com/peoplehr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/peoplehr/hrms-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, leaveHandler LeaveHandler, attendanceHandler AttendanceHandler, notifHandler NotificationHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leaves", func(r chi.Router) {
				// Employee-facing
				r.Post("/", leaveHandler.Apply)
				r.Get("/my", leaveHandler.GetMyRequests)
				r.Get("/balances", leaveHandler.GetMyBalances)
				r.Get("/policies", leaveHandler.ListPolicies)
				r.Post("/{id}/cancel", leaveHandler.Cancel)

				// Reviewer-facing
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveViewAll))
					r.Get("/", leaveHandler.ListRequests)
					r.Get("/pending", leaveHandler.ListPending)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionLeaveApprove))
					r.Post("/{id}/review", leaveHandler.Review)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionBalanceProvision))
					r.Post("/balances/provision", leaveHandler.ProvisionBalances)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAttendanceViewOwn))
				r.Get("/my", attendanceHandler.GetMyAttendance)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notifHandler.List)
				r.Get("/unread-count", notifHandler.UnreadCount)
				r.Get("/stream", notifHandler.Stream)
				r.Put("/read", notifHandler.MarkAsRead)
				r.Put("/read-all", notifHandler.MarkAllAsRead)
			})
		})
	})

	return r
}
