package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffsync/attendance-backend-go/internal/domain/user"
	"github.com/staffsync/attendance-backend-go/internal/handler/http/middleware"
	"github.com/staffsync/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	geofenceHandler GeofenceHandler,
	attendanceHandler AttendanceHandler,
	wfhHandler WFHHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffsync-attendance"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/geofence", func(r chi.Router) {
				r.With(middleware.RequireRoles(user.RoleAdmin, user.RoleHR, user.RoleEmployee)).
					Get("/companies/{companyID}/check", geofenceHandler.Check)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireRoles(user.RoleHR, user.RoleEmployee))
				r.Post("/mark", attendanceHandler.Mark)
				r.Get("/today/{employeeID}", attendanceHandler.Today)
				r.Get("/{employeeID}/history", attendanceHandler.History)
			})

			r.Route("/wfh/requests", func(r chi.Router) {
				r.With(middleware.RequireRoles(user.RoleHR, user.RoleEmployee)).
					Post("/", wfhHandler.Create)
				r.With(middleware.RequireRoles(user.RoleHR, user.RoleEmployee)).
					Get("/employees/{employeeID}", wfhHandler.ListByEmployee)

				// HR review surface
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRoles(user.RoleAdmin, user.RoleHR))
					r.Get("/pending/{companyID}", wfhHandler.ListPending)
					r.Put("/{requestID}/decision", wfhHandler.Decide)
				})
			})
		})
	})
	return r
}
