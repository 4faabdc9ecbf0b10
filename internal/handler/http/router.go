package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/config"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/user"
	"github.com/obracontrol/asistencia-backend-go/internal/handler/http/middleware"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	User       UserHandler
	Site       SiteHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Stats      StatsHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdministratorOnly)
				r.Post("/", h.User.Create)
			})

			r.Route("/sites", func(r chi.Router) {
				r.With(middleware.RequireRole(user.RoleAdministrator, user.RoleOperator)).
					Post("/", h.Site.Create)
				r.Get("/", h.Site.List)

				r.Route("/{siteID}", func(r chi.Router) {
					r.Get("/", h.Site.Get)

					r.Route("/employees", func(r chi.Router) {
						r.Get("/", h.Employee.List)

						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireRole(user.RoleAdministrator, user.RoleOperator))
							r.Post("/", h.Employee.Create)
							r.Put("/{employeeID}", h.Employee.Update)
						})

						r.With(middleware.AdministratorOnly).
							Delete("/{employeeID}", h.Employee.Delete)
					})

					r.Route("/attendance", func(r chi.Router) {
						r.Get("/", h.Attendance.DailySnapshot)
						r.Get("/report", h.Attendance.RangeSummary)
						r.Get("/history", h.Attendance.History)

						r.With(middleware.RequireRole(user.RoleAdministrator, user.RoleOperator)).
							Post("/", h.Attendance.Submit)
					})
				})
			})

			r.Get("/stats/employees/{employeeID}", h.Stats.EmployeeStats)
		})
	})
	return r
}
