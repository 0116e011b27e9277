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

	"github.com/sumit123-456/backend-project/internal/handler/http/middleware"
	"github.com/sumit123-456/backend-project/internal/pkg/jwt"
)

type Handlers struct {
	Auth       *AuthHandler
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Leave      *LeaveHandler
	Summary    *SummaryHandler
	Payroll    *PayrollHandler
}

func NewRouter(jwtService jwt.Service, appName, env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", h.Employee.Me)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", h.Employee.List)
					r.Post("/", h.Employee.Create)
					r.Get("/{employeeID}", h.Employee.Get)
					r.Put("/{employeeID}", h.Employee.Update)
					r.Delete("/{employeeID}", h.Employee.Deactivate)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/today", h.Attendance.Today)
				r.Get("/", h.Attendance.ListMine)
				r.Get("/logs", h.Attendance.ListLogs)

				// HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Post("/sweep", h.Attendance.Sweep)
					r.Get("/employees/{employeeID}", h.Attendance.ListForEmployee)
					r.Get("/employees/{employeeID}/logs", h.Attendance.ListLogsForEmployee)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.ListMine)
				r.Get("/{leaveID}", h.Leave.Get)
				r.Delete("/{leaveID}", h.Leave.Cancel)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireReviewer)
					r.Get("/pending", h.Leave.ListPending)
					r.Post("/{leaveID}/tl-review", h.Leave.ReviewAsTeamLeader)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", h.Leave.List)
					r.Post("/{leaveID}/hr-review", h.Leave.ReviewAsHR)
				})
			})

			r.Route("/summaries", func(r chi.Router) {
				r.Get("/my", h.Summary.GetMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", h.Summary.ListByMonth)
					r.Post("/generate", h.Summary.Generate)
					r.Post("/finalize", h.Summary.Finalize)
					r.Get("/employees/{employeeID}", h.Summary.GetForEmployee)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.GetMine)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", h.Payroll.ListByMonth)
					r.Post("/calculate", h.Payroll.Calculate)
					r.Post("/process", h.Payroll.Process)
					r.Get("/employees/{employeeID}", h.Payroll.GetForEmployee)
					r.Delete("/employees/{employeeID}", h.Payroll.Delete)
				})
			})
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
