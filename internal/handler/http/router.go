package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/presensikita/presensi-backend-go/internal/config"
)

type Handlers struct {
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Roster     RosterHandler
	Leave      LeaveHandler
	Settings   SettingsHandler
	Payroll    PayrollHandler
	Report     ReportHandler
}

func NewRouter(cfg config.AppConfig, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensikita"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/attendances", func(r chi.Router) {
			r.Post("/check-in", h.Attendance.CheckIn)
			r.Post("/check-out", h.Attendance.CheckOut)
			r.Get("/", h.Attendance.List)
			r.Get("/employee/{employeeID}", h.Attendance.GetMyAttendance)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Post("/", h.Employee.Create)
			r.Get("/", h.Employee.List)
			r.Get("/{employeeID}", h.Employee.Get)
			r.Put("/{employeeID}", h.Employee.Update)
			r.Delete("/{employeeID}", h.Employee.Delete)
		})

		r.Route("/roster", func(r chi.Router) {
			r.Get("/", h.Roster.MonthRoster)
			r.Put("/override", h.Roster.SetOverride)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/categories", h.Leave.Categories)
			r.Post("/", h.Leave.Create)
			r.Get("/", h.Leave.List)
			r.Post("/{requestID}/approve", h.Leave.Approve)
			r.Post("/{requestID}/reject", h.Leave.Reject)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/geofence", h.Settings.GetGeofence)
			r.Put("/geofence", h.Settings.UpdateGeofence)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Get("/", h.Payroll.List)
			r.Get("/{payrollID}", h.Payroll.Get)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/attendance", h.Report.MonthlyAttendance)
		})
	})

	return r
}
