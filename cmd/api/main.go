package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/presensikita/presensi-backend-go/internal/config"
	appHTTP "github.com/presensikita/presensi-backend-go/internal/handler/http"
	"github.com/presensikita/presensi-backend-go/internal/pkg/cron"
	"github.com/presensikita/presensi-backend-go/internal/pkg/database"
	"github.com/presensikita/presensi-backend-go/internal/pkg/storage"
	"github.com/presensikita/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensikita/presensi-backend-go/internal/service/attendance"
	employeeService "github.com/presensikita/presensi-backend-go/internal/service/employee"
	"github.com/presensikita/presensi-backend-go/internal/service/file"
	leaveService "github.com/presensikita/presensi-backend-go/internal/service/leave"
	payrollService "github.com/presensikita/presensi-backend-go/internal/service/payroll"
	reportService "github.com/presensikita/presensi-backend-go/internal/service/report"
	rosterService "github.com/presensikita/presensi-backend-go/internal/service/roster"
	settingsService "github.com/presensikita/presensi-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	overrideRepo := postgresql.NewRosterOverrideRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	rosterSvc := rosterService.NewRosterService(overrideRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, cfg.Office)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		rosterSvc,
		settingsSvc,
		fileSvc,
		loc,
	)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, loc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRequestRepo, rosterSvc, loc)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg.App, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Roster:     appHTTP.NewRosterHandler(rosterSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
