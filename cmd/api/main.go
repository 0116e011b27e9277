package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sumit123-456/backend-project/internal/config"
	"github.com/sumit123-456/backend-project/internal/domain/attendance"
	"github.com/sumit123-456/backend-project/internal/domain/payroll"
	appHTTP "github.com/sumit123-456/backend-project/internal/handler/http"
	"github.com/sumit123-456/backend-project/internal/pkg/cron"
	"github.com/sumit123-456/backend-project/internal/pkg/database"
	"github.com/sumit123-456/backend-project/internal/pkg/jwt"
	"github.com/sumit123-456/backend-project/internal/repository/postgresql"
	attendanceService "github.com/sumit123-456/backend-project/internal/service/attendance"
	authService "github.com/sumit123-456/backend-project/internal/service/auth"
	employeeService "github.com/sumit123-456/backend-project/internal/service/employee"
	leaveService "github.com/sumit123-456/backend-project/internal/service/leave"
	payrollService "github.com/sumit123-456/backend-project/internal/service/payroll"
	summaryService "github.com/sumit123-456/backend-project/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	policy, err := attendance.NewWorkdayPolicy(
		cfg.Attendance.CheckInOpens,
		cfg.Attendance.CheckInCloses,
		cfg.Attendance.OfficialStart,
		cfg.Attendance.CheckOutOpens,
		cfg.Attendance.OfficeClose,
		cfg.Attendance.RequiredHours.InexactFloat64(),
		cfg.Attendance.HalfDayHours.InexactFloat64(),
	)
	if err != nil {
		log.Fatal("Invalid attendance configuration: ", err)
	}

	sweepInterval, err := time.ParseDuration(cfg.Attendance.SweepInterval)
	if err != nil {
		log.Fatal("Invalid ATTENDANCE_SWEEP_INTERVAL: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	checkLogRepo := postgresql.NewCheckLogRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	rates := payroll.Rates{
		WorkingDayDivisor: cfg.Payroll.WorkingDayDivisor,
		LatePenaltyRate:   cfg.Payroll.LatePenaltyRate,
		PFRate:            cfg.Payroll.PFRate,
		ProfessionalTax:   cfg.Payroll.ProfessionalTax,
	}

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(policy, attendanceRepo, checkLogRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, attendanceRepo, policy, db)
	summarySvc := summaryService.NewSummaryService(summaryRepo, attendanceRepo, leaveRepo, employeeRepo, cfg.Attendance.RequiredHours.InexactFloat64())
	payrollSvc := payrollService.NewPayrollService(payrollRepo, summaryRepo, employeeRepo, rates, db)

	router := appHTTP.NewRouter(jwtService, "hr-portal", cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Summary:    appHTTP.NewSummaryHandler(summarySvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, attendanceRepo, employeeRepo, policy, sweepInterval).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
