package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/agrovista-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/agrovista-hr/payroll-backend-go/internal/handler/http"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/cron"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/database"
	"github.com/agrovista-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/agrovista-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/agrovista-hr/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/agrovista-hr/payroll-backend-go/internal/service/employee"
	payrollService "github.com/agrovista-hr/payroll-backend-go/internal/service/payroll"
	reportService "github.com/agrovista-hr/payroll-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, attendanceRepo, holidayRepo, cfg.PolicyFromConfig())
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	reportSvc := reportService.NewReportService(payrollSvc)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, reportSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, payrollSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayRepo)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("attendance-audit", 24*time.Hour, cron.AttendanceAuditJob(payrollSvc))
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		payrollHandler,
		attendanceHandler,
		employeeHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
