package app

import (
	"campus-hrms/internal/attendance"
	"campus-hrms/internal/auth"
	"campus-hrms/internal/dashboard"
	"campus-hrms/internal/employee"
	"campus-hrms/internal/finance"
	"campus-hrms/internal/messaging/kafka"
	"campus-hrms/internal/middleware"
	"campus-hrms/internal/payroll"
	"campus-hrms/internal/shared/counter"
	"campus-hrms/internal/student"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	db, err := gormDB.DB()
	if err != nil {
		return err
	}

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	studentRepo := student.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	budgetRepo := finance.NewBudgetRepository(gormDB)
	transactionRepo := finance.NewTransactionRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(db, employeeRepo, counterRepo, outboxRepo, rdb)
	studentService := student.NewService(studentRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, outboxRepo)
	financeService := finance.NewService(db, budgetRepo, transactionRepo, outboxRepo)
	dashboardService := dashboard.NewService(dashboardRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	studentHandler := student.NewHandler(studentService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	financeHandler := finance.NewHandler(financeService, rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	resolver := auth.NewSubjectResolver(authRepo)

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(middleware.RequestID(), middleware.ContextLogger(zap.L()))
	{
		auth.RegisterRoutes(api, authHandler, resolver)
		employee.RegisterRoutes(api, employeeHandler, resolver)
		student.RegisterRoutes(api, studentHandler, resolver)
		attendance.RegisterRoutes(api, attendanceHandler, resolver)
		payroll.RegisterRoutes(api, payrollHandler, resolver, rdb)
		finance.RegisterRoutes(api, financeHandler, resolver, rdb)
		dashboard.RegisterRoutes(api, dashboardHandler, resolver)
	}

	return nil
}
