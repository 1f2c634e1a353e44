package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/clearstaff/payroll-backend-go/internal/config"
	appHTTP "github.com/clearstaff/payroll-backend-go/internal/handler/http"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/database"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/jwt"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/storage"
	"github.com/clearstaff/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/clearstaff/payroll-backend-go/internal/service/auth"
	payrateService "github.com/clearstaff/payroll-backend-go/internal/service/payrate"
	payrollService "github.com/clearstaff/payroll-backend-go/internal/service/payroll"
	workerService "github.com/clearstaff/payroll-backend-go/internal/service/worker"
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

	userRepo := postgresql.NewUserRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	payRateRepo := postgresql.NewPayRateRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	timesheetSource := postgresql.NewTimesheetSource(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

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

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	workerSvc := workerService.NewWorkerService(workerRepo)
	payRateSvc := payrateService.NewPayRateService(db, payRateRepo, workerRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		payRateRepo,
		workerRepo,
		timesheetSource,
		fileStorage,
		cfg.Timesheet.ReadTimeout,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	payRateHandler := appHTTP.NewPayRateHandler(payRateSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		payrollHandler,
		payRateHandler,
		workerHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
