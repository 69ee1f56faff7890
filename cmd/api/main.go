package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/config"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	appHTTP "github.com/cmlabs-hris/payroll-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/authz"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/crypto"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/logger"
	"github.com/cmlabs-hris/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/payroll-backend-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/payroll-backend-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/payroll-backend-go/internal/service/payroll"
	reportService "github.com/cmlabs-hris/payroll-backend-go/internal/service/report"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	log := logger.New(os.Stdout, cfg.App.Env, cfg.App.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("error running migrations: %w", err)
		}
	}

	clk := clock.System(cfg.Location())

	fieldCipher, err := crypto.New(cfg.Encryption.Key)
	if err != nil {
		return fmt.Errorf("error initializing encryption: %w", err)
	}
	authorizer, err := authz.NewAuthorizer(user.RolePermissions)
	if err != nil {
		return fmt.Errorf("error initializing authorizer: %w", err)
	}
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	transactor := postgresql.NewTransactor(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, authorizer, clk)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fieldCipher)
	payrollSvc := payrollService.NewPayrollService(transactor, payrollRepo, employeeRepo, attendanceRepo, authorizer, clk)
	reportSvc := reportService.NewReportService(payrollSvc)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         log,
			AllowedOrigins: cfg.App.AllowedOrigins,
			RateLimiter:    rateLimiter,
			HealthCheck:    db.Ping,
		},
		JWTService,
		authorizer,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server running", "addr", server.Addr, "timezone", cfg.App.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	scheduler := cron.NewScheduler()
	scheduler.AddJob("sweep_rate_limiter", time.Minute, func(ctx context.Context) error {
		rateLimiter.Sweep()
		return nil
	})
	scheduler.AddJob("database_pool_stats", 5*time.Minute, func(ctx context.Context) error {
		stat := db.Stat()
		slog.Debug("database pool",
			"total_conns", stat.TotalConns(),
			"idle_conns", stat.IdleConns(),
			"acquired_conns", stat.AcquiredConns(),
			"max_conns", stat.MaxConns(),
		)
		return nil
	})
	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownGrace)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
