package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/authz"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// HealthCheck reports whether backing services are reachable.
type HealthCheck func(ctx context.Context) error

type RouterOptions struct {
	Logger         *slog.Logger
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
	HealthCheck    HealthCheck
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	authorizer authz.Authorizer,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	payrollHandler PayrollHandler,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if opts.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := opts.HealthCheck(ctx); err != nil {
				slog.Error("health check failed", "error", err)
				response.Fail(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Database unreachable", nil)
				return
			}
		}
		response.Success(w, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			if opts.RateLimiter != nil {
				r.Use(opts.RateLimiter.Handler)
			}

			allow := func(perm user.Permission) func(http.Handler) http.Handler {
				return middleware.RequirePermission(authorizer, perm)
			}

			r.Route("/attendance", func(r chi.Router) {
				r.With(allow(user.PermissionAttendanceCheck)).Post("/check-in", attendanceHandler.CheckIn)
				r.With(allow(user.PermissionAttendanceCheck)).Post("/check-out", attendanceHandler.CheckOut)
				r.With(allow(user.PermissionAttendanceViewOwn)).Get("/monthly", attendanceHandler.Monthly)

				r.Route("/leaves", func(r chi.Router) {
					r.With(allow(user.PermissionLeaveRequest)).Post("/", leaveHandler.Create)
					r.With(allow(user.PermissionLeaveViewOwn)).Get("/", leaveHandler.List)
					r.With(allow(user.PermissionLeaveApprove)).Post("/{id}/approve", leaveHandler.Process)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.With(allow(user.PermissionPayrollCalculate)).Post("/calculate", payrollHandler.Calculate)
				r.With(allow(user.PermissionPayrollList)).Get("/", payrollHandler.List)
				r.With(allow(user.PermissionPayrollViewOwn)).Get("/my", payrollHandler.My)

				r.Route("/reports/ledger", func(r chi.Router) {
					r.Use(allow(user.PermissionPayrollLedger))
					r.Get("/", payrollHandler.Ledger)
					r.Get("/export", reportHandler.ExportLedger)
				})

				// Ownership is checked by the service
				r.Get("/{id}", payrollHandler.Get)
				r.With(allow(user.PermissionPayrollConfirm)).Post("/{id}/confirm", payrollHandler.Confirm)
			})

			r.Route("/employees/{id}", func(r chi.Router) {
				r.With(allow(user.PermissionEmployeeView)).Get("/", employeeHandler.Get)
				r.With(allow(user.PermissionEmployeeResign)).Post("/resign", employeeHandler.Resign)
			})
		})
	})
	return r
}
