package http

import (
	"log/slog"
	"os"

	"github.com/clearstaff/payroll-backend-go/internal/handler/http/middleware"
	"github.com/clearstaff/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	payrollHandler PayrollHandler,
	payRateHandler PayRateHandler,
	workerHandler WorkerHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "clearstaff-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
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
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Get("/{id}", workerHandler.Get)
				r.Get("/{id}/stubs", payrollHandler.ListWorkerStubs)
				r.Get("/{id}/pay-rates", payRateHandler.ListByWorker)
				r.Get("/{id}/pay-rates/resolve", payRateHandler.Resolve)
			})

			r.Route("/batches", func(r chi.Router) {
				r.Get("/", payrollHandler.ListBatches)
				r.Get("/{id}", payrollHandler.GetBatch)
				r.Get("/{id}/stubs", payrollHandler.ListBatchStubs)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", payrollHandler.CreateBatch)
					r.Delete("/{id}", payrollHandler.DeleteBatch)

					r.Post("/{id}/entries", payrollHandler.AddEntry)
					r.Post("/{id}/auto-calculate", payrollHandler.AutoCalculate)

					r.Post("/{id}/submit", payrollHandler.SubmitBatch)
					r.Post("/{id}/approve", payrollHandler.ApproveBatch)
					r.Post("/{id}/process", payrollHandler.ProcessBatch)
					r.Post("/{id}/cancel", payrollHandler.CancelBatch)
					r.Post("/{id}/reopen", payrollHandler.ReopenBatch)
				})
			})

			r.Route("/entries", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Put("/{id}", payrollHandler.UpdateEntry)
				r.Delete("/{id}", payrollHandler.DeleteEntry)
			})

			r.Route("/pay-rates", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", payRateHandler.Create)
				r.Delete("/{id}", payRateHandler.Deactivate)
			})
		})
	})
	return r
}
