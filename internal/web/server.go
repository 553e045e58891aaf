package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/mrmoe28/solarscheduler/internal/service"
)

type Server struct {
	customers *service.CustomerService
	vendors   *service.VendorService
	jobs      *service.JobService
	account   *service.AccountService
	router    chi.Router
	logger    *slog.Logger
}

func NewServer(
	customers *service.CustomerService,
	vendors *service.VendorService,
	jobs *service.JobService,
	account *service.AccountService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		customers: customers,
		vendors:   vendors,
		jobs:      jobs,
		account:   account,
		router:    chi.NewRouter(),
		logger:    logger,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(chimiddleware.Recoverer)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signin", s.handleSignIn)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Post("/auth/signout", s.handleSignOut)

			r.Get("/customers", s.handleListCustomers)
			r.Post("/customers", s.handleCreateCustomer)
			r.Get("/customers/{id}", s.handleGetCustomer)
			r.Put("/customers/{id}", s.handleUpdateCustomer)
			r.Delete("/customers/{id}", s.handleDeleteCustomer)
			r.Get("/customers/{id}/jobs", s.handleListCustomerJobs)

			r.Get("/vendors", s.handleListVendors)
			r.Post("/vendors", s.handleCreateVendor)
			r.Get("/vendors/{id}", s.handleGetVendor)
			r.Put("/vendors/{id}", s.handleUpdateVendor)
			r.Delete("/vendors/{id}", s.handleDeleteVendor)

			r.Get("/jobs", s.handleListJobs)
			r.Post("/jobs", s.handleCreateJob)
			r.Get("/jobs/{id}", s.handleGetJob)
			r.Put("/jobs/{id}", s.handleUpdateJob)
			r.Delete("/jobs/{id}", s.handleDeleteJob)

			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)
			r.Delete("/profile", s.handleDeleteAccount)

			r.Get("/stats", s.handleGetStats)
		})
	})
}

// securityHeaders adds defensive HTTP response headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the written status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestLogger(s.logger, securityHeaders(s.router)).ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("starting server", "addr", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return srv.ListenAndServe()
}
