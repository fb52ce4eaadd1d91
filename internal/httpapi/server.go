// Package httpapi serves company reports over JSON/HTTP for the dashboard.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/godilite/maturity-server/internal/export"
	"github.com/godilite/maturity-server/internal/repository/models"
	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
	"github.com/godilite/maturity-server/pkg/cache"
)

const (
	defaultCacheDuration = 10 * time.Minute
	requestTimeout       = 10 * time.Second
	submitTimeout        = 90 * time.Second
	maxBodyBytes         = 1 << 20
)

type ReportService interface {
	ComputeStatsByCompany(ctx context.Context, company string) (stats.MetricList, error)
	GetCompanyReport(ctx context.Context, company string) (service.Report, error)
	ListCompanies(ctx context.Context) ([]string, error)
}

type EvaluationService interface {
	Submit(ctx context.Context, company, transcript string) (models.SurveyRow, error)
}

type Options struct {
	Cache          cache.Store
	CacheTTL       time.Duration
	AllowedOrigins []string
	Logger         *zap.Logger
}

type Option func(*Options)

func WithCache(c cache.Store, ttl time.Duration) Option {
	return func(o *Options) {
		o.Cache = c
		o.CacheTTL = ttl
	}
}

func WithAllowedOrigins(origins ...string) Option {
	return func(o *Options) {
		o.AllowedOrigins = origins
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

type Server struct {
	router      chi.Router
	reports     ReportService
	evaluations EvaluationService
	cache       cache.Store
	cacheTTL    time.Duration
	sfGroup     singleflight.Group
	logger      *zap.Logger

	writeWorkbook func(io.Writer, service.Report) error
}

func New(reports ReportService, evaluations EvaluationService, opts ...Option) *Server {
	if reports == nil {
		panic("nil ReportService provided to httpapi.New")
	}
	if evaluations == nil {
		panic("nil EvaluationService provided to httpapi.New")
	}

	options := &Options{
		Cache:          cache.Disabled{},
		CacheTTL:       defaultCacheDuration,
		AllowedOrigins: []string{"*"},
		Logger:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Cache == nil {
		options.Cache = cache.Disabled{}
	}
	if options.CacheTTL <= 0 {
		options.CacheTTL = defaultCacheDuration
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	s := &Server{
		router:      chi.NewRouter(),
		reports:     reports,
		evaluations: evaluations,
		cache:       options.Cache,
		cacheTTL:    options.CacheTTL,
		logger:      options.Logger.Named("http"),

		writeWorkbook: export.WriteXLSX,
	}
	s.routes(options.AllowedOrigins)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(origins []string) {
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	s.router.Use(s.logRequests)

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/companies", s.handleCompanies)
		r.Get("/stats", s.handleStats)
		r.Get("/report", s.handleReport)
		r.Get("/report.xlsx", s.handleReportXLSX)
		r.Post("/evaluations", s.handleSubmit)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("dur", time.Since(start)),
			zap.String("remote", r.RemoteAddr))
	})
}

// writeJSON marshals payload before writing the header; an encoding failure
// becomes a 500.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		status = http.StatusInternalServerError
		body, _ = json.Marshal(map[string]string{"error": "response encoding failed: " + err.Error()})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		s.logger.Warn("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCompany), errors.Is(err, service.ErrEmptyTranscript):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoSurveys):
		return http.StatusNotFound
	case errors.Is(err, service.ErrExtraction):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
