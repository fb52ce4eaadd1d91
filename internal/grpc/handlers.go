package grpc

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
	"github.com/godilite/maturity-server/pkg/cache"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultGRPCTimeout   = 10 * time.Second
	submitTimeout        = 90 * time.Second
)

type GRPCHandlers struct {
	UnimplementedMaturityReportsServer
	reports     ReportService
	evaluations EvaluationService
	cache       Cacher
	logger      *zap.Logger
	sfGroup     singleflight.Group
	cacheTTL    time.Duration
}

// NewGRPCHandlers initializes the gRPC handlers. A nil cache disables caching.
func NewGRPCHandlers(reports ReportService, evaluations EvaluationService, c Cacher, logger *zap.Logger, ttl time.Duration) *GRPCHandlers {
	if reports == nil {
		panic("nil ReportService provided to NewGRPCHandlers")
	}
	if evaluations == nil {
		panic("nil EvaluationService provided to NewGRPCHandlers")
	}
	if c == nil {
		c = cache.Disabled{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &GRPCHandlers{
		reports:     reports,
		evaluations: evaluations,
		cache:       c,
		logger:      logger.Named("grpc-handler"),
		cacheTTL:    ttl,
	}
}

func (s *GRPCHandlers) handleError(ctx context.Context, op string, err error) error {
	switch ctx.Err() {
	case context.Canceled:
		s.logger.Warn("request canceled", zap.String("op", op))
		return status.Error(codes.Canceled, "request canceled")
	case context.DeadlineExceeded:
		s.logger.Warn("request timeout", zap.String("op", op))
		return status.Error(codes.DeadlineExceeded, "request timed out")
	}

	switch {
	case errors.Is(err, service.ErrInvalidCompany), errors.Is(err, service.ErrEmptyTranscript):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrNoSurveys):
		s.logger.Info("no surveys found", zap.String("op", op))
		return status.Error(codes.NotFound, "no surveys found for the given company")
	case errors.Is(err, service.ErrStorageFailure):
		s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "database error: %v", err)
	case errors.Is(err, service.ErrExtraction):
		s.logger.Error("extraction failure", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Unavailable, "evaluation extraction failed: %v", err)
	default:
		s.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		return status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
}

func (s *GRPCHandlers) GetCompanyStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	company, err := stringField(req, "company")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := service.CompanyCacheKey(service.CacheKeyCompanyStats, company)
	metrics, err := cache.FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, func(fetchCtx context.Context) (stats.MetricList, error) {
		m, err := s.reports.ComputeStatsByCompany(fetchCtx, company)
		if err != nil {
			return nil, err
		}
		if len(m) == 0 {
			return nil, service.ErrNoSurveys
		}
		return m, nil
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCompanyStats", err)
	}

	return s.respond("GetCompanyStats", map[string]any{
		"company": company,
		"metrics": metrics,
	})
}

func (s *GRPCHandlers) GetCompanyReport(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	company, err := stringField(req, "company")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	key := service.CompanyCacheKey(service.CacheKeyCompanyReport, company)
	report, err := cache.FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.Report, error) {
		return s.reports.GetCompanyReport(fetchCtx, company)
	})
	if err != nil {
		return nil, s.handleError(ctx, "GetCompanyReport", err)
	}

	return s.respond("GetCompanyReport", report)
}

func (s *GRPCHandlers) SubmitEvaluation(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	company, err := stringField(req, "company")
	if err != nil {
		return nil, err
	}
	transcript, err := stringField(req, "transcript")
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	row, err := s.evaluations.Submit(ctx, company, transcript)
	if err != nil {
		return nil, s.handleError(ctx, "SubmitEvaluation", err)
	}
	s.invalidate(company)

	return s.respond("SubmitEvaluation", row)
}

func (s *GRPCHandlers) ListCompanies(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultGRPCTimeout)
	defer cancel()

	companies, err := s.reports.ListCompanies(ctx)
	if err != nil {
		return nil, s.handleError(ctx, "ListCompanies", err)
	}

	return s.respond("ListCompanies", map[string]any{"companies": companies})
}

// invalidate drops the company's cached stats and report after a new row.
func (s *GRPCHandlers) invalidate(company string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := s.cache.Delete(ctx, service.CompanyCacheKeys(company)...); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("company", company), zap.Error(err))
	}
}

func (s *GRPCHandlers) respond(op string, v any) (*structpb.Struct, error) {
	out, err := toStruct(v)
	if err != nil {
		s.logger.Error("response encoding failed", zap.String("op", op), zap.Error(err))
		return nil, status.Errorf(codes.Internal, "%s failed: %v", op, err)
	}
	return out, nil
}
