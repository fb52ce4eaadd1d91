package grpc

import (
	"context"
	"time"

	"github.com/godilite/maturity-server/internal/repository/models"
	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type ReportService interface {
	ComputeStatsByCompany(ctx context.Context, company string) (stats.MetricList, error)
	GetCompanyReport(ctx context.Context, company string) (service.Report, error)
	ListCompanies(ctx context.Context) ([]string, error)
}

type EvaluationService interface {
	Submit(ctx context.Context, company, transcript string) (models.SurveyRow, error)
}
