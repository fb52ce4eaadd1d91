package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/godilite/maturity-server/internal/stats"
)

const (
	dbTimeout = 5 * time.Second

	maxLoggedParseFailures = 10
)

// ReportService aggregates stored survey rows into company statistics.
type ReportService struct {
	storage SurveyRepository
	logger  *zap.Logger
}

// NewReportService creates a new ReportService instance.
func NewReportService(storage SurveyRepository, logger *zap.Logger) *ReportService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ReportService{
		storage: storage,
		logger:  logger.Named("reports"),
	}
}

// ComputeStatsByCompany fetches the company's rows and aggregates them. A
// company without rows yields an empty list and no error.
func (s *ReportService) ComputeStatsByCompany(ctx context.Context, company string) (stats.MetricList, error) {
	if err := ValidateCompany(company); err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	rows, err := s.storage.GetRowsByCompany(dbCtx, company)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	metrics, failures := stats.Aggregate(rows)
	s.logParseFailures(company, failures)

	s.logger.Info("computed company stats",
		zap.String("company", company),
		zap.Int("rows", len(rows)),
		zap.Int("metrics", len(metrics)))

	return metrics, nil
}

// GetCompanyReport returns the metrics together with the maturity score and
// ROI projection derived from them.
func (s *ReportService) GetCompanyReport(ctx context.Context, company string) (Report, error) {
	metrics, err := s.ComputeStatsByCompany(ctx, company)
	if err != nil {
		return Report{}, err
	}
	if len(metrics) == 0 {
		return Report{}, ErrNoSurveys
	}

	return Report{
		Company:  company,
		Metrics:  metrics,
		Maturity: stats.ScoreMaturity(metrics),
		ROI:      stats.ROIFromMetrics(metrics),
	}, nil
}

// ListCompanies returns every company with at least one stored survey.
func (s *ReportService) ListCompanies(ctx context.Context) ([]string, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	companies, err := s.storage.ListCompanies(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if companies == nil {
		companies = []string{}
	}
	return companies, nil
}

func (s *ReportService) logParseFailures(company string, failures []stats.ParseFailure) {
	if len(failures) == 0 {
		return
	}

	defaulted := 0
	for _, f := range failures {
		if f.Outcome != stats.ParseEmpty {
			defaulted++
		}
	}
	s.logger.Warn("numeric answers counted as zero",
		zap.String("company", company),
		zap.Int("total", len(failures)),
		zap.Int("unparseable", defaulted),
		zap.Int("empty", len(failures)-defaulted))

	for i, f := range failures {
		if i == maxLoggedParseFailures {
			break
		}
		s.logger.Debug("numeric answer defaulted",
			zap.String("field", f.Field),
			zap.Int("row", f.Row),
			zap.String("raw", f.Raw),
			zap.Stringer("outcome", f.Outcome))
	}
}
