package mocks

import (
	"context"
	"errors"

	"github.com/godilite/maturity-server/internal/repository/models"
	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
)

// MockReportService is a mock implementation of the ReportService interface
// for testing the handler layer. It uses function-based mocking for flexibility.
type MockReportService struct {
	ComputeStatsByCompanyFunc func(ctx context.Context, company string) (stats.MetricList, error)
	GetCompanyReportFunc      func(ctx context.Context, company string) (service.Report, error)
	ListCompaniesFunc         func(ctx context.Context) ([]string, error)
}

// ComputeStatsByCompany implements the ReportService interface
func (m *MockReportService) ComputeStatsByCompany(ctx context.Context, company string) (stats.MetricList, error) {
	if m.ComputeStatsByCompanyFunc != nil {
		return m.ComputeStatsByCompanyFunc(ctx, company)
	}
	return nil, errors.New("ComputeStatsByCompanyFunc not implemented")
}

// GetCompanyReport implements the ReportService interface
func (m *MockReportService) GetCompanyReport(ctx context.Context, company string) (service.Report, error) {
	if m.GetCompanyReportFunc != nil {
		return m.GetCompanyReportFunc(ctx, company)
	}
	return service.Report{}, errors.New("GetCompanyReportFunc not implemented")
}

// ListCompanies implements the ReportService interface
func (m *MockReportService) ListCompanies(ctx context.Context) ([]string, error) {
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx)
	}
	return nil, errors.New("ListCompaniesFunc not implemented")
}

// MockEvaluationService is a mock implementation of the EvaluationService interface.
type MockEvaluationService struct {
	SubmitFunc func(ctx context.Context, company, transcript string) (models.SurveyRow, error)
}

// Submit implements the EvaluationService interface
func (m *MockEvaluationService) Submit(ctx context.Context, company, transcript string) (models.SurveyRow, error) {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx, company, transcript)
	}
	return models.SurveyRow{}, errors.New("SubmitFunc not implemented")
}
