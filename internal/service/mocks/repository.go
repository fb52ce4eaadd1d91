package mocks

import (
	"context"
	"errors"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// MockSurveyRepository is a mock implementation of the SurveyRepository
// interface for testing the service layer.
type MockSurveyRepository struct {
	GetRowsByCompanyFunc func(ctx context.Context, company string) ([]models.SurveyRow, error)
	InsertRowFunc        func(ctx context.Context, row models.SurveyRow) error
	ListCompaniesFunc    func(ctx context.Context) ([]string, error)
}

// GetRowsByCompany implements the SurveyRepository interface
func (m *MockSurveyRepository) GetRowsByCompany(ctx context.Context, company string) ([]models.SurveyRow, error) {
	if m.GetRowsByCompanyFunc != nil {
		return m.GetRowsByCompanyFunc(ctx, company)
	}
	return nil, errors.New("GetRowsByCompanyFunc not implemented")
}

// InsertRow implements the SurveyRepository interface
func (m *MockSurveyRepository) InsertRow(ctx context.Context, row models.SurveyRow) error {
	if m.InsertRowFunc != nil {
		return m.InsertRowFunc(ctx, row)
	}
	return errors.New("InsertRowFunc not implemented")
}

// ListCompanies implements the SurveyRepository interface
func (m *MockSurveyRepository) ListCompanies(ctx context.Context) ([]string, error) {
	if m.ListCompaniesFunc != nil {
		return m.ListCompaniesFunc(ctx)
	}
	return nil, errors.New("ListCompaniesFunc not implemented")
}
