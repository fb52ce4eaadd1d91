package mocks

import (
	"context"
	"errors"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// MockExtractor is a mock implementation of the EvaluationExtractor interface.
type MockExtractor struct {
	ExtractFunc func(ctx context.Context, company, transcript string) (models.SurveyRow, error)
}

// Extract implements the EvaluationExtractor interface
func (m *MockExtractor) Extract(ctx context.Context, company, transcript string) (models.SurveyRow, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, company, transcript)
	}
	return models.SurveyRow{}, errors.New("ExtractFunc not implemented")
}
