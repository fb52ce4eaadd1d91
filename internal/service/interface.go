package service

import (
	"context"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// SurveyRepository defines the row-store operations the services need.
type SurveyRepository interface {
	GetRowsByCompany(ctx context.Context, company string) ([]models.SurveyRow, error)
	InsertRow(ctx context.Context, row models.SurveyRow) error
	ListCompanies(ctx context.Context) ([]string, error)
}

// EvaluationExtractor turns an interview transcript into survey answers.
type EvaluationExtractor interface {
	Extract(ctx context.Context, company, transcript string) (models.SurveyRow, error)
}
