package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// EvaluationService extracts survey answers from interview transcripts and
// stores them.
type EvaluationService struct {
	storage   SurveyRepository
	extractor EvaluationExtractor
	logger    *zap.Logger
	now       func() time.Time
	newID     func() string
}

// NewEvaluationService creates a new EvaluationService instance.
func NewEvaluationService(storage SurveyRepository, extractor EvaluationExtractor, logger *zap.Logger) *EvaluationService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if extractor == nil {
		panic("extractor must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &EvaluationService{
		storage:   storage,
		extractor: extractor,
		logger:    logger.Named("evaluations"),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// Submit extracts one respondent's answers from transcript and persists them
// under company. The stored row is returned.
func (s *EvaluationService) Submit(ctx context.Context, company, transcript string) (models.SurveyRow, error) {
	if err := ValidateCompany(company); err != nil {
		return models.SurveyRow{}, err
	}
	if strings.TrimSpace(transcript) == "" {
		return models.SurveyRow{}, ErrEmptyTranscript
	}

	row, err := s.extractor.Extract(ctx, company, transcript)
	if err != nil {
		s.logger.Error("extraction failed", zap.String("company", company), zap.Error(err))
		return models.SurveyRow{}, fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	row.ID = s.newID()
	row.Company = company
	row.CreatedAt = s.now()

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.InsertRow(dbCtx, row); err != nil {
		return models.SurveyRow{}, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("stored evaluation",
		zap.String("company", company),
		zap.String("id", row.ID),
		zap.String("area", row.Area))

	return row, nil
}
