package service

import (
	"context"
	"errors"
	"testing"

	"github.com/godilite/maturity-server/internal/repository/models"
	"github.com/godilite/maturity-server/internal/service/mocks"
	"github.com/godilite/maturity-server/internal/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestNewReportService tests the constructor
func TestNewReportService(t *testing.T) {
	t.Run("valid parameters", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{}

		service := NewReportService(mockRepo, zap.NewNop())

		assert.NotNil(t, service)
		assert.Equal(t, mockRepo, service.storage)
		assert.NotNil(t, service.logger)
	})

	t.Run("nil storage panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewReportService(nil, zap.NewNop())
		})
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		service := NewReportService(&mocks.MockSurveyRepository{}, nil)

		assert.NotNil(t, service.logger)
	})
}

func TestComputeStatsByCompany(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("aggregates fetched rows", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				assert.Equal(t, "Acme", company)
				_, hasDeadline := ctx.Deadline()
				assert.True(t, hasDeadline)
				return []models.SurveyRow{
					{Company: "Acme", PromptSkill: "4", KnowsLLM: "sí"},
					{Company: "Acme", PromptSkill: "2", KnowsLLM: "no"},
				}, nil
			},
		}

		service := NewReportService(mockRepo, logger)
		metrics, err := service.ComputeStatsByCompany(ctx, "Acme")

		require.NoError(t, err)
		assert.Equal(t, 3.0, metrics.Value(stats.KeyAvgPromptSkill))
		assert.Equal(t, 50.0, metrics.Value(stats.KeyPctKnowLLM))
		assert.Equal(t, 2.0, metrics.Value(stats.KeyEmployeeCount))
	})

	t.Run("no rows returns an empty list", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				return nil, nil
			},
		}

		service := NewReportService(mockRepo, logger)
		metrics, err := service.ComputeStatsByCompany(ctx, "Nobody")

		require.NoError(t, err)
		assert.NotNil(t, metrics)
		assert.Empty(t, metrics)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				return nil, errors.New("database connection failed")
			},
		}

		service := NewReportService(mockRepo, logger)
		metrics, err := service.ComputeStatsByCompany(ctx, "Acme")

		assert.ErrorIs(t, err, ErrStorageFailure)
		assert.Contains(t, err.Error(), "database connection failed")
		assert.Nil(t, metrics)
	})

	t.Run("blank company is rejected before querying", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{}

		service := NewReportService(mockRepo, logger)
		_, err := service.ComputeStatsByCompany(ctx, "   ")

		assert.ErrorIs(t, err, ErrInvalidCompany)
	})

	t.Run("same rows give identical lists", func(t *testing.T) {
		rows := []models.SurveyRow{
			{Area: "ventas", HoursIAWeek: "3", CurrentChallenge: "tiempo"},
			{Area: "rrhh", HoursIAWeek: "n/a", CurrentChallenge: "costos"},
		}
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				return rows, nil
			},
		}

		service := NewReportService(mockRepo, logger)
		first, err := service.ComputeStatsByCompany(ctx, "Acme")
		require.NoError(t, err)
		second, err := service.ComputeStatsByCompany(ctx, "Acme")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestGetCompanyReport(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("derives maturity and ROI", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				return []models.SurveyRow{{
					PromptSkill: "5", Confidence: "5", HoursIAWeek: "10", MinutesSaved: "60",
					KnowsLLM: "sí", FormalTraining: "sí",
				}}, nil
			},
		}

		service := NewReportService(mockRepo, logger)
		report, err := service.GetCompanyReport(ctx, "Acme")

		require.NoError(t, err)
		assert.Equal(t, "Acme", report.Company)
		assert.Equal(t, 93, report.Maturity.Score)
		assert.Equal(t, stats.LevelAdvanced, report.Maturity.Level)
		assert.Equal(t, 45000.0, report.ROI.Current)
		assert.Equal(t, 45000.0, report.ROI.Opportunity)
		assert.Equal(t, report.Metrics.Value(stats.KeyROIPotential), report.ROI.Potential)
	})

	t.Run("no rows is ErrNoSurveys", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				return []models.SurveyRow{}, nil
			},
		}

		service := NewReportService(mockRepo, logger)
		_, err := service.GetCompanyReport(ctx, "Acme")

		assert.ErrorIs(t, err, ErrNoSurveys)
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			GetRowsByCompanyFunc: func(ctx context.Context, company string) ([]models.SurveyRow, error) {
				return nil, errors.New("timeout")
			},
		}

		service := NewReportService(mockRepo, logger)
		_, err := service.GetCompanyReport(ctx, "Acme")

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestListCompanies(t *testing.T) {
	ctx := context.Background()

	t.Run("returns names", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			ListCompaniesFunc: func(ctx context.Context) ([]string, error) {
				return []string{"Acme", "Globex"}, nil
			},
		}

		companies, err := NewReportService(mockRepo, zap.NewNop()).ListCompanies(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"Acme", "Globex"}, companies)
	})

	t.Run("empty store gives empty slice", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			ListCompaniesFunc: func(ctx context.Context) ([]string, error) {
				return nil, nil
			},
		}

		companies, err := NewReportService(mockRepo, zap.NewNop()).ListCompanies(ctx)

		require.NoError(t, err)
		assert.NotNil(t, companies)
		assert.Empty(t, companies)
	})

	t.Run("storage failure", func(t *testing.T) {
		mockRepo := &mocks.MockSurveyRepository{
			ListCompaniesFunc: func(ctx context.Context) ([]string, error) {
				return nil, errors.New("no such table")
			},
		}

		_, err := NewReportService(mockRepo, zap.NewNop()).ListCompanies(ctx)

		assert.ErrorIs(t, err, ErrStorageFailure)
	})
}

func TestCompanyCacheKeys(t *testing.T) {
	assert.Equal(t, "reports:company_stats:Acme", CompanyCacheKey(CacheKeyCompanyStats, "Acme"))
	assert.Equal(t, []string{
		"reports:company_stats:acme",
		"reports:company_report:acme",
	}, CompanyCacheKeys("acme"))
}
