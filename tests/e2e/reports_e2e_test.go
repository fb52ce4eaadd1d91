//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/godilite/maturity-server/internal/grpc"
	"github.com/godilite/maturity-server/internal/repository"
	"github.com/godilite/maturity-server/internal/repository/models"
	"github.com/godilite/maturity-server/internal/service"
	servicemocks "github.com/godilite/maturity-server/internal/service/mocks"
	"github.com/godilite/maturity-server/internal/stats"
	"github.com/godilite/maturity-server/tests/e2e/mocks"
)

var testBaseDate = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	_, err = db.Exec(repository.SQLiteSchema)
	require.NoError(t, err)
	return db
}

func seed(t *testing.T, repo *repository.SurveyRepository, rows ...models.SurveyRow) {
	for i, r := range rows {
		if r.ID == "" {
			r.ID = fmt.Sprintf("%s-%02d", r.Company, i)
		}
		r.CreatedAt = testBaseDate.Add(time.Duration(i) * time.Minute)
		require.NoError(t, repo.InsertRow(context.Background(), r))
	}
}

type fixture struct {
	repo     *repository.SurveyRepository
	cache    *mocks.InMemoryCache
	handlers *grpc.GRPCHandlers
}

func newFixture(t *testing.T, extractor service.EvaluationExtractor) *fixture {
	db := setupTestDB(t)
	t.Cleanup(func() { db.Close() })

	if extractor == nil {
		extractor = &servicemocks.MockExtractor{}
	}
	logger := zap.NewNop()
	repo := repository.NewSurveyRepository(db)
	c := mocks.NewInMemoryCache()

	reports := service.NewReportService(repo, logger)
	evals := service.NewEvaluationService(repo, extractor, logger)

	return &fixture{
		repo:     repo,
		cache:    c,
		handlers: grpc.NewGRPCHandlers(reports, evals, c, logger, 5*time.Minute),
	}
}

func companyReq(t *testing.T, company string) *structpb.Struct {
	req, err := structpb.NewStruct(map[string]any{"company": company})
	require.NoError(t, err)
	return req
}

func metricsOf(t *testing.T, resp *structpb.Struct) stats.MetricList {
	var out stats.MetricList
	for _, v := range resp.GetFields()["metrics"].GetListValue().GetValues() {
		f := v.GetStructValue().GetFields()
		out = append(out, stats.MetricEntry{Key: f["key"].GetStringValue(), Value: f["value"].GetNumberValue()})
	}
	return out
}

func TestE2E_GetCompanyStats_Averages(t *testing.T) {
	f := newFixture(t, nil)
	seed(t, f.repo,
		models.SurveyRow{Company: "Acme", PromptSkill: "4"},
		models.SurveyRow{Company: "Acme", PromptSkill: "2"},
	)

	resp, err := f.handlers.GetCompanyStats(context.Background(), companyReq(t, "Acme"))
	require.NoError(t, err)

	metrics := metricsOf(t, resp)
	assert.Equal(t, 3.0, metrics.Value(stats.KeyAvgPromptSkill))
	assert.Equal(t, 2.0, metrics.Value(stats.KeyEmployeeCount))
}

func TestE2E_GetCompanyStats_Percentages(t *testing.T) {
	f := newFixture(t, nil)
	var rows []models.SurveyRow
	for i := range 10 {
		answer := "no"
		if i < 7 {
			answer = "sí"
		}
		rows = append(rows, models.SurveyRow{Company: "Acme", KnowsLLM: answer})
	}
	seed(t, f.repo, rows...)

	resp, err := f.handlers.GetCompanyStats(context.Background(), companyReq(t, "Acme"))
	require.NoError(t, err)
	assert.Equal(t, 70.0, metricsOf(t, resp).Value(stats.KeyPctKnowLLM))
}

func TestE2E_GetCompanyReport_ROI(t *testing.T) {
	f := newFixture(t, nil)
	seed(t, f.repo, models.SurveyRow{Company: "Acme", HoursIAWeek: "10", MinutesSaved: "60"})

	resp, err := f.handlers.GetCompanyReport(context.Background(), companyReq(t, "Acme"))
	require.NoError(t, err)

	roi := resp.GetFields()["roi"].GetStructValue().GetFields()
	assert.Equal(t, 45000.0, roi["current"].GetNumberValue())
	assert.Equal(t, 45000.0, roi["opportunity"].GetNumberValue())
	assert.Equal(t, 90000.0, roi["potential"].GetNumberValue())
	assert.Equal(t, 1.0, roi["employeeCount"].GetNumberValue())

	maturity := resp.GetFields()["maturity"].GetStructValue().GetFields()
	score := maturity["score"].GetNumberValue()
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestE2E_CompanyMatchIsExact(t *testing.T) {
	f := newFixture(t, nil)
	seed(t, f.repo, models.SurveyRow{Company: "Acme", Area: "ventas"})

	_, err := f.handlers.GetCompanyStats(context.Background(), companyReq(t, "acme"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = f.handlers.GetCompanyReport(context.Background(), companyReq(t, "Acme "))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestE2E_SubmitEvaluationRefreshesCachedStats(t *testing.T) {
	extractor := &servicemocks.MockExtractor{
		ExtractFunc: func(context.Context, string, string) (models.SurveyRow, error) {
			return models.SurveyRow{Area: "finanzas", KnowsLLM: "sí"}, nil
		},
	}
	f := newFixture(t, extractor)
	seed(t, f.repo, models.SurveyRow{Company: "Acme", Area: "ventas", KnowsLLM: "no"})
	ctx := context.Background()

	resp, err := f.handlers.GetCompanyStats(ctx, companyReq(t, "Acme"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, metricsOf(t, resp).Value(stats.KeyEmployeeCount))

	statsKey := service.CompanyCacheKey(service.CacheKeyCompanyStats, "Acme")
	require.Eventually(t, func() bool { return f.cache.Has(statsKey) }, time.Second, 10*time.Millisecond)

	submit, err := structpb.NewStruct(map[string]any{"company": "Acme", "transcript": "Entrevista con Ana de finanzas."})
	require.NoError(t, err)
	row, err := f.handlers.SubmitEvaluation(ctx, submit)
	require.NoError(t, err)
	assert.Equal(t, "Acme", row.GetFields()["empresa"].GetStringValue())
	assert.False(t, f.cache.Has(statsKey))

	resp, err = f.handlers.GetCompanyStats(ctx, companyReq(t, "Acme"))
	require.NoError(t, err)
	metrics := metricsOf(t, resp)
	assert.Equal(t, 2.0, metrics.Value(stats.KeyEmployeeCount))
	assert.Equal(t, 50.0, metrics.Value(stats.KeyPctKnowLLM))
	assert.Equal(t, 50.0, metrics.Value("area.finanzas"))

	list, err := f.handlers.ListCompanies(ctx, &structpb.Struct{})
	require.NoError(t, err)
	assert.Len(t, list.GetFields()["companies"].GetListValue().GetValues(), 1)
}
