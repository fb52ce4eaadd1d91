package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/godilite/maturity-server/internal/service"
	"github.com/godilite/maturity-server/internal/stats"
	"github.com/godilite/maturity-server/pkg/cache"
)

type submitRequest struct {
	Company    string `json:"company"`
	Transcript string `json:"transcript"`
}

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	companies, err := s.reports.ListCompanies(ctx)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"companies": companies})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	metrics, err := s.companyStats(ctx, r.URL.Query().Get("company"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	report, err := s.companyReport(ctx, r.URL.Query().Get("company"))
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	company := r.URL.Query().Get("company")

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	report, err := s.companyReport(ctx, company)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	var buf bytes.Buffer
	if err := s.writeWorkbook(&buf, report); err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Errorf("xlsx export failed: %w", err))
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "madurez-"+company+".xlsx"))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Warn("xlsx write interrupted", zap.String("company", company), zap.Error(err))
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), submitTimeout)
	defer cancel()

	row, err := s.evaluations.Submit(ctx, req.Company, req.Transcript)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	delCtx, delCancel := context.WithTimeout(context.Background(), requestTimeout)
	defer delCancel()
	if err := s.cache.Delete(delCtx, service.CompanyCacheKeys(row.Company)...); err != nil {
		s.logger.Warn("cache invalidation failed", zap.String("company", row.Company), zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, row)
}

func (s *Server) companyStats(ctx context.Context, company string) (stats.MetricList, error) {
	key := service.CompanyCacheKey(service.CacheKeyCompanyStats, company)
	return cache.FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, func(fetchCtx context.Context) (stats.MetricList, error) {
		m, err := s.reports.ComputeStatsByCompany(fetchCtx, company)
		if err != nil {
			return nil, err
		}
		if len(m) == 0 {
			return nil, service.ErrNoSurveys
		}
		return m, nil
	})
}

func (s *Server) companyReport(ctx context.Context, company string) (service.Report, error) {
	key := service.CompanyCacheKey(service.CacheKeyCompanyReport, company)
	return cache.FindAndCache(ctx, s.cache, &s.sfGroup, key, s.cacheTTL, s.logger, func(fetchCtx context.Context) (service.Report, error) {
		return s.reports.GetCompanyReport(fetchCtx, company)
	})
}
