package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// SurveyRepository reads and writes survey rows through database/sql.
type SurveyRepository struct {
	db *sql.DB
}

func NewSurveyRepository(db *sql.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// GetRowsByCompany returns every row whose company equals company exactly.
func (s *SurveyRepository) GetRowsByCompany(ctx context.Context, company string) ([]models.SurveyRow, error) {
	query := `SELECT ` + surveyColumnList + ` FROM evaluaciones WHERE empresa = ? ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, company)
	if err != nil {
		return nil, fmt.Errorf("query GetRowsByCompany: %w", err)
	}
	defer rows.Close()

	var results []models.SurveyRow
	for rows.Next() {
		var r models.SurveyRow
		if err := rows.Scan(surveyFields(&r)...); err != nil {
			return nil, fmt.Errorf("scan GetRowsByCompany row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetRowsByCompany: %w", err)
	}
	return results, nil
}

// InsertRow stores a new survey row.
func (s *SurveyRepository) InsertRow(ctx context.Context, row models.SurveyRow) error {
	query := `INSERT INTO evaluaciones (` + surveyColumnList + `) VALUES (` + placeholders(len(surveyColumns), false) + `)`

	if _, err := s.db.ExecContext(ctx, query, insertArgs(row)...); err != nil {
		return fmt.Errorf("exec InsertRow: %w", err)
	}
	return nil
}

// ListCompanies returns the distinct company names, sorted.
func (s *SurveyRepository) ListCompanies(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT empresa FROM evaluaciones ORDER BY empresa`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query ListCompanies: %w", err)
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan ListCompanies row: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListCompanies: %w", err)
	}
	return companies, nil
}
