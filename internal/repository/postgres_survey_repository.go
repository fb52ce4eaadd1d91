package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/godilite/maturity-server/internal/repository/models"
)

// PgxQuerier is the subset of *pgxpool.Pool the Postgres store uses.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresSurveyRepository reads and writes survey rows on a hosted Postgres
// database.
type PostgresSurveyRepository struct {
	pool PgxQuerier
}

func NewPostgresSurveyRepository(pool PgxQuerier) *PostgresSurveyRepository {
	return &PostgresSurveyRepository{pool: pool}
}

// NewPostgresPool connects to connString and applies PostgresSchema.
func NewPostgresPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	if _, err := pool.Exec(ctx, PostgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: apply schema: %w", err)
	}
	return pool, nil
}

// GetRowsByCompany returns every row whose company equals company exactly.
func (s *PostgresSurveyRepository) GetRowsByCompany(ctx context.Context, company string) ([]models.SurveyRow, error) {
	query := `SELECT ` + surveyColumnList + ` FROM evaluaciones WHERE empresa = $1 ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query, company)
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
func (s *PostgresSurveyRepository) InsertRow(ctx context.Context, row models.SurveyRow) error {
	query := `INSERT INTO evaluaciones (` + surveyColumnList + `) VALUES (` + placeholders(len(surveyColumns), true) + `)`

	if _, err := s.pool.Exec(ctx, query, insertArgs(row)...); err != nil {
		return fmt.Errorf("exec InsertRow: %w", err)
	}
	return nil
}

// ListCompanies returns the distinct company names, sorted.
func (s *PostgresSurveyRepository) ListCompanies(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT empresa FROM evaluaciones ORDER BY empresa`)
	if err != nil {
		return nil, fmt.Errorf("query ListCompanies: %w", err)
	}

	companies, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect ListCompanies: %w", err)
	}
	return companies, nil
}
