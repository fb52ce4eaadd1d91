package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/godilite/maturity-server/internal/config"
	"github.com/godilite/maturity-server/internal/repository"
	"github.com/godilite/maturity-server/internal/service"
	dbbuilder "github.com/godilite/maturity-server/pkg/database"
)

// OpenStorage connects the configured survey store and applies its schema.
// The returned close func releases the connection pool.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.SurveyRepository, func(), error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := repository.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("database init failed: %w", err)
		}
		logger.Info("Postgres pool initialized")
		return repository.NewPostgresSurveyRepository(pool), pool.Close, nil

	default:
		db, err := dbbuilder.New(
			dbbuilder.WithDriver(cfg.DBDriver),
			dbbuilder.WithDataSource(cfg.DBPath),
			dbbuilder.WithSchema(repository.SQLiteSchema),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("database init failed: %w", err)
		}
		logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

		closeFn := func() {
			if err := db.Close(); err != nil {
				logger.Error("database shutdown error", zap.Error(err))
			}
		}
		return repository.NewSurveyRepository(db), closeFn, nil
	}
}
