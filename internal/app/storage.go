package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/carbonfootprint-backend/internal/adapter/memory"
	"github.com/heartmarshall/carbonfootprint-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carbonfootprint-backend/internal/adapter/postgres/industrial"
	"github.com/heartmarshall/carbonfootprint-backend/internal/adapter/postgres/personal"
	"github.com/heartmarshall/carbonfootprint-backend/internal/config"
	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/transport/rest"
	"github.com/heartmarshall/carbonfootprint-backend/migrations"
)

type personalStore interface {
	Create(ctx context.Context, rec *domain.PersonalRecord) (*domain.PersonalRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.PersonalRecord, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.PersonalRecord, int, error)
	Stats(ctx context.Context) (domain.PersonalStats, error)
}

type industrialStore interface {
	Create(ctx context.Context, rec *domain.IndustrialRecord) (*domain.IndustrialRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.IndustrialRecord, error)
	List(ctx context.Context, filter domain.RecordFilter) ([]domain.IndustrialRecord, int, error)
	Stats(ctx context.Context) (domain.IndustrialStats, error)
}

// storage is the record store selected by configuration.
type storage struct {
	personal   personalStore
	industrial industrialStore
	checks     []rest.HealthCheck
	close      func()
}

func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		logger.Warn("using in-memory record store; records are lost on restart")
		return &storage{
			personal:   memory.NewPersonalStore(),
			industrial: memory.NewIndustrialStore(),
			close:      func() {},
		}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}

		if !cfg.Store.SkipMigrate {
			results, err := postgres.Migrate(ctx, pool, migrations.FS)
			if err != nil {
				pool.Close()
				return nil, err
			}
			for _, r := range results {
				logger.Info("migration applied",
					slog.String("source", r.Source.Path),
					slog.Duration("duration", r.Duration),
				)
			}
		}

		return &storage{
			personal:   personal.New(pool),
			industrial: industrial.New(pool),
			checks:     []rest.HealthCheck{{Name: "database", Pinger: pool}},
			close:      pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
