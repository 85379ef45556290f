package repository

import (
	"context"
	"fmt"

	"class-finder/internal/config"
	"class-finder/internal/db"
	"class-finder/internal/domain"
)

// EntityStore is an entity repository that can also hand out its raw
// documents and look entries up by name.
type EntityStore interface {
	EntityRepository
	Documents(ctx context.Context) ([]domain.Document, error)
	FindByName(ctx context.Context, name string) (*domain.Character, error)
}

// Open builds the entity store selected by cfg.EntitySource. The returned
// func releases any connection it opened.
func Open(ctx context.Context, cfg *config.Config) (EntityStore, func(), error) {
	switch cfg.EntitySource {
	case config.SourceJSON:
		return NewJSONEntityRepository(cfg.DataDir), func() {}, nil
	case config.SourcePostgres:
		pool, err := db.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("db pool: %w", err)
		}
		if err := db.Ping(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		return NewPgEntityRepository(pool), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown ENTITY_SOURCE %q", config.ErrInvalidConfig, cfg.EntitySource)
	}
}
