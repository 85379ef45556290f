package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"class-finder/internal/config"
)

const applicationName = "class-finder"

// NewPool construye el pool usado por el repositorio de entidades.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, poolCfg)
}

// El set de entidades se lee una vez al arrancar y el seed escribe en
// serie, asi que alcanza con pocas conexiones.
func poolConfig(cfg *config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	maxConns := cfg.DBMaxConns
	if maxConns <= 0 {
		maxConns = 4
	}
	poolCfg.MaxConns = int32(maxConns)
	poolCfg.MinConns = 0
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second
	if _, ok := poolCfg.ConnConfig.RuntimeParams["application_name"]; !ok {
		poolCfg.ConnConfig.RuntimeParams["application_name"] = applicationName
	}
	return poolCfg, nil
}

// Ping verifica conectividad con la base de datos.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return pool.Ping(ctx)
}
