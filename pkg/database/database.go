package database

import (
	"context"
	_ "embed"

	"github.com/jackc/pgx/v5/pgxpool"

	"coffeehouse/pkg/logger"
)

//go:embed schema.sql
var schema string

func NewPool(dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	logger.Info.Info("Database connected successfully")

	return pool, nil
}

// Bootstrap applies the schema; every statement is CREATE TABLE IF NOT
// EXISTS, so reruns are harmless.
func Bootstrap(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
