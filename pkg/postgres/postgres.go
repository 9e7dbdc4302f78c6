package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/safety_map/internal/config"
)

// reservedConns - соединения сверх параллелизма расчета маршрута,
// чтобы обычные запросы не ждали, пока идет оценка точек маршрута
const reservedConns = 4

// NewPostgresDB создает новый пул соединений PostgreSQL
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := poolConfig(appCfg)
	if err != nil {
		return nil, err
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}

// poolConfig разбирает DATABASE_URL и задает размер пула
func poolConfig(appCfg *config.Config) (*pgxpool.Config, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	maxConns := appCfg.DBMaxConns
	if minConns := appCfg.RouteSampleConcurrency + reservedConns; maxConns < minConns {
		maxConns = minConns
	}
	cfgPool.MaxConns = int32(maxConns)
	if appCfg.DBMaxConnIdle > 0 {
		cfgPool.MaxConnIdleTime = appCfg.DBMaxConnIdle
	}
	return cfgPool, nil
}
