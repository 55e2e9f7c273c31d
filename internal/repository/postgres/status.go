package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/repository"
)

type statusRepository struct {
	db *sql.DB
}

func NewStatusRepository(db *sql.DB) repository.StatusRepository {
	return &statusRepository{db: db}
}

func (r *statusRepository) GetDatabaseStatus(ctx context.Context) (*domain.DatabaseStatus, error) {
	logger.EnterMethod("statusRepository.GetDatabaseStatus")

	status := &domain.DatabaseStatus{}
	if err := r.db.QueryRowContext(ctx, `SHOW server_version`).Scan(&status.Version); err != nil {
		logger.ExitMethodWithError("statusRepository.GetDatabaseStatus", err, "query", "server_version")
		return nil, err
	}

	// SHOW always yields text.
	var maxConnections string
	if err := r.db.QueryRowContext(ctx, `SHOW max_connections`).Scan(&maxConnections); err != nil {
		logger.ExitMethodWithError("statusRepository.GetDatabaseStatus", err, "query", "max_connections")
		return nil, err
	}
	n, err := strconv.ParseInt(maxConnections, 10, 32)
	if err != nil {
		err = fmt.Errorf("parse max_connections %q: %w", maxConnections, err)
		logger.ExitMethodWithError("statusRepository.GetDatabaseStatus", err)
		return nil, err
	}
	status.MaxConnections = int32(n)

	query := `SELECT count(*)::int FROM pg_stat_activity WHERE datname = current_database()`
	if err := r.db.QueryRowContext(ctx, query).Scan(&status.OpenedConnections); err != nil {
		logger.ExitMethodWithError("statusRepository.GetDatabaseStatus", err, "query", "pg_stat_activity")
		return nil, err
	}

	logger.ExitMethod("statusRepository.GetDatabaseStatus", "version", status.Version)
	return status, nil
}
