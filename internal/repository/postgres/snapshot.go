package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/repository"
)

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Upsert(ctx context.Context, s *domain.ContributionSnapshot) error {
	logger.EnterMethod("snapshotRepository.Upsert", "userID", s.UserID, "month", s.Month, "type", s.Type)

	query := `
		INSERT INTO contribution_snapshots (user_id, month, type, total_cents, count, taken_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, month, type) DO UPDATE SET
			total_cents = EXCLUDED.total_cents,
			count = EXCLUDED.count,
			taken_at = EXCLUDED.taken_at
	`
	_, err := r.db.ExecContext(ctx, query, s.UserID, s.Month, s.Type, s.TotalCents, s.Count, s.TakenAt)
	if err != nil {
		logger.ExitMethodWithError("snapshotRepository.Upsert", err, "userID", s.UserID, "month", s.Month)
		return err
	}

	logger.ExitMethod("snapshotRepository.Upsert", "userID", s.UserID, "month", s.Month)
	return nil
}

func (r *snapshotRepository) ListByYear(ctx context.Context, ownerID string, year int) ([]domain.ContributionSnapshot, error) {
	logger.EnterMethod("snapshotRepository.ListByYear", "userID", ownerID, "year", year)

	query := `
		SELECT user_id, month, type, total_cents, count, taken_at
		FROM contribution_snapshots
		WHERE user_id = $1 AND month LIKE $2
		ORDER BY month, type
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, fmt.Sprintf("%04d-%%", year))
	if err != nil {
		logger.ExitMethodWithError("snapshotRepository.ListByYear", err, "userID", ownerID)
		return nil, err
	}
	defer rows.Close()

	snapshots := []domain.ContributionSnapshot{}
	for rows.Next() {
		var s domain.ContributionSnapshot
		if err := rows.Scan(&s.UserID, &s.Month, &s.Type, &s.TotalCents, &s.Count, &s.TakenAt); err != nil {
			logger.ExitMethodWithError("snapshotRepository.ListByYear", err, "userID", ownerID)
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("snapshotRepository.ListByYear", "userID", ownerID, "count", len(snapshots))
	return snapshots, nil
}
