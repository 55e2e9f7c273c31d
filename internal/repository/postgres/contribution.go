package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const contributionColumns = `id, member_id, user_id, value, type, created_at, updated_at`

type contributionRepository struct {
	db *sql.DB
}

func NewContributionRepository(db *sql.DB) repository.ContributionRepository {
	return &contributionRepository{db: db}
}

func scanContribution(s rowScanner) (*domain.Contribution, error) {
	c := &domain.Contribution{}
	if err := s.Scan(&c.ID, &c.MemberID, &c.UserID, &c.ValueCents, &c.Type, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contributionRepository) Create(ctx context.Context, c *domain.Contribution) error {
	logger.EnterMethod("contributionRepository.Create", "memberID", c.MemberID, "userID", c.UserID, "type", c.Type)

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO financial_contributions (id, member_id, user_id, value, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.MemberID, c.UserID, c.ValueCents, c.Type, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			err = domain.ErrMemberNotFound
		}
		logger.ExitMethodWithError("contributionRepository.Create", err, "memberID", c.MemberID)
		return err
	}

	logger.ExitMethod("contributionRepository.Create", "contributionID", c.ID)
	return nil
}

func (r *contributionRepository) GetByID(ctx context.Context, id, ownerID string) (*domain.Contribution, error) {
	logger.EnterMethod("contributionRepository.GetByID", "contributionID", id, "userID", ownerID)

	query := `SELECT ` + contributionColumns + ` FROM financial_contributions WHERE id = $1 AND user_id = $2`
	c, err := scanContribution(r.db.QueryRowContext(ctx, query, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("contributionRepository.GetByID", domain.ErrContributionNotFound, "contributionID", id)
		return nil, domain.ErrContributionNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.GetByID", err, "contributionID", id)
		return nil, err
	}

	logger.ExitMethod("contributionRepository.GetByID", "contributionID", id)
	return c, nil
}

func (r *contributionRepository) ListByMember(ctx context.Context, memberID, ownerID string) ([]domain.Contribution, error) {
	logger.EnterMethod("contributionRepository.ListByMember", "memberID", memberID, "userID", ownerID)

	query := `SELECT ` + contributionColumns + ` FROM financial_contributions WHERE member_id = $1 AND user_id = $2`
	list, err := r.query(ctx, query, memberID, ownerID)
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.ListByMember", err, "memberID", memberID)
		return nil, err
	}

	logger.ExitMethod("contributionRepository.ListByMember", "memberID", memberID, "count", len(list))
	return list, nil
}

func (r *contributionRepository) ListByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Contribution, error) {
	logger.EnterMethod("contributionRepository.ListByDateRange", "userID", ownerID, "from", from, "to", to)

	query := `SELECT ` + contributionColumns + ` FROM financial_contributions
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at`
	list, err := r.query(ctx, query, ownerID, from, to)
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.ListByDateRange", err, "userID", ownerID)
		return nil, err
	}

	logger.ExitMethod("contributionRepository.ListByDateRange", "userID", ownerID, "count", len(list))
	return list, nil
}

func (r *contributionRepository) Update(ctx context.Context, id, ownerID string, valueCents *int64, t *domain.ContributionType) (*domain.Contribution, error) {
	logger.EnterMethod("contributionRepository.Update", "contributionID", id, "userID", ownerID)

	query := `
		UPDATE financial_contributions SET
			value = COALESCE($1, value),
			type = COALESCE($2, type),
			updated_at = $3
		WHERE id = $4 AND user_id = $5
		RETURNING ` + contributionColumns

	var typeArg any
	if t != nil {
		typeArg = string(*t)
	}
	var valueArg any
	if valueCents != nil {
		valueArg = *valueCents
	}

	c, err := scanContribution(r.db.QueryRowContext(ctx, query, valueArg, typeArg, time.Now().UTC(), id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("contributionRepository.Update", domain.ErrContributionNotFound, "contributionID", id)
		return nil, domain.ErrContributionNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.Update", err, "contributionID", id)
		return nil, err
	}

	logger.ExitMethod("contributionRepository.Update", "contributionID", id)
	return c, nil
}

func (r *contributionRepository) Delete(ctx context.Context, id, ownerID string) error {
	logger.EnterMethod("contributionRepository.Delete", "contributionID", id, "userID", ownerID)

	result, err := r.db.ExecContext(ctx, `DELETE FROM financial_contributions WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.Delete", err, "contributionID", id)
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.Delete", err, "contributionID", id)
		return err
	}
	logger.DatabaseResult("DELETE", rows, nil, "table", "financial_contributions")
	if rows == 0 {
		logger.ExitMethodWithError("contributionRepository.Delete", domain.ErrContributionNotFound, "contributionID", id)
		return domain.ErrContributionNotFound
	}

	logger.ExitMethod("contributionRepository.Delete", "contributionID", id)
	return nil
}

func (r *contributionRepository) MonthlyTotals(ctx context.Context, ownerID string, from, to time.Time) ([]domain.MonthlyTotal, error) {
	logger.EnterMethod("contributionRepository.MonthlyTotals", "userID", ownerID, "from", from, "to", to)

	query := `
		SELECT to_char(date_trunc('month', created_at AT TIME ZONE 'UTC'), 'YYYY-MM') AS month, type, SUM(value), COUNT(*)
		FROM financial_contributions
		WHERE user_id = $1 AND created_at BETWEEN $2 AND $3
		GROUP BY month, type
		ORDER BY month, type
	`
	rows, err := r.db.QueryContext(ctx, query, ownerID, from, to)
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.MonthlyTotals", err, "userID", ownerID)
		return nil, err
	}
	defer rows.Close()

	totals := []domain.MonthlyTotal{}
	for rows.Next() {
		var mt domain.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Type, &mt.TotalCents, &mt.Count); err != nil {
			logger.ExitMethodWithError("contributionRepository.MonthlyTotals", err, "userID", ownerID)
			return nil, err
		}
		totals = append(totals, mt)
	}
	if err := rows.Err(); err != nil {
		logger.ExitMethodWithError("contributionRepository.MonthlyTotals", err, "userID", ownerID)
		return nil, err
	}

	logger.ExitMethod("contributionRepository.MonthlyTotals", "userID", ownerID, "count", len(totals))
	return totals, nil
}

func (r *contributionRepository) ListOwnersWithContributions(ctx context.Context, from, to time.Time) ([]string, error) {
	logger.EnterMethod("contributionRepository.ListOwnersWithContributions", "from", from, "to", to)

	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT user_id FROM financial_contributions
		WHERE created_at BETWEEN $1 AND $2
		ORDER BY user_id`, from, to)
	if err != nil {
		logger.ExitMethodWithError("contributionRepository.ListOwnersWithContributions", err)
		return nil, err
	}
	defer rows.Close()

	owners := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			logger.ExitMethodWithError("contributionRepository.ListOwnersWithContributions", err)
			return nil, err
		}
		owners = append(owners, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	logger.ExitMethod("contributionRepository.ListOwnersWithContributions", "count", len(owners))
	return owners, nil
}

func (r *contributionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Contribution, error) {
	logger.DatabaseCall("SELECT", "financial_contributions")
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Contribution{}
	for rows.Next() {
		c, err := scanContribution(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *c)
	}
	return list, rows.Err()
}
