package repository

import (
	"context"
	"time"

	"churchplus-backend/internal/domain"
)

type MemberRepository interface {
	// GetByCPF looks across every status and owner.
	GetByCPF(ctx context.Context, cpf string) (*domain.Member, error)
	Create(ctx context.Context, m *domain.Member) error
	// GetByID returns an ACTIVE member of ownerID with addresses, phones and contributions.
	GetByID(ctx context.Context, id, ownerID string) (*domain.Member, error)
	ListByStatusAndOwner(ctx context.Context, status domain.MemberStatus, ownerID string) ([]domain.Member, error)
	SearchByName(ctx context.Context, fragment, ownerID string) ([]domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	UpdateStatus(ctx context.Context, id, ownerID string, status domain.MemberStatus) error
}

type ContributionRepository interface {
	Create(ctx context.Context, c *domain.Contribution) error
	GetByID(ctx context.Context, id, ownerID string) (*domain.Contribution, error)
	ListByMember(ctx context.Context, memberID, ownerID string) ([]domain.Contribution, error)
	ListByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Contribution, error)
	// Update writes only the non-nil fields and returns the stored row.
	Update(ctx context.Context, id, ownerID string, valueCents *int64, t *domain.ContributionType) (*domain.Contribution, error)
	Delete(ctx context.Context, id, ownerID string) error
	MonthlyTotals(ctx context.Context, ownerID string, from, to time.Time) ([]domain.MonthlyTotal, error)
	ListOwnersWithContributions(ctx context.Context, from, to time.Time) ([]string, error)
}

type SnapshotRepository interface {
	Upsert(ctx context.Context, s *domain.ContributionSnapshot) error
	ListByYear(ctx context.Context, ownerID string, year int) ([]domain.ContributionSnapshot, error)
}

type StatusRepository interface {
	GetDatabaseStatus(ctx context.Context) (*domain.DatabaseStatus, error)
}
