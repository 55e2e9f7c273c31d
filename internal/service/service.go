package service

import (
	"context"
	"time"

	"churchplus-backend/internal/domain"
)

type MemberService interface {
	Create(ctx context.Context, input *domain.NewMember, ownerID string) (*domain.Member, error)
	Get(ctx context.Context, id, ownerID string) (*domain.Member, error)
	List(ctx context.Context, ownerID string) ([]domain.Member, error)
	ListByNameFragment(ctx context.Context, fragment, ownerID string) ([]domain.Member, error)
	Update(ctx context.Context, id string, patch *domain.MemberPatch, ownerID string) (*domain.Member, error)
	SoftDelete(ctx context.Context, id, ownerID string) error
}

type ContributionService interface {
	Create(ctx context.Context, input *domain.NewContribution, ownerID string) (*domain.Contribution, error)
	ListByMember(ctx context.Context, memberID, ownerID string) ([]domain.Contribution, error)
	ListByDateRange(ctx context.Context, from, to time.Time, ownerID string) ([]domain.Contribution, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Contribution, error)
	Update(ctx context.Context, id string, patch *domain.ContributionPatch, ownerID string) (*domain.Contribution, error)
	Delete(ctx context.Context, id, ownerID string) error
	MonthlySummary(ctx context.Context, from, to time.Time, ownerID string) ([]domain.MonthlyTotal, error)
	ListSnapshots(ctx context.Context, year int, ownerID string) ([]domain.ContributionSnapshot, error)
	TakeMonthlySnapshots(ctx context.Context, month time.Time) (int, error) // returns snapshots written
}

type StatusService interface {
	GetStatus(ctx context.Context) (*domain.SystemStatus, error)
}
