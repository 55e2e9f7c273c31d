package service

import (
	"context"
	"time"

	"churchplus-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) GetByCPF(ctx context.Context, cpf string) (*domain.Member, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.Member, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) ListByStatusAndOwner(ctx context.Context, status domain.MemberStatus, ownerID string) ([]domain.Member, error) {
	args := m.Called(ctx, status, ownerID)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) SearchByName(ctx context.Context, fragment, ownerID string) ([]domain.Member, error) {
	args := m.Called(ctx, fragment, ownerID)
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) UpdateStatus(ctx context.Context, id, ownerID string, status domain.MemberStatus) error {
	args := m.Called(ctx, id, ownerID, status)
	return args.Error(0)
}

// MockContributionRepo
type MockContributionRepo struct {
	mock.Mock
}

func (m *MockContributionRepo) Create(ctx context.Context, c *domain.Contribution) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContributionRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.Contribution, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}
func (m *MockContributionRepo) ListByMember(ctx context.Context, memberID, ownerID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, memberID, ownerID)
	return args.Get(0).([]domain.Contribution), args.Error(1)
}
func (m *MockContributionRepo) ListByDateRange(ctx context.Context, ownerID string, from, to time.Time) ([]domain.Contribution, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).([]domain.Contribution), args.Error(1)
}
func (m *MockContributionRepo) Update(ctx context.Context, id, ownerID string, valueCents *int64, t *domain.ContributionType) (*domain.Contribution, error) {
	args := m.Called(ctx, id, ownerID, valueCents, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}
func (m *MockContributionRepo) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
func (m *MockContributionRepo) MonthlyTotals(ctx context.Context, ownerID string, from, to time.Time) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}
func (m *MockContributionRepo) ListOwnersWithContributions(ctx context.Context, from, to time.Time) ([]string, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]string), args.Error(1)
}

// MockSnapshotRepo
type MockSnapshotRepo struct {
	mock.Mock
}

func (m *MockSnapshotRepo) Upsert(ctx context.Context, s *domain.ContributionSnapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSnapshotRepo) ListByYear(ctx context.Context, ownerID string, year int) ([]domain.ContributionSnapshot, error) {
	args := m.Called(ctx, ownerID, year)
	return args.Get(0).([]domain.ContributionSnapshot), args.Error(1)
}

// MockStatusRepo
type MockStatusRepo struct {
	mock.Mock
}

func (m *MockStatusRepo) GetDatabaseStatus(ctx context.Context) (*domain.DatabaseStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatabaseStatus), args.Error(1)
}
