package http

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"churchplus-backend/internal/domain"
)

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) Create(ctx context.Context, input *domain.NewMember, ownerID string) (*domain.Member, error) {
	args := m.Called(ctx, input, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id, ownerID string) (*domain.Member, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) List(ctx context.Context, ownerID string) ([]domain.Member, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberService) ListByNameFragment(ctx context.Context, fragment, ownerID string) ([]domain.Member, error) {
	args := m.Called(ctx, fragment, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberService) Update(ctx context.Context, id string, patch *domain.MemberPatch, ownerID string) (*domain.Member, error) {
	args := m.Called(ctx, id, patch, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberService) SoftDelete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

type MockContributionService struct {
	mock.Mock
}

func (m *MockContributionService) Create(ctx context.Context, input *domain.NewContribution, ownerID string) (*domain.Contribution, error) {
	args := m.Called(ctx, input, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}

func (m *MockContributionService) ListByMember(ctx context.Context, memberID, ownerID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, memberID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contribution), args.Error(1)
}

func (m *MockContributionService) ListByDateRange(ctx context.Context, from, to time.Time, ownerID string) ([]domain.Contribution, error) {
	args := m.Called(ctx, from, to, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contribution), args.Error(1)
}

func (m *MockContributionService) GetByID(ctx context.Context, id, ownerID string) (*domain.Contribution, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}

func (m *MockContributionService) Update(ctx context.Context, id string, patch *domain.ContributionPatch, ownerID string) (*domain.Contribution, error) {
	args := m.Called(ctx, id, patch, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contribution), args.Error(1)
}

func (m *MockContributionService) Delete(ctx context.Context, id, ownerID string) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *MockContributionService) MonthlySummary(ctx context.Context, from, to time.Time, ownerID string) ([]domain.MonthlyTotal, error) {
	args := m.Called(ctx, from, to, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyTotal), args.Error(1)
}

func (m *MockContributionService) ListSnapshots(ctx context.Context, year int, ownerID string) ([]domain.ContributionSnapshot, error) {
	args := m.Called(ctx, year, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContributionSnapshot), args.Error(1)
}

func (m *MockContributionService) TakeMonthlySnapshots(ctx context.Context, month time.Time) (int, error) {
	args := m.Called(ctx, month)
	return args.Int(0), args.Error(1)
}

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) GetStatus(ctx context.Context) (*domain.SystemStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SystemStatus), args.Error(1)
}
