package service

import (
	"context"
	"errors"
	"time"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/repository"
	"churchplus-backend/internal/validation"

	"github.com/shopspring/decimal"
)

type contributionService struct {
	contributionRepo repository.ContributionRepository
	memberRepo       repository.MemberRepository
	snapshotRepo     repository.SnapshotRepository
}

func NewContributionService(
	contributionRepo repository.ContributionRepository,
	memberRepo repository.MemberRepository,
	snapshotRepo repository.SnapshotRepository,
) ContributionService {
	return &contributionService{
		contributionRepo: contributionRepo,
		memberRepo:       memberRepo,
		snapshotRepo:     snapshotRepo,
	}
}

func (s *contributionService) Create(ctx context.Context, input *domain.NewContribution, ownerID string) (*domain.Contribution, error) {
	logger.EnterMethod("contributionService.Create", "memberID", input.MemberID, "userID", ownerID)

	if !validation.IsWellFormedID(input.MemberID) {
		logger.ExitMethodWithError("contributionService.Create", domain.ErrMalformedID, "memberID", input.MemberID)
		return nil, domain.ErrMalformedID
	}

	t := validation.NormalizeContributionType(input.Type)
	if err := validation.ValidateContribution(input.ValueCents, t); err != nil {
		logger.ExitMethodWithError("contributionService.Create", err, "memberID", input.MemberID)
		return nil, err
	}

	if _, err := s.memberRepo.GetByID(ctx, input.MemberID, ownerID); err != nil {
		logger.ExitMethodWithError("contributionService.Create", err, "memberID", input.MemberID)
		return nil, err
	}

	c := &domain.Contribution{
		MemberID:   input.MemberID,
		UserID:     ownerID,
		ValueCents: input.ValueCents,
		Type:       t,
	}
	if err := s.contributionRepo.Create(ctx, c); err != nil {
		logger.ExitMethodWithError("contributionService.Create", err, "memberID", input.MemberID)
		return nil, err
	}

	logger.ExitMethod("contributionService.Create", "contributionID", c.ID)
	return c, nil
}

func (s *contributionService) ListByMember(ctx context.Context, memberID, ownerID string) ([]domain.Contribution, error) {
	if !validation.IsWellFormedID(memberID) {
		return nil, domain.ErrMalformedID
	}
	return s.contributionRepo.ListByMember(ctx, memberID, ownerID)
}

func (s *contributionService) ListByDateRange(ctx context.Context, from, to time.Time, ownerID string) ([]domain.Contribution, error) {
	if err := validation.ValidateDateRange(from, to); err != nil {
		return nil, err
	}
	return s.contributionRepo.ListByDateRange(ctx, ownerID, from, to)
}

func (s *contributionService) GetByID(ctx context.Context, id, ownerID string) (*domain.Contribution, error) {
	if !validation.IsWellFormedID(id) {
		return nil, domain.ErrMalformedID
	}
	return s.contributionRepo.GetByID(ctx, id, ownerID)
}

func (s *contributionService) Update(ctx context.Context, id string, patch *domain.ContributionPatch, ownerID string) (*domain.Contribution, error) {
	logger.EnterMethod("contributionService.Update", "contributionID", id, "userID", ownerID)

	if !validation.IsWellFormedID(id) {
		logger.ExitMethodWithError("contributionService.Update", domain.ErrMalformedID, "contributionID", id)
		return nil, domain.ErrMalformedID
	}

	var t *domain.ContributionType
	if patch.Type != nil {
		normalized := validation.NormalizeContributionType(*patch.Type)
		t = &normalized
	}
	if patch.ValueCents != nil {
		if err := validation.ValidateContributionValue(*patch.ValueCents); err != nil {
			logger.ExitMethodWithError("contributionService.Update", err, "contributionID", id)
			return nil, err
		}
	}

	c, err := s.contributionRepo.Update(ctx, id, ownerID, patch.ValueCents, t)
	if err != nil {
		logger.ExitMethodWithError("contributionService.Update", err, "contributionID", id)
		return nil, err
	}

	logger.ExitMethod("contributionService.Update", "contributionID", id)
	return c, nil
}

func (s *contributionService) Delete(ctx context.Context, id, ownerID string) error {
	if !validation.IsWellFormedID(id) {
		return domain.ErrMalformedID
	}
	return s.contributionRepo.Delete(ctx, id, ownerID)
}

// MonthlySummary returns per-month, per-type totals with a two-decimal
// display amount.
func (s *contributionService) MonthlySummary(ctx context.Context, from, to time.Time, ownerID string) ([]domain.MonthlyTotal, error) {
	if err := validation.ValidateDateRange(from, to); err != nil {
		return nil, err
	}

	totals, err := s.contributionRepo.MonthlyTotals(ctx, ownerID, from, to)
	if err != nil {
		return nil, err
	}
	for i := range totals {
		totals[i].Total = formatCents(totals[i].TotalCents)
	}
	return totals, nil
}

func (s *contributionService) ListSnapshots(ctx context.Context, year int, ownerID string) ([]domain.ContributionSnapshot, error) {
	return s.snapshotRepo.ListByYear(ctx, ownerID, year)
}

// TakeMonthlySnapshots stores the totals of the calendar month containing
// month for every owner with activity in it. A failing owner does not stop
// the others.
func (s *contributionService) TakeMonthlySnapshots(ctx context.Context, month time.Time) (int, error) {
	month = month.UTC()
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Microsecond)
	logger.EnterMethod("contributionService.TakeMonthlySnapshots", "month", start.Format("2006-01"))

	owners, err := s.contributionRepo.ListOwnersWithContributions(ctx, start, end)
	if err != nil {
		logger.ExitMethodWithError("contributionService.TakeMonthlySnapshots", err)
		return 0, err
	}

	takenAt := time.Now().UTC()
	written := 0
	var errs []error
	for _, ownerID := range owners {
		totals, err := s.contributionRepo.MonthlyTotals(ctx, ownerID, start, end)
		if err != nil {
			logger.Error("Failed to total contributions", "userID", ownerID, "error", err)
			errs = append(errs, err)
			continue
		}
		for _, total := range totals {
			snapshot := &domain.ContributionSnapshot{
				UserID:     ownerID,
				Month:      total.Month,
				Type:       total.Type,
				TotalCents: total.TotalCents,
				Count:      total.Count,
				TakenAt:    takenAt,
			}
			if err := s.snapshotRepo.Upsert(ctx, snapshot); err != nil {
				logger.Error("Failed to store snapshot", "userID", ownerID, "month", total.Month, "error", err)
				errs = append(errs, err)
				continue
			}
			written++
		}
	}

	err = errors.Join(errs...)
	if err != nil {
		logger.ExitMethodWithError("contributionService.TakeMonthlySnapshots", err, "written", written)
		return written, err
	}
	logger.ExitMethod("contributionService.TakeMonthlySnapshots", "owners", len(owners), "written", written)
	return written, nil
}

func formatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
