package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/logger"
	"churchplus-backend/internal/repository"
	"churchplus-backend/internal/validation"
)

type memberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) Create(ctx context.Context, input *domain.NewMember, ownerID string) (*domain.Member, error) {
	logger.EnterMethod("memberService.Create", "userID", ownerID)

	if err := validation.ValidateNewMember(input); err != nil {
		logger.ExitMethodWithError("memberService.Create", err, "userID", ownerID)
		return nil, err
	}

	birthDate, err := validation.ParseDate(input.BirthDate)
	if err != nil {
		return nil, err
	}
	var baptismDate *time.Time
	if input.BaptismDate != "" {
		d, err := validation.ParseDate(input.BaptismDate)
		if err != nil {
			return nil, err
		}
		baptismDate = &d
	}

	_, err = s.memberRepo.GetByCPF(ctx, input.CPF)
	if err == nil {
		logger.ExitMethodWithError("memberService.Create", domain.ErrMemberAlreadyExists, "userID", ownerID)
		return nil, domain.ErrMemberAlreadyExists
	}
	if !errors.Is(err, domain.ErrMemberNotFound) {
		logger.ExitMethodWithError("memberService.Create", err, "userID", ownerID)
		return nil, err
	}

	m := &domain.Member{
		Name:        strings.TrimSpace(input.Name),
		CPF:         input.CPF,
		BirthDate:   birthDate,
		BaptismDate: baptismDate,
		Email:       input.Email,
		FatherName:  strings.TrimSpace(input.FatherName),
		MotherName:  strings.TrimSpace(input.MotherName),
		Education:   domain.Education(input.Education),
		Profession:  input.Profession,
		Status:      domain.MemberStatusActive,
		UserID:      ownerID,
		Addresses:   input.Addresses,
		Phones:      input.Phones,
	}
	if err := s.memberRepo.Create(ctx, m); err != nil {
		logger.ExitMethodWithError("memberService.Create", err, "userID", ownerID)
		return nil, err
	}

	logger.ExitMethod("memberService.Create", "memberID", m.ID, "userID", ownerID)
	return m, nil
}

func (s *memberService) Get(ctx context.Context, id, ownerID string) (*domain.Member, error) {
	if !validation.IsWellFormedID(id) {
		return nil, domain.ErrMalformedID
	}
	return s.memberRepo.GetByID(ctx, id, ownerID)
}

func (s *memberService) List(ctx context.Context, ownerID string) ([]domain.Member, error) {
	return s.memberRepo.ListByStatusAndOwner(ctx, domain.MemberStatusActive, ownerID)
}

func (s *memberService) ListByNameFragment(ctx context.Context, fragment, ownerID string) ([]domain.Member, error) {
	return s.memberRepo.SearchByName(ctx, fragment, ownerID)
}

func (s *memberService) Update(ctx context.Context, id string, patch *domain.MemberPatch, ownerID string) (*domain.Member, error) {
	logger.EnterMethod("memberService.Update", "memberID", id, "userID", ownerID)

	if !validation.IsWellFormedID(id) {
		return nil, domain.ErrMalformedID
	}

	existing, err := s.memberRepo.GetByID(ctx, id, ownerID)
	if err != nil {
		logger.ExitMethodWithError("memberService.Update", err, "memberID", id)
		return nil, err
	}

	if err := validation.ValidateMemberPatch(patch); err != nil {
		logger.ExitMethodWithError("memberService.Update", err, "memberID", id)
		return nil, err
	}

	if err := applyMemberPatch(existing, patch); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Update(ctx, existing); err != nil {
		logger.ExitMethodWithError("memberService.Update", err, "memberID", id)
		return nil, err
	}

	logger.ExitMethod("memberService.Update", "memberID", id)
	return existing, nil
}

func (s *memberService) SoftDelete(ctx context.Context, id, ownerID string) error {
	logger.EnterMethod("memberService.SoftDelete", "memberID", id, "userID", ownerID)

	if !validation.IsWellFormedID(id) {
		return domain.ErrMalformedID
	}

	if _, err := s.memberRepo.GetByID(ctx, id, ownerID); err != nil {
		logger.ExitMethodWithError("memberService.SoftDelete", err, "memberID", id)
		return err
	}

	if err := s.memberRepo.UpdateStatus(ctx, id, ownerID, domain.MemberStatusInactive); err != nil {
		logger.ExitMethodWithError("memberService.SoftDelete", err, "memberID", id)
		return err
	}

	logger.ExitMethod("memberService.SoftDelete", "memberID", id)
	return nil
}

// applyMemberPatch copies every present, non-empty field onto m. Address
// and phone entries all land on the first stored row.
func applyMemberPatch(m *domain.Member, p *domain.MemberPatch) error {
	setTrimmed(&m.Name, p.Name)
	setString(&m.Email, p.Email)
	setTrimmed(&m.FatherName, p.FatherName)
	setTrimmed(&m.MotherName, p.MotherName)
	setString(&m.Profession, p.Profession)
	if present(p.Education) {
		m.Education = domain.Education(*p.Education)
	}
	if present(p.BirthDate) {
		d, err := validation.ParseDate(*p.BirthDate)
		if err != nil {
			return err
		}
		m.BirthDate = d
	}
	if present(p.BaptismDate) {
		d, err := validation.ParseDate(*p.BaptismDate)
		if err != nil {
			return err
		}
		m.BaptismDate = &d
	}

	if len(m.Addresses) > 0 {
		first := &m.Addresses[0]
		for _, a := range p.Addresses {
			mergeAddress(first, a)
		}
	}
	if len(m.Phones) > 0 {
		first := &m.Phones[0]
		for _, ph := range p.Phones {
			if ph.PhoneNumber != "" {
				first.PhoneNumber = ph.PhoneNumber
			}
		}
	}
	return nil
}

func mergeAddress(dst *domain.Address, src domain.Address) {
	if src.ZipCode != "" {
		dst.ZipCode = src.ZipCode
	}
	if src.Number != 0 {
		dst.Number = src.Number
	}
	if src.Street != "" {
		dst.Street = src.Street
	}
	if src.Neighborhood != "" {
		dst.Neighborhood = src.Neighborhood
	}
	if src.Complement != "" {
		dst.Complement = src.Complement
	}
	if src.UF != "" {
		dst.UF = src.UF
	}
	if src.City != "" {
		dst.City = src.City
	}
}

func setString(dst *string, v *string) {
	if present(v) {
		*dst = *v
	}
}

// setTrimmed is setString for fields validated without surrounding blanks.
func setTrimmed(dst *string, v *string) {
	if present(v) {
		*dst = strings.TrimSpace(*v)
	}
}

func present(s *string) bool {
	return s != nil && *s != ""
}
