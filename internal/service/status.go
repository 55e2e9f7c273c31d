package service

import (
	"context"
	"time"

	"churchplus-backend/internal/domain"
	"churchplus-backend/internal/repository"
)

type statusService struct {
	statusRepo repository.StatusRepository
}

func NewStatusService(statusRepo repository.StatusRepository) StatusService {
	return &statusService{statusRepo: statusRepo}
}

func (s *statusService) GetStatus(ctx context.Context) (*domain.SystemStatus, error) {
	db, err := s.statusRepo.GetDatabaseStatus(ctx)
	if err != nil {
		return nil, err
	}

	status := &domain.SystemStatus{UpdatedAt: time.Now().UTC()}
	status.Dependencies.Database = *db
	return status, nil
}
