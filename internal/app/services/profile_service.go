package services

import (
	"context"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/repositories"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

// ProfileService defines the interface for user profile operations
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	UpdateDormCoords(ctx context.Context, userID string, coords *models.Coordinates) error
}

type profileServiceImpl struct {
	repo *repositories.ScheduleRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService(repo *repositories.ScheduleRepository) ProfileService {
	return &profileServiceImpl{repo: repo}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	doc, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProfileResponse{UserID: userID}
	if doc != nil {
		resp.DormCoords = doc.DormCoords
		resp.HasSchedule = len(doc.Courses) > 0
	}
	return resp, nil
}

func (s *profileServiceImpl) UpdateDormCoords(ctx context.Context, userID string, coords *models.Coordinates) error {
	if coords == nil {
		return apperrors.NewValidationError("dorm coordinates are required")
	}
	return s.repo.SaveDormCoords(ctx, userID, coords)
}
