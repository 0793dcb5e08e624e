package services

import (
	"context"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/repositories"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/travel"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

// TravelService defines the interface for travel planning operations
type TravelService interface {
	// Plan stores the dorm location, computes leave-by plans for the
	// user's courses, and optionally schedules weekly reminders.
	Plan(ctx context.Context, userID string, req dto.TravelPlanRequest) (*dto.TravelPlanResponse, error)
}

type travelServiceImpl struct {
	repo     *repositories.ScheduleRepository
	planner  *travel.Planner
	notifier travel.Notifier
}

// NewTravelService creates a new travel service instance
func NewTravelService(repo *repositories.ScheduleRepository, planner *travel.Planner, notifier travel.Notifier) TravelService {
	return &travelServiceImpl{repo: repo, planner: planner, notifier: notifier}
}

func (s *travelServiceImpl) Plan(ctx context.Context, userID string, req dto.TravelPlanRequest) (*dto.TravelPlanResponse, error) {
	if req.DormCoords == nil {
		return nil, apperrors.NewValidationError("dorm coordinates are required")
	}

	if err := s.repo.SaveDormCoords(ctx, userID, req.DormCoords); err != nil {
		return nil, err
	}

	var courses []models.CourseRecord
	doc, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		courses = doc.Courses
	}

	plans, skipped, err := s.planner.PlanWeek(ctx, req.DormCoords, courses)
	if err != nil {
		return nil, err
	}

	scheduled := false
	if req.NotifyOptIn {
		plans, err = s.planner.ScheduleNotifications(plans, true, req.PermissionGranted, s.notifier)
		if err != nil {
			return nil, err
		}
		scheduled = len(plans) > 0
		if req.SendPreview {
			s.notifier.Preview()
		}
	}

	legs := make([]dto.TravelLegDTO, len(plans))
	for i, p := range plans {
		legs[i] = dto.TravelLegDTO{
			Day:         p.Day,
			CourseCode:  p.CourseCode,
			ClassStart:  p.ClassStart,
			LeadMinutes: p.LeadMinutes,
			LeaveBy:     p.LeaveBy,
		}
	}
	return &dto.TravelPlanResponse{
		Legs:      legs,
		Skipped:   skipped,
		Scheduled: scheduled,
	}, nil
}
