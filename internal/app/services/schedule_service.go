package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/repositories"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/schedule"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/travel"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/logger"
)

// incompleteCoursesMessage is shown when generation is attempted with
// missing fields. Wording is part of the client contract.
const incompleteCoursesMessage = "Please fill in all fields for every course."

// GenerationResult is the outcome of one schedule build.
type GenerationResult struct {
	Week      models.WeekSchedule
	Conflicts []schedule.Conflict
	Courses   []models.CourseRecord
}

// ScheduleService defines the interface for schedule generation and retrieval
type ScheduleService interface {
	// Generate validates, builds, and (for authenticated users) persists a
	// schedule. An empty userID builds without persisting.
	Generate(ctx context.Context, userID string, courses []models.CourseRecord) (*GenerationResult, error)
	// Get rebuilds the stored schedule. Returns (nil, nil) for a user with
	// no stored document; first use is not an error.
	Get(ctx context.Context, userID string) (*GenerationResult, error)
	// Save replaces the stored course records wholesale.
	Save(ctx context.Context, userID string, courses []models.CourseRecord, dormCoords *models.Coordinates) error
}

type scheduleServiceImpl struct {
	repo    *repositories.ScheduleRepository
	planner *travel.Planner
}

// NewScheduleService creates a new schedule service instance. repo may be
// nil for a stateless deployment; generation then skips persistence.
func NewScheduleService(repo *repositories.ScheduleRepository, planner *travel.Planner) ScheduleService {
	return &scheduleServiceImpl{repo: repo, planner: planner}
}

func (s *scheduleServiceImpl) Generate(ctx context.Context, userID string, courses []models.CourseRecord) (*GenerationResult, error) {
	if !schedule.AllComplete(courses) {
		return nil, apperrors.NewValidationError(incompleteCoursesMessage)
	}

	// Stable identifiers survive the round trip so rendered blocks map
	// back to their records without string matching.
	for i := range courses {
		if courses[i].ID == "" {
			courses[i].ID = uuid.New().String()
		}
	}

	var dorm *models.Coordinates
	if s.repo != nil && userID != "" {
		doc, err := s.repo.Load(ctx, userID)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			dorm = doc.DormCoords
		}
	}

	result := s.build(ctx, courses, dorm)

	if s.repo != nil && userID != "" {
		err := s.repo.Save(ctx, &repositories.StoredSchedule{
			UserID:     userID,
			Courses:    courses,
			DormCoords: dorm,
		})
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *scheduleServiceImpl) Get(ctx context.Context, userID string) (*GenerationResult, error) {
	doc, err := s.repo.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return s.build(ctx, doc.Courses, doc.DormCoords), nil
}

func (s *scheduleServiceImpl) Save(ctx context.Context, userID string, courses []models.CourseRecord, dormCoords *models.Coordinates) error {
	return s.repo.Save(ctx, &repositories.StoredSchedule{
		UserID:     userID,
		Courses:    courses,
		DormCoords: dormCoords,
	})
}

// build renders the week, layering travel reminders when a dorm coordinate
// is known. Reminder failures degrade to a plain schedule rather than
// failing the build.
func (s *scheduleServiceImpl) build(ctx context.Context, courses []models.CourseRecord, dorm *models.Coordinates) *GenerationResult {
	week := schedule.BuildWeek(courses)

	if dorm != nil && s.planner != nil {
		plans, _, err := s.planner.PlanWeek(ctx, dorm, courses)
		if err != nil {
			logger.Warn().Err(err).Msg("Travel planning failed, rendering schedule without reminders")
		} else if len(plans) > 0 {
			overlays := make([]schedule.TravelOverlay, len(plans))
			for i, p := range plans {
				overlays[i] = schedule.TravelOverlay{
					Day:        p.Day,
					CourseCode: p.CourseCode,
					LeaveBy:    p.LeaveBy,
					ClassStart: p.ClassStart,
				}
			}
			week = schedule.OverlayTravel(week, overlays)
		}
	}

	return &GenerationResult{
		Week:      week,
		Conflicts: schedule.DetectConflicts(week),
		Courses:   courses,
	}
}
