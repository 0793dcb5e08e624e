// Package travel turns resolved coordinates and class start times into
// "leave by" reminders and schedules their recurring delivery.
package travel

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/timecodec"
)

// RouteEstimator produces a travel duration between two points. The
// estimate is a black box; implementations may call a routing service or
// apply a fixed walking-speed heuristic.
type RouteEstimator interface {
	Estimate(ctx context.Context, origin, dest models.Coordinates) (time.Duration, error)
}

// PlanState tracks how far one course occurrence has progressed toward a
// scheduled reminder. A missing precondition halts the transition and the
// occurrence stays Unplanned until planning is re-invoked.
type PlanState string

const (
	StateUnplanned             PlanState = "unplanned"
	StateCoordinatesResolved   PlanState = "coordinates_resolved"
	StateLeadTimeComputed      PlanState = "lead_time_computed"
	StateNotificationScheduled PlanState = "notification_scheduled"
)

// Plan is one leave-by reminder for one course occurrence (a course on one
// of its weekdays).
type Plan struct {
	ID          string
	Day         models.Weekday
	CourseCode  string
	ClassStart  string
	LeadMinutes int
	LeaveBy     string
	State       PlanState
}

// Planner computes leave-by plans for a week of courses.
type Planner struct {
	estimator RouteEstimator
}

// NewPlanner creates a planner backed by the given route estimator.
func NewPlanner(estimator RouteEstimator) *Planner {
	return &Planner{estimator: estimator}
}

// LeaveBy subtracts a lead time from a class start display string.
// 9:00 AM with a 12 minute lead yields 8:48 AM.
func LeaveBy(classStart string, lead time.Duration) (string, error) {
	start, err := timecodec.Parse(classStart)
	if err != nil {
		return "", err
	}
	return timecodec.Format(start - lead.Hours()), nil
}

// PlanWeek produces one plan per qualifying course occurrence. An
// occurrence qualifies only when both the dorm coordinate and the course's
// resolved coordinate are known; anything else is skipped silently and
// counted in the second return value. An estimator failure is terminal for
// the whole planning request.
func (p *Planner) PlanWeek(ctx context.Context, dorm *models.Coordinates, records []models.CourseRecord) ([]Plan, int, error) {
	var plans []Plan
	skipped := 0

	for _, r := range records {
		if dorm == nil || r.Coords == nil {
			skipped += len(r.Days)
			continue
		}

		dur, err := p.estimator.Estimate(ctx, *dorm, *r.Coords)
		if err != nil {
			return nil, 0, err
		}
		lead := int(math.Ceil(dur.Minutes()))

		leaveBy, err := LeaveBy(r.StartTime, dur)
		if err != nil {
			// Unreadable start time means the occurrence never leaves
			// Unplanned.
			skipped += len(r.Days)
			continue
		}

		for _, day := range r.Days {
			plans = append(plans, Plan{
				ID:          uuid.New().String(),
				Day:         day,
				CourseCode:  r.TrimmedCode(),
				ClassStart:  r.StartTime,
				LeadMinutes: lead,
				LeaveBy:     leaveBy,
				State:       StateLeadTimeComputed,
			})
		}
	}
	return plans, skipped, nil
}

// ScheduleNotifications registers exactly one reminder per plan. It
// requires both opt-in and granted notification permission: without opt-in
// nothing happens and no error is returned; opted in without permission
// returns ErrPermissionDenied once so the caller can surface a single
// explanatory alert, and nothing is scheduled.
func (p *Planner) ScheduleNotifications(plans []Plan, optIn, permissionGranted bool, n Notifier) ([]Plan, error) {
	if !optIn {
		return plans, nil
	}
	if !permissionGranted {
		return plans, apperrors.NewCustomError(apperrors.ErrPermissionDenied, "notification permission was not granted")
	}

	out := make([]Plan, len(plans))
	for i, plan := range plans {
		if err := n.Schedule(plan); err != nil {
			return nil, err
		}
		plan.State = StateNotificationScheduled
		out[i] = plan
	}
	return out, nil
}
