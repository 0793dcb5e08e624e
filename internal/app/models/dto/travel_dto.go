package dto

import "github.com/pranaynookala001/PurdueGo2025/internal/app/models"

// TravelPlanRequest is the body of POST /api/v1/travel/plan.
type TravelPlanRequest struct {
	DormCoords *models.Coordinates `json:"dormCoords" binding:"required"`
	// NotifyOptIn is the user's choice; PermissionGranted is what the
	// device reported when the client asked for notification permission.
	NotifyOptIn       bool `json:"notifyOptIn"`
	PermissionGranted bool `json:"permissionGranted"`
	SendPreview       bool `json:"sendPreview"`
}

// TravelLegDTO is the computed travel advice for one class block.
type TravelLegDTO struct {
	Day         models.Weekday `json:"day"`
	CourseCode  string         `json:"courseCode"`
	ClassStart  string         `json:"classStart"`
	LeadMinutes int            `json:"leadMinutes"`
	LeaveBy     string         `json:"leaveBy"`
}

// TravelPlanResponse reports every leg the planner could resolve along with
// how many class blocks were skipped for lack of coordinates.
type TravelPlanResponse struct {
	Legs      []TravelLegDTO `json:"legs"`
	Skipped   int            `json:"skipped"`
	Scheduled bool           `json:"scheduled"`
}

// ProfileResponse is the stored profile for GET /api/v1/profile.
type ProfileResponse struct {
	UserID      string              `json:"userId"`
	DormCoords  *models.Coordinates `json:"dormCoords,omitempty"`
	HasSchedule bool                `json:"hasSchedule"`
}

// UpdateProfileRequest sets the user's dorm location.
type UpdateProfileRequest struct {
	DormCoords *models.Coordinates `json:"dormCoords" binding:"required"`
}
