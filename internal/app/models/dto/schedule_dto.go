package dto

import "github.com/pranaynookala001/PurdueGo2025/internal/app/models"

// CourseInput is one course as submitted by the client for schedule
// generation. Field names mirror the mobile client's payload.
type CourseInput struct {
	ID             string              `json:"id,omitempty"`
	CourseCode     string              `json:"courseCode" binding:"required"`
	Days           []models.Weekday    `json:"days" binding:"required"`
	StartTime      string              `json:"startTime" binding:"required"`
	EndTime        string              `json:"endTime" binding:"required"`
	Location       string              `json:"location" binding:"required"`
	RoomNumber     *string             `json:"roomNumber,omitempty"`
	LocationCoords *models.Coordinates `json:"locationCoords,omitempty"`
}

// GenerateScheduleRequest is the body of POST /api/generateSchedule.
type GenerateScheduleRequest struct {
	Courses []CourseInput `json:"courses" binding:"required"`
}

// GenerateScheduleResponse carries the generated week back to the client.
// The legacy endpoint returns the schedule at the top level.
type GenerateScheduleResponse struct {
	Schedule models.WeekSchedule `json:"schedule"`
}

// LegacyErrorResponse is the flat error shape the legacy endpoint uses.
type LegacyErrorResponse struct {
	Error string `json:"error"`
}

// ConflictDTO describes one pair of overlapping class blocks on a day.
type ConflictDTO struct {
	Day    models.Weekday `json:"day"`
	First  string         `json:"first"`
	Second string         `json:"second"`
}

// ScheduleResponse is the v1 shape: the stored week plus any conflicts
// detected during generation.
type ScheduleResponse struct {
	Schedule  models.WeekSchedule `json:"schedule"`
	Conflicts []ConflictDTO       `json:"conflicts,omitempty"`
}

// SaveScheduleRequest is the body of PUT /api/v1/schedule.
type SaveScheduleRequest struct {
	Schedule   models.WeekSchedule `json:"schedule" binding:"required"`
	DormCoords *models.Coordinates `json:"dormCoords,omitempty"`
}

// ToCourseRecord converts the wire payload into the domain record.
func (c CourseInput) ToCourseRecord() models.CourseRecord {
	return models.CourseRecord{
		ID:         c.ID,
		Code:       c.CourseCode,
		Days:       append([]models.Weekday(nil), c.Days...),
		StartTime:  c.StartTime,
		EndTime:    c.EndTime,
		Location:   c.Location,
		RoomNumber: c.RoomNumber,
		Coords:     c.LocationCoords,
	}
}
