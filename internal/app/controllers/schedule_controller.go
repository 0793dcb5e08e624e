package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/middleware"
	"github.com/pranaynookala001/PurdueGo2025/internal/pkg/apperrors"
)

// ScheduleController handles schedule generation and retrieval
type ScheduleController struct {
	scheduleService services.ScheduleService
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// GenerateSchedule handles the legacy generation endpoint. The wire shape
// is fixed by the mobile client: the request carries {courses}, a success
// returns {schedule} at the top level, and failures return a flat {error}
// string shown to the user verbatim.
// POST /api/generateSchedule
func (c *ScheduleController) GenerateSchedule(ctx *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.LegacyErrorResponse{Error: "Invalid request data"})
		return
	}

	courses := make([]models.CourseRecord, len(req.Courses))
	for i, in := range req.Courses {
		courses[i] = in.ToCourseRecord()
	}

	// The legacy endpoint is unauthenticated; a token, when present, keys
	// persistence so a reload reconstitutes the same schedule.
	userID := middleware.UserID(ctx)

	result, err := c.scheduleService.Generate(ctx, userID, courses)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, apperrors.ErrValidationFailed) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.LegacyErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, dto.GenerateScheduleResponse{Schedule: result.Week})
}

// GetSchedule returns the stored schedule, rebuilt from the user's course
// records. A user who has never generated one gets an empty week.
// GET /api/v1/schedule
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	userID := middleware.UserID(ctx)

	result, err := c.scheduleService.Get(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.ScheduleResponse{Schedule: models.NewWeekSchedule()}
	if result != nil {
		resp.Schedule = result.Week
		for _, conflict := range result.Conflicts {
			resp.Conflicts = append(resp.Conflicts, dto.ConflictDTO{
				Day:    conflict.Day,
				First:  conflict.First,
				Second: conflict.Second,
			})
		}
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// SaveSchedule replaces the stored course records wholesale.
// PUT /api/v1/schedule
func (c *ScheduleController) SaveSchedule(ctx *gin.Context) {
	var req struct {
		Courses    []dto.CourseInput   `json:"courses" binding:"required"`
		DormCoords *models.Coordinates `json:"dormCoords,omitempty"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses := make([]models.CourseRecord, len(req.Courses))
	for i, in := range req.Courses {
		courses[i] = in.ToCourseRecord()
	}

	userID := middleware.UserID(ctx)
	if err := c.scheduleService.Save(ctx, userID, courses, req.DormCoords); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Schedule saved"})
}
