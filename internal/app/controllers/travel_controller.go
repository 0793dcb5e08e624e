package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/middleware"
)

// TravelController handles travel planning operations
type TravelController struct {
	travelService services.TravelService
}

// NewTravelController creates a new TravelController
func NewTravelController(travelService services.TravelService) *TravelController {
	return &TravelController{
		travelService: travelService,
	}
}

// Plan stores the dorm location and computes leave-by reminders for every
// course with resolved coordinates.
// POST /api/v1/travel/plan
func (c *TravelController) Plan(ctx *gin.Context) {
	var req dto.TravelPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid travel plan request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.travelService.Plan(ctx, middleware.UserID(ctx), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
