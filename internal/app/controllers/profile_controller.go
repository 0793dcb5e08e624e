package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/middleware"
)

// ProfileController handles user profile operations
type ProfileController struct {
	profileService services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetProfile returns the stored profile for the authenticated user.
// GET /api/v1/profile
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	resp, err := c.profileService.GetProfile(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// UpdateProfile sets the user's dorm location.
// PUT /api/v1/profile
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid profile data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.profileService.UpdateDormCoords(ctx, middleware.UserID(ctx), req.DormCoords); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Profile updated"})
}
