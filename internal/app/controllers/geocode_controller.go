package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/models/dto"
	"github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/middleware"
)

// GeocodeController handles address lookup operations
type GeocodeController struct {
	geocodeService services.GeocodeService
}

// NewGeocodeController creates a new GeocodeController
func NewGeocodeController(geocodeService services.GeocodeService) *GeocodeController {
	return &GeocodeController{
		geocodeService: geocodeService,
	}
}

// Autocomplete returns place suggestions for a free-text query. The
// client tags each request with a sequence number and must discard any
// response whose echoed Seq is older than its latest query.
// POST /api/v1/geocode/autocomplete
func (c *GeocodeController) Autocomplete(ctx *gin.Context) {
	var req dto.AutocompleteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid autocomplete request").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.geocodeService.Autocomplete(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// PlaceDetails resolves a place identifier to coordinates.
// GET /api/v1/geocode/places/:placeId
func (c *GeocodeController) PlaceDetails(ctx *gin.Context) {
	resp, err := c.geocodeService.PlaceDetails(ctx, ctx.Param("placeId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
