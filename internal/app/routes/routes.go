package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/controllers"
	"github.com/pranaynookala001/PurdueGo2025/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	scheduleController *controllers.ScheduleController,
	profileController *controllers.ProfileController,
	geocodeController *controllers.GeocodeController,
	travelController *controllers.TravelController,
	exportController *controllers.ExportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Legacy mobile client surface ---
	// The shipped client calls these paths without a version prefix;
	// generation works unauthenticated.
	api := router.Group("/api")
	api.Use(authMiddleware.OptionalJWTAuth())
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "PurdueGo backend running!"})
		})
		api.POST("/generateSchedule", scheduleController.GenerateSchedule)
	}

	// --- Versioned, authenticated surface ---
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.JWTAuth())
	{
		v1.GET("/profile", profileController.GetProfile)
		v1.PUT("/profile", profileController.UpdateProfile)

		schedule := v1.Group("/schedule")
		{
			schedule.GET("", scheduleController.GetSchedule)
			schedule.PUT("", scheduleController.SaveSchedule)
			schedule.GET("/export/ics", exportController.ExportICS)
			schedule.GET("/export/xlsx", exportController.ExportXLSX)
		}

		geocode := v1.Group("/geocode")
		{
			geocode.POST("/autocomplete", geocodeController.Autocomplete)
			geocode.GET("/places/:placeId", geocodeController.PlaceDetails)
		}

		v1.POST("/travel/plan", travelController.Plan)
	}
}
