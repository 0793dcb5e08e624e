package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pranaynookala001/PurdueGo2025/internal/app/services"
	"github.com/pranaynookala001/PurdueGo2025/internal/middleware"
)

// ExportController serves schedule downloads
type ExportController struct {
	exportService services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService services.ExportService) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportICS downloads the schedule as an iCalendar file.
// GET /api/v1/schedule/export/ics
func (c *ExportController) ExportICS(ctx *gin.Context) {
	data, filename, err := c.exportService.ExportICS(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/calendar", data)
}

// ExportXLSX downloads the schedule as a spreadsheet.
// GET /api/v1/schedule/export/xlsx
func (c *ExportController) ExportXLSX(ctx *gin.Context) {
	buf, filename, err := c.exportService.ExportXLSX(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
