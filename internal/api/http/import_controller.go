package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opencampus/roomfinder/internal/api/http/converter"
	"github.com/opencampus/roomfinder/internal/domain"
	"github.com/opencampus/roomfinder/internal/service"
)

type ImportController struct {
	importer service.ImportInteractor
	index    service.IndexInteractor
}

func NewImportController(importer service.ImportInteractor, index service.IndexInteractor) *ImportController {
	return &ImportController{importer: importer, index: index}
}

func (c *ImportController) ImportRows(ctx *gin.Context) {
	var rows []domain.ScheduleRow
	if err := ctx.ShouldBindJSON(&rows); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	report, err := c.importer.ImportRows(ctx.Request.Context(), rows)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, converter.ReportToApi(report))
}

func (c *ImportController) ImportCSV(ctx *gin.Context) {
	report, err := c.importer.ImportCSV(ctx.Request.Context(), ctx.Request.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, converter.ReportToApi(report))
}

func (c *ImportController) Rebuild(ctx *gin.Context) {
	entries, err := c.index.Rebuild(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}
