package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/application/usecase/report"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

// ReportController handles report downloads.
type ReportController struct {
	exportUseCase *report.ExportReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(exportUseCase *report.ExportReportUseCase) *ReportController {
	return &ReportController{exportUseCase: exportUseCase}
}

// Export handles GET /reports?format=pdf|csv&month=YYYY-MM requests.
func (c *ReportController) Export(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportReportInput{
		UserID: userID,
		Format: ctx.Query("format"),
		Month:  ctx.Query("month"),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	if !respondCoded(ctx, err, c.getStatusCodeForReportError) {
		handleUnmappedError(ctx, err)
	}
}

func (c *ReportController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnsupportedReportFormat, domainerror.ErrCodeInvalidReportMonth:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
