package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/application/usecase/insight"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
)

// InsightController serves the advisory messages and the dashboard summary.
type InsightController struct {
	insightsUseCase *insight.GetInsightsUseCase
	summaryUseCase  *insight.GetSummaryUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(insightsUseCase *insight.GetInsightsUseCase, summaryUseCase *insight.GetSummaryUseCase) *InsightController {
	return &InsightController{insightsUseCase: insightsUseCase, summaryUseCase: summaryUseCase}
}

// Insights handles GET /insights requests.
func (c *InsightController) Insights(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), insight.GetInsightsInput{UserID: userID})
	if err != nil {
		handleUnmappedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// Summary handles GET /summary requests.
func (c *InsightController) Summary(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), insight.GetSummaryInput{UserID: userID})
	if err != nil {
		handleUnmappedError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}
