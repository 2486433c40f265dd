package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/application/usecase/budget"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles the monthly spending limit.
type BudgetController struct {
	setUseCase *budget.SetLimitUseCase
	getUseCase *budget.GetLimitUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(setUseCase *budget.SetLimitUseCase, getUseCase *budget.GetLimitUseCase) *BudgetController {
	return &BudgetController{setUseCase: setUseCase, getUseCase: getUseCase}
}

// Get handles GET /budget requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetLimitInput{UserID: userID})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitResponse(output.Status))
}

// Set handles PUT /budget requests.
func (c *BudgetController) Set(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SetLimitRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidLimitAmount)) {
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), budget.SetLimitInput{
		UserID: userID,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitResponse(output.Status))
}

func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	if !respondCoded(ctx, err, c.getStatusCodeForBudgetError) {
		handleUnmappedError(ctx, err)
	}
}

func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	if code == domainerror.ErrCodeInvalidLimitAmount {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
