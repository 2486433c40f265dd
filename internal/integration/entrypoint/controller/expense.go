package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/application/usecase/expense"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase  *expense.CreateExpenseUseCase
	listUseCase    *expense.ListExpensesUseCase
	deleteUseCase  *expense.DeleteExpenseUseCase
	suggestUseCase *expense.SuggestCategoryUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	suggestUseCase *expense.SuggestCategoryUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		deleteUseCase:  deleteUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingExpenseFields)) {
		return
	}

	input := expense.CreateExpenseInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	}
	if req.Date != "" {
		date, err := entity.ParseDate(req.Date)
		if err != nil {
			badRequest(ctx, "date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidExpenseDate))
			return
		}
		input.Date = date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	resp := dto.CreateExpenseResponse{
		Expense:       dto.ToExpenseResponse(output.Expense),
		LimitExceeded: output.LimitExceeded,
		MonthlyTotal:  output.MonthlyTotal,
	}
	if output.Limit.IsPositive() {
		limit := output.Limit
		resp.Limit = &limit
	}
	if output.LimitExceeded {
		resp.Warning = fmt.Sprintf("Monthly limit exceeded: spent %s of %s",
			output.MonthlyTotal.StringFixed(2), output.Limit.StringFixed(2))
	}

	ctx.JSON(http.StatusCreated, resp)
}

// List handles GET /expenses requests. Accepts an optional ?month=YYYY-MM filter.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	month := ctx.Query("month")
	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID: userID,
		Month:  month,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: dto.ToExpenseResponses(output.Expenses),
		Count:    len(output.Expenses),
		Total:    output.Total,
		Month:    month,
	})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, expenseID, ok := ownedTarget(ctx, string(domainerror.ErrCodeExpenseNotFound))
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SuggestCategory handles POST /expenses/suggest-category requests.
func (c *ExpenseController) SuggestCategory(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SuggestCategoryRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingExpenseFields)) {
		return
	}

	output, err := c.suggestUseCase.Execute(ctx.Request.Context(), expense.SuggestCategoryInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestCategoryResponse{
		Category:   output.Category,
		Confidence: output.Confidence,
		Reasoning:  output.Reasoning,
	})
}

func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	if !respondCoded(ctx, err, c.getStatusCodeForExpenseError) {
		handleUnmappedError(ctx, err)
	}
}

func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeDescriptionTooLong,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidMonthFilter:
		return http.StatusBadRequest
	case domainerror.ErrCodeSuggestionFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
