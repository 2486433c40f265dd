package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cashease/backend/internal/application/usecase/goal"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/entrypoint/dto"
)

// GoalController serves /goals. Deposits go through AddSavings; goals are
// never edited otherwise.
type GoalController struct {
	create     *goal.CreateGoalUseCase
	list       *goal.ListGoalsUseCase
	get        *goal.GetGoalUseCase
	remove     *goal.DeleteGoalUseCase
	addSavings *goal.AddSavingsUseCase
}

func NewGoalController(
	create *goal.CreateGoalUseCase,
	list *goal.ListGoalsUseCase,
	get *goal.GetGoalUseCase,
	remove *goal.DeleteGoalUseCase,
	addSavings *goal.AddSavingsUseCase,
) *GoalController {
	return &GoalController{create: create, list: list, get: get, remove: remove, addSavings: addSavings}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingGoalFields)) {
		return
	}

	input := goal.CreateGoalInput{
		UserID: userID,
		Name:   req.Name,
		Amount: req.Amount,
	}
	if req.TargetDate != "" {
		date, err := entity.ParseDate(req.TargetDate)
		if err != nil {
			badRequest(ctx, "target_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidGoalDate))
			return
		}
		input.TargetDate = date
	}

	output, err := c.create.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.list.Execute(ctx.Request.Context(), goal.ListGoalsInput{UserID: userID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, goalID, ok := ownedTarget(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	output, err := c.get.Execute(ctx.Request.Context(), goal.GetGoalInput{UserID: userID, GoalID: goalID})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests.
func (c *GoalController) Delete(ctx *gin.Context) {
	userID, goalID, ok := ownedTarget(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	if err := c.remove.Execute(ctx.Request.Context(), goal.DeleteGoalInput{UserID: userID, GoalID: goalID}); err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddSavings handles POST /goals/:id/savings requests.
func (c *GoalController) AddSavings(ctx *gin.Context) {
	userID, goalID, ok := ownedTarget(ctx, string(domainerror.ErrCodeGoalNotFound))
	if !ok {
		return
	}

	var req dto.AddSavingsRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeInvalidSavingsAmount)) {
		return
	}

	output, err := c.addSavings.Execute(ctx.Request.Context(), goal.AddSavingsInput{
		UserID: userID,
		GoalID: goalID,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	resp := dto.AddSavingsResponse{
		Goal:          dto.ToGoalResponse(output.Goal),
		JustCompleted: output.JustCompleted,
		StreakCount:   output.StreakCount,
	}
	if output.JustCompleted {
		resp.Message = fmt.Sprintf("Congratulations! You reached your goal %q", output.Goal.Goal.Name)
	}

	ctx.JSON(http.StatusOK, resp)
}

func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	if !respondCoded(ctx, err, c.getStatusCodeForGoalError) {
		handleUnmappedError(ctx, err)
	}
}

func (c *GoalController) getStatusCodeForGoalError(code domainerror.GoalErrorCode) int {
	switch code {
	case domainerror.ErrCodeGoalNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedGoalAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeGoalAlreadyCompleted:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidGoalAmount,
		domainerror.ErrCodeInvalidGoalDate,
		domainerror.ErrCodeMissingGoalFields,
		domainerror.ErrCodeInvalidSavingsAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
