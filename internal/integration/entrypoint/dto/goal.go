package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/usecase/goal"
	"github.com/cashease/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	TargetDate string          `json:"target_date"` // YYYY-MM-DD
}

// AddSavingsRequest represents a deposit into a goal.
type AddSavingsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// GoalResponse represents a goal with its progress.
type GoalResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
	Saved           decimal.Decimal `json:"saved"`
	TargetDate      string          `json:"target_date"`
	PercentComplete decimal.Decimal `json:"percent_complete"`
	Remaining       decimal.Decimal `json:"remaining"`
	DaysLeft        int             `json:"days_left"`
	DailyPace       decimal.Decimal `json:"daily_pace"`
	Completed       bool            `json:"completed"`
	CreatedAt       time.Time       `json:"created_at"`
}

// GoalListResponse represents a list of goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// AddSavingsResponse is returned after a deposit.
type AddSavingsResponse struct {
	Goal          GoalResponse `json:"goal"`
	JustCompleted bool         `json:"just_completed"`
	StreakCount   int          `json:"streak_count"`
	Message       string       `json:"message,omitempty"`
}

// ToGoalResponse converts a goal view.
func ToGoalResponse(v goal.View) GoalResponse {
	return GoalResponse{
		ID:              v.Goal.ID.String(),
		Name:            v.Goal.Name,
		Amount:          v.Goal.Amount,
		Saved:           v.Goal.Saved,
		TargetDate:      v.Goal.TargetDate.Format(entity.DateLayout),
		PercentComplete: v.PercentComplete.Round(1),
		Remaining:       v.Remaining,
		DaysLeft:        v.DaysLeft,
		DailyPace:       v.DailyPace,
		Completed:       v.Completed,
		CreatedAt:       v.Goal.CreatedAt,
	}
}

// ToGoalListResponse converts a list of goal views.
func ToGoalListResponse(views []goal.View) GoalListResponse {
	out := make([]GoalResponse, 0, len(views))
	for _, v := range views {
		out = append(out, ToGoalResponse(v))
	}
	return GoalListResponse{Goals: out}
}
