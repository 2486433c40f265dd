package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
	"github.com/cashease/backend/internal/integration/persistence/memory"
)

// expenseRow is one line of the expenses file.
type expenseRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
}

// goalRow is one line of the goals file.
type goalRow struct {
	Name       string `csv:"name"`
	Amount     string `csv:"amount"`
	Saved      string `csv:"saved"`
	TargetDate string `csv:"target_date"`
}

// dataset is the offline store a CLI session runs against.
type dataset struct {
	userID   uuid.UUID
	expenses *memory.ExpenseRepository
	goals    *memory.GoalRepository
	budget   *memory.BudgetRepository
	streaks  *memory.StreakRepository
}

func newDataset() *dataset {
	return &dataset{
		userID:   uuid.New(),
		expenses: memory.NewExpenseRepository(),
		goals:    memory.NewGoalRepository(),
		budget:   memory.NewBudgetRepository(),
		streaks:  memory.NewStreakRepository(),
	}
}

func (d *dataset) loadExpenses(ctx context.Context, path string) error {
	var rows []*expenseRow
	if err := unmarshalFile(path, &rows); err != nil {
		return err
	}

	for i, row := range rows {
		line := i + 2 // header is line 1
		date, err := entity.ParseDate(row.Date)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid date %q", path, line, row.Date)
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil || !amount.IsPositive() {
			return fmt.Errorf("%s:%d: invalid amount %q", path, line, row.Amount)
		}
		if row.Description == "" || row.Category == "" {
			return fmt.Errorf("%s:%d: description and category are required", path, line)
		}

		e := entity.NewExpense(d.userID, row.Description, amount, row.Category, date)
		if err := d.expenses.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (d *dataset) loadGoals(ctx context.Context, path string) error {
	var rows []*goalRow
	if err := unmarshalFile(path, &rows); err != nil {
		return err
	}

	for i, row := range rows {
		line := i + 2
		target, err := entity.ParseDate(row.TargetDate)
		if err != nil {
			return fmt.Errorf("%s:%d: invalid target_date %q", path, line, row.TargetDate)
		}
		amount, err := decimal.NewFromString(row.Amount)
		if err != nil || !amount.IsPositive() {
			return fmt.Errorf("%s:%d: invalid amount %q", path, line, row.Amount)
		}
		saved := decimal.Zero
		if row.Saved != "" {
			if saved, err = decimal.NewFromString(row.Saved); err != nil || saved.IsNegative() {
				return fmt.Errorf("%s:%d: invalid saved %q", path, line, row.Saved)
			}
		}

		g := entity.NewGoal(d.userID, row.Name, amount, target)
		g.Saved = saved
		if err := d.goals.Create(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (d *dataset) setLimit(ctx context.Context, amount decimal.Decimal) error {
	return d.budget.Save(ctx, entity.MonthlyLimit{UserID: d.userID, Amount: amount})
}

func (d *dataset) setStreak(ctx context.Context, count int) error {
	return d.streaks.Save(ctx, d.userID, entity.Streak{Count: count})
}

func unmarshalFile(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
