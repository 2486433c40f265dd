package report

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/integration/persistence/memory"
	renderers "github.com/cashease/backend/internal/integration/report"
)

var now = time.Date(2026, 9, 5, 10, 0, 0, 0, time.UTC)

// captureRenderer keeps the last report it was asked to render.
type captureRenderer struct {
	last *adapter.Report
}

func (c *captureRenderer) Format() adapter.ReportFormat { return adapter.ReportFormatCSV }
func (c *captureRenderer) ContentType() string          { return "text/csv" }

func (c *captureRenderer) Render(w io.Writer, r *adapter.Report) error {
	c.last = r
	_, err := io.WriteString(w, "ok")
	return err
}

func seeded(t *testing.T) (*session.Manager, uuid.UUID) {
	t.Helper()
	m := session.NewManager(session.Store{
		Expenses: memory.NewExpenseRepository(),
		Goals:    memory.NewGoalRepository(),
		Budget:   memory.NewBudgetRepository(),
		Streaks:  memory.NewStreakRepository(),
	}, nil, session.WithClock(func() time.Time { return now }))
	userID := uuid.New()
	ctx := context.Background()

	s, err := m.Get(ctx, userID)
	require.NoError(t, err)
	for _, e := range []session.ExpenseInput{
		{Description: "Rent", Amount: decimal.NewFromInt(750), Category: "Bills", Date: now},
		{Description: "Lunch", Amount: decimal.NewFromInt(250), Category: "Food", Date: now},
		{Description: "Shoes", Amount: decimal.NewFromInt(400), Category: "Shopping", Date: now.AddDate(0, -1, 0)},
	} {
		_, err := s.AddExpense(ctx, e)
		require.NoError(t, err)
	}
	_, err = s.CreateGoal(ctx, session.GoalInput{Name: "Car", Amount: decimal.NewFromInt(5000), TargetDate: now.AddDate(1, 0, 0)})
	require.NoError(t, err)

	return m, userID
}

func TestExportReport_SelectedMonth(t *testing.T) {
	m, userID := seeded(t)
	capture := &captureRenderer{}
	uc := NewExportReportUseCase(m, map[adapter.ReportFormat]adapter.ReportRenderer{adapter.ReportFormatCSV: capture}, "₹")

	out, err := uc.Execute(context.Background(), ExportReportInput{UserID: userID, Format: "CSV", Month: "2026-09"})
	require.NoError(t, err)

	assert.Equal(t, "CashEase_Financial_Report_2026-09.csv", out.Filename)
	assert.Equal(t, "ok", string(out.Content))

	rep := capture.last
	require.NotNil(t, rep)
	assert.False(t, rep.AllMonths)
	assert.Len(t, rep.Expenses, 2)
	assert.True(t, rep.Total.Equal(decimal.NewFromInt(1000)))
	require.Len(t, rep.Categories, 2)
	assert.Equal(t, "Bills", rep.Categories[0].Category)
	assert.True(t, rep.Categories[0].Percent.Equal(decimal.NewFromInt(75)))
	assert.Len(t, rep.Goals, 1)
	assert.Equal(t, "₹", rep.Currency)
}

func TestExportReport_RealRenderers(t *testing.T) {
	m, userID := seeded(t)
	uc := NewExportReportUseCase(m, renderers.Renderers(), "₹")

	pdf, err := uc.Execute(context.Background(), ExportReportInput{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, "CashEase_Financial_Report.pdf", pdf.Filename)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.True(t, bytes.HasPrefix(pdf.Content, []byte("%PDF-")))

	csv, err := uc.Execute(context.Background(), ExportReportInput{UserID: userID, Format: "csv"})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csv.Content)), "\n")
	assert.Len(t, lines, 4)
}

func TestExportReport_Errors(t *testing.T) {
	m, userID := seeded(t)
	uc := NewExportReportUseCase(m, renderers.Renderers(), "₹")

	_, err := uc.Execute(context.Background(), ExportReportInput{UserID: userID, Format: "xlsx"})
	assert.ErrorIs(t, err, domainerror.ErrUnsupportedReportFormat)

	_, err = uc.Execute(context.Background(), ExportReportInput{UserID: userID, Month: "09/2026"})
	var repErr *domainerror.ReportError
	require.ErrorAs(t, err, &repErr)
	assert.Equal(t, domainerror.ErrCodeInvalidReportMonth, repErr.Code)
}
