package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
)

func sampleReport() *adapter.Report {
	userID := uuid.New()
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	goal := entity.NewGoal(userID, "Laptop", decimal.NewFromInt(1000), day.AddDate(0, 6, 0))
	goal.Saved = decimal.NewFromInt(250)

	return &adapter.Report{
		Title:       "CashEase - Financial Report",
		Currency:    "₹",
		GeneratedAt: day,
		AllMonths:   true,
		Expenses: []*entity.Expense{
			entity.NewExpense(userID, "Lunch, with \"team\"", decimal.RequireFromString("120.5"), "Food", day),
			entity.NewExpense(userID, "Metro", decimal.NewFromInt(40), "Transport", day.AddDate(0, 0, 1)),
		},
		Categories: []adapter.CategoryLine{
			{Category: "Food", Amount: decimal.RequireFromString("120.5"), Percent: decimal.RequireFromString("75.08")},
			{Category: "Transport", Amount: decimal.NewFromInt(40), Percent: decimal.RequireFromString("24.92")},
		},
		Total: decimal.RequireFromString("160.5"),
		Goals: []*entity.Goal{goal},
	}
}

func TestCSVRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewCSVRenderer()
	require.NoError(t, r.Render(&buf, sampleReport()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,description,category,amount", lines[0])
	assert.Equal(t, `2026-04-02,"Lunch, with ""team""",Food,120.50`, lines[1])
	assert.Equal(t, "2026-04-03,Metro,Transport,40.00", lines[2])
	assert.Equal(t, adapter.ReportFormatCSV, r.Format())
}

func TestCSVRenderer_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVRenderer().Render(&buf, &adapter.Report{}))
	assert.Equal(t, "date,description,category,amount", strings.TrimSpace(buf.String()))
}

func TestPDFRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewPDFRenderer()
	require.NoError(t, r.Render(&buf, sampleReport()))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")), "output should be a PDF document")
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestPDFRenderer_SelectedMonthWithoutGoals(t *testing.T) {
	rep := sampleReport()
	rep.AllMonths = false
	rep.Year, rep.Month = 2026, time.April
	rep.Goals = nil

	var buf bytes.Buffer
	require.NoError(t, NewPDFRenderer().Render(&buf, rep))
	assert.NotZero(t, buf.Len())
}

func TestRenderers(t *testing.T) {
	all := Renderers()
	for format, r := range all {
		assert.Equal(t, format, r.Format())
	}
	assert.Len(t, all, 2)
}
