// Package report renders expense reports as PDF and CSV documents.
package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/domain/entity"
)

// expenseRow is one CSV line.
type expenseRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
	Amount      string `csv:"amount"`
}

// CSVRenderer writes one row per expense.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSV renderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// Format implements adapter.ReportRenderer.
func (CSVRenderer) Format() adapter.ReportFormat { return adapter.ReportFormatCSV }

// ContentType implements adapter.ReportRenderer.
func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

// Render implements adapter.ReportRenderer. The header row is written even
// when there are no expenses. Amounts carry no currency symbol.
func (CSVRenderer) Render(w io.Writer, r *adapter.Report) error {
	rows := make([]*expenseRow, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		rows = append(rows, &expenseRow{
			Date:        e.Date.Format(entity.DateLayout),
			Description: e.Description,
			Category:    e.Category,
			Amount:      e.Amount.StringFixed(2),
		})
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write csv report: %w", err)
	}
	return nil
}

var _ adapter.ReportRenderer = (*CSVRenderer)(nil)
