// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

// ReportFormat is the export document format.
type ReportFormat string

const (
	ReportFormatPDF ReportFormat = "pdf"
	ReportFormatCSV ReportFormat = "csv"
)

// CategoryLine is one row of the category breakdown.
type CategoryLine struct {
	Category string
	Amount   decimal.Decimal
	Percent  decimal.Decimal
}

// Report is the data rendered into an exported document.
type Report struct {
	Title       string
	Currency    string
	GeneratedAt time.Time
	AllMonths   bool
	Year        int
	Month       time.Month
	Expenses    []*entity.Expense
	Categories  []CategoryLine
	Total       decimal.Decimal
	Goals       []*entity.Goal
}

// ReportRenderer writes a report in a specific format.
type ReportRenderer interface {
	// Format returns the format this renderer produces.
	Format() ReportFormat

	// ContentType returns the MIME type of the produced document.
	ContentType() string

	// Render writes the document to w.
	Render(w io.Writer, report *Report) error
}
