// Package report contains the report export use case.
package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/adapter"
	"github.com/cashease/backend/internal/application/session"
	"github.com/cashease/backend/internal/domain/entity"
	domainerror "github.com/cashease/backend/internal/domain/error"
	"github.com/cashease/backend/internal/domain/spending"
)

const (
	reportTitle   = "CashEase - Financial Report"
	filePrefix    = "CashEase_Financial_Report"
	defaultFormat = adapter.ReportFormatPDF
)

var hundred = decimal.NewFromInt(100)

// ExportReportInput selects the format and an optional month.
type ExportReportInput struct {
	UserID uuid.UUID
	Format string // pdf (default) or csv
	Month  string // optional YYYY-MM
}

// ExportReportOutput is the rendered document.
type ExportReportOutput struct {
	Filename    string
	ContentType string
	Content     []byte
}

// ExportReportUseCase renders the user's expenses and goals into a document.
type ExportReportUseCase struct {
	sessions  *session.Manager
	renderers map[adapter.ReportFormat]adapter.ReportRenderer
	currency  string
}

// NewExportReportUseCase creates a new ExportReportUseCase instance.
func NewExportReportUseCase(sessions *session.Manager, renderers map[adapter.ReportFormat]adapter.ReportRenderer, currency string) *ExportReportUseCase {
	return &ExportReportUseCase{
		sessions:  sessions,
		renderers: renderers,
		currency:  currency,
	}
}

// Execute renders the report.
func (uc *ExportReportUseCase) Execute(ctx context.Context, input ExportReportInput) (*ExportReportOutput, error) {
	format := adapter.ReportFormat(strings.ToLower(strings.TrimSpace(input.Format)))
	if format == "" {
		format = defaultFormat
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnsupportedReportFormat,
			fmt.Sprintf("unsupported report format %q", input.Format),
			domainerror.ErrUnsupportedReportFormat,
		)
	}

	s, err := uc.sessions.Get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	rep, err := uc.build(s, strings.TrimSpace(input.Month))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := renderer.Render(&buf, rep); err != nil {
		return nil, domainerror.NewReportError(domainerror.ErrCodeReportRenderFailed, "failed to render report", err)
	}

	name := filePrefix
	if !rep.AllMonths {
		name += "_" + fmt.Sprintf("%04d-%02d", rep.Year, int(rep.Month))
	}

	return &ExportReportOutput{
		Filename:    name + "." + string(format),
		ContentType: renderer.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}

func (uc *ExportReportUseCase) build(s *session.Session, month string) (*adapter.Report, error) {
	rep := &adapter.Report{
		Title:       reportTitle,
		Currency:    uc.currency,
		GeneratedAt: s.Now(),
		AllMonths:   month == "",
		Expenses:    s.Expenses(),
		Goals:       s.Goals(),
	}

	if !rep.AllMonths {
		year, m, err := entity.ParseMonth(month)
		if err != nil {
			return nil, domainerror.NewReportError(
				domainerror.ErrCodeInvalidReportMonth,
				"month must be in YYYY-MM format",
				err,
			)
		}
		rep.Year, rep.Month = year, m
		rep.Expenses = spending.FilterMonth(rep.Expenses, year, m)
	}

	summary := spending.Summarize(rep.Expenses)
	rep.Total = summary.TotalSpent
	for _, c := range summary.Categories {
		rep.Categories = append(rep.Categories, adapter.CategoryLine{
			Category: c,
			Amount:   summary.CategoryTotals[c],
			Percent:  summary.Share(c).Mul(hundred),
		})
	}

	return rep, nil
}
