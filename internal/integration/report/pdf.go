package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/application/adapter"
)

const (
	footerText  = "Generated by CashEase Expense Tracker"
	marginLeft  = 14.0
	contentW    = 182.0
	rowHeight   = 7.0
	headingSize = 14.0
)

// rupeeFallback replaces the rupee sign, which the core PDF fonts cannot draw.
var rupeeFallback = strings.NewReplacer("₹", "Rs. ")

type rgb struct{ r, g, b int }

var (
	headGrid    = rgb{41, 128, 185}
	headSlate   = rgb{30, 41, 59}
	headNavy    = rgb{15, 23, 42}
	stripeColor = rgb{245, 245, 245}
)

// PDFRenderer draws the financial report on A4 pages.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDF renderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Format implements adapter.ReportRenderer.
func (PDFRenderer) Format() adapter.ReportFormat { return adapter.ReportFormatPDF }

// ContentType implements adapter.ReportRenderer.
func (PDFRenderer) ContentType() string { return "application/pdf" }

// Render implements adapter.ReportRenderer.
func (PDFRenderer) Render(w io.Writer, r *adapter.Report) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(rupeeFallback.Replace(s)) }
	money := func(d decimal.Decimal) string { return text(r.Currency + " " + d.StringFixed(2)) }

	pdf.SetTitle(r.Title, true)
	pdf.SetCreator("CashEase", true)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.SetMargins(marginLeft, 14, marginLeft)
	pdf.SetAutoPageBreak(true, 18)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, footerText, "", 0, "L", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, text(r.Title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated on: "+r.GeneratedAt.Format("Mon Jan 02 2006"), "", 1, "L", false, 0, "")
	pdf.SetDrawColor(0, 0, 0)
	y := pdf.GetY() + 2
	pdf.Line(marginLeft, y, marginLeft+contentW, y)
	pdf.Ln(6)

	reportType := "All Months"
	if !r.AllMonths {
		reportType = fmt.Sprintf("Selected Month (%s %d)", r.Month, r.Year)
	}

	heading(pdf, "Expense Summary")
	table(pdf, []string{"Metric", "Value"}, []float64{91, 91}, []string{"L", "L"}, headGrid, false, [][]string{
		{"Total Expenses", money(r.Total)},
		{"Number of Transactions", fmt.Sprintf("%d", len(r.Expenses))},
		{"Report Type", reportType},
	})

	categoryRows := make([][]string, 0, len(r.Categories))
	for _, c := range r.Categories {
		categoryRows = append(categoryRows, []string{text(c.Category), money(c.Amount), c.Percent.StringFixed(1) + " %"})
	}
	heading(pdf, "Category Breakdown")
	table(pdf, []string{"Category", "Amount", "Percentage"}, []float64{70, 62, 50}, []string{"L", "R", "R"}, headSlate, true, categoryRows)

	expenseRows := make([][]string, 0, len(r.Expenses))
	for _, e := range r.Expenses {
		expenseRows = append(expenseRows, []string{e.Date.Format("Mon Jan 02 2006"), text(e.Category), money(e.Amount)})
	}
	heading(pdf, "Detailed Expenses")
	table(pdf, []string{"Date", "Category", "Amount"}, []float64{60, 70, 52}, []string{"L", "L", "R"}, headGrid, false, expenseRows)

	if len(r.Goals) > 0 {
		goalRows := make([][]string, 0, len(r.Goals))
		for _, g := range r.Goals {
			goalRows = append(goalRows, []string{
				text(g.Name),
				money(g.Saved),
				money(g.Amount),
				g.Progress().Mul(decimal.NewFromInt(100)).StringFixed(1) + " %",
			})
		}
		heading(pdf, "Goals Progress")
		table(pdf, []string{"Goal", "Saved", "Target", "Progress"}, []float64{62, 45, 45, 30}, []string{"L", "R", "R", "R"}, headNavy, true, goalRows)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("failed to build pdf report: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf report: %w", err)
	}
	return nil
}

func heading(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", headingSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

// table draws a header row followed by the body. striped alternates fill on
// body rows; otherwise every cell gets a grid border.
func table(pdf *fpdf.Fpdf, head []string, widths []float64, aligns []string, headColor rgb, striped bool, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(headColor.r, headColor.g, headColor.b)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range head {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(stripeColor.r, stripeColor.g, stripeColor.b)
	border := "1"
	if striped {
		border = ""
	}
	for n, row := range rows {
		fill := striped && n%2 == 1
		for i, cell := range row {
			pdf.CellFormat(widths[i], rowHeight, cell, border, 0, aligns[i], fill, 0, "")
		}
		pdf.Ln(-1)
	}
}

var _ adapter.ReportRenderer = (*PDFRenderer)(nil)
