package report

import (
	"github.com/cashease/backend/internal/application/adapter"
)

// Renderers returns every available renderer keyed by format.
func Renderers() map[adapter.ReportFormat]adapter.ReportRenderer {
	return map[adapter.ReportFormat]adapter.ReportRenderer{
		adapter.ReportFormatPDF: NewPDFRenderer(),
		adapter.ReportFormatCSV: NewCSVRenderer(),
	}
}
