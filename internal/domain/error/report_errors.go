package error

import "errors"

var (
	ErrUnsupportedReportFormat = errors.New("unsupported report format")
	ErrReportRenderFailed      = errors.New("failed to render report")
)

type ReportErrorCode string

const (
	ErrCodeUnsupportedReportFormat ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportMonth      ReportErrorCode = "RPT-010002"
	ErrCodeReportRenderFailed      ReportErrorCode = "RPT-020001"
)

type ReportError = Coded[ReportErrorCode]

func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return newCoded(code, message, err)
}
