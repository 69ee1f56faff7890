package report

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
)

// ReportService renders payroll documents for download
type ReportService interface {
	// ExportLedger renders the monthly payroll ledger as a spreadsheet or PDF
	ExportLedger(ctx context.Context, period payroll.Period, format payroll.ExportFormat) (ExportFile, error)
}
