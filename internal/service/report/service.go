package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	payrollService payroll.PayrollService
}

func NewReportService(payrollService payroll.PayrollService) report.ReportService {
	return &ReportServiceImpl{
		payrollService: payrollService,
	}
}

// ExportLedger implements report.ReportService.
func (s *ReportServiceImpl) ExportLedger(ctx context.Context, period payroll.Period, format payroll.ExportFormat) (report.ExportFile, error) {
	ledger, err := s.payrollService.Ledger(ctx, period)
	if err != nil {
		return report.ExportFile{}, err
	}

	var file report.ExportFile
	switch format {
	case payroll.FormatXLSX:
		body, err := renderLedgerXLSX(ledger)
		if err != nil {
			slog.Error("failed to render ledger spreadsheet", "year", period.Year, "month", period.Month, "error", err)
			return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
		}
		file = report.ExportFile{
			Name:        ledgerFileName(period, "xlsx"),
			ContentType: report.ContentTypeXLSX,
			Body:        body,
		}
	case payroll.FormatPDF:
		body, err := renderLedgerPDF(ledger)
		if err != nil {
			slog.Error("failed to render ledger pdf", "year", period.Year, "month", period.Month, "error", err)
			return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
		}
		file = report.ExportFile{
			Name:        ledgerFileName(period, "pdf"),
			ContentType: report.ContentTypePDF,
			Body:        body,
		}
	default:
		return report.ExportFile{}, payroll.ErrUnsupportedFormat
	}

	slog.Info("payroll ledger exported",
		"year", period.Year,
		"month", period.Month,
		"format", format,
		"records", ledger.TotalCount,
		"bytes", len(file.Body),
	)

	return file, nil
}

func ledgerFileName(period payroll.Period, ext string) string {
	return fmt.Sprintf("payroll_ledger_%04d_%02d.%s", period.Year, period.Month, ext)
}
