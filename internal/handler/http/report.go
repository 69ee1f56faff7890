package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportLedger(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportLedger implements ReportHandler.
func (h *reportHandlerImpl) ExportLedger(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	period, err := payroll.ParsePeriod(query.Get("year"), query.Get("month"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	format, err := payroll.ParseExportFormat(query.Get("format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.reportService.ExportLedger(r.Context(), period, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, file.Name, file.ContentType, file.Body)
}
