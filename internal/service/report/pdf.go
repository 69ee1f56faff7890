package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type pdfColumn struct {
	title string
	width float64
}

var pdfColumns = []pdfColumn{
	{"Emp No", 20},
	{"Name", 38},
	{"Position", 30},
	{"Base", 26},
	{"Allowance", 24},
	{"Overtime", 24},
	{"Gross", 28},
	{"Deduction", 28},
	{"Net", 28},
	{"Status", 24},
}

func renderLedgerPDF(ledger payroll.LedgerResponse) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Payroll Ledger %04d-%02d", ledger.Year, ledger.Month), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Payroll Ledger %04d-%02d", ledger.Year, ledger.Month))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated at "+ledger.GeneratedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(10)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, dept := range ledger.Departments {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 8, tr(fmt.Sprintf("%s (%d)", dept.Name, dept.Count)))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(68, 114, 196)
		pdf.SetTextColor(255, 255, 255)
		for _, c := range pdfColumns {
			pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetTextColor(0, 0, 0)

		pdf.SetFont("Helvetica", "", 8)
		for _, r := range dept.Records {
			allowance := r.MealAllowance.Add(r.TransportAllowance)
			cells := []string{
				r.EmployeeNo,
				tr(r.EmployeeName),
				tr(r.PositionName),
				formatAmount(r.BaseSalary),
				formatAmount(allowance),
				formatAmount(r.OvertimePay),
				formatAmount(r.GrossPay),
				formatAmount(r.TotalDeduction),
				formatAmount(r.NetPay),
				string(r.Status),
			}
			for i, c := range pdfColumns {
				align := "L"
				if i >= 3 && i <= 8 {
					align = "R"
				}
				pdf.CellFormat(c.width, 6, cells[i], "1", 0, align, false, 0, "")
			}
			pdf.Ln(-1)
		}

		totalRow(pdf, "Subtotal", dept.SubtotalGrossPay, dept.SubtotalDeduction, dept.SubtotalNetPay)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Total employees: %d", ledger.TotalCount))
	pdf.Ln(8)
	totalRow(pdf, "Total", ledger.TotalGrossPay, ledger.TotalDeduction, ledger.TotalNetPay)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func totalRow(pdf *gofpdf.Fpdf, label string, gross, deduction, net decimal.Decimal) {
	var leading float64
	for _, c := range pdfColumns[:6] {
		leading += c.width
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(217, 225, 242)
	pdf.CellFormat(leading, 6, label, "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[6].width, 6, formatAmount(gross), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[7].width, 6, formatAmount(deduction), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[8].width, 6, formatAmount(net), "1", 0, "R", true, 0, "")
	pdf.CellFormat(pdfColumns[9].width, 6, "", "1", 0, "", true, 0, "")
	pdf.Ln(-1)
}

// formatAmount renders whole won with thousands separators.
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	for i, ch := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	return sign + b.String()
}
