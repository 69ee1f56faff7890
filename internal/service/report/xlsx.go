package report

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const ledgerSheet = "Ledger"

var ledgerHeaders = []string{
	"Department", "Employee No", "Name", "Position",
	"Base Salary", "Meal", "Transport", "Overtime Pay", "Gross Pay",
	"National Pension", "Health Insurance", "Long-term Care", "Employment Insurance",
	"Income Tax", "Local Income Tax", "Total Deduction", "Net Pay", "Status",
}

// Header row index; data starts on the next row.
const ledgerHeaderRow = 3

func renderLedgerXLSX(ledger payroll.LedgerResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(ledgerSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, fmt.Errorf("failed to create amount style: %w", err)
	}
	subtotalStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 3,
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subtotal style: %w", err)
	}

	w := &sheetWriter{f: f}
	w.set("A1", fmt.Sprintf("Payroll Ledger %04d-%02d", ledger.Year, ledger.Month))
	w.set("A2", "Generated at "+ledger.GeneratedAt.Format("2006-01-02 15:04:05"))

	for i, h := range ledgerHeaders {
		w.set(cellName(i+1, ledgerHeaderRow), h)
	}
	lastCol := cellName(len(ledgerHeaders), ledgerHeaderRow)
	w.style(cellName(1, ledgerHeaderRow), lastCol, headerStyle)

	row := ledgerHeaderRow + 1
	for _, dept := range ledger.Departments {
		for _, r := range dept.Records {
			w.set(cellName(1, row), dept.Name)
			w.set(cellName(2, row), r.EmployeeNo)
			w.set(cellName(3, row), r.EmployeeName)
			w.set(cellName(4, row), r.PositionName)
			amounts := []decimal.Decimal{
				r.BaseSalary, r.MealAllowance, r.TransportAllowance, r.OvertimePay, r.GrossPay,
				r.NationalPension, r.HealthInsurance, r.LongTermCare, r.EmploymentInsurance,
				r.IncomeTax, r.LocalIncomeTax, r.TotalDeduction, r.NetPay,
			}
			for i, a := range amounts {
				w.amount(cellName(5+i, row), a)
			}
			w.set(cellName(18, row), string(r.Status))
			w.style(cellName(5, row), cellName(17, row), amountStyle)
			row++
		}

		w.set(cellName(1, row), dept.Name+" subtotal")
		w.set(cellName(2, row), fmt.Sprintf("%d employees", dept.Count))
		w.amount(cellName(9, row), dept.SubtotalGrossPay)
		w.amount(cellName(16, row), dept.SubtotalDeduction)
		w.amount(cellName(17, row), dept.SubtotalNetPay)
		w.style(cellName(1, row), cellName(len(ledgerHeaders), row), subtotalStyle)
		row++
	}

	w.set(cellName(1, row), "Total")
	w.set(cellName(2, row), fmt.Sprintf("%d employees", ledger.TotalCount))
	w.amount(cellName(9, row), ledger.TotalGrossPay)
	w.amount(cellName(16, row), ledger.TotalDeduction)
	w.amount(cellName(17, row), ledger.TotalNetPay)
	w.style(cellName(1, row), cellName(len(ledgerHeaders), row), subtotalStyle)

	if w.err == nil {
		w.err = f.SetColWidth(ledgerSheet, "A", "D", 16)
	}
	if w.err == nil {
		w.err = f.SetColWidth(ledgerSheet, "E", "Q", 14)
	}
	if w.err != nil {
		return nil, w.err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sheetWriter keeps the first error so cell writes read linearly.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (w *sheetWriter) set(cell string, value any) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellValue(ledgerSheet, cell, value); err != nil {
		w.err = fmt.Errorf("failed to set %s: %w", cell, err)
	}
}

// amount stores whole-won values as numbers so the sheet can sum them.
func (w *sheetWriter) amount(cell string, d decimal.Decimal) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellFloat(ledgerSheet, cell, d.InexactFloat64(), -1, 64); err != nil {
		w.err = fmt.Errorf("failed to set %s: %w", cell, err)
	}
}

func (w *sheetWriter) style(from, to string, styleID int) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellStyle(ledgerSheet, from, to, styleID); err != nil {
		w.err = fmt.Errorf("failed to style %s:%s: %w", from, to, err)
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
