package payroll

import (
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// BuildLedger groups records by department. Records must already be sorted
// by department name then employee number; only contiguous runs are merged.
func BuildLedger(period payroll.Period, records []payroll.Record, generatedAt time.Time) payroll.LedgerResponse {
	ledger := payroll.LedgerResponse{
		Year:           period.Year,
		Month:          period.Month,
		GeneratedAt:    generatedAt,
		TotalCount:     len(records),
		TotalGrossPay:  decimal.Zero,
		TotalDeduction: decimal.Zero,
		TotalNetPay:    decimal.Zero,
		Departments:    []payroll.LedgerDepartment{},
	}

	for _, r := range records {
		n := len(ledger.Departments)
		if n == 0 || ledger.Departments[n-1].Name != r.DepartmentName {
			ledger.Departments = append(ledger.Departments, payroll.LedgerDepartment{
				Name:              r.DepartmentName,
				SubtotalGrossPay:  decimal.Zero,
				SubtotalDeduction: decimal.Zero,
				SubtotalNetPay:    decimal.Zero,
				Records:           []payroll.LedgerRow{},
			})
			n++
		}

		dept := &ledger.Departments[n-1]
		dept.Count++
		dept.SubtotalGrossPay = dept.SubtotalGrossPay.Add(r.GrossPay)
		dept.SubtotalDeduction = dept.SubtotalDeduction.Add(r.TotalDeduction)
		dept.SubtotalNetPay = dept.SubtotalNetPay.Add(r.NetPay)
		dept.Records = append(dept.Records, payroll.NewLedgerRow(r))

		ledger.TotalGrossPay = ledger.TotalGrossPay.Add(r.GrossPay)
		ledger.TotalDeduction = ledger.TotalDeduction.Add(r.TotalDeduction)
		ledger.TotalNetPay = ledger.TotalNetPay.Add(r.NetPay)
	}

	return ledger
}
