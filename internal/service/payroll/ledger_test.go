package payroll

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerRecord(dept, empNo string, base string) payroll.Record {
	b := Calculate(dec(base), 0)
	return payroll.Record{
		ID:             "p-" + empNo,
		EmployeeNo:     empNo,
		EmployeeName:   "Name " + empNo,
		DepartmentName: dept,
		PositionName:   "Staff",
		BaseSalary:     b.BaseSalary,
		GrossPay:       b.GrossPay,
		TotalDeduction: b.TotalDeduction,
		NetPay:         b.NetPay,
		Status:         payroll.StatusDraft,
	}
}

func TestBuildLedger_Empty(t *testing.T) {
	at := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	ledger := BuildLedger(payroll.Period{Year: 2024, Month: 1}, nil, at)

	assert.Equal(t, 0, ledger.TotalCount)
	assert.NotNil(t, ledger.Departments)
	assert.Empty(t, ledger.Departments)
	assert.True(t, ledger.TotalGrossPay.IsZero())
	assert.True(t, ledger.TotalDeduction.IsZero())
	assert.True(t, ledger.TotalNetPay.IsZero())
	assert.Equal(t, at, ledger.GeneratedAt)
	assert.Equal(t, 2024, ledger.Year)
	assert.Equal(t, 1, ledger.Month)
}

func TestBuildLedger_GroupsAndTotals(t *testing.T) {
	records := []payroll.Record{
		ledgerRecord("Engineering", "E001", "3000000"),
		ledgerRecord("Engineering", "E002", "4000000"),
		ledgerRecord("Finance", "F001", "3500000"),
		ledgerRecord("Sales", "S001", "2800000"),
		ledgerRecord("Sales", "S002", "2900000"),
	}

	ledger := BuildLedger(payroll.Period{Year: 2024, Month: 3}, records, time.Now())

	require.Len(t, ledger.Departments, 3)
	assert.Equal(t, 5, ledger.TotalCount)

	eng := ledger.Departments[0]
	assert.Equal(t, "Engineering", eng.Name)
	assert.Equal(t, 2, eng.Count)
	require.Len(t, eng.Records, 2)
	assert.Equal(t, "E001", eng.Records[0].EmployeeNo)
	assert.Equal(t, "E002", eng.Records[1].EmployeeNo)
	assert.True(t, eng.SubtotalGrossPay.Equal(dec("7600000")))

	gross, deduction, net := decimal.Zero, decimal.Zero, decimal.Zero
	count := 0
	for _, d := range ledger.Departments {
		gross = gross.Add(d.SubtotalGrossPay)
		deduction = deduction.Add(d.SubtotalDeduction)
		net = net.Add(d.SubtotalNetPay)
		count += d.Count
	}
	assert.True(t, gross.Equal(ledger.TotalGrossPay))
	assert.True(t, deduction.Equal(ledger.TotalDeduction))
	assert.True(t, net.Equal(ledger.TotalNetPay))
	assert.Equal(t, ledger.TotalCount, count)
	assert.True(t, ledger.TotalNetPay.Equal(ledger.TotalGrossPay.Sub(ledger.TotalDeduction)))
}

func TestBuildLedger_OnlyMergesContiguousRuns(t *testing.T) {
	// unsorted input is a caller bug; grouping does not re-sort
	records := []payroll.Record{
		ledgerRecord("A", "1", "3000000"),
		ledgerRecord("B", "2", "3000000"),
		ledgerRecord("A", "3", "3000000"),
	}

	ledger := BuildLedger(payroll.Period{Year: 2024, Month: 3}, records, time.Now())

	require.Len(t, ledger.Departments, 3)
	assert.Equal(t, "A", ledger.Departments[2].Name)
}
