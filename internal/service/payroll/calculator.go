package payroll

import (
	"github.com/shopspring/decimal"
)

var (
	MealAllowance      = decimal.NewFromInt(200000)
	TransportAllowance = decimal.NewFromInt(100000)

	// 209 standard monthly hours, expressed in minutes
	standardMonthlyMinutes = decimal.NewFromInt(209 * 60)
	overtimeMultiplier     = decimal.RequireFromString("1.5")

	nationalPensionRate     = decimal.RequireFromString("0.045")
	healthInsuranceRate     = decimal.RequireFromString("0.03545")
	longTermCareRate        = decimal.RequireFromString("0.1281")
	employmentInsuranceRate = decimal.RequireFromString("0.009")
	incomeTaxRate           = decimal.RequireFromString("0.02")
	localIncomeTaxRate      = decimal.RequireFromString("0.10")
)

// Breakdown is the full pay computation for one employee-month.
type Breakdown struct {
	BaseSalary         decimal.Decimal
	MealAllowance      decimal.Decimal
	TransportAllowance decimal.Decimal
	OvertimePay        decimal.Decimal
	GrossPay           decimal.Decimal

	NationalPension     decimal.Decimal
	HealthInsurance     decimal.Decimal
	LongTermCare        decimal.Decimal
	EmploymentInsurance decimal.Decimal
	IncomeTax           decimal.Decimal
	LocalIncomeTax      decimal.Decimal
	TotalDeduction      decimal.Decimal

	NetPay          decimal.Decimal
	OvertimeMinutes int
}

// Calculate applies allowances and statutory deductions. Every component is
// floored to whole currency units; long-term care derives from health
// insurance and local income tax from income tax.
func Calculate(baseSalary decimal.Decimal, overtimeMinutes int) Breakdown {
	b := Breakdown{
		BaseSalary:         baseSalary,
		MealAllowance:      MealAllowance,
		TransportAllowance: TransportAllowance,
		OvertimeMinutes:    overtimeMinutes,
	}

	// base/209 * 1.5 * minutes/60, divided once to avoid intermediate rounding
	b.OvertimePay = baseSalary.
		Mul(overtimeMultiplier).
		Mul(decimal.NewFromInt(int64(overtimeMinutes))).
		Div(standardMonthlyMinutes).
		Floor()

	b.GrossPay = baseSalary.Add(MealAllowance).Add(TransportAllowance).Add(b.OvertimePay)

	b.NationalPension = b.GrossPay.Mul(nationalPensionRate).Floor()
	b.HealthInsurance = b.GrossPay.Mul(healthInsuranceRate).Floor()
	b.LongTermCare = b.HealthInsurance.Mul(longTermCareRate).Floor()
	b.EmploymentInsurance = b.GrossPay.Mul(employmentInsuranceRate).Floor()
	b.IncomeTax = b.GrossPay.Mul(incomeTaxRate).Floor()
	b.LocalIncomeTax = b.IncomeTax.Mul(localIncomeTaxRate).Floor()

	b.TotalDeduction = decimal.Sum(
		b.NationalPension,
		b.HealthInsurance,
		b.LongTermCare,
		b.EmploymentInsurance,
		b.IncomeTax,
		b.LocalIncomeTax,
	)
	b.NetPay = b.GrossPay.Sub(b.TotalDeduction)

	return b
}
