package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "%s = %s, want %s", field, got, want)
}

func TestCalculate_NoOvertime(t *testing.T) {
	b := Calculate(dec("3000000"), 0)

	assertDecimal(t, "0", b.OvertimePay, "overtime_pay")
	assertDecimal(t, "3300000", b.GrossPay, "gross_pay")
	assertDecimal(t, "148500", b.NationalPension, "national_pension")
	assertDecimal(t, "116985", b.HealthInsurance, "health_insurance")
	assertDecimal(t, "14985", b.LongTermCare, "long_term_care")
	assertDecimal(t, "29700", b.EmploymentInsurance, "employment_insurance")
	assertDecimal(t, "66000", b.IncomeTax, "income_tax")
	assertDecimal(t, "6600", b.LocalIncomeTax, "local_income_tax")
	assertDecimal(t, "382770", b.TotalDeduction, "total_deduction")
	assertDecimal(t, "2917230", b.NetPay, "net_pay")
	assert.True(t, b.NetPay.Equal(b.GrossPay.Sub(b.TotalDeduction)))
}

func TestCalculate_WithOvertime(t *testing.T) {
	b := Calculate(dec("3000000"), 60)

	// 3,000,000 / 209 * 1.5 * 1h = 21,531.10...
	assertDecimal(t, "21531", b.OvertimePay, "overtime_pay")
	assertDecimal(t, "3321531", b.GrossPay, "gross_pay")
	assertDecimal(t, "149468", b.NationalPension, "national_pension")
	assertDecimal(t, "117748", b.HealthInsurance, "health_insurance")
	assertDecimal(t, "15083", b.LongTermCare, "long_term_care")
	assertDecimal(t, "29893", b.EmploymentInsurance, "employment_insurance")
	assertDecimal(t, "66430", b.IncomeTax, "income_tax")
	assertDecimal(t, "6643", b.LocalIncomeTax, "local_income_tax")
	assertDecimal(t, "385265", b.TotalDeduction, "total_deduction")
	assertDecimal(t, "2936266", b.NetPay, "net_pay")
	assert.Equal(t, 60, b.OvertimeMinutes)
}

func TestCalculate_DerivedDeductionsFollowTheirBase(t *testing.T) {
	for _, base := range []string{"2100000", "2999999.99", "4750000", "12345678"} {
		b := Calculate(dec(base), 137)

		assert.True(t, b.LongTermCare.Equal(b.HealthInsurance.Mul(dec("0.1281")).Floor()), base)
		assert.True(t, b.LocalIncomeTax.Equal(b.IncomeTax.Mul(dec("0.10")).Floor()), base)

		sum := b.NationalPension.Add(b.HealthInsurance).Add(b.LongTermCare).
			Add(b.EmploymentInsurance).Add(b.IncomeTax).Add(b.LocalIncomeTax)
		assert.True(t, b.TotalDeduction.Equal(sum), base)
		assert.True(t, b.NetPay.Equal(b.GrossPay.Sub(b.TotalDeduction)), base)
	}
}

func TestCalculate_DeductionsAreWholeUnits(t *testing.T) {
	b := Calculate(dec("3123457"), 95)

	for name, v := range map[string]decimal.Decimal{
		"overtime_pay":         b.OvertimePay,
		"national_pension":     b.NationalPension,
		"health_insurance":     b.HealthInsurance,
		"long_term_care":       b.LongTermCare,
		"employment_insurance": b.EmploymentInsurance,
		"income_tax":           b.IncomeTax,
		"local_income_tax":     b.LocalIncomeTax,
	} {
		assert.True(t, v.Equal(v.Floor()), name)
	}
}
