package payroll

import (
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Pay is the monthly breakdown for one employee.
type Pay struct {
	TaxRate    decimal.Decimal
	GrossPay   decimal.Decimal
	Taxes      decimal.Decimal
	Deductions decimal.Decimal
	NetPay     decimal.Decimal
}

// ComputeMonthlyPay derives monthly pay from an annual salary. Gross and taxes
// are rounded to cents; net is rounded once from the unrounded figures.
// Rounding is half away from zero, which is half-up for non-negative amounts.
func ComputeMonthlyPay(baseAnnualSalary, fixedDeductions, taxRate decimal.Decimal) Pay {
	gross := baseAnnualSalary.Div(monthsPerYear)
	taxes := gross.Mul(taxRate)
	net := gross.Sub(fixedDeductions).Sub(taxes)

	return Pay{
		TaxRate:    taxRate,
		GrossPay:   gross.Round(2),
		Taxes:      taxes.Round(2),
		Deductions: fixedDeductions.Round(2),
		NetPay:     net.Round(2),
	}
}

// EffectiveTaxRate is the profile's own rate when set, else fallback.
func EffectiveTaxRate(rate decimal.NullDecimal, fallback decimal.Decimal) (decimal.Decimal, bool) {
	if rate.Valid {
		return rate.Decimal, false
	}
	return fallback, true
}
