package finance

import "math"

// =============================================================================
// LOAN AMORTIZATION PRIMITIVES
// =============================================================================

// MonthlyPayment returns the fixed monthly payment (PMT) for a fully amortizing
// loan. Rate is the annual rate as a percentage (7.0 == 7%).
// Returns 0 when the loan, rate, or term is zero, and 0 (never NaN/Inf) when the
// formula degenerates.
func MonthlyPayment(loan, annualRatePct float64, years int) float64 {
	if loan == 0 || annualRatePct == 0 || years == 0 {
		return 0
	}

	r := annualRatePct / 100.0 / 12.0
	n := float64(years * 12)

	factor := math.Pow(1+r, n)
	payment := loan * r * factor / (factor - 1)

	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0
	}
	return payment
}

// AnnualDebtService is the yearly bank payment on a fixed-rate amortizing loan.
func AnnualDebtService(loan, annualRatePct float64, years int) float64 {
	return MonthlyPayment(loan, annualRatePct, years) * 12
}

// RemainingBalance returns the principal outstanding after yearsElapsed years of
// monthly payments, via the amortization-balance identity:
//
//	B(p) = L * ((1+r)^n - (1+r)^p) / ((1+r)^n - 1)
//
// A zero rate returns the principal unchanged (no amortization schedule exists).
// The balance is clamped to >= 0 so over-elapsed terms never go negative.
func RemainingBalance(loan, annualRatePct float64, years, yearsElapsed int) float64 {
	if annualRatePct == 0 {
		return loan
	}
	if loan == 0 || years == 0 {
		return 0
	}

	r := annualRatePct / 100.0 / 12.0
	n := float64(years * 12)
	p := float64(yearsElapsed * 12)

	factorN := math.Pow(1+r, n)
	factorP := math.Pow(1+r, p)

	balance := loan * (factorN - factorP) / (factorN - 1)

	if math.IsNaN(balance) || math.IsInf(balance, 0) || balance < 0 {
		return 0
	}
	return balance
}
