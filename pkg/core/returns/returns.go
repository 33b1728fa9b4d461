package returns

import (
	"math"

	"cre_underwriting/pkg/core/projection"
)

// =============================================================================
// RETURN SOLVER
// Signed cash-flow assembly and investor return metrics. Ill-posed inputs
// resolve to the 0 sentinel rather than an error, so a bad assumption set
// degrades to blank metrics instead of failing the whole evaluation.
// =============================================================================

// Newton-Raphson parameters for the IRR solve.
const (
	irrInitialGuess  = 0.10
	irrMaxIterations = 100
	irrTolerance     = 1e-4
	irrMinRate       = -0.99
	irrMaxRate       = 10.0
)

// BuildCashFlows assembles the signed vector for the IRR solve:
// index 0 is the negative initial investment, each year contributes its cash
// flow, and the terminal sale folds into the final year. saleProceeds is the
// equity's take from the sale — net of selling costs and loan payoff.
func BuildCashFlows(initialInvestment float64, years []projection.YearRecord, saleProceeds float64) []float64 {
	flows := make([]float64, 0, len(years)+1)
	flows = append(flows, -initialInvestment)
	for i, y := range years {
		cf := y.CashFlow
		if i == len(years)-1 {
			cf += saleProceeds
		}
		flows = append(flows, cf)
	}
	return flows
}

// IRR solves NPV(r) = 0 by Newton-Raphson and returns the rate as a percentage.
// Returns 0 when the vector has fewer than two flows or does not start with a
// negative investment — those inputs are unsolvable, not errors.
func IRR(cashFlows []float64) float64 {
	if len(cashFlows) < 2 {
		return 0
	}
	if cashFlows[0] >= 0 {
		return 0
	}

	rate := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv := 0.0
		derivative := 0.0
		for t, cf := range cashFlows {
			ft := float64(t)
			npv += cf / math.Pow(1+rate, ft)
			derivative -= ft * cf / math.Pow(1+rate, ft+1)
		}

		if math.Abs(npv) < irrTolerance {
			break
		}
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0
		}

		rate -= npv / derivative

		// Clamp each step to -99%..1000% to keep the iteration from diverging.
		if rate < irrMinRate {
			rate = irrMinRate
		} else if rate > irrMaxRate {
			rate = irrMaxRate
		}
	}

	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0
	}
	return rate * 100.0
}

// NPV discounts the vector at a fixed external rate (percentage). Index 0 is
// undiscounted. Used for reporting, independent of the IRR solve.
func NPV(cashFlows []float64, discountRatePct float64) float64 {
	r := discountRatePct / 100.0
	total := 0.0
	for t, cf := range cashFlows {
		total += cf / math.Pow(1+r, float64(t))
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0
	}
	return total
}

// EquityMultiple = (total cash flows + sale proceeds) / total invested.
func EquityMultiple(totalInvested, totalCashFlows, saleProceeds float64) float64 {
	if totalInvested == 0 {
		return 0
	}
	return (totalCashFlows + saleProceeds) / totalInvested
}

// AvgCashOnCash is the arithmetic mean of each year's cash-on-cash return,
// as a percentage of total invested.
func AvgCashOnCash(years []projection.YearRecord, totalInvested float64) float64 {
	if totalInvested == 0 || len(years) == 0 {
		return 0
	}
	sum := 0.0
	for _, y := range years {
		sum += y.CashFlow / totalInvested * 100.0
	}
	return sum / float64(len(years))
}

// DSCR is the debt service coverage ratio: NOI over annual debt service.
func DSCR(noi, annualDebtService float64) float64 {
	if annualDebtService == 0 {
		return 0
	}
	return noi / annualDebtService
}
