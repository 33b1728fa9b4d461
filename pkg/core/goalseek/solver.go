package goalseek

import (
	"cre_underwriting/pkg/core/proforma"
	"cre_underwriting/pkg/core/projection"
	"cre_underwriting/pkg/core/returns"
)

// =============================================================================
// GOAL-SEEK OPTIMIZER
// Inverts the forward deal model (inputs -> IRR) for one free variable at a
// time. Every solver shares the same fixed-iteration bisection over a single
// parameterized objective; only the probe field and the search direction differ.
// =============================================================================

// bisectIterations is fixed rather than tolerance-based: 50 halvings give
// ~2^-50 relative precision and a reproducible, bounded-time result.
const bisectIterations = 50

// DealParams is the aggregate the objective closes over. InitialIncome and
// InitialExpenses are the year-1 effective gross income and total operating
// expenses; the financing and hold assumptions carry everything else.
type DealParams struct {
	InitialIncome   float64                 `json:"initial_income"`
	InitialExpenses float64                 `json:"initial_expenses"`
	Financing       proforma.FinancingTerms `json:"financing"`
	Assumptions     projection.Assumptions  `json:"assumptions"`
}

// ParamsFromProForma derives the solver aggregate from full pro forma inputs.
func ParamsFromProForma(p proforma.PropertyFinancials, f proforma.FinancingTerms, a projection.Assumptions) DealParams {
	return DealParams{
		InitialIncome:   p.EffectiveGrossIncome(),
		InitialExpenses: p.TotalExpenses(),
		Financing:       f,
		Assumptions:     a,
	}
}

// DealIRR runs the full forward model: projection, exit waterfall, cash-flow
// assembly, IRR. This is the black-box objective every solver probes.
func DealIRR(p DealParams) float64 {
	years := projection.Generate(p.InitialIncome, p.InitialExpenses, p.Financing, p.Assumptions)
	exit := projection.ExitWaterfall(years, p.Assumptions)
	flows := returns.BuildCashFlows(p.Financing.TotalCashRequired(), years, exit.NetToSeller)
	return returns.IRR(flows)
}

// bisect finds the probe value in [lo, hi] that drives the objective's IRR to
// the target. increasing states whether IRR rises with the probe value — not
// every solver searches in the same direction.
func bisect(lo, hi, targetIRRPct float64, increasing bool, objective func(probe float64) float64) float64 {
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		irr := objective(mid)
		if (irr < targetIRRPct) == increasing {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// MaxPurchasePrice solves for the highest price that still clears the target
// IRR. Higher price means lower IRR, so the search direction is decreasing.
func MaxPurchasePrice(targetIRRPct float64, p DealParams) float64 {
	return bisect(1, p.Financing.PurchasePrice*3, targetIRRPct, false, func(probe float64) float64 {
		trial := p
		trial.Financing.PurchasePrice = probe
		return DealIRR(trial)
	})
}

// RequiredNOILift solves for the year-1 income needed to clear the target IRR,
// holding expenses and financing fixed. Searches between break-even income
// (current expenses) and 5x current income.
func RequiredNOILift(targetIRRPct float64, p DealParams) float64 {
	return bisect(p.InitialExpenses, p.InitialIncome*5, targetIRRPct, true, func(probe float64) float64 {
		trial := p
		trial.InitialIncome = probe
		return DealIRR(trial)
	})
}

// RequiredRentPSF is the closed-form rent per square foot that produces the
// target NOI at the given expense ratio. No bisection needed.
func RequiredRentPSF(targetNOI, areaSqFt, expenseRatioPct float64) float64 {
	if areaSqFt == 0 || expenseRatioPct >= 100 {
		return 0
	}
	return targetNOI / (1 - expenseRatioPct/100.0) / areaSqFt
}

// CapexCeiling solves for the largest added capital cost that still clears the
// target IRR. The added cost is modeled by inflating the closing-cost
// percentage, so it lands in the initial cash requirement.
func CapexCeiling(targetIRRPct float64, p DealParams) float64 {
	price := p.Financing.PurchasePrice
	if price == 0 {
		return 0
	}
	baseClosingPct := p.Financing.ClosingCostPct
	return bisect(0, price, targetIRRPct, false, func(probe float64) float64 {
		trial := p
		trial.Financing.ClosingCostPct = baseClosingPct + probe/price*100.0
		return DealIRR(trial)
	})
}

// TargetExitCap solves for the exit cap rate at which the deal hits the target
// IRR, searching 1%..15%. A lower exit cap raises terminal value and IRR, so
// IRR falls as the probe rises.
func TargetExitCap(targetIRRPct float64, p DealParams) float64 {
	return bisect(1.0, 15.0, targetIRRPct, false, func(probe float64) float64 {
		trial := p
		trial.Assumptions.ExitCapRatePct = probe
		return DealIRR(trial)
	})
}

// Result is the full goal-seek sweep for one deal and target IRR.
type Result struct {
	TargetIRRPct     float64 `json:"target_irr_pct"`
	MaxPurchasePrice float64 `json:"max_purchase_price"`
	RequiredIncome   float64 `json:"required_income"`
	CapexCeiling     float64 `json:"capex_ceiling"`
	TargetExitCapPct float64 `json:"target_exit_cap_pct"`
	RequiredRentPSF  float64 `json:"required_rent_psf,omitempty"`
}

// Sweep runs all solvers against one parameter set. The rent solver targets the
// deal's own year-1 NOI and expense ratio, and only runs when an area is known.
func Sweep(targetIRRPct float64, p DealParams, areaSqFt float64) Result {
	res := Result{
		TargetIRRPct:     targetIRRPct,
		MaxPurchasePrice: MaxPurchasePrice(targetIRRPct, p),
		RequiredIncome:   RequiredNOILift(targetIRRPct, p),
		CapexCeiling:     CapexCeiling(targetIRRPct, p),
		TargetExitCapPct: TargetExitCap(targetIRRPct, p),
	}
	if areaSqFt > 0 && p.InitialIncome > 0 {
		noi := p.InitialIncome - p.InitialExpenses
		ratio := p.InitialExpenses / p.InitialIncome * 100.0
		res.RequiredRentPSF = RequiredRentPSF(noi, areaSqFt, ratio)
	}
	return res
}
