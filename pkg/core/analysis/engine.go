package analysis

import (
	"cre_underwriting/pkg/core/decision"
	"cre_underwriting/pkg/core/finance"
	"cre_underwriting/pkg/core/goalseek"
	"cre_underwriting/pkg/core/proforma"
	"cre_underwriting/pkg/core/projection"
	"cre_underwriting/pkg/core/returns"
)

// =============================================================================
// DEAL ANALYSIS ENGINE
// Assembles the full evaluation: pro forma, multi-year projection, exit
// waterfall, return metrics, scorecard, and (optionally) the goal-seek sweep.
// Pure and stateless; callers own persistence and presentation.
// =============================================================================

// DealInputs is everything one evaluation needs.
type DealInputs struct {
	Property    proforma.PropertyFinancials `json:"property"`
	Financing   proforma.FinancingTerms     `json:"financing"`
	Assumptions projection.Assumptions      `json:"assumptions"`
	Strategy    decision.Strategy           `json:"strategy"`

	// AreaSqFt enables the rent-per-sqft solver; 0 skips it.
	AreaSqFt float64 `json:"area_sqft,omitempty"`
	// DiscountRatePct is the external rate for the reported NPV.
	DiscountRatePct float64 `json:"discount_rate_pct,omitempty"`
	// TargetIRRPct enables the goal-seek sweep; 0 skips it.
	TargetIRRPct float64 `json:"target_irr_pct,omitempty"`
}

// ProFormaSnapshot is the derived single-period picture of the deal.
type ProFormaSnapshot struct {
	VacancyAmount        float64 `json:"vacancy_amount"`
	EffectiveGrossIncome float64 `json:"effective_gross_income"`
	ManagementFee        float64 `json:"management_fee"`
	TotalExpenses        float64 `json:"total_expenses"`
	NOI                  float64 `json:"noi"`
	LoanAmount           float64 `json:"loan_amount"`
	DownPayment          float64 `json:"down_payment"`
	ClosingCosts         float64 `json:"closing_costs"`
	TotalCashRequired    float64 `json:"total_cash_required"`
	MonthlyPayment       float64 `json:"monthly_payment"`
	AnnualDebtService    float64 `json:"annual_debt_service"`
}

// Metrics are the scalar investor returns.
type Metrics struct {
	CapRatePct       float64 `json:"cap_rate_pct"`
	IRRPct           float64 `json:"irr_pct"`
	NPV              float64 `json:"npv"`
	EquityMultiple   float64 `json:"equity_multiple"`
	AvgCashOnCashPct float64 `json:"avg_cash_on_cash_pct"`
	DSCR             float64 `json:"dscr"`
}

// DealAnalysis is the complete evaluation output.
type DealAnalysis struct {
	Inputs    DealInputs              `json:"inputs"`
	ProForma  ProFormaSnapshot        `json:"pro_forma"`
	Years     []projection.YearRecord `json:"years"`
	Exit      projection.ExitSummary  `json:"exit"`
	CashFlows []float64               `json:"cash_flows"`
	Metrics   Metrics                 `json:"metrics"`
	Scorecard decision.Scorecard      `json:"scorecard"`
	GoalSeek  *goalseek.Result        `json:"goal_seek,omitempty"`
}

// Evaluate runs the full pipeline against one input set. thresholds may come
// from decision.DefaultThresholds or a loaded config; an unknown strategy
// falls back to core.
func Evaluate(in DealInputs, thresholds map[decision.Strategy]decision.Thresholds) DealAnalysis {
	prop := in.Property
	fin := in.Financing

	loan := fin.LoanAmount()
	monthly := finance.MonthlyPayment(loan, fin.InterestRatePct, fin.AmortizationYears)
	annualDS := monthly*12 + fin.AdditionalAnnualDebtService

	snapshot := ProFormaSnapshot{
		VacancyAmount:        prop.VacancyAmount(),
		EffectiveGrossIncome: prop.EffectiveGrossIncome(),
		ManagementFee:        prop.ManagementFee(),
		TotalExpenses:        prop.TotalExpenses(),
		NOI:                  prop.NOI(),
		LoanAmount:           loan,
		DownPayment:          fin.DownPayment(),
		ClosingCosts:         fin.ClosingCosts(),
		TotalCashRequired:    fin.TotalCashRequired(),
		MonthlyPayment:       monthly,
		AnnualDebtService:    annualDS,
	}

	years := projection.Generate(snapshot.EffectiveGrossIncome, snapshot.TotalExpenses, fin, in.Assumptions)
	exit := projection.ExitWaterfall(years, in.Assumptions)
	flows := returns.BuildCashFlows(snapshot.TotalCashRequired, years, exit.NetToSeller)

	totalCashFlows := 0.0
	for _, y := range years {
		totalCashFlows += y.CashFlow
	}

	metrics := Metrics{
		CapRatePct:       proforma.CapRate(snapshot.NOI, fin.PurchasePrice),
		IRRPct:           returns.IRR(flows),
		NPV:              returns.NPV(flows, in.DiscountRatePct),
		EquityMultiple:   returns.EquityMultiple(snapshot.TotalCashRequired, totalCashFlows, exit.NetToSeller),
		AvgCashOnCashPct: returns.AvgCashOnCash(years, snapshot.TotalCashRequired),
		DSCR:             returns.DSCR(snapshot.NOI, annualDS),
	}

	strategy := in.Strategy
	t, ok := thresholds[strategy]
	if !ok {
		strategy = decision.StrategyCore
		t = thresholds[strategy]
	}

	card := decision.Score(strategy, decision.ActualMetrics{
		CapRatePct:     metrics.CapRatePct,
		CashOnCashPct:  metrics.AvgCashOnCashPct,
		IRRPct:         metrics.IRRPct,
		EquityMultiple: metrics.EquityMultiple,
		DSCR:           metrics.DSCR,
	}, t)

	result := DealAnalysis{
		Inputs:    in,
		ProForma:  snapshot,
		Years:     years,
		Exit:      exit,
		CashFlows: flows,
		Metrics:   metrics,
		Scorecard: card,
	}

	if in.TargetIRRPct != 0 {
		params := goalseek.ParamsFromProForma(prop, fin, in.Assumptions)
		sweep := goalseek.Sweep(in.TargetIRRPct, params, in.AreaSqFt)
		result.GoalSeek = &sweep
	}

	return result
}
