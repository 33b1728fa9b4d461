package report

import (
	"strings"
	"testing"

	"cre_underwriting/pkg/core/analysis"
	"cre_underwriting/pkg/core/decision"
	"cre_underwriting/pkg/core/proforma"
	"cre_underwriting/pkg/core/projection"
)

func sampleAnalysis() analysis.DealAnalysis {
	in := analysis.DealInputs{
		Property: proforma.PropertyFinancials{
			PotentialGrossIncome: 1_000_000,
			VacancyPct:           5.0,
			ExpenseItems: []proforma.ExpenseItem{
				{Label: "Taxes", Amount: 271_500},
			},
			ManagementFeePct: 3.0,
		},
		Financing: proforma.FinancingTerms{
			PurchasePrice:     10_000_000,
			LoanToValuePct:    70.0,
			InterestRatePct:   7.0,
			AmortizationYears: 25,
			ClosingCostPct:    2.0,
		},
		Assumptions: projection.Assumptions{
			IncomeGrowthPct:  3.0,
			ExpenseGrowthPct: 2.0,
			HoldingYears:     5,
			ExitCapRatePct:   6.5,
			SellingCostPct:   2.0,
		},
		Strategy:        decision.StrategyCore,
		DiscountRatePct: 8.0,
		TargetIRRPct:    12.0,
		AreaSqFt:        50_000,
	}
	return analysis.Evaluate(in, decision.DefaultThresholds())
}

func TestMoneyFormatting(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{56_200, "$56,200"},
		{10_000_000, "$10,000,000"},
		{-593_800, "-$593,800"},
	}
	for _, c := range cases {
		if got := money(c.in); got != c.want {
			t.Errorf("money(%f): expected %s, got %s", c.in, c.want, got)
		}
	}
}

func TestRenderSections(t *testing.T) {
	md := Render("100 Main St Office", sampleAnalysis())

	for _, want := range []string{
		"# Underwriting Memo: 100 Main St Office",
		"## Pro Forma",
		"## Financing",
		"## Hold Period Projections",
		"## Exit",
		"## Returns",
		"## Scorecard",
		"## Goal Seek",
		"$950,000",   // EGI
		"$650,000",   // NOI
		"$7,000,000", // loan
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Report missing %q", want)
		}
	}

	if !ValidateMarkdown(md) {
		t.Error("Rendered memo should parse as markdown")
	}
}

func TestRenderUnsolvableIRR(t *testing.T) {
	// A deal with no financing and no hold: cash-flow vector is just the
	// investment, so the IRR line must read n/a rather than 0.00%.
	a := sampleAnalysis()
	a.CashFlows = []float64{-1_000_000}
	a.Metrics.IRRPct = 0

	md := Render("Broken Deal", a)
	if !strings.Contains(md, "| IRR | n/a |") {
		t.Error("Unsolvable IRR should render as n/a")
	}
}

func TestRenderWaivedRequirement(t *testing.T) {
	a := sampleAnalysis()
	a.Inputs.Strategy = decision.StrategyOpportunistic
	a.Scorecard = decision.Score(decision.StrategyOpportunistic, decision.ActualMetrics{
		CapRatePct:     6.5,
		CashOnCashPct:  9.0,
		IRRPct:         19.0,
		EquityMultiple: 2.1,
		DSCR:           1.2,
	}, decision.DefaultThresholds()[decision.StrategyOpportunistic])

	md := Render("Opportunistic Deal", a)
	// The waived cap-rate hurdle shows as n/a in the scorecard table.
	if !strings.Contains(md, "| Cap Rate | 6.50% | n/a | YES |") {
		t.Error("Waived cap-rate requirement should render as n/a")
	}
}
