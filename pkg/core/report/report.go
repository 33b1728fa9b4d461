package report

import (
	"fmt"
	"strings"

	"cre_underwriting/pkg/core/analysis"
	"cre_underwriting/pkg/core/decision"
)

// =============================================================================
// UNDERWRITING MEMO
// Renders a DealAnalysis into a markdown report. This is the presentation
// boundary: the engine's 0 sentinels are translated to "n/a" here, once,
// instead of leaking ambiguous zeros into the document.
// =============================================================================

func money(v float64) string {
	neg := v < 0
	s := fmt.Sprintf("%.0f", abs(v))

	// Insert thousands separators.
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func ratio(v float64) string {
	return fmt.Sprintf("%.2fx", v)
}

func formatMetric(m decision.Metric) string {
	switch m.Kind {
	case decision.KindPercent:
		return pct(m.Actual)
	case decision.KindCurrency:
		return money(m.Actual)
	default:
		return ratio(m.Actual)
	}
}

func formatRequirement(m decision.Metric) string {
	if m.Required == nil {
		return "n/a"
	}
	switch m.Kind {
	case decision.KindPercent:
		return pct(*m.Required)
	case decision.KindCurrency:
		return money(*m.Required)
	default:
		return ratio(*m.Required)
	}
}

// Render produces the full markdown underwriting memo for one evaluation.
func Render(name string, a analysis.DealAnalysis) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Underwriting Memo: %s\n\n", name)
	fmt.Fprintf(&b, "**Verdict: %s** (%d of %d hurdles met, %s strategy)\n\n",
		a.Scorecard.Verdict, a.Scorecard.Passed, len(a.Scorecard.Metrics), a.Scorecard.Strategy)

	// --- Pro Forma ---
	b.WriteString("## Pro Forma\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Potential Gross Income | %s |\n", money(a.Inputs.Property.PotentialGrossIncome))
	fmt.Fprintf(&b, "| Vacancy (%s) | %s |\n", pct(a.Inputs.Property.VacancyPct), money(-a.ProForma.VacancyAmount))
	fmt.Fprintf(&b, "| Other Income | %s |\n", money(a.Inputs.Property.OtherIncome))
	fmt.Fprintf(&b, "| Effective Gross Income | %s |\n", money(a.ProForma.EffectiveGrossIncome))
	fmt.Fprintf(&b, "| Total Expenses | %s |\n", money(-a.ProForma.TotalExpenses))
	fmt.Fprintf(&b, "| **NOI** | **%s** |\n", money(a.ProForma.NOI))
	fmt.Fprintf(&b, "| Going-in Cap Rate | %s |\n\n", pct(a.Metrics.CapRatePct))

	// --- Financing ---
	b.WriteString("## Financing\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Purchase Price | %s |\n", money(a.Inputs.Financing.PurchasePrice))
	fmt.Fprintf(&b, "| Loan (%s LTV) | %s |\n", pct(a.Inputs.Financing.LoanToValuePct), money(a.ProForma.LoanAmount))
	fmt.Fprintf(&b, "| Down Payment | %s |\n", money(a.ProForma.DownPayment))
	fmt.Fprintf(&b, "| Closing Costs | %s |\n", money(a.ProForma.ClosingCosts))
	fmt.Fprintf(&b, "| Total Cash Required | %s |\n", money(a.ProForma.TotalCashRequired))
	fmt.Fprintf(&b, "| Annual Debt Service | %s |\n\n", money(a.ProForma.AnnualDebtService))

	// --- Projections ---
	if len(a.Years) > 0 {
		b.WriteString("## Hold Period Projections\n\n")
		b.WriteString("| Year | Income | Expenses | NOI | Debt Service | Cash Flow | Loan Balance | Equity |\n")
		b.WriteString("|---|---|---|---|---|---|---|---|\n")
		for _, y := range a.Years {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
				y.Year, money(y.Income), money(y.Expenses), money(y.NOI),
				money(y.DebtService), money(y.CashFlow), money(y.LoanBalance), money(y.ImpliedEquity))
		}
		b.WriteString("\n")

		// --- Exit ---
		b.WriteString("## Exit\n\n")
		fmt.Fprintf(&b, "| | |\n|---|---|\n")
		fmt.Fprintf(&b, "| Exit NOI (forward) | %s |\n", money(a.Exit.ExitNOI))
		fmt.Fprintf(&b, "| Sale Price @ %s | %s |\n", pct(a.Inputs.Assumptions.ExitCapRatePct), money(a.Exit.SalePrice))
		fmt.Fprintf(&b, "| Selling Costs | %s |\n", money(-a.Exit.SellingCosts))
		fmt.Fprintf(&b, "| Loan Payoff | %s |\n", money(-a.Exit.LoanPayoff))
		fmt.Fprintf(&b, "| Net to Seller | %s |\n\n", money(a.Exit.NetToSeller))
	}

	// --- Returns ---
	b.WriteString("## Returns\n\n")
	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	irr := "n/a"
	if len(a.CashFlows) >= 2 && a.CashFlows[0] < 0 {
		irr = pct(a.Metrics.IRRPct)
	}
	fmt.Fprintf(&b, "| IRR | %s |\n", irr)
	fmt.Fprintf(&b, "| NPV @ %s | %s |\n", pct(a.Inputs.DiscountRatePct), money(a.Metrics.NPV))
	fmt.Fprintf(&b, "| Equity Multiple | %s |\n", ratio(a.Metrics.EquityMultiple))
	fmt.Fprintf(&b, "| Avg Cash-on-Cash | %s |\n", pct(a.Metrics.AvgCashOnCashPct))
	fmt.Fprintf(&b, "| DSCR | %s |\n\n", ratio(a.Metrics.DSCR))

	// --- Scorecard ---
	b.WriteString("## Scorecard\n\n")
	b.WriteString("| Metric | Actual | Required | Pass |\n|---|---|---|---|\n")
	for _, m := range a.Scorecard.Metrics {
		mark := "NO"
		if m.Pass {
			mark = "YES"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", m.Label, formatMetric(m), formatRequirement(m), mark)
	}
	b.WriteString("\n")

	// --- Goal Seek ---
	if gs := a.GoalSeek; gs != nil {
		fmt.Fprintf(&b, "## Goal Seek (target IRR %s)\n\n", pct(gs.TargetIRRPct))
		fmt.Fprintf(&b, "| | |\n|---|---|\n")
		fmt.Fprintf(&b, "| Max Purchase Price | %s |\n", money(gs.MaxPurchasePrice))
		fmt.Fprintf(&b, "| Required Year-1 Income | %s |\n", money(gs.RequiredIncome))
		fmt.Fprintf(&b, "| Capex Ceiling | %s |\n", money(gs.CapexCeiling))
		fmt.Fprintf(&b, "| Target Exit Cap | %s |\n", pct(gs.TargetExitCapPct))
		if gs.RequiredRentPSF > 0 {
			fmt.Fprintf(&b, "| Required Rent / SqFt | $%.2f |\n", gs.RequiredRentPSF)
		}
		b.WriteString("\n")
	}

	return b.String()
}
