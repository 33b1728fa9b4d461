package projection

import "cre_underwriting/pkg/core/proforma"

// ExitSummary is the terminal sale waterfall at the end of the hold.
type ExitSummary struct {
	ExitNOI         float64 `json:"exit_noi"`
	SalePrice       float64 `json:"sale_price"`
	SellingCosts    float64 `json:"selling_costs"`
	NetSaleProceeds float64 `json:"net_sale_proceeds"`
	LoanPayoff      float64 `json:"loan_payoff"`
	NetToSeller     float64 `json:"net_to_seller"`
}

// ExitWaterfall prices the terminal sale off the buyer's forward NOI: the final
// year's NOI grown one more year, capitalized at the exit cap rate.
func ExitWaterfall(years []YearRecord, a Assumptions) ExitSummary {
	if len(years) == 0 {
		return ExitSummary{}
	}
	last := years[len(years)-1]

	exitNOI := last.NOI * (1 + a.IncomeGrowthPct/100.0)
	salePrice := proforma.ValueFromCapRate(exitNOI, a.ExitCapRatePct)
	sellingCosts := salePrice * a.SellingCostPct / 100.0
	netProceeds := salePrice - sellingCosts

	return ExitSummary{
		ExitNOI:         exitNOI,
		SalePrice:       salePrice,
		SellingCosts:    sellingCosts,
		NetSaleProceeds: netProceeds,
		LoanPayoff:      last.LoanBalance,
		NetToSeller:     netProceeds - last.LoanBalance,
	}
}
