package projection

import (
	"math"

	"cre_underwriting/pkg/core/finance"
	"cre_underwriting/pkg/core/proforma"
)

// Assumptions drive the multi-year hold model.
// Percentage fields are percentages (3.0 == 3%/yr).
type Assumptions struct {
	IncomeGrowthPct  float64 `json:"income_growth_pct"`
	ExpenseGrowthPct float64 `json:"expense_growth_pct"`
	HoldingYears     int     `json:"holding_years"`
	ExitCapRatePct   float64 `json:"exit_cap_rate_pct"`
	SellingCostPct   float64 `json:"selling_cost_pct"`
}

// YearRecord is one year of the hold, 1-indexed by Year.
type YearRecord struct {
	Year          int     `json:"year"`
	Income        float64 `json:"income"`
	Expenses      float64 `json:"expenses"`
	NOI           float64 `json:"noi"`
	DebtService   float64 `json:"debt_service"`
	CashFlow      float64 `json:"cash_flow"`
	LoanBalance   float64 `json:"loan_balance"`
	ImpliedValue  float64 `json:"implied_value"`
	ImpliedEquity float64 `json:"implied_equity"`
}

// Generate compounds income and expenses year by year across the holding period.
// initialIncome/initialExpenses are the year-1 effective gross income and total
// operating expenses; no growth is applied within year 1.
//
// Implied property value tracks income growth off the purchase price — there is
// no independent appreciation rate input.
func Generate(initialIncome, initialExpenses float64, terms proforma.FinancingTerms, a Assumptions) []YearRecord {
	if a.HoldingYears <= 0 {
		return nil
	}

	loan := terms.LoanAmount()
	debtService := finance.AnnualDebtService(loan, terms.InterestRatePct, terms.AmortizationYears) +
		terms.AdditionalAnnualDebtService

	incomeGrowth := 1 + a.IncomeGrowthPct/100.0
	expenseGrowth := 1 + a.ExpenseGrowthPct/100.0

	years := make([]YearRecord, 0, a.HoldingYears)
	for t := 1; t <= a.HoldingYears; t++ {
		compound := float64(t - 1)

		income := initialIncome * math.Pow(incomeGrowth, compound)
		expenses := initialExpenses * math.Pow(expenseGrowth, compound)
		noi := income - expenses

		balance := finance.RemainingBalance(loan, terms.InterestRatePct, terms.AmortizationYears, t)
		impliedValue := terms.PurchasePrice * math.Pow(incomeGrowth, compound)

		years = append(years, YearRecord{
			Year:          t,
			Income:        income,
			Expenses:      expenses,
			NOI:           noi,
			DebtService:   debtService,
			CashFlow:      noi - debtService,
			LoanBalance:   balance,
			ImpliedValue:  impliedValue,
			ImpliedEquity: impliedValue - balance,
		})
	}
	return years
}
