package proforma

// =============================================================================
// SINGLE-PERIOD PRO FORMA
// Income, expense, NOI and cap-rate arithmetic for one operating year.
// All percentage fields are expressed as percentages (5.0 == 5%).
// =============================================================================

// ExpenseItem is one fixed operating expense line (taxes, insurance, utilities...).
// The management fee is not a line item; it is derived from EGI.
type ExpenseItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PropertyFinancials holds the operating assumptions for a property.
type PropertyFinancials struct {
	PotentialGrossIncome float64       `json:"potential_gross_income"`
	VacancyPct           float64       `json:"vacancy_pct"`
	OtherIncome          float64       `json:"other_income"`
	ExpenseItems         []ExpenseItem `json:"expense_items"`
	ManagementFeePct     float64       `json:"management_fee_pct"`
}

// VacancyAmount is the income lost to vacancy and credit loss.
func (p PropertyFinancials) VacancyAmount() float64 {
	return p.PotentialGrossIncome * p.VacancyPct / 100.0
}

// EffectiveGrossIncome = PGI - vacancy + other income.
func (p PropertyFinancials) EffectiveGrossIncome() float64 {
	return p.PotentialGrossIncome - p.VacancyAmount() + p.OtherIncome
}

// ManagementFee is charged as a percentage of EGI.
func (p PropertyFinancials) ManagementFee() float64 {
	return p.EffectiveGrossIncome() * p.ManagementFeePct / 100.0
}

// FixedExpenses sums the explicit expense line items.
func (p PropertyFinancials) FixedExpenses() float64 {
	total := 0.0
	for _, item := range p.ExpenseItems {
		total += item.Amount
	}
	return total
}

// TotalExpenses = fixed line items + management fee.
func (p PropertyFinancials) TotalExpenses() float64 {
	return p.FixedExpenses() + p.ManagementFee()
}

// NOI is net operating income: EGI minus total operating expenses.
func (p PropertyFinancials) NOI() float64 {
	return p.EffectiveGrossIncome() - p.TotalExpenses()
}

// FinancingTerms holds the debt and acquisition-cost assumptions.
type FinancingTerms struct {
	PurchasePrice     float64 `json:"purchase_price"`
	LoanToValuePct    float64 `json:"ltv_pct"`
	InterestRatePct   float64 `json:"interest_rate_pct"`
	AmortizationYears int     `json:"amortization_years"`
	ClosingCostPct    float64 `json:"closing_cost_pct"`

	// AdditionalAnnualDebtService covers fixed secondary payments such as a
	// seller carryback. Added on top of bank debt service every year.
	AdditionalAnnualDebtService float64 `json:"additional_annual_debt_service,omitempty"`
}

// LoanAmount is the bank loan sized by LTV.
func (f FinancingTerms) LoanAmount() float64 {
	return f.PurchasePrice * f.LoanToValuePct / 100.0
}

// DownPayment is the equity portion of the purchase price.
func (f FinancingTerms) DownPayment() float64 {
	return f.PurchasePrice - f.LoanAmount()
}

// ClosingCosts are charged as a percentage of the purchase price.
func (f FinancingTerms) ClosingCosts() float64 {
	return f.PurchasePrice * f.ClosingCostPct / 100.0
}

// TotalCashRequired is the investor's initial outlay: down payment + closing costs.
func (f FinancingTerms) TotalCashRequired() float64 {
	return f.DownPayment() + f.ClosingCosts()
}

// CapRate = NOI / price, as a percentage. Returns 0 for a zero price.
func CapRate(noi, price float64) float64 {
	if price == 0 {
		return 0
	}
	return noi / price * 100.0
}

// ValueFromCapRate capitalizes NOI into a value. Returns 0 for a zero cap rate.
// Inverse of CapRate for positive inputs.
func ValueFromCapRate(noi, capRatePct float64) float64 {
	if capRatePct == 0 {
		return 0
	}
	return noi / (capRatePct / 100.0)
}
