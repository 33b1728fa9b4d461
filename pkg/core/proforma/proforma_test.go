package proforma

import (
	"math"
	"testing"
)

// scenarioProperty is the stabilized office scenario used across engine tests:
// $1M PGI, 5% vacancy, $271.5k fixed expenses, 3% management fee.
func scenarioProperty() PropertyFinancials {
	return PropertyFinancials{
		PotentialGrossIncome: 1_000_000,
		VacancyPct:           5.0,
		OtherIncome:          0,
		ExpenseItems: []ExpenseItem{
			{Label: "Property Taxes", Amount: 140_000},
			{Label: "Insurance", Amount: 45_000},
			{Label: "Utilities", Amount: 56_500},
			{Label: "Repairs & Maintenance", Amount: 30_000},
		},
		ManagementFeePct: 3.0,
	}
}

func TestProFormaDerivations(t *testing.T) {
	p := scenarioProperty()

	if got := p.VacancyAmount(); got != 50_000 {
		t.Errorf("Expected vacancy 50,000, got %f", got)
	}
	if got := p.EffectiveGrossIncome(); got != 950_000 {
		t.Errorf("Expected EGI 950,000, got %f", got)
	}
	// Management fee: 3% of 950,000 = 28,500. Fixed items sum to 271,500.
	if got := p.ManagementFee(); got != 28_500 {
		t.Errorf("Expected management fee 28,500, got %f", got)
	}
	if got := p.TotalExpenses(); got != 300_000 {
		t.Errorf("Expected total expenses 300,000, got %f", got)
	}
	if got := p.NOI(); got != 650_000 {
		t.Errorf("Expected NOI 650,000, got %f", got)
	}
}

func TestFinancingDerivations(t *testing.T) {
	f := FinancingTerms{
		PurchasePrice:     10_000_000,
		LoanToValuePct:    70.0,
		InterestRatePct:   7.0,
		AmortizationYears: 25,
		ClosingCostPct:    2.0,
	}

	if got := f.LoanAmount(); got != 7_000_000 {
		t.Errorf("Expected loan 7,000,000, got %f", got)
	}
	if got := f.DownPayment(); got != 3_000_000 {
		t.Errorf("Expected down payment 3,000,000, got %f", got)
	}
	if got := f.ClosingCosts(); got != 200_000 {
		t.Errorf("Expected closing costs 200,000, got %f", got)
	}
	if got := f.TotalCashRequired(); got != 3_200_000 {
		t.Errorf("Expected total cash 3,200,000, got %f", got)
	}
}

func TestCapRate(t *testing.T) {
	if got := CapRate(650_000, 10_000_000); math.Abs(got-6.5) > 1e-9 {
		t.Errorf("Expected cap rate 6.5, got %f", got)
	}
	if got := CapRate(650_000, 0); got != 0 {
		t.Errorf("Zero price should give cap rate 0, got %f", got)
	}
	if got := ValueFromCapRate(650_000, 0); got != 0 {
		t.Errorf("Zero cap rate should give value 0, got %f", got)
	}
}

func TestCapRateValueInverse(t *testing.T) {
	// valueFromCapRate(noi, capRate(noi, price)) must recover the price.
	cases := []struct{ noi, price float64 }{
		{650_000, 10_000_000},
		{82_000, 1_150_000},
		{1_200_000, 15_750_000},
	}
	for _, c := range cases {
		back := ValueFromCapRate(c.noi, CapRate(c.noi, c.price))
		if math.Abs(back-c.price) > 1e-6*c.price {
			t.Errorf("Round trip for price %f gave %f", c.price, back)
		}
	}
}
