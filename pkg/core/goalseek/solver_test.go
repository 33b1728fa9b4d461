package goalseek

import (
	"math"
	"testing"

	"cre_underwriting/pkg/core/proforma"
	"cre_underwriting/pkg/core/projection"
)

func testParams() DealParams {
	return DealParams{
		InitialIncome:   950_000,
		InitialExpenses: 300_000,
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
	}
}

func TestParamsFromProForma(t *testing.T) {
	prop := proforma.PropertyFinancials{
		PotentialGrossIncome: 1_000_000,
		VacancyPct:           5.0,
		ExpenseItems: []proforma.ExpenseItem{
			{Label: "Taxes", Amount: 271_500},
		},
		ManagementFeePct: 3.0,
	}
	p := ParamsFromProForma(prop, testParams().Financing, testParams().Assumptions)

	if p.InitialIncome != 950_000 {
		t.Errorf("Expected initial income 950,000, got %f", p.InitialIncome)
	}
	if p.InitialExpenses != 300_000 {
		t.Errorf("Expected initial expenses 300,000, got %f", p.InitialExpenses)
	}
}

func TestMaxPurchasePriceHitsTarget(t *testing.T) {
	p := testParams()
	base := DealIRR(p)
	if base <= 0 {
		t.Fatalf("Scenario should have positive IRR, got %f", base)
	}

	target := base + 2.0
	price := MaxPurchasePrice(target, p)

	// The solved price must actually produce the target IRR.
	trial := p
	trial.Financing.PurchasePrice = price
	if got := DealIRR(trial); math.Abs(got-target) > 0.01 {
		t.Errorf("IRR at solved price should be %f, got %f", target, got)
	}
	// Demanding more return means paying less.
	if price >= p.Financing.PurchasePrice {
		t.Errorf("Higher hurdle should solve below current price, got %f", price)
	}
}

func TestMaxPurchasePriceMonotonic(t *testing.T) {
	p := testParams()
	base := DealIRR(p)

	// Increasing the target IRR strictly decreases the affordable price.
	p1 := MaxPurchasePrice(base+1.0, p)
	p2 := MaxPurchasePrice(base+3.0, p)
	p3 := MaxPurchasePrice(base+5.0, p)
	if !(p1 > p2 && p2 > p3) {
		t.Errorf("Prices should fall as hurdle rises: %f, %f, %f", p1, p2, p3)
	}
}

func TestRequiredNOILift(t *testing.T) {
	p := testParams()
	base := DealIRR(p)

	target := base + 3.0
	income := RequiredNOILift(target, p)

	if income <= p.InitialIncome {
		t.Errorf("Clearing a higher hurdle needs more income, got %f", income)
	}

	trial := p
	trial.InitialIncome = income
	if got := DealIRR(trial); math.Abs(got-target) > 0.01 {
		t.Errorf("IRR at solved income should be %f, got %f", target, got)
	}
}

func TestRequiredRentPSF(t *testing.T) {
	// 650k NOI at a 31.58% expense ratio over 50k sqft:
	// 650000 / (1 - 0.3158) / 50000
	got := RequiredRentPSF(650_000, 50_000, 31.58)
	want := 650_000 / (1 - 0.3158) / 50_000
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %f, got %f", want, got)
	}

	if got := RequiredRentPSF(650_000, 0, 30); got != 0 {
		t.Errorf("Zero area should give 0, got %f", got)
	}
	if got := RequiredRentPSF(650_000, 50_000, 100); got != 0 {
		t.Errorf("100%% expense ratio should give 0, got %f", got)
	}
}

func TestCapexCeiling(t *testing.T) {
	p := testParams()
	base := DealIRR(p)

	target := base - 2.0
	capex := CapexCeiling(target, p)
	if capex <= 0 {
		t.Fatalf("Accepting a lower IRR should allow positive capex, got %f", capex)
	}

	// Re-run the model with the capex folded into closing costs.
	trial := p
	trial.Financing.ClosingCostPct = p.Financing.ClosingCostPct + capex/p.Financing.PurchasePrice*100.0
	if got := DealIRR(trial); math.Abs(got-target) > 0.01 {
		t.Errorf("IRR at capex ceiling should be %f, got %f", target, got)
	}
}

func TestTargetExitCap(t *testing.T) {
	p := testParams()
	base := DealIRR(p)

	// Demanding a higher IRR requires a lower exit cap (richer terminal value).
	capAtBase := TargetExitCap(base, p)
	capAbove := TargetExitCap(base+3.0, p)
	if capAbove >= capAtBase {
		t.Errorf("Higher hurdle should need lower exit cap: %f vs %f", capAbove, capAtBase)
	}

	// The solved cap reproduces the base IRR (it should sit near the input cap).
	if math.Abs(capAtBase-p.Assumptions.ExitCapRatePct) > 0.05 {
		t.Errorf("Solving for the current IRR should recover the current exit cap, got %f", capAtBase)
	}

	trial := p
	trial.Assumptions.ExitCapRatePct = capAbove
	if got := DealIRR(trial); math.Abs(got-(base+3.0)) > 0.01 {
		t.Errorf("IRR at solved exit cap should be %f, got %f", base+3.0, got)
	}
}

func TestSweep(t *testing.T) {
	p := testParams()
	base := DealIRR(p)

	res := Sweep(base+1.0, p, 50_000)
	if res.MaxPurchasePrice <= 0 {
		t.Errorf("Sweep should solve a price, got %f", res.MaxPurchasePrice)
	}
	if res.RequiredIncome <= p.InitialExpenses {
		t.Errorf("Required income should exceed expenses, got %f", res.RequiredIncome)
	}
	if res.TargetExitCapPct < 1.0 || res.TargetExitCapPct > 15.0 {
		t.Errorf("Exit cap outside search range: %f", res.TargetExitCapPct)
	}
	if res.RequiredRentPSF <= 0 {
		t.Errorf("Rent PSF should be populated when area is known, got %f", res.RequiredRentPSF)
	}

	// Without an area the rent solver stays blank.
	noArea := Sweep(base+1.0, p, 0)
	if noArea.RequiredRentPSF != 0 {
		t.Errorf("Rent PSF should be 0 without an area, got %f", noArea.RequiredRentPSF)
	}
}
