package comps

import (
	"math"
	"testing"
)

func pct(f float64) *float64 { return &f }

func TestSuggestExitCapRateMedian(t *testing.T) {
	// Odd count: middle value.
	odd := []SaleComp{
		{Address: "100 Main St", CapRatePct: pct(7.1)},
		{Address: "200 Oak Ave", CapRatePct: pct(5.9)},
		{Address: "300 Pine Rd", CapRatePct: pct(6.4)},
	}
	if got := SuggestExitCapRate(odd); got != 6.4 {
		t.Errorf("Expected median 6.4, got %f", got)
	}

	// Even count: mean of the two middle values. Unknown cap rates are skipped.
	even := []SaleComp{
		{Address: "100 Main St", CapRatePct: pct(7.0)},
		{Address: "200 Oak Ave", CapRatePct: pct(6.0)},
		{Address: "300 Pine Rd", CapRatePct: pct(6.5)},
		{Address: "400 Elm St", CapRatePct: pct(5.5)},
		{Address: "500 Birch Ln"}, // no cap rate reported
	}
	if got := SuggestExitCapRate(even); math.Abs(got-6.25) > 1e-9 {
		t.Errorf("Expected median 6.25, got %f", got)
	}
}

func TestSuggestExitCapRateEmpty(t *testing.T) {
	if got := SuggestExitCapRate(nil); got != 0 {
		t.Errorf("No comps should give 0, got %f", got)
	}
	unknowns := []SaleComp{{Address: "100 Main St"}, {Address: "200 Oak Ave"}}
	if got := SuggestExitCapRate(unknowns); got != 0 {
		t.Errorf("All-unknown comps should give 0, got %f", got)
	}
}

func TestBenchmarkPricePerSqft(t *testing.T) {
	records := []SaleComp{
		{Address: "100 Main St", PricePerSqFt: pct(210)},
		{Address: "200 Oak Ave", PricePerSqFt: pct(185)},
		{Address: "300 Pine Rd", PricePerSqFt: pct(244)},
		{Address: "400 Elm St"}, // unknown, skipped
	}

	b := BenchmarkPricePerSqft(records)
	if b.Count != 3 {
		t.Errorf("Expected 3 known values, got %d", b.Count)
	}
	if b.Min != 185 || b.Max != 244 {
		t.Errorf("Expected min 185 / max 244, got %f / %f", b.Min, b.Max)
	}
	if math.Abs(b.Avg-213) > 1e-9 {
		t.Errorf("Expected avg 213, got %f", b.Avg)
	}

	empty := BenchmarkPricePerSqft(nil)
	if empty.Count != 0 || empty.Min != 0 || empty.Avg != 0 || empty.Max != 0 {
		t.Errorf("Empty benchmark should be all zero, got %+v", empty)
	}
}
