package comps

import "sort"

// SaleComp is one comparable-sale record. Cap rate and price-per-sqft are
// pointers because listing data is routinely incomplete; helpers skip the
// unknowns rather than treating them as zero.
type SaleComp struct {
	Address       string   `json:"address"`
	PropertyType  string   `json:"property_type,omitempty"`
	SalePrice     *float64 `json:"sale_price,omitempty"`
	CapRatePct    *float64 `json:"cap_rate_pct,omitempty"`
	PricePerSqFt  *float64 `json:"price_per_sqft,omitempty"`
}

// SuggestExitCapRate returns the median of the known comp cap rates, or 0 when
// no comp reports one.
func SuggestExitCapRate(comps []SaleComp) float64 {
	rates := make([]float64, 0, len(comps))
	for _, c := range comps {
		if c.CapRatePct != nil {
			rates = append(rates, *c.CapRatePct)
		}
	}
	if len(rates) == 0 {
		return 0
	}

	sort.Float64s(rates)
	mid := len(rates) / 2
	if len(rates)%2 == 1 {
		return rates[mid]
	}
	return (rates[mid-1] + rates[mid]) / 2
}

// PSFBenchmark summarizes comp pricing per square foot.
type PSFBenchmark struct {
	Min   float64 `json:"min"`
	Avg   float64 `json:"avg"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// BenchmarkPricePerSqft computes min/avg/max over the known comp price-per-area
// values. A zero Count means no comp reported one.
func BenchmarkPricePerSqft(comps []SaleComp) PSFBenchmark {
	var b PSFBenchmark
	sum := 0.0
	for _, c := range comps {
		if c.PricePerSqFt == nil {
			continue
		}
		v := *c.PricePerSqFt
		if b.Count == 0 || v < b.Min {
			b.Min = v
		}
		if b.Count == 0 || v > b.Max {
			b.Max = v
		}
		sum += v
		b.Count++
	}
	if b.Count > 0 {
		b.Avg = sum / float64(b.Count)
	}
	return b
}
