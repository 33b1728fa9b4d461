package decision

// =============================================================================
// DECISION SCORECARD
// Compares a deal's actual return metrics against strategy-specific hurdles
// and classifies the result. Stateless: inputs in, verdict out.
// =============================================================================

// Strategy is the investor's risk profile.
type Strategy string

const (
	StrategyCore          Strategy = "core"
	StrategyValueAdd      Strategy = "value_add"
	StrategyOpportunistic Strategy = "opportunistic"
)

// Verdict is the three-way classification.
type Verdict string

const (
	VerdictGo     Verdict = "GO"
	VerdictReview Verdict = "REVIEW"
	VerdictNoGo   Verdict = "NO-GO"
)

// MetricKind controls how a metric displays.
type MetricKind string

const (
	KindPercent  MetricKind = "percent"
	KindRatio    MetricKind = "ratio"
	KindCurrency MetricKind = "currency"
)

// Thresholds are the minimums a strategy requires. MinCapRatePct is nullable:
// opportunistic buyers accept any going-in cap rate.
type Thresholds struct {
	MinCapRatePct     *float64 `json:"min_cap_rate_pct" yaml:"min_cap_rate_pct"`
	MinCashOnCashPct  float64  `json:"min_cash_on_cash_pct" yaml:"min_cash_on_cash_pct"`
	MinIRRPct         float64  `json:"min_irr_pct" yaml:"min_irr_pct"`
	MinEquityMultiple float64  `json:"min_equity_multiple" yaml:"min_equity_multiple"`
	MinDSCR           float64  `json:"min_dscr" yaml:"min_dscr"`
}

// Metric is one scored line of the card.
type Metric struct {
	Label    string     `json:"label"`
	Actual   float64    `json:"actual"`
	Required *float64   `json:"required"`
	Kind     MetricKind `json:"kind"`
	Pass     bool       `json:"pass"`
}

// ActualMetrics are the deal's computed returns.
type ActualMetrics struct {
	CapRatePct     float64 `json:"cap_rate_pct"`
	CashOnCashPct  float64 `json:"cash_on_cash_pct"`
	IRRPct         float64 `json:"irr_pct"`
	EquityMultiple float64 `json:"equity_multiple"`
	DSCR           float64 `json:"dscr"`
}

// Scorecard is the full evaluation for one strategy.
type Scorecard struct {
	Strategy Strategy `json:"strategy"`
	Metrics  []Metric `json:"metrics"`
	Passed   int      `json:"passed"`
	Verdict  Verdict  `json:"verdict"`
}

func floatPtr(f float64) *float64 { return &f }

// scoreMetric passes when the actual meets the requirement; a nil requirement
// always passes.
func scoreMetric(label string, actual float64, required *float64, kind MetricKind) Metric {
	pass := required == nil || actual >= *required
	return Metric{Label: label, Actual: actual, Required: required, Kind: kind, Pass: pass}
}

// Score builds the five-metric card and classifies it:
// GO when all five pass, REVIEW when at least three pass, NO-GO otherwise.
func Score(strategy Strategy, actual ActualMetrics, t Thresholds) Scorecard {
	metrics := []Metric{
		scoreMetric("Cap Rate", actual.CapRatePct, t.MinCapRatePct, KindPercent),
		scoreMetric("Cash-on-Cash", actual.CashOnCashPct, floatPtr(t.MinCashOnCashPct), KindPercent),
		scoreMetric("IRR", actual.IRRPct, floatPtr(t.MinIRRPct), KindPercent),
		scoreMetric("Equity Multiple", actual.EquityMultiple, floatPtr(t.MinEquityMultiple), KindRatio),
		scoreMetric("DSCR", actual.DSCR, floatPtr(t.MinDSCR), KindRatio),
	}

	passed := 0
	for _, m := range metrics {
		if m.Pass {
			passed++
		}
	}

	verdict := VerdictNoGo
	switch {
	case passed == len(metrics):
		verdict = VerdictGo
	case passed >= 3:
		verdict = VerdictReview
	}

	return Scorecard{
		Strategy: strategy,
		Metrics:  metrics,
		Passed:   passed,
		Verdict:  verdict,
	}
}
