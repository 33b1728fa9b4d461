package decision

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultThresholds are the shipped hurdle rates per strategy. Core money is
// cheap and patient; opportunistic capital waives the going-in cap rate but
// demands outsized total returns.
func DefaultThresholds() map[Strategy]Thresholds {
	return map[Strategy]Thresholds{
		StrategyCore: {
			MinCapRatePct:     floatPtr(5.5),
			MinCashOnCashPct:  6.0,
			MinIRRPct:         12.0,
			MinEquityMultiple: 1.6,
			MinDSCR:           1.25,
		},
		StrategyValueAdd: {
			MinCapRatePct:     floatPtr(6.0),
			MinCashOnCashPct:  7.0,
			MinIRRPct:         15.0,
			MinEquityMultiple: 1.8,
			MinDSCR:           1.20,
		},
		StrategyOpportunistic: {
			MinCapRatePct:     nil,
			MinCashOnCashPct:  8.0,
			MinIRRPct:         18.0,
			MinEquityMultiple: 2.0,
			MinDSCR:           1.10,
		},
	}
}

// LoadThresholds reads a strategy->thresholds map from a YAML file. Strategies
// missing from the file keep their defaults.
func LoadThresholds(path string) (map[Strategy]Thresholds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read thresholds config: %w", err)
	}

	var fileThresholds map[Strategy]Thresholds
	if err := yaml.Unmarshal(data, &fileThresholds); err != nil {
		return nil, fmt.Errorf("failed to parse thresholds config: %w", err)
	}

	merged := DefaultThresholds()
	for strategy, t := range fileThresholds {
		merged[strategy] = t
	}
	return merged, nil
}
