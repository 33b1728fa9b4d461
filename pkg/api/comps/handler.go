package comps

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	corecomps "cre_underwriting/pkg/core/comps"
	"cre_underwriting/pkg/core/store"
)

var (
	log       = logrus.WithField("component", "api.comps")
	compsRepo = store.NewCompsRepo()
)

// SuggestResponse bundles the two comp-derived benchmarks.
type SuggestResponse struct {
	Market           string                 `json:"market,omitempty"`
	CompCount        int                    `json:"comp_count"`
	SuggestedExitCap float64                `json:"suggested_exit_cap_pct"`
	PricePerSqFt     corecomps.PSFBenchmark `json:"price_per_sqft"`
	Comps            []corecomps.SaleComp   `json:"comps,omitempty"`
}

// HandleSuggest derives an exit-cap suggestion and price-per-sqft benchmark.
// GET  /api/comps/suggest?market=<slug> uses the comp store.
// POST /api/comps/suggest accepts the comp set in the body, for callers that
// hold their own records.
func HandleSuggest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var records []corecomps.SaleComp
	market := ""

	switch r.Method {
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	default:
		market = r.URL.Query().Get("market")
		if market == "" {
			http.Error(w, "market query parameter is required", http.StatusBadRequest)
			return
		}
		if store.GetPool() == nil {
			http.Error(w, "comp store not configured", http.StatusServiceUnavailable)
			return
		}
		var err error
		records, err = compsRepo.ListByMarket(r.Context(), market)
		if err != nil {
			log.WithError(err).Error("failed to load comps")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	resp := SuggestResponse{
		Market:           market,
		CompCount:        len(records),
		SuggestedExitCap: corecomps.SuggestExitCapRate(records),
		PricePerSqFt:     corecomps.BenchmarkPricePerSqft(records),
		Comps:            records,
	}

	log.WithFields(logrus.Fields{
		"market": market,
		"comps":  len(records),
		"cap":    resp.SuggestedExitCap,
	}).Info("comp benchmark served")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
