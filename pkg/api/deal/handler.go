package deal

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"cre_underwriting/pkg/core/analysis"
	"cre_underwriting/pkg/core/decision"
	"cre_underwriting/pkg/core/goalseek"
	"cre_underwriting/pkg/core/report"
	"cre_underwriting/pkg/core/store"
)

var (
	log        = logrus.WithField("component", "api.deal")
	thresholds map[decision.Strategy]decision.Thresholds
	dealRepo   *store.DealRepo
)

// InitHandler wires the handler's strategy thresholds and repository.
func InitHandler(t map[decision.Strategy]decision.Thresholds) {
	thresholds = t
	dealRepo = store.NewDealRepo()
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// HandleEvaluate runs the full evaluation on the posted inputs.
// POST /api/deal/evaluate
func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var in analysis.DealInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := analysis.Evaluate(in, thresholds)
	log.WithFields(logrus.Fields{
		"price":   in.Financing.PurchasePrice,
		"verdict": result.Scorecard.Verdict,
		"irr":     result.Metrics.IRRPct,
	}).Info("deal evaluated")

	writeJSON(w, http.StatusOK, result)
}

// GoalSeekRequest carries the target hurdle alongside the deal inputs.
type GoalSeekRequest struct {
	TargetIRRPct float64             `json:"target_irr_pct"`
	Inputs       analysis.DealInputs `json:"inputs"`
}

// HandleGoalSeek runs the five-solver sweep against the posted inputs.
// POST /api/deal/goalseek
func HandleGoalSeek(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req GoalSeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.TargetIRRPct == 0 {
		http.Error(w, "target_irr_pct is required", http.StatusBadRequest)
		return
	}

	params := goalseek.ParamsFromProForma(req.Inputs.Property, req.Inputs.Financing, req.Inputs.Assumptions)
	result := goalseek.Sweep(req.TargetIRRPct, params, req.Inputs.AreaSqFt)

	log.WithFields(logrus.Fields{
		"target_irr": req.TargetIRRPct,
		"max_price":  result.MaxPurchasePrice,
	}).Info("goal-seek sweep completed")

	writeJSON(w, http.StatusOK, result)
}

// SaveRequest persists an evaluation under a display name.
type SaveRequest struct {
	ID     string              `json:"id,omitempty"`
	Name   string              `json:"name"`
	Inputs analysis.DealInputs `json:"inputs"`
}

// HandleSave evaluates and persists a deal snapshot.
// POST /api/deal/save
func HandleSave(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if store.GetPool() == nil {
		http.Error(w, "deal store not configured", http.StatusServiceUnavailable)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	result := analysis.Evaluate(req.Inputs, thresholds)
	id, err := dealRepo.Save(r.Context(), req.ID, req.Name, result)
	if err != nil {
		log.WithError(err).Error("failed to save deal")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.WithFields(logrus.Fields{"id": id, "name": req.Name}).Info("deal saved")
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

// HandleGet returns one saved snapshot, optionally rendered as markdown with
// ?format=markdown.
// GET /api/deal/{id}
func HandleGet(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if store.GetPool() == nil {
		http.Error(w, "deal store not configured", http.StatusServiceUnavailable)
		return
	}

	id := mux.Vars(r)["id"]
	name, result, err := dealRepo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("format") == "markdown" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(report.Render(name, *result)))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"name":     name,
		"analysis": result,
	})
}

// HandleList returns summaries of all saved deals.
// GET /api/deal/list
func HandleList(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if store.GetPool() == nil {
		http.Error(w, "deal store not configured", http.StatusServiceUnavailable)
		return
	}

	summaries, err := dealRepo.List(r.Context())
	if err != nil {
		log.WithError(err).Error("failed to list deals")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
