package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/classify"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/compete"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/financial"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/gaps"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/invest"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/model"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/risk"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/roadmap"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/simulate"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/stats"
	"github.com/francesca-tabor-ai/MATURITY-OS-sub001/internal/store"
)

// newAPIRouter builds the versioned JSON API. Scoring endpoints are pure
// functions of the request body; the org routes persist through st.
func newAPIRouter(st store.Store) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/score/data", handleScore(model.AuditVariantData))
		r.Post("/score/ai", handleScore(model.AuditVariantAI))
		r.Post("/classify", handleClassify)
		r.Post("/stats", handleStats)
		r.Post("/gaps", handleGaps)
		r.Post("/financial/impact", handleFinancialImpact)
		r.Post("/financial/model", handleFinancialModel)
		r.Post("/invest", handleInvest)
		r.Post("/risk/assess", handleRiskAssess)
		r.Post("/risk/project", handleRiskProject)
		r.Post("/compete", handleCompete)
		r.Post("/roadmap", handleRoadmap)
		r.Post("/simulate", handleSimulate)

		r.Route("/orgs/{org}", func(r chi.Router) {
			r.Post("/audits/{variant}", handleSaveAudit(st))
			r.Get("/results", handleListResults(st))
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("api: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decode reads the request body into v, replying 400 on malformed JSON.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func handleScore(variant model.AuditVariant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inputs model.AuditInputs
		if !decode(w, r, &inputs) {
			return
		}

		result, _, err := scoreAudit(inputs, variant)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func handleClassify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DataIndex float64 `json:"data_index"`
		AIScore   float64 `json:"ai_score"`
	}
	if !decode(w, r, &req) {
		return
	}

	table, err := loadRuleTable()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, classify.Classify(req.DataIndex, req.AIScore, table))
}

func handleStats(w http.ResponseWriter, r *http.Request) {
	var scores []float64
	if !decode(w, r, &scores) {
		return
	}
	writeJSON(w, http.StatusOK, stats.Analyze(scores))
}

func handleGaps(w http.ResponseWriter, r *http.Request) {
	var in gapsInput
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, gaps.Analyze(in.Data, in.AI, in.Targets))
}

func handleFinancialModel(w http.ResponseWriter, r *http.Request) {
	var in financial.Inputs
	if !decode(w, r, &in) {
		return
	}
	bm := resolveBenchmark(r.URL.Query().Get("benchmark"))
	writeJSON(w, http.StatusOK, financial.RunModel(in, bm))
}

func handleFinancialImpact(w http.ResponseWriter, r *http.Request) {
	var in financial.Inputs
	if !decode(w, r, &in) {
		return
	}
	bm := resolveBenchmark(r.URL.Query().Get("benchmark"))
	writeJSON(w, http.StatusOK, financial.EstimateImpact(in, bm))
}

// handleInvest prices the maturity gap. Target below current is the one
// hard-rejected input in the engine and surfaces as a 422.
func handleInvest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Current        model.ScorePair `json:"current"`
		Target         model.ScorePair `json:"target"`
		AnnualBenefits float64         `json:"annual_benefits"`
	}
	if !decode(w, r, &req) {
		return
	}

	result, err := invest.Calculate(req.Current, req.Target, req.AnnualBenefits,
		cfg.Investment.DataCostPerPoint, cfg.Investment.AICostPerPoint)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func handleRiskAssess(w http.ResponseWriter, r *http.Request) {
	var in risk.Inputs
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, risk.Assess(in, cfg.Risk.Weights))
}

func handleRiskProject(w http.ResponseWriter, r *http.Request) {
	var in risk.ProjectInputs
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, risk.EvaluateProject(in))
}

func handleCompete(w http.ResponseWriter, r *http.Request) {
	var in competeInput
	if !decode(w, r, &in) {
		return
	}
	writeJSON(w, http.StatusOK, compete.Analyze(in.Org, in.Competitors))
}

func handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var in roadmap.Inputs
	if !decode(w, r, &in) {
		return
	}
	if in.DataCostPerPoint == 0 {
		in.DataCostPerPoint = cfg.Investment.DataCostPerPoint
	}
	if in.AICostPerPoint == 0 {
		in.AICostPerPoint = cfg.Investment.AICostPerPoint
	}

	rm, err := roadmap.Generate(in)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rm)
}

func handleSimulate(w http.ResponseWriter, r *http.Request) {
	var in simulateInput
	if !decode(w, r, &in) {
		return
	}
	if len(in.Scenarios) == 0 {
		writeError(w, http.StatusUnprocessableEntity, "at least one scenario is required")
		return
	}

	simCtx := in.Context
	simCtx.Benchmark = resolveBenchmark(r.URL.Query().Get("benchmark"))
	if simCtx.Smoothing == 0 {
		simCtx.Smoothing = cfg.Simulation.Smoothing
	}

	outcomes := make([]simulate.Outcome, len(in.Scenarios))
	for i, scenario := range in.Scenarios {
		if scenario.HorizonYears == 0 {
			scenario.HorizonYears = cfg.Simulation.DefaultHorizonYears
		}
		outcomes[i] = simulate.Run(scenario, simCtx)
	}

	if r.URL.Query().Get("compare") != "" {
		writeJSON(w, http.StatusOK, simulate.Compare(outcomes))
		return
	}
	writeJSON(w, http.StatusOK, outcomes)
}

func handleSaveAudit(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orgID := chi.URLParam(r, "org")
		variant := model.AuditVariant(chi.URLParam(r, "variant"))
		if variant != model.AuditVariantData && variant != model.AuditVariantAI {
			writeError(w, http.StatusNotFound, "unknown audit variant")
			return
		}

		var inputs model.AuditInputs
		if !decode(w, r, &inputs) {
			return
		}

		audit, err := st.SaveAudit(r.Context(), orgID, variant, inputs)
		if err != nil {
			zap.L().Error("api: save audit", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "save audit failed")
			return
		}

		result, kind, err := scoreAudit(inputs, variant)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if _, err := st.SaveResult(r.Context(), orgID, kind, result); err != nil {
			zap.L().Error("api: save result", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "save result failed")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"audit_id": audit.ID,
			"result":   result,
		})
	}
}

func handleListResults(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := st.ListResults(r.Context(), store.ResultFilter{
			OrgID: chi.URLParam(r, "org"),
			Kind:  model.ResultKind(r.URL.Query().Get("kind")),
		})
		if err != nil {
			zap.L().Error("api: list results", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "list results failed")
			return
		}
		if results == nil {
			results = []model.Result{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}
