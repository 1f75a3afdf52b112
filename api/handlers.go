/*
handlers.go - HTTP handlers for the simulation API

PURPOSE:
  Exposes the scenario catalog and a run endpoint. Each run builds
  fresh engine state, so handlers share nothing mutable and the server
  needs no locking.

ENDPOINTS:
  GET  /api/scenarios            List runnable scenarios
  POST /api/scenarios/{name}/run Run one scenario to its horizon
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/warp/cashflow-engine/finance"
	"github.com/warp/cashflow-engine/scenario"
	"github.com/warp/cashflow-engine/schedule"
)

// Handler serves the simulation API.
type Handler struct {
	Logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Logger: logger}
}

// ListScenarios returns the scenario catalog.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	var out []ScenarioDTO
	for _, s := range scenario.Catalog() {
		out = append(out, ScenarioDTO{Name: s.Name(), Description: s.Description()})
	}
	h.respond(w, http.StatusOK, out)
}

// RunScenario plays one scenario to its horizon and returns the run.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s := scenario.ByName(name)
	if s == nil {
		h.respondError(w, http.StatusNotFound, "unknown scenario: "+name)
		return
	}

	var req RunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	cfg := scenario.DefaultConfig()
	cfg.Logger = h.Logger
	if req.StartYear != 0 {
		shift := req.StartYear - cfg.Start.Year()
		cfg.Start = cfg.Start.AddYears(shift)
		cfg.End = cfg.End.AddYears(shift)
		cfg.HomePurchaseDate = cfg.HomePurchaseDate.AddYears(shift)
		cfg.AutoTerm = finance.Period{
			Start: cfg.AutoTerm.Start.AddYears(shift),
			End:   cfg.AutoTerm.End.AddYears(shift),
		}
	}
	if req.Years > 0 {
		cfg.End = cfg.Start.AddYears(req.Years)
	}
	switch req.FailurePolicy {
	case "", "abort":
		cfg.Policy = schedule.AbortOnError
	case "skip":
		cfg.Policy = schedule.SkipFailedAction
	default:
		h.respondError(w, http.StatusBadRequest, "failure_policy must be \"abort\" or \"skip\"")
		return
	}

	runID := uuid.NewString()
	h.Logger.Info("running scenario",
		zap.String("run_id", runID),
		zap.String("scenario", name),
		zap.Stringer("start", cfg.Start),
		zap.Stringer("horizon", cfg.End))

	res, runErr := s.Play(cfg)
	if runErr != nil {
		h.Logger.Warn("scenario run ended early",
			zap.String("run_id", runID),
			zap.Error(runErr))
	}
	h.respond(w, http.StatusOK, toRunDTO(runID, name, res, req.IncludeTimeline, runErr))
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func (h *Handler) respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.Logger.Error("encoding response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, map[string]string{"error": message})
}
