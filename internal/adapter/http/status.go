package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"budget-scheduler/internal/core/port"
)

type modeResponse struct {
	Mode      string `json:"mode"`
	LocalTime string `json:"local_time"`
	Timezone  string `json:"timezone"`
}

type stateResponse struct {
	LastMode        string           `json:"last_mode"`
	LastRunAt       *time.Time       `json:"last_run_at"`
	OriginalBudgets map[string]int64 `json:"original_budgets"`
}

type entityResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Kind               string `json:"kind"`
	CampaignID         string `json:"campaign_id,omitempty"`
	CampaignName       string `json:"campaign_name,omitempty"`
	CurrentBudgetCents int64  `json:"current_budget_cents"`
	OriginalCents      *int64 `json:"original_budget_cents"`
	Excluded           bool   `json:"excluded"`
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMode reports the mode the scheduler would pick right now.
func (h *Handler) handleMode(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Mode(h.now())
	if err != nil {
		h.logger.Error("resolve mode error", slog.Any("error", err))
		http.Error(w, "invalid policy", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, modeResponse{
		Mode:      string(d.Mode),
		LocalTime: d.LocalTime,
		Timezone:  d.Location.String(),
	})
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.State(r.Context())
	if err != nil {
		h.logger.Error("load state error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	resp := stateResponse{
		LastMode:        string(st.LastMode),
		LastRunAt:       st.LastRunAt,
		OriginalBudgets: st.OriginalBudgets,
	}
	if resp.OriginalBudgets == nil {
		resp.OriginalBudgets = map[string]int64{}
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// handleEntities lists live entities. Enumeration failures at the ads
// platform map to 502.
func (h *Handler) handleEntities(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Entities(r.Context())
	if err != nil {
		h.logger.Error("list entities error", slog.Any("error", err))
		http.Error(w, "internal error", statusFor(err))
		return
	}
	resp := make([]entityResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, entityResponse{
			ID:                 v.ID,
			Name:               v.Name,
			Kind:               string(v.Kind),
			CampaignID:         v.CampaignID,
			CampaignName:       v.CampaignName,
			CurrentBudgetCents: v.CurrentBudgetCents,
			OriginalCents:      v.OriginalCents,
			Excluded:           v.Excluded,
		})
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func statusFor(err error) int {
	if errors.Is(err, port.ErrListEntities) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the header is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
