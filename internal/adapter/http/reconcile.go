package httpadapter

import (
	"log/slog"
	"net/http"

	"budget-scheduler/internal/core/port"
)

type outcomeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	OldBudgetCents int64  `json:"old_budget_cents"`
	NewBudgetCents int64  `json:"new_budget_cents"`
	Success        bool   `json:"success"`
	DryRun         bool   `json:"dry_run"`
	Error          string `json:"error,omitempty"`
}

type warningResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type reportResponse struct {
	RunID        string            `json:"run_id"`
	Mode         string            `json:"mode"`
	PreviousMode string            `json:"previous_mode"`
	LocalTime    string            `json:"local_time"`
	Transitioned bool              `json:"transitioned"`
	DryRun       bool              `json:"dry_run"`
	Attempted    int               `json:"attempted"`
	Succeeded    int               `json:"succeeded"`
	Failed       int               `json:"failed"`
	Outcomes     []outcomeResponse `json:"outcomes"`
	Warnings     []warningResponse `json:"warnings"`
	Error        string            `json:"error,omitempty"`
}

// handleReconcile runs one pass now. A pass that fails after mutating
// budgets still returns its report next to the error.
func (h *Handler) handleReconcile(w http.ResponseWriter, r *http.Request) {
	rep, err := h.svc.Reconcile(r.Context(), h.now())
	if err != nil {
		h.logger.Error("reconcile error", slog.Any("error", err))
		if rep == nil {
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		resp := toReportResponse(rep)
		resp.Error = err.Error()
		h.writeJSON(w, statusFor(err), resp)
		return
	}
	h.writeJSON(w, http.StatusOK, toReportResponse(rep))
}

func toReportResponse(rep *port.Report) reportResponse {
	resp := reportResponse{
		RunID:        rep.RunID,
		Mode:         string(rep.Mode),
		PreviousMode: string(rep.PreviousMode),
		LocalTime:    rep.LocalTime,
		Transitioned: rep.Transitioned,
		DryRun:       rep.DryRun,
		Attempted:    rep.Attempted,
		Succeeded:    rep.Succeeded,
		Failed:       rep.Failed,
		Outcomes:     make([]outcomeResponse, 0, len(rep.Outcomes)),
		Warnings:     make([]warningResponse, 0, len(rep.Warnings)),
	}
	for _, o := range rep.Outcomes {
		resp.Outcomes = append(resp.Outcomes, outcomeResponse{
			ID:             o.ID,
			Name:           o.Name,
			Kind:           string(o.Kind),
			OldBudgetCents: o.OldBudgetCents,
			NewBudgetCents: o.NewBudgetCents,
			Success:        o.Success,
			DryRun:         o.DryRun,
			Error:          o.Error,
		})
	}
	for _, wn := range rep.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{
			ID:      wn.ID,
			Name:    wn.Name,
			Kind:    string(wn.Kind),
			Message: wn.Message,
		})
	}
	return resp
}
