package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleDashboard returns one report per site the caller owns: identity,
// verification state and aggregated stats with estimated revenue.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	reports, err := h.events.DashboardStats(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("dashboard error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(reports); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
