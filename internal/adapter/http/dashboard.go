package httpadapter

import (
	"net/http"

	"adlens/internal/core/domain"
)

// handleDashboard merges every requested, connected platform for a client.
// Optional query parameters: period (7d, 30d or 90d) and sources, a comma
// separated platform list.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	period, err := domain.ParsePeriod(q.Get("period"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sources, err := domain.ParsePlatformSet(q.Get("sources"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	payload, err := h.svc.Dashboard.GetDashboardData(r.Context(), id, period, sources)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, payload)
}
