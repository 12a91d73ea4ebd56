package httpadapter

import (
	"fmt"
	"net/http"
	"time"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

type syncRequest struct {
	From *time.Time `json:"from"`
	To   *time.Time `json:"to"`
}

func (s syncRequest) dateRange() (*domain.DateRange, error) {
	switch {
	case s.From == nil && s.To == nil:
		return nil, nil
	case s.From == nil || s.To == nil:
		return nil, fmt.Errorf("%w: from and to must be given together", port.ErrInvalidArgument)
	}
	return &domain.DateRange{Start: *s.From, End: *s.To}, nil
}

func (h *Handler) syncRange(r *http.Request) (*domain.DateRange, error) {
	var req syncRequest
	if _, err := decodeBody(r, &req); err != nil {
		return nil, err
	}
	return req.dateRange()
}

// handleSync pulls one platform's campaigns for a client. The optional
// JSON body {"from", "to"} takes RFC3339 timestamps; without it the
// trailing 30 days are synced.
func (h *Handler) handleSync(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dr, err := h.syncRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Sync.Sync(r.Context(), id, p, dr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleSyncAll syncs every active platform of a client and reports each
// platform's outcome.
func (h *Handler) handleSyncAll(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	dr, err := h.syncRange(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	outcomes, err := h.svc.Sync.SyncAll(r.Context(), id, dr)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"results": outcomes})
}
