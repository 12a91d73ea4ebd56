package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"adlens/internal/core/port"
)

type createClientRequest struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
}

func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	ok, err := decodeBody(r, &req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok {
		h.writeError(w, r, fmt.Errorf("%w: request body is required", port.ErrInvalidArgument))
		return
	}
	c, err := h.svc.Clients.CreateClient(r.Context(), req.Name, req.Budget)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	c, err := h.svc.Clients.GetClient(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.Clients.DeleteClient(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListIntegrations(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	list, err := h.svc.Clients.ListIntegrations(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleDisconnect removes stored credentials and marks the integration
// disconnected. It succeeds whether or not anything was stored.
func (h *Handler) handleDisconnect(w http.ResponseWriter, r *http.Request) {
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
	if _, err = h.svc.Clients.GetClient(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	removed, err := h.svc.Credentials.DeleteCredentials(r.Context(), id, p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"platform": p, "credentialsRemoved": removed})
}
