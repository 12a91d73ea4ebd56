package httpadapter

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// handleListCampaigns lists stored campaigns, optionally for one platform.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	id, err := clientID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var filter *domain.Platform
	if raw := r.URL.Query().Get("platform"); raw != "" {
		p, err := domain.ParsePlatform(raw)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		filter = &p
	}
	list, err := h.svc.Campaigns.ListCampaigns(r.Context(), id, filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
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
	var draft domain.CampaignDraft
	ok, err := decodeBody(r, &draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !ok || draft.Name == "" {
		h.writeError(w, r, fmt.Errorf("%w: campaign name is required", port.ErrInvalidArgument))
		return
	}
	campaignID, err := h.svc.Campaigns.CreateCampaign(r.Context(), id, p, draft)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]string{"campaignId": campaignID})
}

type statusRequest struct {
	Status domain.CampaignStatus `json:"status"`
}

// handleUpdateCampaignStatus changes a campaign's status on its platform.
func (h *Handler) handleUpdateCampaignStatus(w http.ResponseWriter, r *http.Request) {
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
	var req statusRequest
	if _, err = decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	status, err := domain.ParseCampaignStatus(string(req.Status))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", port.ErrInvalidArgument, err))
		return
	}
	err = h.svc.Campaigns.UpdateCampaignStatus(r.Context(), id, p, chi.URLParam(r, "campaignID"), status)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
