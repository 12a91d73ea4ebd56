package httpadapter

import (
	"fmt"
	"net/http"

	"adlens/internal/core/port"
)

// handleOAuthStart redirects to the platform consent screen. The client
// slug is carried through the flow as OAuth state.
func (h *Handler) handleOAuthStart(w http.ResponseWriter, r *http.Request) {
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	u, err := h.svc.Connect.AuthCodeURL(p, r.URL.Query().Get("client"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	http.Redirect(w, r, u, http.StatusFound)
}

// handleOAuthCallback exchanges the authorisation code and connects the
// client named by state. account_id selects the platform account.
func (h *Handler) handleOAuthCallback(w http.ResponseWriter, r *http.Request) {
	p, err := platformParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	if reason := q.Get("error"); reason != "" {
		h.writeError(w, r, fmt.Errorf("%w: authorisation denied: %s", port.ErrInvalidArgument, reason))
		return
	}
	integ, err := h.svc.Connect.HandleCallback(r.Context(), p, port.CallbackRequest{
		Code:       q.Get("code"),
		ClientSlug: q.Get("state"),
		AccountID:  q.Get("account_id"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, integ)
}
