package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// statusFor maps use case errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, port.ErrInvalidArgument),
		errors.Is(err, port.ErrUnsupportedPlatform):
		return http.StatusBadRequest
	case errors.Is(err, port.ErrClientNotFound), errors.Is(err, port.ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrNoSources), errors.Is(err, port.ErrSyncInProgress):
		return http.StatusConflict
	case errors.Is(err, port.ErrCredentialsNotFound):
		return http.StatusFailedDependency
	case errors.Is(err, port.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	case errors.Is(err, port.ErrPlatformAPI):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs err and writes a plain text body. Internal errors are
// never echoed to the caller.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
		msg = "internal error"
	} else {
		h.logger.Info("request rejected", slog.String("path", r.URL.Path), slog.Int("status", status), slog.Any("error", err))
	}
	http.Error(w, msg, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func clientID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid client id %q", port.ErrInvalidArgument, chi.URLParam(r, "clientID"))
	}
	return id, nil
}

func platformParam(r *http.Request) (domain.Platform, error) {
	return domain.ParsePlatform(chi.URLParam(r, "platform"))
}

// decodeBody decodes an optional JSON body into v. An empty body leaves v
// untouched.
func decodeBody(r *http.Request, v any) (bool, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return false, nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("%w: invalid JSON: %v", port.ErrInvalidArgument, err)
	}
	return true, nil
}
