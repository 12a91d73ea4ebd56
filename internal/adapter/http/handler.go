package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adlens/internal/core/port"
)

// Services are the use cases the HTTP adapter drives.
type Services struct {
	Dashboard   port.DashboardUseCase
	Sync        port.SyncUseCase
	Connect     port.ConnectUseCase
	Credentials port.CredentialUseCase
	Clients     port.ClientUseCase
	Campaigns   port.CampaignUseCase
}

// Handler is the inbound HTTP adapter. Routes are registered on a
// chi.Router; every handler maps use case errors to status codes through
// writeError.
type Handler struct {
	svc    Services
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/clients", h.handleCreateClient)
		r.Route("/clients/{clientID}", func(r chi.Router) {
			r.Get("/", h.handleGetClient)
			r.Delete("/", h.handleDeleteClient)
			r.Get("/dashboard", h.handleDashboard)
			r.Post("/sync", h.handleSyncAll)
			r.Post("/sync/{platform}", h.handleSync)
			r.Get("/integrations", h.handleListIntegrations)
			r.Delete("/integrations/{platform}", h.handleDisconnect)
			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns/{platform}", h.handleCreateCampaign)
			r.Patch("/campaigns/{platform}/{campaignID}", h.handleUpdateCampaignStatus)
		})
		r.Get("/oauth/{platform}/start", h.handleOAuthStart)
		r.Get("/oauth/{platform}/callback", h.handleOAuthCallback)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())))
	})
}
