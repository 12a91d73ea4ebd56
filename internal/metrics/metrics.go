// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

var (
	// Platform calls

	PlatformRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adlens_platform_requests_total",
			Help: "Total number of outbound platform API requests",
		},
		[]string{"platform", "method", "outcome"},
	)

	PlatformRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adlens_platform_request_duration_seconds",
			Help:    "Platform API request latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"platform", "method"},
	)

	// Sync

	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adlens_sync_runs_total",
			Help: "Total number of platform sync runs",
		},
		[]string{"platform", "status"},
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "adlens_sync_duration_seconds",
			Help:    "Platform sync duration in seconds",
			Buckets: []float64{.1, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"platform"},
	)

	CampaignsUpsertedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adlens_campaigns_upserted_total",
			Help: "Total number of campaigns written by sync",
		},
		[]string{"platform", "kind"},
	)

	TokenRefreshesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adlens_token_refreshes_total",
			Help: "Total number of OAuth token refresh attempts",
		},
		[]string{"platform", "status"},
	)

	// Dashboard

	DashboardSourceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adlens_dashboard_source_failures_total",
			Help: "Total number of sources dropped from dashboard aggregation",
		},
		[]string{"platform", "reason"},
	)
)

// Outcome labels a platform call result.
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var apiErr *port.PlatformAPIError
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return "error"
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func ObservePlatformCall(p domain.Platform, method string, start time.Time, err error) {
	PlatformRequestsTotal.WithLabelValues(p.String(), method, Outcome(err)).Inc()
	PlatformRequestDuration.WithLabelValues(p.String(), method).Observe(time.Since(start).Seconds())
}

// ObserveSync records one finished sync run.
func ObserveSync(p domain.Platform, start time.Time, updated, created int, err error) {
	SyncRunsTotal.WithLabelValues(p.String(), status(err)).Inc()
	SyncDuration.WithLabelValues(p.String()).Observe(time.Since(start).Seconds())
	if err == nil {
		CampaignsUpsertedTotal.WithLabelValues(p.String(), "updated").Add(float64(updated))
		CampaignsUpsertedTotal.WithLabelValues(p.String(), "created").Add(float64(created))
	}
}

func ObserveTokenRefresh(p domain.Platform, err error) {
	TokenRefreshesTotal.WithLabelValues(p.String(), status(err)).Inc()
}

func ObserveSourceFailure(p domain.Platform, err error) {
	DashboardSourceFailuresTotal.WithLabelValues(p.String(), Outcome(err)).Inc()
}
