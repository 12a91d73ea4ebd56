package platform

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

var fixedNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type stubCreds struct {
	search    *domain.SearchAdsCredentials
	social    *domain.SocialAdsCredentials
	analytics *domain.WebAnalyticsCredentials
	err       error
}

func (s stubCreds) GetSearchAdsCredentials(context.Context, uuid.UUID) (*domain.SearchAdsCredentials, error) {
	return s.search, s.err
}

func (s stubCreds) GetSocialAdsCredentials(context.Context, uuid.UUID) (*domain.SocialAdsCredentials, error) {
	return s.social, s.err
}

func (s stubCreds) GetWebAnalyticsCredentials(context.Context, uuid.UUID) (*domain.WebAnalyticsCredentials, error) {
	return s.analytics, s.err
}

func serve(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(v))
}

// tokenServer issues the access token "fresh" for any refresh grant.
func tokenServer(t *testing.T) *oauth2.Config {
	t.Helper()
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		if r.PostForm.Get("refresh_token") == "revoked" {
			writeJSON(t, w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
			return
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"access_token": "fresh",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	})
	return &oauth2.Config{
		ClientID:     "id",
		ClientSecret: "secret",
		Endpoint:     oauth2.Endpoint{TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams},
	}
}

func testConfig(base, version string, oauth *oauth2.Config) Config {
	return Config{
		BaseURL:        base,
		APIVersion:     version,
		Timeout:        2 * time.Second,
		OAuth:          oauth,
		DeveloperToken: "dev-token",
	}
}

func requireAPIError(t *testing.T, err error, kind port.APIErrorKind) *port.PlatformAPIError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, port.ErrPlatformAPI)
	var apiErr *port.PlatformAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, kind, apiErr.Kind)
	return apiErr
}

func TestTestConnectionWithoutCredentials(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s", r.URL.Path)
	})
	cfg := testConfig(srv.URL, "v1", tokenServer(t))
	adapters := []port.PlatformAdapter{
		NewSearchAdsAdapter(stubCreds{}, cfg, nil),
		NewSocialAdsAdapter(stubCreds{}, cfg, nil),
		NewWebAnalyticsAdapter(stubCreds{}, cfg, nil),
	}
	for _, a := range adapters {
		t.Run(a.Platform().String(), func(t *testing.T) {
			assert.False(t, a.TestConnection(context.Background(), uuid.New()))

			_, err := a.FetchCampaigns(context.Background(), uuid.New(), nil)
			assert.ErrorIs(t, err, port.ErrCredentialsNotFound)
		})
	}
}

func TestCredentialErrorsPropagate(t *testing.T) {
	a := NewSocialAdsAdapter(stubCreds{err: port.ErrDecryptionFailed}, testConfig("http://127.0.0.1:1", "", nil), nil)

	_, err := a.FetchCampaigns(context.Background(), uuid.New(), nil)

	assert.ErrorIs(t, err, port.ErrDecryptionFailed)
}

func TestClientURL(t *testing.T) {
	c := newClient(domain.PlatformSearchAds, Config{BaseURL: "https://api.example.com/", APIVersion: "/v17/"}, nil)
	assert.Equal(t, "https://api.example.com/v17/customers/1", c.url("/customers/1"))

	c = newClient(domain.PlatformSearchAds, Config{BaseURL: "https://api.example.com"}, nil)
	assert.Equal(t, "https://api.example.com/x", c.url("x"))
}

func TestPlatformErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   port.APIErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, port.APIErrorAuth},
		{"forbidden", http.StatusForbidden, port.APIErrorAuth},
		{"rate limited", http.StatusTooManyRequests, port.APIErrorRateLimit},
		{"server error", http.StatusInternalServerError, port.APIErrorResponse},
		{"bad request", http.StatusBadRequest, port.APIErrorResponse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, map[string]any{"error": map[string]string{"message": "nope"}})
			})
			c := newClient(domain.PlatformSocialAds, testConfig(srv.URL, "", nil), nil)

			_, err := c.do(context.Background(), request{method: http.MethodGet, url: c.url("x")}, nil)

			apiErr := requireAPIError(t, err, tt.kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, domain.PlatformSocialAds, apiErr.Platform)
		})
	}
}

func TestPlatformCallTimeout(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := newClient(domain.PlatformSocialAds, testConfig(srv.URL, "", nil), nil)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.do(ctx, request{method: http.MethodGet, url: c.url("slow")}, nil)

	requireAPIError(t, err, port.APIErrorTimeout)
}

func TestNotFoundIsNotAnError(t *testing.T) {
	srv := serve(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	c := newClient(domain.PlatformSocialAds, testConfig(srv.URL, "", nil), nil)

	found, err := c.do(context.Background(), request{method: http.MethodGet, url: c.url("gone")}, nil)

	require.NoError(t, err)
	assert.False(t, found)
}

func TestRefreshTokenRejected(t *testing.T) {
	c := newClient(domain.PlatformSearchAds, testConfig("http://127.0.0.1:1", "", tokenServer(t)), nil)

	_, err := c.refreshToken(context.Background(), uuid.New(), "revoked", "", time.Time{})

	requireAPIError(t, err, port.APIErrorAuth)
}

func TestRefreshTokenReusesValidAccessToken(t *testing.T) {
	c := newClient(domain.PlatformSearchAds, testConfig("http://127.0.0.1:1", "", tokenServer(t)), nil)

	tok, err := c.refreshToken(context.Background(), uuid.New(), "r", "still-good", time.Now().Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "still-good", tok)
}

type storedToken struct {
	clientID uuid.UUID
	platform domain.Platform
	access   string
	refresh  string
	expiry   time.Time
}

type recordingTokens struct {
	stored []storedToken
	err    error
}

func (r *recordingTokens) StoreAccessToken(_ context.Context, clientID uuid.UUID, p domain.Platform, access, refresh string, expiry time.Time) error {
	r.stored = append(r.stored, storedToken{clientID: clientID, platform: p, access: access, refresh: refresh, expiry: expiry})
	return r.err
}

func TestRefreshTokenStoresMintedToken(t *testing.T) {
	tokens := &recordingTokens{}
	cfg := testConfig("http://127.0.0.1:1", "", tokenServer(t))
	cfg.Tokens = tokens
	c := newClient(domain.PlatformWebAnalytics, cfg, nil)
	clientID := uuid.New()

	tok, err := c.refreshToken(context.Background(), clientID, "r", "stale", time.Now().Add(-time.Minute))

	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	require.Len(t, tokens.stored, 1)
	got := tokens.stored[0]
	assert.Equal(t, clientID, got.clientID)
	assert.Equal(t, domain.PlatformWebAnalytics, got.platform)
	assert.Equal(t, "fresh", got.access)
	assert.Empty(t, got.refresh)
	assert.WithinDuration(t, time.Now().Add(time.Hour), got.expiry, time.Minute)
}

func TestRefreshTokenKeepsValidTokenUnstored(t *testing.T) {
	tokens := &recordingTokens{}
	cfg := testConfig("http://127.0.0.1:1", "", tokenServer(t))
	cfg.Tokens = tokens
	c := newClient(domain.PlatformSearchAds, cfg, nil)

	_, err := c.refreshToken(context.Background(), uuid.New(), "r", "still-good", time.Now().Add(time.Hour))

	require.NoError(t, err)
	assert.Empty(t, tokens.stored)
}

func TestRefreshTokenStoreFailureIsNotFatal(t *testing.T) {
	tokens := &recordingTokens{err: errors.New("database down")}
	cfg := testConfig("http://127.0.0.1:1", "", tokenServer(t))
	cfg.Tokens = tokens
	c := newClient(domain.PlatformSearchAds, cfg, nil)

	tok, err := c.refreshToken(context.Background(), uuid.New(), "r", "", time.Time{})

	require.NoError(t, err)
	assert.Equal(t, "fresh", tok)
	assert.Len(t, tokens.stored, 1)
}

func TestRefreshTokenWithoutOAuthConfig(t *testing.T) {
	c := newClient(domain.PlatformSearchAds, testConfig("http://127.0.0.1:1", "", nil), nil)

	_, err := c.refreshToken(context.Background(), uuid.New(), "r", "", time.Time{})

	assert.ErrorIs(t, err, port.ErrPlatformAPI)
}
