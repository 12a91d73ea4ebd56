package usecase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

// oauthServer is a token endpoint. Codes: "good" grants both tokens,
// "access-only" omits the refresh token, anything else is rejected.
// Refresh tokens: "revoked" is rejected, "rotate" returns a new one.
func oauthServer(t *testing.T) *oauth2.Config {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "cid", r.PostForm.Get("client_id"))
		body := map[string]any{"token_type": "Bearer", "expires_in": 3600}
		reject := func() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
		}
		switch r.PostForm.Get("grant_type") {
		case "authorization_code":
			switch r.PostForm.Get("code") {
			case "good":
				body["access_token"], body["refresh_token"] = "acc-1", "ref-1"
			case "access-only":
				body["access_token"] = "acc-1"
			default:
				reject()
				return
			}
		case "refresh_token":
			switch r.PostForm.Get("refresh_token") {
			case "revoked":
				reject()
				return
			case "rotate":
				body["access_token"], body["refresh_token"] = "acc-2", "ref-2"
			default:
				body["access_token"] = "acc-2"
			}
		default:
			reject()
			return
		}
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(srv.Close)
	return &oauth2.Config{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURL:  "https://adlens.test/api/v1/oauth/callback",
		Scopes:       []string{"ads.read"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

type connectFixture struct {
	svc          *ConnectService
	creds        *CredentialService
	integrations *memIntegrations
	client       domain.Client
}

func newConnectFixture(t *testing.T) *connectFixture {
	t.Helper()
	cfg := oauthServer(t)
	c := domain.Client{ID: uuid.New(), Slug: "acme", Name: "Acme"}
	integrations := newMemIntegrations()
	creds := NewCredentialService(newMemCredentials(), integrations, newVault(t), nil)
	oauth := map[domain.Platform]*oauth2.Config{
		domain.PlatformSearchAds:    cfg,
		domain.PlatformWebAnalytics: cfg,
	}
	return &connectFixture{
		svc:          NewConnectService(oauth, newMemClients(c), creds, integrations, nil, nil),
		creds:        creds,
		integrations: integrations,
		client:       c,
	}
}

func TestAuthCodeURL(t *testing.T) {
	f := newConnectFixture(t)

	raw, err := f.svc.AuthCodeURL(domain.PlatformSearchAds, "acme")

	require.NoError(t, err)
	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "/auth", u.Path)
	assert.Equal(t, "acme", q.Get("state"))
	assert.Equal(t, "cid", q.Get("client_id"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "code", q.Get("response_type"))
}

func TestAuthCodeURLValidation(t *testing.T) {
	f := newConnectFixture(t)

	_, err := f.svc.AuthCodeURL("bing_ads", "acme")
	assert.ErrorIs(t, err, port.ErrUnsupportedPlatform)

	_, err = f.svc.AuthCodeURL(domain.PlatformSocialAds, "acme")
	assert.ErrorIs(t, err, port.ErrUnsupportedOperation)

	_, err = f.svc.AuthCodeURL(domain.PlatformSearchAds, " ")
	assert.ErrorIs(t, err, port.ErrInvalidArgument)
}

func TestHandleCallback(t *testing.T) {
	f := newConnectFixture(t)
	ctx := context.Background()

	integ, err := f.svc.HandleCallback(ctx, domain.PlatformSearchAds, port.CallbackRequest{
		Code:       "good",
		ClientSlug: "acme",
		AccountID:  "123-456-7890",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.IntegrationConnected, integ.Status)
	assert.True(t, integ.HasRefreshToken)
	require.NotNil(t, integ.TokenExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *integ.TokenExpiresAt, time.Minute)
	assert.NotNil(t, integ.LastSync)

	stored, err := f.creds.GetSearchAdsCredentials(ctx, f.client.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "ref-1", stored.RefreshToken)
	assert.Equal(t, "acc-1", stored.AccessToken)
	assert.Equal(t, "123-456-7890", stored.CustomerID)
	assert.False(t, stored.TokenExpiry.IsZero())

	assert.Equal(t, domain.IntegrationConnected, f.integrations.status(f.client.ID, domain.PlatformSearchAds))
}

func TestHandleCallbackRejectedCode(t *testing.T) {
	f := newConnectFixture(t)
	ctx := context.Background()

	_, err := f.svc.HandleCallback(ctx, domain.PlatformSearchAds, port.CallbackRequest{Code: "stale", ClientSlug: "acme", AccountID: "1"})

	require.ErrorIs(t, err, port.ErrPlatformAPI)
	var apiErr *port.PlatformAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, port.APIErrorAuth, apiErr.Kind)
	stored, err := f.creds.GetCredentials(ctx, f.client.ID, domain.PlatformSearchAds)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestHandleCallbackIncompleteToken(t *testing.T) {
	f := newConnectFixture(t)
	ctx := context.Background()

	_, err := f.svc.HandleCallback(ctx, domain.PlatformWebAnalytics, port.CallbackRequest{Code: "access-only", ClientSlug: "acme", AccountID: "properties/1"})

	require.ErrorIs(t, err, port.ErrPlatformAPI)
	assert.ErrorIs(t, err, domain.ErrMissingCredentialKey)
	stored, _ := f.creds.GetCredentials(ctx, f.client.ID, domain.PlatformWebAnalytics)
	assert.Nil(t, stored)
	integ, _ := f.integrations.Get(ctx, f.client.ID, domain.PlatformWebAnalytics)
	assert.Nil(t, integ)
}

func TestHandleCallbackValidation(t *testing.T) {
	f := newConnectFixture(t)
	ctx := context.Background()

	_, err := f.svc.HandleCallback(ctx, domain.PlatformSearchAds, port.CallbackRequest{Code: "good", ClientSlug: "nobody", AccountID: "1"})
	assert.ErrorIs(t, err, port.ErrClientNotFound)

	_, err = f.svc.HandleCallback(ctx, domain.PlatformSearchAds, port.CallbackRequest{Code: "good", ClientSlug: "acme"})
	assert.ErrorIs(t, err, port.ErrInvalidArgument)

	_, err = f.svc.HandleCallback(ctx, domain.PlatformSearchAds, port.CallbackRequest{ClientSlug: "acme", AccountID: "1"})
	assert.ErrorIs(t, err, port.ErrInvalidArgument)

	_, err = f.svc.HandleCallback(ctx, domain.PlatformSocialAds, port.CallbackRequest{Code: "good", ClientSlug: "acme", AccountID: "1"})
	assert.ErrorIs(t, err, port.ErrUnsupportedOperation)
}
