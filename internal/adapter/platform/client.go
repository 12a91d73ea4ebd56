// Package platform holds one adapter per supported advertising or
// analytics platform. Each adapter resolves decrypted credentials on
// demand, authenticates, queries the platform's native API and maps the
// answer into the shared campaign shape.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
	"adlens/internal/metrics"
	"adlens/internal/pkg/httpretry"
)

// maxResponseSize caps platform response bodies (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Config is shared by every adapter.
type Config struct {
	BaseURL    string
	APIVersion string
	// Timeout bounds each outbound call, token refresh included.
	Timeout    time.Duration
	MaxRetries int
	// OAuth is required by platforms that authenticate with refresh
	// tokens.
	OAuth *oauth2.Config
	// DeveloperToken is sent by the search-ads adapter.
	DeveloperToken string
	// Tokens receives access tokens minted by refreshToken. Nil means
	// every call with an expired token refreshes again.
	Tokens port.TokenStore
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return 30 * time.Second
	}
	return c.Timeout
}

// client performs authenticated JSON calls with per-call deadlines and
// classifies every failure as a *port.PlatformAPIError.
type client struct {
	platform  domain.Platform
	cfg       Config
	doer      httpretry.Doer
	oauthHTTP *http.Client
	logger    *slog.Logger
}

func newClient(platform domain.Platform, cfg Config, logger *slog.Logger) *client {
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := &http.Client{Timeout: cfg.timeout()}
	return &client{
		platform:  platform,
		cfg:       cfg,
		doer:      httpretry.New(httpClient, cfg.MaxRetries, httpretry.WithLogger(logger)),
		oauthHTTP: httpClient,
		logger:    logger.With(slog.String("platform", platform.String())),
	}
}

// withTimeout bounds one logical platform operation.
func (c *client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.cfg.timeout())
}

// url joins the base URL, the API version when set, and path.
func (c *client) url(path string) string {
	base := strings.TrimRight(c.cfg.BaseURL, "/")
	if c.cfg.APIVersion != "" {
		base += "/" + strings.Trim(c.cfg.APIVersion, "/")
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// refreshToken turns a stored refresh token into a usable access token. A
// still valid stored access token is reused; a new one is handed to
// cfg.Tokens.
func (c *client) refreshToken(ctx context.Context, clientID uuid.UUID, refresh, access string, expiry time.Time) (string, error) {
	if c.cfg.OAuth == nil {
		return "", c.apiError(0, errors.New("oauth is not configured"))
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.oauthHTTP)
	tok, err := c.cfg.OAuth.TokenSource(ctx, &oauth2.Token{
		RefreshToken: refresh,
		AccessToken:  access,
		Expiry:       expiry,
	}).Token()
	if err != nil {
		var rerr *oauth2.RetrieveError
		if errors.As(err, &rerr) {
			return "", c.apiError(http.StatusUnauthorized, fmt.Errorf("token refresh: %w", err))
		}
		return "", c.apiError(0, fmt.Errorf("token refresh: %w", err))
	}
	if tok.AccessToken != access && c.cfg.Tokens != nil {
		rotated := tok.RefreshToken
		if rotated == refresh {
			rotated = ""
		}
		if err = c.cfg.Tokens.StoreAccessToken(ctx, clientID, c.platform, tok.AccessToken, rotated, tok.Expiry); err != nil {
			c.logger.Warn("refreshed access token not stored",
				slog.String("client_id", clientID.String()),
				slog.Any("error", err))
		}
	}
	return tok.AccessToken, nil
}

type request struct {
	method  string
	url     string
	token   string
	headers map[string]string
	query   url.Values
	json    any
	form    url.Values
}

// do executes r and decodes a 2xx JSON body into out. A 404 is reported
// through found=false rather than an error.
func (c *client) do(ctx context.Context, r request, out any) (found bool, err error) {
	start := time.Now()
	defer func() {
		metrics.ObservePlatformCall(c.platform, r.method, start, err)
	}()

	var body io.Reader
	contentType := ""
	switch {
	case r.json != nil:
		raw, err := json.Marshal(r.json)
		if err != nil {
			return false, fmt.Errorf("encode %s request: %w", c.platform, err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	target := r.url
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return false, fmt.Errorf("build %s request: %w", c.platform, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}
	for k, v := range r.headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %v", ctxErr, err)
		}
		return false, c.apiError(0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return false, c.apiError(0, fmt.Errorf("read response: %w", err))
	}
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, c.apiError(resp.StatusCode, fmt.Errorf("%s", truncate(raw, 512)))
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return false, c.apiError(resp.StatusCode, fmt.Errorf("decode response: %w", err))
		}
	}
	return true, nil
}

func (c *client) apiError(status int, err error) *port.PlatformAPIError {
	return port.NewPlatformAPIError(c.platform, status, err)
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}

func credentialsMissing(platform domain.Platform, clientID fmt.Stringer) error {
	return fmt.Errorf("%w: %s for client %s", port.ErrCredentialsNotFound, platform, clientID)
}
