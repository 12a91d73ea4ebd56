package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrMissingCredentialKey = errors.New("missing credential key")

// Credential map keys. Values are opaque to the vault.
const (
	CredRefreshToken    = "refresh_token"
	CredAccessToken     = "access_token"
	CredTokenExpiry     = "token_expiry"
	CredCustomerID      = "customer_id"
	CredLoginCustomerID = "login_customer_id"
	CredAdAccountID     = "ad_account_id"
	CredPropertyID      = "property_id"
)

// CredentialRecord is a stored credential entry. Values are ciphertexts.
type CredentialRecord struct {
	ClientID    uuid.UUID         `json:"clientId"`
	Platform    Platform          `json:"platform"`
	Credentials map[string]string `json:"credentials"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Keys returns the credential keys of r without touching values.
func (r CredentialRecord) Keys() []string {
	keys := make([]string, 0, len(r.Credentials))
	for k := range r.Credentials {
		keys = append(keys, k)
	}
	return keys
}

func requireKeys(m map[string]string, platform Platform, keys ...string) error {
	for _, k := range keys {
		if m[k] == "" {
			return fmt.Errorf("%w: %s requires %q", ErrMissingCredentialKey, platform, k)
		}
	}
	return nil
}

func parseExpiry(m map[string]string) time.Time {
	if v := m[CredTokenExpiry]; v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func putExpiry(m map[string]string, t time.Time) {
	if !t.IsZero() {
		m[CredTokenExpiry] = t.UTC().Format(time.RFC3339)
	}
}

// SearchAdsCredentials are the decrypted search-ads secrets.
type SearchAdsCredentials struct {
	RefreshToken    string
	AccessToken     string
	TokenExpiry     time.Time
	CustomerID      string
	LoginCustomerID string
}

func (c SearchAdsCredentials) Map() map[string]string {
	m := map[string]string{
		CredRefreshToken: c.RefreshToken,
		CredCustomerID:   c.CustomerID,
	}
	if c.AccessToken != "" {
		m[CredAccessToken] = c.AccessToken
	}
	if c.LoginCustomerID != "" {
		m[CredLoginCustomerID] = c.LoginCustomerID
	}
	putExpiry(m, c.TokenExpiry)
	return m
}

func SearchAdsCredentialsFromMap(m map[string]string) (*SearchAdsCredentials, error) {
	if err := requireKeys(m, PlatformSearchAds, CredRefreshToken, CredCustomerID); err != nil {
		return nil, err
	}
	return &SearchAdsCredentials{
		RefreshToken:    m[CredRefreshToken],
		AccessToken:     m[CredAccessToken],
		TokenExpiry:     parseExpiry(m),
		CustomerID:      m[CredCustomerID],
		LoginCustomerID: m[CredLoginCustomerID],
	}, nil
}

// SocialAdsCredentials are the decrypted social-ads secrets. Access tokens
// are long lived and have no refresh token.
type SocialAdsCredentials struct {
	AccessToken string
	TokenExpiry time.Time
	AdAccountID string
}

func (c SocialAdsCredentials) Map() map[string]string {
	m := map[string]string{
		CredAccessToken: c.AccessToken,
		CredAdAccountID: c.AdAccountID,
	}
	putExpiry(m, c.TokenExpiry)
	return m
}

func SocialAdsCredentialsFromMap(m map[string]string) (*SocialAdsCredentials, error) {
	if err := requireKeys(m, PlatformSocialAds, CredAccessToken, CredAdAccountID); err != nil {
		return nil, err
	}
	return &SocialAdsCredentials{
		AccessToken: m[CredAccessToken],
		TokenExpiry: parseExpiry(m),
		AdAccountID: m[CredAdAccountID],
	}, nil
}

// WebAnalyticsCredentials are the decrypted web-analytics secrets.
type WebAnalyticsCredentials struct {
	RefreshToken string
	AccessToken  string
	TokenExpiry  time.Time
	PropertyID   string
}

func (c WebAnalyticsCredentials) Map() map[string]string {
	m := map[string]string{
		CredRefreshToken: c.RefreshToken,
		CredPropertyID:   c.PropertyID,
	}
	if c.AccessToken != "" {
		m[CredAccessToken] = c.AccessToken
	}
	putExpiry(m, c.TokenExpiry)
	return m
}

func WebAnalyticsCredentialsFromMap(m map[string]string) (*WebAnalyticsCredentials, error) {
	if err := requireKeys(m, PlatformWebAnalytics, CredRefreshToken, CredPropertyID); err != nil {
		return nil, err
	}
	return &WebAnalyticsCredentials{
		RefreshToken: m[CredRefreshToken],
		AccessToken:  m[CredAccessToken],
		TokenExpiry:  parseExpiry(m),
		PropertyID:   m[CredPropertyID],
	}, nil
}
