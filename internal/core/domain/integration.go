package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidTransition = errors.New("invalid integration status transition")

// TokenRefreshWindow is how far ahead of expiry a token is considered due
// for refresh.
const TokenRefreshWindow = 5 * time.Minute

// IntegrationStatus is the connection state of one (client, platform) pair.
type IntegrationStatus string

const (
	IntegrationConnected    IntegrationStatus = "connected"
	IntegrationDisconnected IntegrationStatus = "disconnected"
	IntegrationError        IntegrationStatus = "error"
	IntegrationRefreshing   IntegrationStatus = "refreshing"
)

var integrationTransitions = map[IntegrationStatus][]IntegrationStatus{
	IntegrationDisconnected: {IntegrationConnected},
	IntegrationConnected:    {IntegrationConnected, IntegrationError, IntegrationRefreshing, IntegrationDisconnected},
	IntegrationError:        {IntegrationRefreshing, IntegrationConnected, IntegrationError, IntegrationDisconnected},
	IntegrationRefreshing:   {IntegrationConnected, IntegrationError, IntegrationDisconnected},
}

// CanTransitionTo reports whether s may move to next.
func (s IntegrationStatus) CanTransitionTo(next IntegrationStatus) bool {
	if next == IntegrationDisconnected {
		return true
	}
	for _, allowed := range integrationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Integration tracks the connection state of a client on one platform.
// Token values never live here; only their expiry does.
type Integration struct {
	ClientID        uuid.UUID         `json:"clientId"`
	Platform        Platform          `json:"platform"`
	Status          IntegrationStatus `json:"status"`
	LastSync        *time.Time        `json:"lastSync,omitempty"`
	Error           string            `json:"error,omitempty"`
	TokenExpiresAt  *time.Time        `json:"tokenExpiresAt,omitempty"`
	HasRefreshToken bool              `json:"hasRefreshToken"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// NewIntegration returns a disconnected integration.
func NewIntegration(clientID uuid.UUID, platform Platform) *Integration {
	return &Integration{
		ClientID:  clientID,
		Platform:  platform,
		Status:    IntegrationDisconnected,
		UpdatedAt: time.Now().UTC(),
	}
}

// IsConnected reports whether the integration may contribute data.
func (i *Integration) IsConnected() bool {
	return i.Status == IntegrationConnected
}

func (i *Integration) transition(next IntegrationStatus) error {
	if !i.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.Status, next)
	}
	i.Status = next
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// MarkAsConnected records a successful credential validation or platform
// call and clears any previous error.
func (i *Integration) MarkAsConnected() error {
	if err := i.transition(IntegrationConnected); err != nil {
		return err
	}
	i.Error = ""
	return nil
}

// MarkAsError records a failed platform call.
func (i *Integration) MarkAsError(message string) error {
	if err := i.transition(IntegrationError); err != nil {
		return err
	}
	i.Error = message
	return nil
}

// MarkAsRefreshing records that a token refresh is in flight.
func (i *Integration) MarkAsRefreshing() error {
	return i.transition(IntegrationRefreshing)
}

// MarkAsDisconnected is valid from every state; it forgets token state.
func (i *Integration) MarkAsDisconnected() {
	i.Status = IntegrationDisconnected
	i.Error = ""
	i.TokenExpiresAt = nil
	i.HasRefreshToken = false
	i.UpdatedAt = time.Now().UTC()
}

// UpdateTokens stores the new expiry after a successful token exchange or
// refresh and marks the integration connected. The refresh token itself
// is persisted by the credential store.
func (i *Integration) UpdateTokens(refreshToken string, expiresAt time.Time) error {
	if err := i.MarkAsConnected(); err != nil {
		return err
	}
	if refreshToken != "" {
		i.HasRefreshToken = true
	}
	if expiresAt.IsZero() {
		i.TokenExpiresAt = nil
	} else {
		exp := expiresAt.UTC()
		i.TokenExpiresAt = &exp
	}
	return nil
}

// UpdateLastSync stamps a completed sync.
func (i *Integration) UpdateLastSync(now time.Time) {
	t := now.UTC()
	i.LastSync = &t
	i.UpdatedAt = t
}

// NeedsTokenRefresh reports whether the access token expires within
// TokenRefreshWindow of now. Integrations without a known expiry never need
// a refresh.
func (i *Integration) NeedsTokenRefresh(now time.Time) bool {
	if i.TokenExpiresAt == nil {
		return false
	}
	return !i.TokenExpiresAt.After(now.Add(TokenRefreshWindow))
}
