package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationTransitions(t *testing.T) {
	tests := []struct {
		from, to IntegrationStatus
		ok       bool
	}{
		{IntegrationDisconnected, IntegrationConnected, true},
		{IntegrationDisconnected, IntegrationError, false},
		{IntegrationDisconnected, IntegrationRefreshing, false},
		{IntegrationConnected, IntegrationError, true},
		{IntegrationConnected, IntegrationRefreshing, true},
		{IntegrationRefreshing, IntegrationConnected, true},
		{IntegrationRefreshing, IntegrationError, true},
		{IntegrationRefreshing, IntegrationRefreshing, false},
		{IntegrationError, IntegrationRefreshing, true},
		{IntegrationError, IntegrationConnected, true},
		{IntegrationError, IntegrationDisconnected, true},
		{IntegrationRefreshing, IntegrationDisconnected, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.ok, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIntegrationLifecycle(t *testing.T) {
	i := NewIntegration(uuid.New(), PlatformSearchAds)
	assert.Equal(t, IntegrationDisconnected, i.Status)
	assert.False(t, i.IsConnected())

	require.ErrorIs(t, i.MarkAsError("boom"), ErrInvalidTransition)
	assert.Equal(t, IntegrationDisconnected, i.Status)

	expiry := time.Now().Add(time.Hour)
	require.NoError(t, i.UpdateTokens("refresh", expiry))
	assert.True(t, i.IsConnected())
	assert.True(t, i.HasRefreshToken)
	require.NotNil(t, i.TokenExpiresAt)
	assert.True(t, i.TokenExpiresAt.Equal(expiry))

	require.NoError(t, i.MarkAsError("quota"))
	assert.Equal(t, "quota", i.Error)
	require.NoError(t, i.MarkAsRefreshing())
	require.NoError(t, i.MarkAsConnected())
	assert.Empty(t, i.Error)

	i.MarkAsDisconnected()
	assert.Equal(t, IntegrationDisconnected, i.Status)
	assert.Nil(t, i.TokenExpiresAt)
	assert.False(t, i.HasRefreshToken)
}

func TestNeedsTokenRefresh(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	at := func(d time.Duration) *time.Time {
		e := now.Add(d)
		return &e
	}
	tests := []struct {
		name    string
		expires *time.Time
		want    bool
	}{
		{"unknown expiry", nil, false},
		{"expired", at(-time.Minute), true},
		{"inside window", at(4 * time.Minute), true},
		{"window edge", at(TokenRefreshWindow), true},
		{"outside window", at(6 * time.Minute), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := &Integration{TokenExpiresAt: tt.expires}
			assert.Equal(t, tt.want, i.NeedsTokenRefresh(now))
		})
	}
}

func TestUpdateLastSync(t *testing.T) {
	i := NewIntegration(uuid.New(), PlatformSocialAds)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	i.UpdateLastSync(now)

	require.NotNil(t, i.LastSync)
	assert.Equal(t, time.UTC, i.LastSync.Location())
	assert.True(t, i.LastSync.Equal(now))
}
