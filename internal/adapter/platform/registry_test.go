package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

func TestRegistry(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1", "", nil)
	search := NewSearchAdsAdapter(stubCreds{}, cfg, nil)
	analytics := NewWebAnalyticsAdapter(stubCreds{}, cfg, nil)

	r, err := NewRegistry(analytics, search)
	require.NoError(t, err)

	got, err := r.Adapter(domain.PlatformSearchAds)
	require.NoError(t, err)
	assert.Same(t, search, got)

	_, err = r.Adapter(domain.PlatformSocialAds)
	assert.ErrorIs(t, err, port.ErrUnsupportedPlatform)

	_, err = r.Adapter("bing")
	assert.ErrorIs(t, err, port.ErrUnsupportedPlatform)

	assert.Equal(t, []domain.Platform{domain.PlatformSearchAds, domain.PlatformWebAnalytics}, r.Platforms())
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1", "", nil)

	_, err := NewRegistry(NewSocialAdsAdapter(stubCreds{}, cfg, nil), NewSocialAdsAdapter(stubCreds{}, cfg, nil))

	assert.Error(t, err)
}
