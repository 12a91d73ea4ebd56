package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPlatform is returned for any platform outside the closed
// set below.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Platform identifies one external advertising or analytics provider.
type Platform string

const (
	PlatformSearchAds    Platform = "search_ads"
	PlatformSocialAds    Platform = "social_ads"
	PlatformWebAnalytics Platform = "web_analytics"
)

// Platforms returns every supported platform in display order.
func Platforms() []Platform {
	return []Platform{PlatformSearchAds, PlatformSocialAds, PlatformWebAnalytics}
}

// IsValid reports whether p is one of the supported platforms.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformSearchAds, PlatformSocialAds, PlatformWebAnalytics:
		return true
	default:
		return false
	}
}

func (p Platform) String() string {
	return string(p)
}

// DisplayName returns the channel label used in dashboard payloads.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformSearchAds:
		return "Search Ads"
	case PlatformSocialAds:
		return "Social Ads"
	case PlatformWebAnalytics:
		return "Web Analytics"
	default:
		return string(p)
	}
}

// Order is the position of p in Platforms, or len(Platforms()) for an
// unknown value.
func (p Platform) Order() int {
	for i, v := range Platforms() {
		if v == p {
			return i
		}
	}
	return len(Platforms())
}

// ParsePlatform converts user input into a Platform. Hyphens are accepted
// in place of underscores.
func ParsePlatform(s string) (Platform, error) {
	p := Platform(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, s)
	}
	return p, nil
}

// ParsePlatformSet parses a comma separated list. An empty string yields
// every platform.
func ParsePlatformSet(s string) ([]Platform, error) {
	if strings.TrimSpace(s) == "" {
		return Platforms(), nil
	}
	seen := make(map[Platform]bool)
	var out []Platform
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePlatform(part)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out, nil
}
