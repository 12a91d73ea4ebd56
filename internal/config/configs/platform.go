package configs

import (
	"golang.org/x/oauth2"
)

// Platform configures one remote platform. Empty fields are filled from
// the platform's defaults by Config.Load.
type Platform struct {
	BaseURL    string `env:"BASE_URL"`
	APIVersion string `env:"API_VERSION"`

	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET,unset"`
	AuthURL      string   `env:"AUTH_URL"`
	TokenURL     string   `env:"TOKEN_URL"`
	RedirectURL  string   `env:"REDIRECT_URL"`
	Scopes       []string `env:"SCOPES" envSeparator:","`

	// DeveloperToken is only used by the search-ads platform.
	DeveloperToken string `env:"DEVELOPER_TOKEN,unset"`
}

// OAuth returns the OAuth client configuration, or nil when no client id
// is configured.
func (c Platform) OAuth() *oauth2.Config {
	if c.ClientID == "" {
		return nil
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Scopes:       c.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.AuthURL,
			TokenURL: c.TokenURL,
		},
	}
}

// WithDefaults returns c with every empty field taken from def.
func (c Platform) WithDefaults(def Platform) Platform {
	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&c.BaseURL, def.BaseURL)
	fill(&c.APIVersion, def.APIVersion)
	fill(&c.AuthURL, def.AuthURL)
	fill(&c.TokenURL, def.TokenURL)
	if len(c.Scopes) == 0 {
		c.Scopes = def.Scopes
	}
	return c
}
