package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Acme":                 "acme",
		"Acme Widgets, Inc.":   "acme-widgets-inc",
		"  --Hello__World--  ": "hello-world",
		"Café Olé 2024":        "caf-ol-2024",
		"!!!":                  "client",
		"":                     "client",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestCampaignStatus(t *testing.T) {
	st, err := ParseCampaignStatus(" Paused ")
	assert.NoError(t, err)
	assert.Equal(t, CampaignStatusPaused, st)

	_, err = ParseCampaignStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
