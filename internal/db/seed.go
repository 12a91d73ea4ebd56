package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"adlens/internal/core/domain"
	"adlens/internal/core/port"
)

var demoClients = []struct {
	name   string
	budget int64
}{
	{"Northwind Outdoor", 12000},
	{"Blue Harbor Dental", 4500},
}

// Seed creates demo clients with a few synced-looking campaigns each.
// Clients whose slug already exists are skipped.
func Seed(ctx context.Context, clients port.ClientUseCase, campaigns port.CampaignRepository, logger *slog.Logger) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	for _, demo := range demoClients {
		existing, err := clients.GetClientBySlug(ctx, domain.Slugify(demo.name))
		if err != nil && !errors.Is(err, port.ErrClientNotFound) {
			return err
		}
		if existing != nil {
			logger.Info("seed client exists", slog.String("slug", existing.Slug))
			continue
		}
		c, err := clients.CreateClient(ctx, demo.name, decimal.NewFromInt(demo.budget))
		if err != nil {
			return fmt.Errorf("seed client %q: %w", demo.name, err)
		}
		for _, p := range []domain.Platform{domain.PlatformSearchAds, domain.PlatformSocialAds} {
			for i := 1; i <= 5; i++ {
				impressions := int64(1000 + r.Intn(50000))
				clicks := impressions * int64(1+r.Intn(6)) / 100
				cost := float64(clicks) * (0.3 + r.Float64()*2)
				conversions := float64(clicks) * r.Float64() / 10
				pc := domain.PlatformCampaign{
					CampaignID: fmt.Sprintf("demo-%s-%d", p, i),
					Name:       fmt.Sprintf("%s %s campaign %d", demo.name, p.DisplayName(), i),
					Status:     []domain.CampaignStatus{domain.CampaignStatusActive, domain.CampaignStatusPaused}[r.Intn(2)],
					Budget:     decimal.NewFromInt(int64(50 + r.Intn(450))),
					Metrics: domain.DeriveMetrics(domain.RawCounters{
						Impressions: impressions,
						Clicks:      clicks,
						Cost:        cost,
						Conversions: conversions,
						Revenue:     conversions * (20 + r.Float64()*80),
					}),
				}
				if err = campaigns.Create(ctx, domain.NewCampaignFromPlatform(c.ID, p, pc, now)); err != nil {
					return fmt.Errorf("seed campaign %s: %w", pc.CampaignID, err)
				}
			}
		}
		logger.Info("seeded client", slog.String("slug", c.Slug))
	}
	return nil
}
