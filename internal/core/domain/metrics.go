package domain

// RawCounters are the platform-reported ground truth for a campaign.
type RawCounters struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Cost        float64 `json:"cost"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// Metrics holds the raw counters plus the values derived from them.
// Derived fields are only ever written by DeriveMetrics.
type Metrics struct {
	RawCounters
	CTR            float64 `json:"ctr"`
	CPC            float64 `json:"cpc"`
	CPA            float64 `json:"cpa"`
	ROAS           float64 `json:"roas"`
	ConversionRate float64 `json:"conversionRate"`
}

// DeriveMetrics computes CTR, CPC, CPA, ROAS and conversion rate from raw.
// Every ratio is zero when its denominator is zero.
func DeriveMetrics(raw RawCounters) Metrics {
	m := Metrics{RawCounters: raw}
	if raw.Impressions > 0 {
		m.CTR = float64(raw.Clicks) / float64(raw.Impressions) * 100
	}
	if raw.Clicks > 0 {
		m.CPC = raw.Cost / float64(raw.Clicks)
		m.ConversionRate = raw.Conversions / float64(raw.Clicks) * 100
	}
	if raw.Conversions > 0 {
		m.CPA = raw.Cost / raw.Conversions
	}
	if raw.Cost > 0 {
		m.ROAS = raw.Revenue / raw.Cost
	}
	return m
}

// Recompute returns m with its derived fields rebuilt from its raw counters.
func (m Metrics) Recompute() Metrics {
	return DeriveMetrics(m.RawCounters)
}

// MetricsDelta carries incoming raw counters. Nil fields leave the stored
// value untouched; non-nil fields replace it.
type MetricsDelta struct {
	Impressions *int64
	Clicks      *int64
	Cost        *float64
	Conversions *float64
	Revenue     *float64
}

// DeltaFromCounters builds a delta that replaces every raw counter.
func DeltaFromCounters(raw RawCounters) MetricsDelta {
	return MetricsDelta{
		Impressions: &raw.Impressions,
		Clicks:      &raw.Clicks,
		Cost:        &raw.Cost,
		Conversions: &raw.Conversions,
		Revenue:     &raw.Revenue,
	}
}

// Apply merges d into raw.
func (d MetricsDelta) Apply(raw RawCounters) RawCounters {
	if d.Impressions != nil {
		raw.Impressions = *d.Impressions
	}
	if d.Clicks != nil {
		raw.Clicks = *d.Clicks
	}
	if d.Cost != nil {
		raw.Cost = *d.Cost
	}
	if d.Conversions != nil {
		raw.Conversions = *d.Conversions
	}
	if d.Revenue != nil {
		raw.Revenue = *d.Revenue
	}
	return raw
}
