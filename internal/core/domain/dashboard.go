package domain

// DashboardPayload is the merged, platform independent dashboard view.
type DashboardPayload struct {
	Metrics            DashboardTotals      `json:"metrics"`
	ChannelPerformance []ChannelPerformance `json:"channelPerformance"`
	TopCampaigns       []TopCampaign        `json:"topCampaigns"`
	DailyMetrics       []DailyMetric        `json:"dailyMetrics"`
	DevicePerformance  []DevicePerformance  `json:"devicePerformance"`
	Failures           []SourceFailure      `json:"failures,omitempty"`
}

// DashboardTotals are sums across every platform that answered. Ratios are
// blended from the sums, never averaged.
type DashboardTotals struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalConversions float64 `json:"totalConversions"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalRevenue     float64 `json:"totalRevenue"`
	AvgCTR           float64 `json:"avgCtr"`
	AvgCPC           float64 `json:"avgCpc"`
	ROAS             float64 `json:"roas"`
	Period           Period  `json:"period"`
}

// ChannelPerformance is one platform's contribution.
type ChannelPerformance struct {
	Platform    Platform `json:"platform"`
	Channel     string   `json:"channel"`
	Spend       float64  `json:"spend"`
	Impressions int64    `json:"impressions"`
	Clicks      int64    `json:"clicks"`
	Conversions float64  `json:"conversions"`
	Revenue     float64  `json:"revenue"`
	CTR         float64  `json:"ctr"`
	CPC         float64  `json:"cpc"`
	ROAS        float64  `json:"roas"`
}

// TopCampaign is a campaign ranked by return on spend.
type TopCampaign struct {
	CampaignID  string         `json:"campaignId"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	Status      CampaignStatus `json:"status"`
	Spend       float64        `json:"spend"`
	Conversions float64        `json:"conversions"`
	Revenue     float64        `json:"revenue"`
	ROAS        float64        `json:"roas"`
}

// DailyMetric is one day of platform figures. Date uses DateFormat.
type DailyMetric struct {
	Date        string  `json:"date"`
	Spend       float64 `json:"spend"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// DevicePerformance is a device category row from the analytics platform.
type DevicePerformance struct {
	Device      string  `json:"device"`
	Sessions    int64   `json:"sessions"`
	Users       int64   `json:"users"`
	Conversions float64 `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// SourceFailure explains why a platform contributed nothing.
type SourceFailure struct {
	Platform Platform `json:"platform"`
	Reason   string   `json:"reason"`
}
