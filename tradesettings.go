package tradedeck

// TradingViewSettings configures the TradingView webhook integration.
type TradingViewSettings struct {
	TradingKey           string `json:"tradingKey"`
	AlertMessage         string `json:"alertMessage"`
	ConditionalAlertData string `json:"conditionalAlertData"`
	WebhookURL           string `json:"webhookUrl"`
}

// AmibrokerSettings configures the AmiBroker signal integration.
type AmibrokerSettings struct {
	TradingKey     string `json:"tradingKey"`
	SignalTemplate string `json:"signalTemplate"`
}

// ChartInkSettings configures the ChartInk scanner integration.
type ChartInkSettings struct {
	AlertData string `json:"alertData"`
}

// TradeSettings is the full per-user settings document.
type TradeSettings struct {
	TradingView TradingViewSettings `json:"tradingView"`
	Amibroker   AmibrokerSettings   `json:"amibroker"`
	ChartInk    ChartInkSettings    `json:"chartInk"`
}

// TradeSettingsSection names one independently updatable section.
type TradeSettingsSection string

const (
	SectionTradingView TradeSettingsSection = "tradingview"
	SectionAmibroker   TradeSettingsSection = "amibroker"
	SectionChartInk    TradeSettingsSection = "chartink"
)

type WebhookURL struct {
	WebhookURL string `json:"webhookUrl"`
}

type GeneratedKey struct {
	TradingKey string `json:"tradingKey"`
}
