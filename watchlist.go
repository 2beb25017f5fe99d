package tradedeck

import "encoding/json"

// WatchlistItem is one configured symbol. Target and stop-loss are pointers
// because the API distinguishes "not set" from zero.
type WatchlistItem struct {
	ID             string   `json:"id,omitempty"`
	AltID          string   `json:"_id,omitempty"`
	ExchangeSymbol string   `json:"exchangeSymbol"`
	MappingName    string   `json:"mappingName,omitempty"`
	LotSize        int      `json:"lotSize,omitempty"`
	QtyMultiplier  int      `json:"qtyMultiplier,omitempty"`
	Target         *float64 `json:"target,omitempty"`
	TargetType     string   `json:"tgtType,omitempty"`
	StopLoss       *float64 `json:"stopLoss,omitempty"`
	StopLossType   string   `json:"slType,omitempty"`
	OrderType      string   `json:"orderType,omitempty"`
	ProductType    string   `json:"productType,omitempty"`
	Strategy       string   `json:"strategy,omitempty"`
	IsActive       bool     `json:"isActive,omitempty"`
}

// Key returns whichever record identifier the API populated.
func (w WatchlistItem) Key() string {
	if w.ID != "" {
		return w.ID
	}
	return w.AltID
}

// Quantity is the derived lot size times multiplier shown in listings.
func (w WatchlistItem) Quantity() int {
	multiplier := w.QtyMultiplier
	if multiplier == 0 {
		multiplier = 1
	}
	return w.LotSize * multiplier
}

type WatchlistPage struct {
	Items      []WatchlistItem `json:"items"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
	TotalItems int             `json:"totalItems"`
}

func (p *WatchlistPage) UnmarshalJSON(data []byte) error {
	type page WatchlistPage
	var wrapped page
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Items != nil {
		*p = WatchlistPage(wrapped)
		return nil
	}
	var bare []WatchlistItem
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	p.Items = bare
	p.TotalItems = len(bare)
	return nil
}

// ExecuteOrderRequest triggers an immediate order for a watchlist item
// through one connected broker.
type ExecuteOrderRequest struct {
	Action     string `json:"action"`
	BrokerName string `json:"brokerName"`
}

func (r ExecuteOrderRequest) Validate() error {
	fieldErrs := FieldErrors{}
	if r.Action != "BUY" && r.Action != "SELL" {
		fieldErrs["action"] = "Action must be BUY or SELL"
	}
	if r.BrokerName == "" {
		fieldErrs["brokerName"] = "Broker is required"
	}
	if len(fieldErrs) > 0 {
		return fieldErrs
	}
	return nil
}

type WatchlistAnalytics struct {
	Symbol       string  `json:"symbol,omitempty"`
	WinRate      float64 `json:"winRate,omitempty"`
	TotalTrades  int     `json:"totalTrades,omitempty"`
	ProfitFactor float64 `json:"profitFactor,omitempty"`
	NetPnL       float64 `json:"netPnl,omitempty"`
}

type ChartPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
