package tradesettings

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/apimachinery"
	"github.com/tradedeck/tradedeck/internal/session"
)

// Client manages the per-user trade automation settings.
type Client interface {
	Get(ctx context.Context) (tradedeck.TradeSettings, error)
	Update(ctx context.Context, settings tradedeck.TradeSettings) (string, error)
	UpdateTradingView(
		ctx context.Context,
		settings tradedeck.TradingViewSettings,
	) (string, error)
	UpdateAmibroker(
		ctx context.Context,
		settings tradedeck.AmibrokerSettings,
	) (string, error)
	UpdateChartInk(
		ctx context.Context,
		settings tradedeck.ChartInkSettings,
	) (string, error)
	WebhookURL(ctx context.Context) (tradedeck.WebhookURL, error)
	GenerateKey(
		ctx context.Context,
		section tradedeck.TradeSettingsSection,
	) (tradedeck.GeneratedKey, error)
	// ApplyFile validates a local settings document against the settings
	// schema and, when valid, uploads it wholesale.
	ApplyFile(ctx context.Context, filename string) (string, error)
}

type client struct {
	*apimachinery.BaseClient
}

func NewClient(
	apiAddress string,
	sessions session.Store,
	allowInsecure bool,
) Client {
	return &client{
		BaseClient: &apimachinery.BaseClient{
			APIAddress: apiAddress,
			Scope:      session.ScopeUser,
			Sessions:   sessions,
			HTTPClient: &http.Client{
				Transport: &http.Transport{
					TLSClientConfig: &tls.Config{
						InsecureSkipVerify: allowInsecure,
					},
				},
			},
		},
	}
}

func (c *client) currentUserID() (string, error) {
	sess, err := c.Sessions.Get(session.ScopeUser)
	if err != nil {
		return "", err
	}
	return sess.Principal.UserID()
}

func (c *client) Get(ctx context.Context) (tradedeck.TradeSettings, error) {
	settings := tradedeck.TradeSettings{}
	userID, err := c.currentUserID()
	if err != nil {
		return settings, err
	}
	_, err = c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("api/trade-settings/%s", userID),
			RespObj: &settings,
		},
	)
	return settings, err
}

func (c *client) Update(
	ctx context.Context,
	settings tradedeck.TradeSettings,
) (string, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return "", err
	}
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       fmt.Sprintf("api/trade-settings/%s", userID),
			ReqBodyObj: settings,
		},
	)
}

func (c *client) UpdateTradingView(
	ctx context.Context,
	settings tradedeck.TradingViewSettings,
) (string, error) {
	return c.updateSection(ctx, tradedeck.SectionTradingView, settings)
}

func (c *client) UpdateAmibroker(
	ctx context.Context,
	settings tradedeck.AmibrokerSettings,
) (string, error) {
	return c.updateSection(ctx, tradedeck.SectionAmibroker, settings)
}

func (c *client) UpdateChartInk(
	ctx context.Context,
	settings tradedeck.ChartInkSettings,
) (string, error) {
	return c.updateSection(ctx, tradedeck.SectionChartInk, settings)
}

func (c *client) updateSection(
	ctx context.Context,
	section tradedeck.TradeSettingsSection,
	settings interface{},
) (string, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return "", err
	}
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       fmt.Sprintf("api/trade-settings/%s/%s", userID, section),
			ReqBodyObj: settings,
		},
	)
}

func (c *client) WebhookURL(
	ctx context.Context,
) (tradedeck.WebhookURL, error) {
	webhookURL := tradedeck.WebhookURL{}
	userID, err := c.currentUserID()
	if err != nil {
		return webhookURL, err
	}
	_, err = c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodGet,
			Path: fmt.Sprintf(
				"api/trade-settings/%s/tradingview/webhook-url",
				userID,
			),
			RespObj: &webhookURL,
		},
	)
	return webhookURL, err
}

func (c *client) GenerateKey(
	ctx context.Context,
	section tradedeck.TradeSettingsSection,
) (tradedeck.GeneratedKey, error) {
	key := tradedeck.GeneratedKey{}
	if section != tradedeck.SectionTradingView &&
		section != tradedeck.SectionAmibroker {
		return key, tradedeck.FieldErrors{
			"section": "Key generation is supported for tradingview and " +
				"amibroker only",
		}
	}
	userID, err := c.currentUserID()
	if err != nil {
		return key, err
	}
	_, err = c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodPost,
			Path: fmt.Sprintf(
				"api/trade-settings/%s/%s/generate-key",
				userID,
				section,
			),
			RespObj: &key,
		},
	)
	return key, err
}

func (c *client) ApplyFile(
	ctx context.Context,
	filename string,
) (string, error) {
	settings, err := loadSettingsFile(filename)
	if err != nil {
		return "", err
	}
	userID, err := c.currentUserID()
	if err != nil {
		return "", err
	}
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       fmt.Sprintf("api/trade-settings/%s", userID),
			ReqBodyObj: json.RawMessage(settings),
		},
	)
}
