package watchlist

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/apimachinery"
	"github.com/tradedeck/tradedeck/internal/session"
)

// ListOptions narrows and pages a watchlist listing.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

// Client manages the logged-in user's watchlist.
type Client interface {
	List(ctx context.Context, opts ListOptions) (tradedeck.WatchlistPage, error)
	Duplicate(ctx context.Context, itemID string) (string, error)
	Execute(
		ctx context.Context,
		itemID string,
		req tradedeck.ExecuteOrderRequest,
	) (string, error)
	Analytics(
		ctx context.Context,
		itemID string,
	) (tradedeck.WatchlistAnalytics, error)
	Chart(
		ctx context.Context,
		itemID string,
		startDate string,
	) ([]tradedeck.ChartPoint, error)
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

func (c *client) List(
	ctx context.Context,
	opts ListOptions,
) (tradedeck.WatchlistPage, error) {
	page := tradedeck.WatchlistPage{}
	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.Limit == 0 {
		opts.Limit = 10
	}
	queryParams := map[string]string{
		"page":  strconv.Itoa(opts.Page),
		"limit": strconv.Itoa(opts.Limit),
	}
	if opts.Search != "" {
		queryParams["search"] = opts.Search
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/watchlist",
			QueryParams: queryParams,
			RespObj:     &page,
		},
	)
	return page, err
}

func (c *client) Duplicate(
	ctx context.Context,
	itemID string,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   fmt.Sprintf("api/watchlist/%s/duplicate", itemID),
		},
	)
}

func (c *client) Execute(
	ctx context.Context,
	itemID string,
	req tradedeck.ExecuteOrderRequest,
) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPost,
			Path:       fmt.Sprintf("api/watchlist/%s/execute", itemID),
			ReqBodyObj: req,
		},
	)
}

func (c *client) Analytics(
	ctx context.Context,
	itemID string,
) (tradedeck.WatchlistAnalytics, error) {
	analytics := tradedeck.WatchlistAnalytics{}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("api/watchlist/%s/analytics", itemID),
			RespObj: &analytics,
		},
	)
	return analytics, err
}

func (c *client) Chart(
	ctx context.Context,
	itemID string,
	startDate string,
) ([]tradedeck.ChartPoint, error) {
	points := []tradedeck.ChartPoint{}
	queryParams := map[string]string{}
	if startDate != "" {
		queryParams["startDate"] = startDate
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        fmt.Sprintf("api/watchlist/%s/chart", itemID),
			QueryParams: queryParams,
			RespObj:     &points,
		},
	)
	return points, err
}
