package activity

import (
	"context"
	"crypto/tls"
	"net/http"
	"strconv"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/apimachinery"
	"github.com/tradedeck/tradedeck/internal/session"
)

type ListOptions struct {
	Page  int
	Limit int
}

// Client reads the logged-in user's activity log.
type Client interface {
	List(ctx context.Context, opts ListOptions) (tradedeck.ActivityPage, error)
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
) (tradedeck.ActivityPage, error) {
	page := tradedeck.ActivityPage{}
	if opts.Page == 0 {
		opts.Page = 1
	}
	if opts.Limit == 0 {
		opts.Limit = 20
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodGet,
			Path:   "api/activity",
			QueryParams: map[string]string{
				"page":  strconv.Itoa(opts.Page),
				"limit": strconv.Itoa(opts.Limit),
			},
			RespObj: &page,
		},
	)
	return page, err
}
