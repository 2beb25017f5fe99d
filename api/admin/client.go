package admin

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

// BrokerListOptions narrows and pages the admin broker console listing.
type BrokerListOptions struct {
	Page   int
	Limit  int
	Search string
	Status string
}

type ActivityListOptions struct {
	Page  int
	Limit int
}

// Client covers the admin console. It runs against the admin session scope;
// a 401 here never disturbs the user-scope session.
type Client interface {
	// Login exchanges admin credentials for tokens. It does NOT persist the
	// session; that is the caller's decision.
	Login(
		ctx context.Context,
		req tradedeck.LoginRequest,
	) (tradedeck.AdminAuthDetails, error)
	Dashboard(ctx context.Context) (tradedeck.AdminDashboard, error)
	ListUsers(ctx context.Context, search string) (tradedeck.AdminUserList, error)
	UpdateUser(
		ctx context.Context,
		id string,
		update tradedeck.AdminUserUpdate,
	) (string, error)
	DeleteUser(ctx context.Context, id string) (string, error)
	ListBrokerSessions(
		ctx context.Context,
		opts BrokerListOptions,
	) (tradedeck.BrokerSessionPage, error)
	ListPricingPlans(ctx context.Context) (tradedeck.PricingPlanList, error)
	CreatePricingPlan(
		ctx context.Context,
		plan tradedeck.PricingPlan,
	) (string, error)
	UpdatePricingPlan(
		ctx context.Context,
		id string,
		plan tradedeck.PricingPlan,
	) (string, error)
	DeletePricingPlan(ctx context.Context, id string) (string, error)
	GetSettings(
		ctx context.Context,
		section string,
	) (tradedeck.AdminSettings, error)
	UpdateSettings(
		ctx context.Context,
		section string,
		settings tradedeck.AdminSettings,
	) (string, error)
	ListStrategies(
		ctx context.Context,
		search string,
	) (tradedeck.AdminStrategyList, error)
	ListActivity(
		ctx context.Context,
		opts ActivityListOptions,
	) (tradedeck.ActivityPage, error)
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
			Scope:      session.ScopeAdmin,
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

func (c *client) Login(
	ctx context.Context,
	req tradedeck.LoginRequest,
) (tradedeck.AdminAuthDetails, error) {
	authDetails := tradedeck.AdminAuthDetails{}
	if err := req.Validate(); err != nil {
		return authDetails, err
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/admin/login",
			ReqBodyObj:      req,
			RespObj:         &authDetails,
			Unauthenticated: true,
		},
	)
	return authDetails, err
}

func (c *client) Dashboard(
	ctx context.Context,
) (tradedeck.AdminDashboard, error) {
	dashboard := tradedeck.AdminDashboard{}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    "api/admin/dashboard",
			RespObj: &dashboard,
		},
	)
	return dashboard, err
}

func (c *client) ListUsers(
	ctx context.Context,
	search string,
) (tradedeck.AdminUserList, error) {
	users := tradedeck.AdminUserList{}
	queryParams := map[string]string{}
	if search != "" {
		queryParams["search"] = search
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/admin/users",
			QueryParams: queryParams,
			RespObj:     &users,
		},
	)
	return users, err
}

func (c *client) UpdateUser(
	ctx context.Context,
	id string,
	update tradedeck.AdminUserUpdate,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       fmt.Sprintf("api/admin/users/%s", id),
			ReqBodyObj: update,
		},
	)
}

func (c *client) DeleteUser(ctx context.Context, id string) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("api/admin/users/%s", id),
		},
	)
}

func (c *client) ListBrokerSessions(
	ctx context.Context,
	opts BrokerListOptions,
) (tradedeck.BrokerSessionPage, error) {
	page := tradedeck.BrokerSessionPage{}
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
	if opts.Status != "" {
		queryParams["status"] = opts.Status
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/admin/brokers",
			QueryParams: queryParams,
			RespObj:     &page,
		},
	)
	return page, err
}

func (c *client) ListPricingPlans(
	ctx context.Context,
) (tradedeck.PricingPlanList, error) {
	plans := tradedeck.PricingPlanList{}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    "api/admin/pricing-plans",
			RespObj: &plans,
		},
	)
	return plans, err
}

func (c *client) CreatePricingPlan(
	ctx context.Context,
	plan tradedeck.PricingPlan,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPost,
			Path:       "api/admin/pricing-plans",
			ReqBodyObj: plan,
		},
	)
}

func (c *client) UpdatePricingPlan(
	ctx context.Context,
	id string,
	plan tradedeck.PricingPlan,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       fmt.Sprintf("api/admin/pricing-plans/%s", id),
			ReqBodyObj: plan,
		},
	)
}

func (c *client) DeletePricingPlan(
	ctx context.Context,
	id string,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodDelete,
			Path:   fmt.Sprintf("api/admin/pricing-plans/%s", id),
		},
	)
}

func (c *client) GetSettings(
	ctx context.Context,
	section string,
) (tradedeck.AdminSettings, error) {
	settings := tradedeck.AdminSettings{}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("api/admin/settings/%s", section),
			RespObj: &settings,
		},
	)
	return settings, err
}

func (c *client) UpdateSettings(
	ctx context.Context,
	section string,
	settings tradedeck.AdminSettings,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       fmt.Sprintf("api/admin/settings/%s", section),
			ReqBodyObj: settings,
		},
	)
}

func (c *client) ListStrategies(
	ctx context.Context,
	search string,
) (tradedeck.AdminStrategyList, error) {
	strategies := tradedeck.AdminStrategyList{}
	queryParams := map[string]string{}
	if search != "" {
		queryParams["search"] = search
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:      http.MethodGet,
			Path:        "api/admin/strategies",
			QueryParams: queryParams,
			RespObj:     &strategies,
		},
	)
	return strategies, err
}

func (c *client) ListActivity(
	ctx context.Context,
	opts ActivityListOptions,
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
			Path:   "api/admin/activity",
			QueryParams: map[string]string{
				"page":  strconv.Itoa(opts.Page),
				"limit": strconv.Itoa(opts.Limit),
			},
			RespObj: &page,
		},
	)
	return page, err
}
