package brokers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/apimachinery"
	"github.com/tradedeck/tradedeck/internal/session"
)

// Client manages per-broker account links for the logged-in user.
type Client interface {
	// Login submits one broker's credentials. The user ID is resolved from
	// the locally stored principal and the credentials are validated
	// client-side; either failure blocks the call before any network I/O.
	Login(
		ctx context.Context,
		credentials tradedeck.BrokerCredentials,
	) (tradedeck.BrokerLoginResult, error)
	Dashboard(ctx context.Context) (tradedeck.BrokerDashboard, error)
	Toggle(ctx context.Context, brokerAPIID string) (string, error)
	Refresh(ctx context.Context, brokerAPIID string) (string, error)
}

type client struct {
	*apimachinery.BaseClient
	redirectURI string
}

func NewClient(
	apiAddress string,
	redirectURI string,
	sessions session.Store,
	allowInsecure bool,
) Client {
	return &client{
		redirectURI: redirectURI,
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

// currentUserID resolves the logged-in user's ID from the stored principal.
func (c *client) currentUserID() (string, error) {
	sess, err := c.Sessions.Get(session.ScopeUser)
	if err != nil {
		return "", err
	}
	return sess.Principal.UserID()
}

func (c *client) Login(
	ctx context.Context,
	credentials tradedeck.BrokerCredentials,
) (tradedeck.BrokerLoginResult, error) {
	result := tradedeck.BrokerLoginResult{}
	userID, err := c.currentUserID()
	if err != nil {
		return result, err
	}
	if err := credentials.Validate(); err != nil {
		return result, err
	}
	account := tradedeck.BrokerAccount{}
	message, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodPost,
			Path:   "api/brokers/login",
			ReqBodyObj: tradedeck.BrokerLoginRequest{
				UserID:      userID,
				RedirectURI: c.redirectURI,
				Credentials: credentials,
			},
			RespObj: &account,
		},
	)
	if err != nil {
		return result, err
	}
	result.Message = message
	if account != (tradedeck.BrokerAccount{}) {
		result.Account = &account
	}
	return result, nil
}

func (c *client) Dashboard(
	ctx context.Context,
) (tradedeck.BrokerDashboard, error) {
	dashboard := tradedeck.BrokerDashboard{}
	userID, err := c.currentUserID()
	if err != nil {
		return dashboard, err
	}
	_, err = c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    fmt.Sprintf("api/brokers/dashboard/%s", userID),
			RespObj: &dashboard,
		},
	)
	return dashboard, err
}

func (c *client) Toggle(
	ctx context.Context,
	brokerAPIID string,
) (string, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return "", err
	}
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodPost,
			Path: fmt.Sprintf(
				"api/brokers/toggle/%s/%s",
				userID,
				brokerAPIID,
			),
		},
	)
}

func (c *client) Refresh(
	ctx context.Context,
	brokerAPIID string,
) (string, error) {
	userID, err := c.currentUserID()
	if err != nil {
		return "", err
	}
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method: http.MethodPost,
			Path: fmt.Sprintf(
				"api/brokers/refresh/%s/%s",
				userID,
				brokerAPIID,
			),
		},
	)
}
