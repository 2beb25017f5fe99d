package users

import (
	"context"
	"crypto/tls"
	"net/http"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/apimachinery"
	"github.com/tradedeck/tradedeck/internal/session"
)

// Client manages accounts and authentication for the user scope.
type Client interface {
	// Login exchanges credentials for tokens. It does NOT persist the
	// session; that is the caller's decision.
	Login(
		ctx context.Context,
		req tradedeck.LoginRequest,
	) (tradedeck.AuthDetails, error)
	Register(
		ctx context.Context,
		req tradedeck.RegistrationRequest,
	) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ChangePassword(
		ctx context.Context,
		req tradedeck.ChangePasswordRequest,
	) (string, error)
	GetProfile(ctx context.Context) (tradedeck.User, error)
	UpdateProfile(
		ctx context.Context,
		update tradedeck.ProfileUpdate,
	) (tradedeck.User, error)
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

func (c *client) Login(
	ctx context.Context,
	req tradedeck.LoginRequest,
) (tradedeck.AuthDetails, error) {
	authDetails := tradedeck.AuthDetails{}
	if err := req.Validate(); err != nil {
		return authDetails, err
	}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/users/login",
			ReqBodyObj:      req,
			RespObj:         &authDetails,
			Unauthenticated: true,
		},
	)
	return authDetails, err
}

func (c *client) Register(
	ctx context.Context,
	req tradedeck.RegistrationRequest,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/users",
			ReqBodyObj:      req,
			Unauthenticated: true,
		},
	)
}

func (c *client) ForgotPassword(
	ctx context.Context,
	email string,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/users/forgot-password",
			ReqBodyObj:      tradedeck.ForgotPasswordRequest{Email: email},
			Unauthenticated: true,
		},
	)
}

func (c *client) ChangePassword(
	ctx context.Context,
	req tradedeck.ChangePasswordRequest,
) (string, error) {
	return c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPost,
			Path:       "api/users/change-password",
			ReqBodyObj: req,
		},
	)
}

func (c *client) GetProfile(ctx context.Context) (tradedeck.User, error) {
	user := tradedeck.User{}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:  http.MethodGet,
			Path:    "api/users/profile",
			RespObj: &user,
		},
	)
	return user, err
}

func (c *client) UpdateProfile(
	ctx context.Context,
	update tradedeck.ProfileUpdate,
) (tradedeck.User, error) {
	user := tradedeck.User{}
	_, err := c.ExecuteRequest(
		ctx,
		apimachinery.OutboundRequest{
			Method:     http.MethodPut,
			Path:       "api/users/profile",
			ReqBodyObj: update,
			RespObj:    &user,
		},
	)
	return user, err
}
