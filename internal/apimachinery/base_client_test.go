package apimachinery

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/session"
)

func newTestClient(
	t *testing.T,
	apiAddress string,
	scope session.Scope,
) (*BaseClient, session.Store) {
	sessions := session.NewFileStore(t.TempDir())
	return &BaseClient{
		APIAddress: apiAddress,
		Scope:      scope,
		Sessions:   sessions,
		HTTPClient: &http.Client{},
	}, sessions
}

func setTestSession(
	t *testing.T,
	sessions session.Store,
	scope session.Scope,
	accessToken string,
) {
	require.NoError(
		t,
		sessions.Set(
			scope,
			session.Session{
				AccessToken: accessToken,
				Principal:   tradedeck.Principal(`{"id":"u-1"}`),
			},
		),
	)
}

func TestSubmitRequestHeaders(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				require.Equal(t, "application/json", r.Header.Get("Content-Type"))
				require.NotEmpty(t, r.Header.Get("X-Request-ID"))
				fmt.Fprintln(w, `{"success":true}`)
			},
		),
	)
	defer server.Close()
	client, sessions := newTestClient(t, server.URL, session.ScopeUser)
	setTestSession(t, sessions, session.ScopeUser, "test-token")
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:     http.MethodPost,
			Path:       "api/test",
			ReqBodyObj: map[string]string{"hello": "world"},
		},
	)
	require.NoError(t, err)
}

func TestSubmitRequestRespectsCallerAuthorization(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "Custom abc", r.Header.Get("Authorization"))
				fmt.Fprintln(w, `{"success":true}`)
			},
		),
	)
	defer server.Close()
	client, sessions := newTestClient(t, server.URL, session.ScopeUser)
	setTestSession(t, sessions, session.ScopeUser, "test-token")
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:  http.MethodGet,
			Path:    "api/test",
			Headers: map[string]string{"Authorization": "Custom abc"},
		},
	)
	require.NoError(t, err)
}

func TestSubmitRequestNoAuthorizationWhenUnauthenticated(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Empty(t, r.Header.Get("Authorization"))
				fmt.Fprintln(w, `{"success":true}`)
			},
		),
	)
	defer server.Close()
	client, sessions := newTestClient(t, server.URL, session.ScopeUser)
	setTestSession(t, sessions, session.ScopeUser, "test-token")
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/users/login",
			Unauthenticated: true,
		},
	)
	require.NoError(t, err)
}

func TestExecuteRequestDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(
					w,
					`{"success":true,"message":"all good","data":{"id":"u-1"}}`,
				)
			},
		),
	)
	defer server.Close()
	client, _ := newTestClient(t, server.URL, session.ScopeUser)
	respObj := struct {
		ID string `json:"id"`
	}{}
	message, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodGet,
			Path:            "api/test",
			RespObj:         &respObj,
			Unauthenticated: true,
		},
	)
	require.NoError(t, err)
	require.Equal(t, "all good", message)
	require.Equal(t, "u-1", respObj.ID)
}

func TestExecuteRequestEnvelopeFailure(t *testing.T) {
	// A 2xx response whose envelope says success=false is still a failure,
	// carrying the server's message verbatim.
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprintln(w, `{"success":false,"message":"no such broker"}`)
			},
		),
	)
	defer server.Close()
	client, _ := newTestClient(t, server.URL, session.ScopeUser)
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodGet,
			Path:            "api/test",
			Unauthenticated: true,
		},
	)
	require.Error(t, err)
	requestFailed, ok := err.(*tradedeck.ErrRequestFailed)
	require.True(t, ok)
	require.Equal(t, http.StatusOK, requestFailed.StatusCode)
	require.Equal(t, "no such broker", requestFailed.Message)
}

func TestExecuteRequestEmptyBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		),
	)
	defer server.Close()
	client, _ := newTestClient(t, server.URL, session.ScopeUser)
	message, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodGet,
			Path:            "api/test",
			Unauthenticated: true,
		},
	)
	require.NoError(t, err)
	require.Empty(t, message)
}

func TestSubmitRequestUnauthorizedTearsDownOwnScopeOnly(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprintln(w, `{"success":false,"message":"expired"}`)
			},
		),
	)
	defer server.Close()
	client, sessions := newTestClient(t, server.URL, session.ScopeUser)
	setTestSession(t, sessions, session.ScopeUser, "user-token")
	setTestSession(t, sessions, session.ScopeAdmin, "admin-token")

	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "api/watchlist",
		},
	)
	require.Error(t, err)
	sessionExpired, ok := err.(*tradedeck.ErrSessionExpired)
	require.True(t, ok)
	require.Equal(t, string(session.ScopeUser), sessionExpired.Scope)

	// The user session is gone...
	sess, err := sessions.Get(session.ScopeUser)
	require.NoError(t, err)
	require.False(t, sess.Authenticated())

	// ...but the admin session is untouched.
	sess, err = sessions.Get(session.ScopeAdmin)
	require.NoError(t, err)
	require.True(t, sess.Authenticated())
	require.Equal(t, "admin-token", sess.AccessToken)
}

func TestSubmitRequestUnauthorizedOnLoginIsNotATeardown(t *testing.T) {
	// A 401 from a login endpoint means bad credentials. No session teardown;
	// the caller gets an ordinary request failure.
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprintln(w, `{"success":false,"message":"bad credentials"}`)
			},
		),
	)
	defer server.Close()
	client, sessions := newTestClient(t, server.URL, session.ScopeUser)
	setTestSession(t, sessions, session.ScopeUser, "user-token")

	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/users/login",
			Unauthenticated: true,
		},
	)
	require.Error(t, err)
	requestFailed, ok := err.(*tradedeck.ErrRequestFailed)
	require.True(t, ok)
	require.Equal(t, "bad credentials", requestFailed.Message)

	sess, err := sessions.Get(session.ScopeUser)
	require.NoError(t, err)
	require.True(t, sess.Authenticated())
}

func TestSubmitRequestTransportErrorLeavesSessionIntact(t *testing.T) {
	// Point the client at a server that is no longer there.
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
	)
	serverURL := server.URL
	server.Close()

	client, sessions := newTestClient(t, serverURL, session.ScopeUser)
	setTestSession(t, sessions, session.ScopeUser, "user-token")

	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method: http.MethodGet,
			Path:   "api/watchlist",
		},
	)
	require.Error(t, err)
	_, isSessionExpired := err.(*tradedeck.ErrSessionExpired)
	require.False(t, isSessionExpired)

	sess, err := sessions.Get(session.ScopeUser)
	require.NoError(t, err)
	require.True(t, sess.Authenticated())
}

func TestSubmitRequestServerError(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprintln(w, `{"success":false,"message":"database is down"}`)
			},
		),
	)
	defer server.Close()
	client, _ := newTestClient(t, server.URL, session.ScopeUser)
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodGet,
			Path:            "api/test",
			Unauthenticated: true,
		},
	)
	require.Error(t, err)
	requestFailed, ok := err.(*tradedeck.ErrRequestFailed)
	require.True(t, ok)
	require.Equal(t, http.StatusInternalServerError, requestFailed.StatusCode)
	require.Equal(t, "database is down", requestFailed.Message)
}

func TestSubmitRequestSuccessCode(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprintln(w, `{"success":true}`)
			},
		),
	)
	defer server.Close()
	client, _ := newTestClient(t, server.URL, session.ScopeUser)
	// The caller demanded a 201; a 200 doesn't satisfy it.
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodPost,
			Path:            "api/test",
			SuccessCode:     http.StatusCreated,
			Unauthenticated: true,
		},
	)
	require.Error(t, err)
	require.IsType(t, &tradedeck.ErrRequestFailed{}, err)
}

func TestReadErrorMessageFallsBackToRawBody(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				fmt.Fprintln(w, "upstream timeout")
			},
		),
	)
	defer server.Close()
	client, _ := newTestClient(t, server.URL, session.ScopeUser)
	_, err := client.ExecuteRequest(
		context.Background(),
		OutboundRequest{
			Method:          http.MethodGet,
			Path:            "api/test",
			Unauthenticated: true,
		},
	)
	require.Error(t, err)
	requestFailed, ok := err.(*tradedeck.ErrRequestFailed)
	require.True(t, ok)
	require.Equal(t, "upstream timeout", requestFailed.Message)
}
