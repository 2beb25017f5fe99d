package brokers

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradedeck/tradedeck"
	"github.com/tradedeck/tradedeck/internal/session"
)

const testRedirectURI = "http://localhost:3000/callback"

func newTestSessions(t *testing.T) session.Store {
	sessions := session.NewFileStore(t.TempDir())
	require.NoError(
		t,
		sessions.Set(
			session.ScopeUser,
			session.Session{
				AccessToken: "test-token",
				Principal:   tradedeck.Principal(`{"id":"u-1"}`),
			},
		),
	)
	return sessions
}

func TestLoginValidationBlocksSubmission(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestCount++
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, testRedirectURI, newTestSessions(t), false)

	_, err := client.Login(
		context.Background(),
		tradedeck.ZerodhaCredentials{
			UserID:    "ZR123",
			Password:  "pass",
			APIKey:    "key",
			APISecret: "secret",
			PIN:       "123",
		},
	)
	require.Error(t, err)
	fieldErrs, ok := err.(tradedeck.FieldErrors)
	require.True(t, ok)
	require.Equal(t, "PIN must be at least 4 digits", fieldErrs["pin"])

	// Nothing reached the server.
	require.Zero(t, requestCount)
}

func TestLoginMissingIdentityBlocksSubmission(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestCount++
			},
		),
	)
	defer server.Close()
	sessions := session.NewFileStore(t.TempDir())
	require.NoError(
		t,
		sessions.Set(
			session.ScopeUser,
			session.Session{
				AccessToken: "test-token",
				Principal:   tradedeck.Principal(`{"email":"a@b.c"}`),
			},
		),
	)
	client := NewClient(server.URL, testRedirectURI, sessions, false)

	_, err := client.Login(
		context.Background(),
		tradedeck.DhanCredentials{AccessToken: "token"},
	)
	require.Error(t, err)
	require.IsType(t, &tradedeck.ErrMissingUserIdentity{}, err)
	require.Zero(t, requestCount)
}

func TestLoginSubmitsNestedShape(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/brokers/login", r.URL.Path)
				bodyBytes, err := ioutil.ReadAll(r.Body)
				require.NoError(t, err)
				body := map[string]interface{}{}
				require.NoError(t, json.Unmarshal(bodyBytes, &body))
				require.Equal(t, "u-1", body["userId"])
				require.Equal(t, "upstox", body["brokerName"])
				require.Equal(t, testRedirectURI, body["redirectURI"])
				require.Contains(t, body, "credentials")
				fmt.Fprintln(
					w,
					`{"success":true,"message":"Broker connected",`+
						`"data":{"id":"b-1","name":"Upstox"}}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, testRedirectURI, newTestSessions(t), false)

	result, err := client.Login(
		context.Background(),
		tradedeck.UpstoxCredentials{APIKey: "key", APISecret: "secret"},
	)
	require.NoError(t, err)
	require.Equal(t, "Broker connected", result.Message)
	require.NotNil(t, result.Account)
	require.Equal(t, "b-1", result.Account.ID)
}

func TestLoginSubmitsFlatShapeForDhan(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				bodyBytes, err := ioutil.ReadAll(r.Body)
				require.NoError(t, err)
				body := map[string]interface{}{}
				require.NoError(t, json.Unmarshal(bodyBytes, &body))
				require.Equal(
					t,
					map[string]interface{}{
						"userId":      "u-1",
						"accessToken": "dhan-token",
					},
					body,
				)
				fmt.Fprintln(w, `{"success":true,"message":"Broker connected"}`)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, testRedirectURI, newTestSessions(t), false)

	result, err := client.Login(
		context.Background(),
		tradedeck.DhanCredentials{AccessToken: "dhan-token"},
	)
	require.NoError(t, err)
	require.Equal(t, "Broker connected", result.Message)
	// No account came back.
	require.Nil(t, result.Account)
}

func TestDashboard(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/brokers/dashboard/u-1", r.URL.Path)
				fmt.Fprintln(
					w,
					`{"success":true,"data":{"brokers":[{"id":"b-1"}]}}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, testRedirectURI, newTestSessions(t), false)

	dashboard, err := client.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, dashboard.Brokers, 1)
}

func TestToggle(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/brokers/toggle/u-1/b-1", r.URL.Path)
				fmt.Fprintln(w, `{"success":true,"message":"Broker disabled"}`)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, testRedirectURI, newTestSessions(t), false)

	message, err := client.Toggle(context.Background(), "b-1")
	require.NoError(t, err)
	require.Equal(t, "Broker disabled", message)
}

func TestRefresh(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/brokers/refresh/u-1/b-1", r.URL.Path)
				fmt.Fprintln(w, `{"success":true,"message":"Broker refreshed"}`)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, testRedirectURI, newTestSessions(t), false)

	message, err := client.Refresh(context.Background(), "b-1")
	require.NoError(t, err)
	require.Equal(t, "Broker refreshed", message)
}
