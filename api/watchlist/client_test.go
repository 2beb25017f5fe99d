package watchlist

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

func TestList(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/watchlist", r.URL.Path)
				require.Equal(t, "2", r.URL.Query().Get("page"))
				require.Equal(t, "25", r.URL.Query().Get("limit"))
				require.Equal(t, "SBIN", r.URL.Query().Get("search"))
				fmt.Fprintln(
					w,
					`{"success":true,"data":{
						"items":[{"id":"w-1","exchangeSymbol":"NSE:SBIN"}],
						"page":2,"totalPages":3,"totalItems":55
					}}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, newTestSessions(t), false)

	page, err := client.List(
		context.Background(),
		ListOptions{Page: 2, Limit: 25, Search: "SBIN"},
	)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 55, page.TotalItems)
}

func TestListDefaults(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "1", r.URL.Query().Get("page"))
				require.Equal(t, "10", r.URL.Query().Get("limit"))
				require.False(t, r.URL.Query().Has("search"))
				fmt.Fprintln(w, `{"success":true,"data":[]}`)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, newTestSessions(t), false)

	_, err := client.List(context.Background(), ListOptions{})
	require.NoError(t, err)
}

func TestListSessionExpiry(t *testing.T) {
	// A 401 on any authenticated call tears down the user session before the
	// error reaches the caller.
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				fmt.Fprintln(w, `{"success":false,"message":"token expired"}`)
			},
		),
	)
	defer server.Close()
	sessions := newTestSessions(t)
	client := NewClient(server.URL, sessions, false)

	_, err := client.List(context.Background(), ListOptions{})
	require.Error(t, err)
	require.IsType(t, &tradedeck.ErrSessionExpired{}, err)

	sess, err := sessions.Get(session.ScopeUser)
	require.NoError(t, err)
	require.False(t, sess.Authenticated())
}

func TestExecuteValidation(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestCount++
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, newTestSessions(t), false)

	_, err := client.Execute(
		context.Background(),
		"w-1",
		tradedeck.ExecuteOrderRequest{Action: "HOLD", BrokerName: "zerodha"},
	)
	require.Error(t, err)
	require.Zero(t, requestCount)
}

func TestExecute(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/watchlist/w-1/execute", r.URL.Path)
				fmt.Fprintln(w, `{"success":true,"message":"Order placed"}`)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, newTestSessions(t), false)

	message, err := client.Execute(
		context.Background(),
		"w-1",
		tradedeck.ExecuteOrderRequest{Action: "BUY", BrokerName: "zerodha"},
	)
	require.NoError(t, err)
	require.Equal(t, "Order placed", message)
}

func TestChart(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/api/watchlist/w-1/chart", r.URL.Path)
				require.Equal(t, "2026-01-01", r.URL.Query().Get("startDate"))
				fmt.Fprintln(
					w,
					`{"success":true,"data":[{"date":"2026-01-02","value":1.5}]}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, newTestSessions(t), false)

	points, err := client.Chart(context.Background(), "w-1", "2026-01-01")
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.Equal(t, 1.5, points[0].Value)
}
