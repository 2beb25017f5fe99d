package users

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

func TestLoginValidation(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				requestCount++
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, session.NewFileStore(t.TempDir()), false)

	_, err := client.Login(
		context.Background(),
		tradedeck.LoginRequest{Password: "pass"},
	)
	require.Error(t, err)
	fieldErrs, ok := err.(tradedeck.FieldErrors)
	require.True(t, ok)
	require.Equal(t, "Email is required", fieldErrs["email"])
	require.Zero(t, requestCount)
}

func TestLogin(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/users/login", r.URL.Path)
				// Login is unauthenticated; no token is attached.
				require.Empty(t, r.Header.Get("Authorization"))
				fmt.Fprintln(
					w,
					`{"success":true,"data":{
						"accessToken":"at",
						"refreshToken":"rt",
						"tokenType":"Bearer",
						"user":{"id":"u-1","email":"a@b.c"}
					}}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, session.NewFileStore(t.TempDir()), false)

	authDetails, err := client.Login(
		context.Background(),
		tradedeck.LoginRequest{Email: "a@b.c", Password: "pass"},
	)
	require.NoError(t, err)
	require.Equal(t, "at", authDetails.AccessToken)
	require.Equal(t, "rt", authDetails.RefreshToken)
	userID, err := authDetails.User.UserID()
	require.NoError(t, err)
	require.Equal(t, "u-1", userID)
}

func TestGetProfile(t *testing.T) {
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
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodGet, r.Method)
				require.Equal(t, "/api/users/profile", r.URL.Path)
				require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				fmt.Fprintln(
					w,
					`{"success":true,"data":{"id":"u-1","email":"a@b.c"}}`,
				)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, sessions, false)

	user, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "a@b.c", user.Email)
}

func TestChangePassword(t *testing.T) {
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
	server := httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, http.MethodPost, r.Method)
				require.Equal(t, "/api/users/change-password", r.URL.Path)
				fmt.Fprintln(w, `{"success":true,"message":"Password changed"}`)
			},
		),
	)
	defer server.Close()
	client := NewClient(server.URL, sessions, false)

	message, err := client.ChangePassword(
		context.Background(),
		tradedeck.ChangePasswordRequest{
			CurrentPassword: "old",
			NewPassword:     "new",
		},
	)
	require.NoError(t, err)
	require.Equal(t, "Password changed", message)
}
