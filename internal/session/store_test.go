package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tradedeck/tradedeck"
)

func TestSessionAuthenticated(t *testing.T) {
	require.False(t, Session{}.Authenticated())
	require.False(t, Session{AccessToken: "at"}.Authenticated())
	require.False(
		t,
		Session{Principal: tradedeck.Principal(`{"id":"u-1"}`)}.Authenticated(),
	)
	require.True(
		t,
		Session{
			AccessToken: "at",
			Principal:   tradedeck.Principal(`{"id":"u-1"}`),
		}.Authenticated(),
	)
}

func TestSessionAuthorizationValue(t *testing.T) {
	require.Equal(
		t,
		"Bearer at",
		Session{AccessToken: "at"}.AuthorizationValue(),
	)
	require.Equal(
		t,
		"JWT at",
		Session{AccessToken: "at", TokenType: "JWT"}.AuthorizationValue(),
	)
}

func TestScopeLoginCommand(t *testing.T) {
	require.Equal(t, "tradedeck login", ScopeUser.LoginCommand())
	require.Equal(t, "tradedeck admin login", ScopeAdmin.LoginCommand())
}
