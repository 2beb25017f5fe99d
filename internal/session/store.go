package session

import (
	"github.com/tradedeck/tradedeck"
)

// Scope is an authentication namespace. The user and admin consoles maintain
// entirely separate sessions; nothing is ever shared between the two.
type Scope string

const (
	ScopeUser  Scope = "user"
	ScopeAdmin Scope = "admin"
)

// LoginCommand returns the CLI command that re-establishes this scope's
// session. Surfaced whenever a session is torn down.
func (s Scope) LoginCommand() string {
	if s == ScopeAdmin {
		return "tradedeck admin login"
	}
	return "tradedeck login"
}

// Session is one scope's persisted authentication state. The refresh token
// is stored because the API issues one, but this client never exchanges it;
// an expired access token tears the session down instead.
type Session struct {
	AccessToken  string              `json:"accessToken,omitempty"`
	RefreshToken string              `json:"refreshToken,omitempty"`
	TokenType    string              `json:"tokenType,omitempty"`
	Principal    tradedeck.Principal `json:"principal,omitempty"`
}

// Authenticated reports whether this session can be used for authenticated
// calls. Both the token and the principal must be present.
func (s Session) Authenticated() bool {
	return s.AccessToken != "" && len(s.Principal) > 0
}

// AuthorizationValue renders the Authorization header value for this
// session. The token type defaults to Bearer when the server omitted one.
func (s Session) AuthorizationValue() string {
	tokenType := s.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return tokenType + " " + s.AccessToken
}

// Store persists sessions per scope. Implementations perform no validation
// of what they are given; a malformed token stored here simply produces
// failed authenticated calls later. Clear must be idempotent.
type Store interface {
	Get(scope Scope) (Session, error)
	Set(scope Scope, session Session) error
	Clear(scope Scope) error
}
