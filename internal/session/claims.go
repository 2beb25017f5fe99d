package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenExpiry decodes the access token as a JWT, without verifying its
// signature, and returns its expiry time. Used only for display; all
// authorization decisions belong to the server. Returns an error if the
// token is not a JWT or carries no expiry claim.
func TokenExpiry(accessToken string) (time.Time, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(accessToken, claims); err != nil {
		return time.Time{}, errors.Wrap(err, "error decoding access token")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, errors.New("access token carries no expiry claim")
	}
	return exp.Time, nil
}
