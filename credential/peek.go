package credential

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpired reports whether a persisted token is a JWT whose exp claim is
// already in the past. The credential is opaque to this client, but when the
// backend happens to issue JWTs the expiry can be read without verifying the
// signature, and a token known to be dead is treated as absent instead of
// being replayed into a guaranteed 401.
//
// Tokens that do not parse as JWTs, or that carry no exp claim, pass through
// untouched.
func tokenExpired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
