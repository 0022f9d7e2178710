package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired inspects the exp claim of a stored access token so the
// client can refuse a call with a dead token instead of collecting 401s.
// The signature is the server's to verify, so the parse is unverified.
// Tokens that are not JWTs or carry no exp claim pass; the server decides.
func TokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
