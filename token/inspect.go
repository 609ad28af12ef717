package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/apexboard/sessionkit/session"
)

// ExpiresAt extracts the exp claim from a JWT credential without verifying
// its signature. The second return is false when the credential is not a
// parseable JWT or carries no exp claim.
func ExpiresAt(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}

// Normalize fills missing expiry timestamps of a bundle from the exp claims
// of its credentials. Explicit timestamps always win; opaque non-JWT tokens
// pass through untouched and keep their zero expiry, which the accessor
// treats as already expired.
func Normalize(bundle session.TokenBundle) session.TokenBundle {
	if bundle.AccessExpiresAt.IsZero() {
		if exp, ok := ExpiresAt(bundle.Access); ok {
			bundle.AccessExpiresAt = exp
		}
	}
	if bundle.RefreshExpiresAt.IsZero() {
		if exp, ok := ExpiresAt(bundle.Refresh); ok {
			bundle.RefreshExpiresAt = exp
		}
	}
	return bundle
}
