package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/librivault/librivault-cli/internal/common"
)

// Claims are the token payload fields the client consumes: the registered
// sub/exp/iat claims plus the server's role claim.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// DecodeClaims extracts the claims from a bearer token without verifying
// its signature. The client holds no key material; the server re-validates
// the token on every call, so local decoding is only used to read the
// subject, role and expiry.
func DecodeClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// IsTokenExpired reports whether the token's exp claim is in the past at
// the given instant. Malformed tokens and tokens without an exp claim count
// as expired: when in doubt, the client assumes it must log in again.
func IsTokenExpired(token string, now time.Time) bool {
	claims, err := DecodeClaims(token)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Time.Before(now)
}
