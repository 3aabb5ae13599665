package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/librivault/librivault-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeToken(t *testing.T, role models.Role, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Role: role,
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestDecodeClaims(t *testing.T) {
	now := time.Now()
	tok := makeToken(t, models.RoleLibrarian, now.Add(time.Hour))

	claims, err := DecodeClaims(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, models.RoleLibrarian, claims.Role)
	assert.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestDecodeClaimsMalformed(t *testing.T) {
	_, err := DecodeClaims("not.a.token")
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "future exp", token: makeToken(t, models.RoleReader, now.Add(time.Hour)), want: false},
		{name: "past exp", token: makeToken(t, models.RoleReader, now.Add(-10*time.Minute)), want: true},
		{name: "malformed", token: "garbage", want: true},
		{name: "empty", token: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTokenExpired(tt.token, now))
		})
	}
}

func TestIsTokenExpiredNoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: models.RoleReader})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	// Fail safe: a token without exp counts as expired.
	assert.True(t, IsTokenExpired(signed, time.Now()))
}
