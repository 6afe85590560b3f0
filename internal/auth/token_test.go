package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndParseAccessToken(t *testing.T) {
	tok, err := BuildAccessToken(42, "secret", time.Minute)
	require.NoError(t, err)

	uid, err := ParseAccessToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		tok, _ := BuildAccessToken(1, "secret-A", time.Minute)
		_, err := ParseAccessToken(tok, "secret-B")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, _ := BuildAccessToken(1, "secret", -time.Minute)
		_, err := ParseAccessToken(tok, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseAccessToken("not-a-jwt", "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong token type", func(t *testing.T) {
		claims := Claims{
			TokenType: "refresh",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = ParseAccessToken(tok, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("no expiry", func(t *testing.T) {
		claims := Claims{TokenType: TokenTypeAccess, RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = ParseAccessToken(tok, "secret")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
