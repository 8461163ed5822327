//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"turf-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func TestVerifier_Verify(t *testing.T) {
	v := jwt.NewVerifier(secret, "", "", 0)

	t.Run("valid token", func(t *testing.T) {
		token, err := jwt.Sign(secret, "ext-1", "a@example.com", "Arun", "player", time.Hour)
		require.NoError(t, err)

		claims, err := v.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, "ext-1", claims.Subject)
		assert.Equal(t, "a@example.com", claims.Email)
		assert.Equal(t, "Arun", claims.Name)
		assert.Equal(t, "player", claims.Role)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := jwt.Sign(secret, "ext-1", "", "", "", -time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.Sign("other-secret", "ext-1", "", "", "", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := jwt.Sign(secret, "", "", "", "", time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other signing method", func(t *testing.T) {
		claims := gojwt.MapClaims{"sub": "ext-1", "exp": time.Now().Add(time.Hour).Unix()}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = v.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := v.Verify("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestVerifier_IssuerAndAudience(t *testing.T) {
	v := jwt.NewVerifier(secret, "https://id.example.com", "turf-booking", 0)

	claims := gojwt.MapClaims{
		"sub": "ext-1",
		"iss": "https://id.example.com",
		"aud": "turf-booking",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	good, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = v.Verify(good)
	require.NoError(t, err)

	claims["iss"] = "https://evil.example.com"
	bad, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = v.Verify(bad)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
