//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens the way the external identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, identity profile.Identity) string {
	t.Helper()
	token, err := jwt.Sign(h.cfg.Secret, identity.ExternalID, identity.Email, identity.Name, identity.Role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, identity profile.Identity) string {
	t.Helper()
	token, err := jwt.Sign(h.cfg.Secret, identity.ExternalID, identity.Email, identity.Name, identity.Role, -time.Hour)
	require.NoError(t, err)
	return token
}
