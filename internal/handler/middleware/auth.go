package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

var (
	errMissingToken = errs.New("access token required")
	errNoIdentity   = errs.New("identity missing from context")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxIdentityKey = "identity"
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity stores the verified caller; tests use it to stand in for RequireAuth.
func SetIdentity(c *gin.Context, identity profile.Identity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxUserIDKey, identity.ExternalID)
	c.Set(ctxUserRoleKey, identity.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": identity.ExternalID,
		"role":    identity.Role,
	})
}

func GetIdentity(c *gin.Context) (profile.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return profile.Identity{}, false
	}
	identity, ok := v.(profile.Identity)
	return identity, ok
}

// MustIdentity aborts with 401 when RequireAuth did not run.
func MustIdentity(c *gin.Context) (profile.Identity, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoIdentity, "Unauthorized", nil)
	}
	return identity, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
