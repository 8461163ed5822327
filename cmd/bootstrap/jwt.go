package bootstrap

import (
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTVerifier,
	),
)

func NewJWTVerifier(cfg config.Config) *jwt.Verifier {
	leeway, err := cfg.JWT.LeewayDuration()
	if err != nil {
		panic("invalid JWT_LEEWAY: " + err.Error())
	}

	return jwt.NewVerifier(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, leeway)
}
