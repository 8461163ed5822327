package usecase

import (
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (profile.Identity, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{
		verifier: verifier,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (profile.Identity, error) {
	claims, err := t.verifier.Verify(tokenString)
	if err != nil {
		return profile.Identity{}, err
	}

	return profile.Identity{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		Role:       claims.Role,
	}, nil
}
