package usecase

import (
	"dealer-portal/internal/domain/user"
	"dealer-portal/internal/pkg/jwt"
	"dealer-portal/internal/usecase/shared"
)

// TokenValidator turns a raw access token into the acting identity the
// middleware puts on the request context.
type TokenValidator interface {
	ValidateToken(tokenString string) (shared.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (shared.Actor, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Actor{}, err
	}
	if claims.TokenType != jwt.TokenTypeAccess {
		return shared.Actor{}, jwt.ErrInvalidToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Actor{}, err
	}

	return shared.Actor{
		UserID:   claims.UserID,
		DealerID: claims.DealerID,
		Role:     role,
	}, nil
}
