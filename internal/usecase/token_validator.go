package usecase

import (
	"office-hours/internal/domain/user"
	"office-hours/internal/pkg/jwt"
)

// TokenValidator turns a bearer token into the caller's principal
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Principal, error) {
	return t.jwtService.Parse(tokenString)
}
