package jwt

import (
	"errors"
	"time"

	"office-hours/internal/domain/user"
	"office-hours/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errs.New("invalid token")
	ErrExpiredToken = errs.New("token expired")
	ErrUnknownRole  = errs.New("token carries unknown role")
)

// clockSkew tolerated on exp/nbf between the identity provider and us.
const clockSkew = 30 * time.Second

// Claims carries the principal: the user id in "sub" and the role beside it.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Service verifies HS256 tokens issued by the identity provider. Issue exists
// for tooling and tests that need a signed principal.
type Service struct {
	secretKey []byte
	ttl       time.Duration
	parser    *jwt.Parser
}

func NewService(secretKey string, ttl time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(clockSkew),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *Service) Issue(p user.Principal) (string, error) {
	return s.issueAt(p, time.Now())
}

func (s *Service) issueAt(p user.Principal, now time.Time) (string, error) {
	claims := Claims{
		Role: p.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
	if err != nil {
		return "", errs.Wrap(err, "sign token")
	}
	return signed, nil
}

// Parse verifies the signature and expiry and returns the principal the
// token names. A well-signed token with a bad subject or role is rejected.
func (s *Service) Parse(tokenString string) (user.Principal, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return user.Principal{}, errs.Mark(err, ErrExpiredToken)
		}
		return user.Principal{}, errs.Mark(err, ErrInvalidToken)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return user.Principal{}, errs.Mark(errs.Wrap(err, "subject"), ErrInvalidToken)
	}
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Principal{}, errs.Mark(errs.Wrapf(err, "role %q", claims.Role), ErrUnknownRole)
	}
	return user.Principal{ID: id, Role: role}, nil
}
