//go:build unit

package jwt

import (
	"testing"
	"time"

	"office-hours/internal/domain/user"
	"office-hours/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret-key-for-unit-tests-only"

func sign(t *testing.T, key string, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func validClaims(sub, role string) Claims {
	now := time.Now()
	return Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
}

func TestService_IssueThenParse(t *testing.T) {
	svc := NewService(secret, time.Hour)
	p := user.Principal{ID: uuid.New(), Role: user.RoleProfessor}

	token, err := svc.Issue(p)
	require.NoError(t, err)

	got, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestService_Parse_Rejects(t *testing.T) {
	svc := NewService(secret, time.Hour)
	id := uuid.New()

	noExp := validClaims(id.String(), "student")
	noExp.ExpiresAt = nil

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-token", ErrInvalidToken},
		{"foreign secret", sign(t, "other-secret", jwt.SigningMethodHS256, validClaims(id.String(), "student")), ErrInvalidToken},
		{"other hmac alg", sign(t, secret, jwt.SigningMethodHS512, validClaims(id.String(), "student")), ErrInvalidToken},
		{"missing exp", sign(t, secret, jwt.SigningMethodHS256, noExp), ErrInvalidToken},
		{"subject not a uuid", sign(t, secret, jwt.SigningMethodHS256, validClaims("alice", "student")), ErrInvalidToken},
		{"unknown role", sign(t, secret, jwt.SigningMethodHS256, validClaims(id.String(), "admin")), ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Parse(tt.token)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestService_Parse_Expired(t *testing.T) {
	svc := NewService(secret, time.Hour)
	token, err := svc.issueAt(user.Principal{ID: uuid.New(), Role: user.RoleStudent}, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	_, err = svc.Parse(token)
	assert.True(t, errs.Is(err, ErrExpiredToken), "got %v", err)
}

func TestService_Parse_WithinSkew(t *testing.T) {
	svc := NewService(secret, time.Hour)
	p := user.Principal{ID: uuid.New(), Role: user.RoleStudent}
	token, err := svc.issueAt(p, time.Now().Add(-time.Hour-10*time.Second))
	require.NoError(t, err)

	got, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}
