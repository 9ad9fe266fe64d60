//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"office-hours/internal/domain/user"
	"office-hours/internal/pkg/config"
	"office-hours/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return issue(t, jwt.NewService(h.cfg.Secret, h.cfg.Duration), userID, role)
}

// Professor returns a fresh professor id with a token for it.
func (h *JWTHelper) Professor(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleProfessor)
}

// Student returns a fresh student id with a token for it.
func (h *JWTHelper) Student(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, user.RoleStudent)
}

// CreateExpiredToken is expired by more than the verifier's skew allowance.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return issue(t, jwt.NewService(h.cfg.Secret, -time.Hour), userID, role)
}

func issue(t *testing.T, svc *jwt.Service, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := svc.Issue(user.Principal{ID: userID, Role: role})
	require.NoError(t, err)
	return token
}
