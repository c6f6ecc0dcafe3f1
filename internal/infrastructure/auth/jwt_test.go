package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codearena/arena-admin/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 30, 7)

	pair, err := svc.Generate("u1", "sess-1", authorization.RoleModerator)
	require.NoError(t, err)
	assert.Equal(t, int64(1800), pair.ExpiresIn)

	claims, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.StaffID)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, authorization.RoleModerator, claims.Role)

	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := NewJWTService("test-secret", 30, 7)
	pair, err := svc.Generate("u1", "sess-1", authorization.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err, "access tokens cannot refresh")

	next, claims, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	_, err = svc.VerifyAccess(next.AccessToken)
	assert.NoError(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	pair, err := NewJWTService("a", 30, 7).Generate("u1", "s", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("b", 30, 7).Verify(pair.AccessToken)
	assert.Error(t, err)
}
