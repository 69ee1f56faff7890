package jwt

import (
	"testing"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService("secret", "1h")
	employeeID := "emp-1"

	token, expiresAt, err := svc.GenerateAccessToken("user-1", &employeeID, user.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, "EMPLOYEE", claims["role"])
	assert.Equal(t, "access", claims["type"])
}

func TestGenerateAccessToken_WithoutEmployee(t *testing.T) {
	svc := NewJWTService("secret", "1h")

	token, _, err := svc.GenerateAccessToken("admin-1", nil, user.RoleAdmin)
	require.NoError(t, err)

	parsed, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(t.Context())
	require.NoError(t, err)
	assert.Nil(t, claims["employee_id"])
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("secret", "soon")

	_, _, err := svc.GenerateAccessToken("user-1", nil, user.RoleAdmin)
	assert.Error(t, err)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("secret", "1h").GenerateAccessToken("user-1", nil, user.RoleAdmin)
	require.NoError(t, err)

	_, err = jwtauth.VerifyToken(NewJWTService("other", "1h").JWTAuth(), token)
	assert.Error(t, err)
}
