package security_test

import (
	"center-docs-server/config"
	"center-docs-server/internal/security"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *security.JWTService {
	return security.NewJWTService(&config.JWTConfig{
		SecretKey:      "clave-secreta-de-pruebas",
		AccessTokenTTL: "15m",
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateAccessToken("user1", "María López", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token, []byte("clave-secreta-de-pruebas"))
	require.NoError(t, err)
	assert.Equal(t, "user1", claims.UserUUID)
	assert.Equal(t, "María López", claims.Name)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateJWT_WrongKey(t *testing.T) {
	svc := newTestJWTService()

	token, err := svc.GenerateAccessToken("user1", "María López", "admin")
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token, []byte("otra-clave"))
	require.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	svc := newTestJWTService()

	_, err := svc.ValidateJWT("no-es-un-token", []byte("clave-secreta-de-pruebas"))
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := security.HashPassword("MiClave123")
	require.NoError(t, err)
	assert.NotEqual(t, "MiClave123", hash)

	assert.True(t, security.CheckPassword(hash, "MiClave123"))
	assert.False(t, security.CheckPassword(hash, "OtraClave456"))
}
