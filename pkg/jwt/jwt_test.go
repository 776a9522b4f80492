package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Compras-api/pkg/jwt"
)

const secret = "clave-de-prueba"

func TestGenerateYParse(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "admin", "compras-api", time.Hour)
	require.NoError(t, err)

	claims, err := jwt.Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "compras-api", claims.Issuer)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "admin", "compras-api", time.Hour)
	require.NoError(t, err)

	_, err = jwt.Parse("otra-clave", token)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	token, err := jwt.Generate(secret, "u-1", "bodega", "compras-api", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.Parse(secret, token)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u-1", "admin", "x", time.Hour)
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)

	_, err = jwt.Parse("", "a.b.c")
	assert.ErrorIs(t, err, jwt.ErrEmptySecret)
}
