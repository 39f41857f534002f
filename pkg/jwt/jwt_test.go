package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateYParse(t *testing.T) {
	token, err := Generate("secret", 42, "cajero", "punto-venta", 60)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, role, err := Parse("secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "cajero", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := Generate("", 1, "admin", "punto-venta", 60)
	assert.Error(t, err)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	token, err := Generate("secret-a", 1, "admin", "punto-venta", 60)
	require.NoError(t, err)

	_, _, err = Parse("secret-b", token)
	assert.Error(t, err)
}

func TestParse_TokenExpirado(t *testing.T) {
	token, err := Generate("secret", 1, "admin", "punto-venta", -1)
	require.NoError(t, err)

	_, _, err = Parse("secret", token)
	assert.Error(t, err)
}
