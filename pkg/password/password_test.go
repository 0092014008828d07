package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/pkg/password"
)

func TestHashYVerify(t *testing.T) {
	hash, err := password.Hash("secreto1")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", hash, "nunca se guarda el texto plano")

	assert.NoError(t, password.Verify(hash, "secreto1"))
	assert.ErrorIs(t, password.Verify(hash, "otro"), password.ErrMismatch)
}

func TestHash_Salado(t *testing.T) {
	a, err := password.Hash("secreto1")
	require.NoError(t, err)
	b, err := password.Hash("secreto1")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "dos hashes del mismo valor deben diferir por la sal")
}

func TestVerify_HashVacio(t *testing.T) {
	assert.ErrorIs(t, password.Verify("", "x"), password.ErrMismatch)
}

func TestHash_Vacio(t *testing.T) {
	_, err := password.Hash("")
	assert.Error(t, err)
}
