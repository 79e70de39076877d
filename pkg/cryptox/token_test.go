package cryptox_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tasche-dev/tasche/pkg/cryptox"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("produces url-safe tokens of the right length", func(t *testing.T) {
		token, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, cryptox.TokenSize256)
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		_, err := cryptox.GenerateToken(0)
		require.Error(t, err)

		_, err = cryptox.GenerateToken(-1)
		require.Error(t, err)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		a := cryptox.MustGenerateToken(cryptox.TokenSize128)
		b := cryptox.MustGenerateToken(cryptox.TokenSize128)
		require.NotEqual(t, a, b)
	})
}

func TestTokensEqual(t *testing.T) {
	t.Parallel()

	token := cryptox.MustGenerateToken(cryptox.TokenSize128)
	require.True(t, cryptox.TokensEqual(token, token))
	require.False(t, cryptox.TokensEqual(token, token+"x"))
	require.False(t, cryptox.TokensEqual(token, ""))
}
