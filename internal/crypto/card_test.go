package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopping/internal/crypto"
)

const testPAN = "4111111111111111"

func TestCardToken_StableAndShort(t *testing.T) {
	a := crypto.CardToken(testPAN)
	b := crypto.CardToken("4111 1111-1111 1111")
	require.Equal(t, a, b)
	require.Len(t, a, 32)
	require.NotContains(t, a, testPAN)
}

func TestCardToken_DiffersPerCard(t *testing.T) {
	require.NotEqual(t, crypto.CardToken(testPAN), crypto.CardToken("5500000000000004"))
}

func TestMaskPAN(t *testing.T) {
	require.Equal(t, "************1111", crypto.MaskPAN(testPAN))
	require.Equal(t, "************1111", crypto.MaskPAN("4111 1111 1111 1111"))
	require.Equal(t, "123", crypto.MaskPAN("123"))
}

func TestValidPAN(t *testing.T) {
	require.True(t, crypto.ValidPAN(testPAN))
	require.True(t, crypto.ValidPAN("5500 0000 0000 0004"))
	require.False(t, crypto.ValidPAN("4111111111111112"))
	require.False(t, crypto.ValidPAN("4111"))
	require.False(t, crypto.ValidPAN("4111x11111111111"))
}
