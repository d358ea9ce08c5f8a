package walletsig_test

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/limbo/vital/pkg/walletsig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known key from the Ethereum tooling docs; its address is fixed.
const (
	knownKey     = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	knownAddress = "0x2c7536e3605d9c16a7a3d7b1898e529396a65c23"
)

func knownPrivateKey(t *testing.T) *secp256k1.PrivateKey {
	raw, err := hex.DecodeString(knownKey)
	require.NoError(t, err)
	return secp256k1.PrivKeyFromBytes(raw)
}

func TestPubkeyToAddress(t *testing.T) {
	key := knownPrivateKey(t)
	assert.Equal(t, knownAddress, walletsig.PubkeyToAddress(key.PubKey()))
}

func TestRecoverAddress(t *testing.T) {
	key := knownPrivateKey(t)
	nonce := "9f86d081884c7d659a2feaa0c55ad015"
	sig := walletsig.SignMessage(key, nonce)
	t.Run("recovered", func(t *testing.T) {
		addr, err := walletsig.RecoverAddress(nonce, sig)
		assert.NoError(t, err)
		assert.Equal(t, knownAddress, addr)
	})
	t.Run("v as 0/1", func(t *testing.T) {
		raw, err := hex.DecodeString(strings.TrimPrefix(sig, "0x"))
		require.NoError(t, err)
		raw[64] -= 27
		addr, err := walletsig.RecoverAddress(nonce, hex.EncodeToString(raw))
		assert.NoError(t, err)
		assert.Equal(t, knownAddress, addr)
	})
	t.Run("other message recovers other address", func(t *testing.T) {
		addr, err := walletsig.RecoverAddress("another nonce", sig)
		if err == nil {
			assert.NotEqual(t, knownAddress, addr)
		}
	})
	t.Run("malformed hex", func(t *testing.T) {
		_, err := walletsig.RecoverAddress(nonce, "0xzz")
		assert.ErrorIs(t, err, walletsig.ErrMalformedSignature)
	})
	t.Run("wrong length", func(t *testing.T) {
		_, err := walletsig.RecoverAddress(nonce, "0x"+strings.Repeat("ab", 64))
		assert.ErrorIs(t, err, walletsig.ErrMalformedSignature)
	})
	t.Run("bad recovery byte", func(t *testing.T) {
		raw, err := hex.DecodeString(strings.TrimPrefix(sig, "0x"))
		require.NoError(t, err)
		raw[64] = 35
		_, err = walletsig.RecoverAddress(nonce, hex.EncodeToString(raw))
		assert.ErrorIs(t, err, walletsig.ErrMalformedSignature)
	})
}

func TestSameAddress(t *testing.T) {
	assert.True(t, walletsig.SameAddress("0x2C7536E3605D9C16a7a3D7b1898e529396a65c23", knownAddress))
	assert.False(t, walletsig.SameAddress("0x0000000000000000000000000000000000000001", knownAddress))
}
