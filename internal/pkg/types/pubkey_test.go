package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wsolMintStr = "So11111111111111111111111111111111111111112"

func TestPubkey_Base58RoundTrip(t *testing.T) {
	p, err := TryPubkeyFromBase58(wsolMintStr)
	require.NoError(t, err)
	assert.Equal(t, wsolMintStr, p.String())
	assert.True(t, p.Equals(PubkeyFromBase58(wsolMintStr)))
	assert.False(t, p.IsZero())
}

func TestTryPubkeyFromBase58_Invalid(t *testing.T) {
	// 非法字符
	_, err := TryPubkeyFromBase58("0OIl")
	assert.Error(t, err)

	// 长度不是 32 字节
	_, err = TryPubkeyFromBase58("abc")
	assert.Error(t, err)
}

func TestPubkeyFromBase58_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { PubkeyFromBase58("not-base58!") })
}

func TestPubkey_IsZero(t *testing.T) {
	assert.True(t, Pubkey{}.IsZero())
}
