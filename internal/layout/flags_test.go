package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterpretFlags_AllClear(t *testing.T) {
	f := InterpretFlags(0)
	assert.Equal(t, PoolFlags{}, f)
	assert.Equal(t, "none", f.String())
}

func TestInterpretFlags_AllSet(t *testing.T) {
	f := InterpretFlags(0b0011_1111)
	assert.Equal(t, PoolFlags{
		OneToManyRatio:       true,
		LiquidityPaused:      true,
		SwapsPaused:          true,
		WithdrawalProtection: true,
		SingleLPTokenMode:    true,
		SwapOwnerOnly:        true,
	}, f)
}

// 未定义的高位 bit 被忽略（向前兼容）。
func TestInterpretFlags_UndefinedBitsIgnored(t *testing.T) {
	assert.Equal(t, InterpretFlags(0), InterpretFlags(0b1100_0000))
	assert.Equal(t, InterpretFlags(0b0000_0101), InterpretFlags(0b1100_0101))
}

// 对全部 256 个取值都是全函数，且已定义 bit 经 Byte() 往返一致。
func TestInterpretFlags_Total(t *testing.T) {
	for v := 0; v < 256; v++ {
		f := InterpretFlags(byte(v))
		assert.Equal(t, byte(v)&0b0011_1111, f.Byte(), "v=%d", v)
	}
}

func TestPoolFlags_String(t *testing.T) {
	f := InterpretFlags(0b0000_0101)
	assert.Equal(t, "one_to_many|swaps_paused", f.String())
}
