package layout

import "strings"

// PoolState.Flags 各 bit 含义。bit 6、7 未定义，解码时忽略（向前兼容）。
const (
	flagOneToManyRatio       = 1 << 0
	flagLiquidityPaused      = 1 << 1
	flagSwapsPaused          = 1 << 2
	flagWithdrawalProtection = 1 << 3
	flagSingleLPTokenMode    = 1 << 4
	flagSwapOwnerOnly        = 1 << 5
)

// PoolFlags 是 flags 字节解码后的具名布尔集合。
// 按值传递给消费方，解码后不应再回头检查原始字节。
type PoolFlags struct {
	OneToManyRatio       bool // 比率一侧恰为 1.0 display 单位（精确兑换池）
	LiquidityPaused      bool // 流动性操作暂停
	SwapsPaused          bool // swap 暂停
	WithdrawalProtection bool // 提取保护
	SingleLPTokenMode    bool // 单 LP token 模式
	SwapOwnerOnly        bool // 仅池子 owner 可 swap
}

// InterpretFlags 将标志字节解码为 PoolFlags。
// 对全部 256 个取值都是全函数，永不失败；未定义的高位 bit 不暴露。
func InterpretFlags(b byte) PoolFlags {
	return PoolFlags{
		OneToManyRatio:       b&flagOneToManyRatio != 0,
		LiquidityPaused:      b&flagLiquidityPaused != 0,
		SwapsPaused:          b&flagSwapsPaused != 0,
		WithdrawalProtection: b&flagWithdrawalProtection != 0,
		SingleLPTokenMode:    b&flagSingleLPTokenMode != 0,
		SwapOwnerOnly:        b&flagSwapOwnerOnly != 0,
	}
}

// Byte 重新编码已定义的 bit（测试与构造 fixture 用，高位恒为 0）。
func (f PoolFlags) Byte() byte {
	var b byte
	if f.OneToManyRatio {
		b |= flagOneToManyRatio
	}
	if f.LiquidityPaused {
		b |= flagLiquidityPaused
	}
	if f.SwapsPaused {
		b |= flagSwapsPaused
	}
	if f.WithdrawalProtection {
		b |= flagWithdrawalProtection
	}
	if f.SingleLPTokenMode {
		b |= flagSingleLPTokenMode
	}
	if f.SwapOwnerOnly {
		b |= flagSwapOwnerOnly
	}
	return b
}

// String 返回已置位标志的简短列表，如 "one_to_many|swaps_paused"；全 0 时返回 "none"。
func (f PoolFlags) String() string {
	var parts []string
	if f.OneToManyRatio {
		parts = append(parts, "one_to_many")
	}
	if f.LiquidityPaused {
		parts = append(parts, "liquidity_paused")
	}
	if f.SwapsPaused {
		parts = append(parts, "swaps_paused")
	}
	if f.WithdrawalProtection {
		parts = append(parts, "withdrawal_protection")
	}
	if f.SingleLPTokenMode {
		parts = append(parts, "single_lp_token")
	}
	if f.SwapOwnerOnly {
		parts = append(parts, "swap_owner_only")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}
