package ratio

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxDecimals 是受支持的 token 精度上限（SPL token 常见精度为 0~9）。
const MaxDecimals = 9

// DisplayToBasisPoints 将 display 金额换算为 basis points（链上最小单位整数）。
// 规则：乘以 10^decimals 后四舍五入到最近整数（0.5 远离零舍入）。
// 负数金额返回 ErrInvalidAmount；结果超出 u64 返回 ErrAmountOverflow。
func DisplayToBasisPoints(amount decimal.Decimal, decimals uint8) (uint64, error) {
	if decimals > MaxDecimals {
		return 0, fmt.Errorf("display->bp: decimals=%d: %w", decimals, ErrInvalidDecimals)
	}
	if amount.IsNegative() {
		return 0, fmt.Errorf("display->bp: amount=%s: %w", amount, ErrInvalidAmount)
	}

	// Shift 是精确的十进制移位，Round(0) 为 0.5 远离零舍入。
	bp := amount.Shift(int32(decimals)).Round(0).BigInt()
	if !bp.IsUint64() {
		return 0, fmt.Errorf("display->bp: amount=%s decimals=%d: %w", amount, decimals, ErrAmountOverflow)
	}
	return bp.Uint64(), nil
}

// BasisPointsToDisplay 将 basis points 换算为 display 金额。
// 这是精确的十进制移位（整数的精确字符串形式右起第 decimals 位放小数点），
// 全程不经过浮点数：历史上浮点换算正是同类代码里资金计算漂移的来源。
func BasisPointsToDisplay(value uint64, decimals uint8) (decimal.Decimal, error) {
	if decimals > MaxDecimals {
		return decimal.Decimal{}, fmt.Errorf("bp->display: decimals=%d: %w", decimals, ErrInvalidDecimals)
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(value), -int32(decimals)), nil
}
