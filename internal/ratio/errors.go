package ratio

import "errors"

// 构造期与换算期的失败根因，通过 errors.Is 判别。
// 比率/精度数据上的静默回退会直接算错资金，所有失败一律显式返回，绝不替换默认值。
var (
	// ErrInvalidRatio 表示比率不是正整数。
	ErrInvalidRatio = errors.New("ratio must be positive")
	// ErrInvalidDecimals 表示 token 精度不在 0~9 范围内。
	ErrInvalidDecimals = errors.New("decimals out of range (0-9)")
	// ErrMissingTicker 表示 ticker 标签为空。
	ErrMissingTicker = errors.New("ticker must not be empty")
	// ErrInvalidAmount 表示金额为负数。
	ErrInvalidAmount = errors.New("amount must not be negative")
	// ErrAmountOverflow 表示换算结果超出 u64 basis points 可表示范围。
	ErrAmountOverflow = errors.New("amount overflows u64 basis points")
	// ErrDustRemainder 表示精确兑换模式下输入金额在固定比率下无法整除。
	ErrDustRemainder = errors.New("input leaves dust remainder under fixed ratio")
)
