package tools

import (
	"frt-state-sol/internal/consts"
	"frt-state-sol/internal/pkg/types"
)

const (
	WSOLDecimals = 9
	USDCDecimals = 6
	USDTDecimals = 6
)

// TokenMeta 表示给 RatioPair 打标签所需的最小 token 元数据。
// 固定比率池账户本身不含精度信息，精度来自 mint，由调用方或内置注册表提供。
type TokenMeta struct {
	Ticker   string // 展示用标签，如 "SOL"
	Decimals uint8  // token 精度（0~9）
}

// KnownTokenMeta 是系统内置报价币的元数据注册表。
var KnownTokenMeta = map[types.Pubkey]TokenMeta{
	consts.WSOLMint: {Ticker: "SOL", Decimals: WSOLDecimals},
	consts.USDCMint: {Ticker: "USDC", Decimals: USDCDecimals},
	consts.USDTMint: {Ticker: "USDT", Decimals: USDTDecimals},
}

// LookupTokenMeta 按 mint 地址查询内置元数据；未注册的 mint 返回 false，
// 此时元数据必须由外部获取层提供。
func LookupTokenMeta(mint types.Pubkey) (TokenMeta, bool) {
	meta, ok := KnownTokenMeta[mint]
	return meta, ok
}

// IsSupportedDecimals 判断精度是否在受支持范围内（0~9）。
func IsSupportedDecimals(d uint8) bool {
	return d <= 9
}
