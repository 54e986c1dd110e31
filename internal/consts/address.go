package consts

import "frt-state-sol/internal/pkg/types"

// Base58 地址常量（可读性高，适合配置与日志使用）
const (
	// Programs
	SystemProgramStr     = "11111111111111111111111111111111"
	TokenProgramStr      = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	FixedRatioProgramStr = "quXSYkeZ8ByTCtYY1J1uxQmE36UZ3LmNGgE3CYMFixD"

	// 常见报价币（用于内置 TokenMeta 注册表）
	WSOLMintStr = "So11111111111111111111111111111111111111112"
	USDCMintStr = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	USDTMintStr = "Es9vMFrzaCERmJfrF4H2FYD4KCoNkY11McCe8BenwNYB"
)

var (
	// Programs
	SystemProgram     = types.PubkeyFromBase58(SystemProgramStr)
	TokenProgram      = types.PubkeyFromBase58(TokenProgramStr)
	FixedRatioProgram = types.PubkeyFromBase58(FixedRatioProgramStr)

	// 常见报价币
	WSOLMint = types.PubkeyFromBase58(WSOLMintStr)
	USDCMint = types.PubkeyFromBase58(USDCMintStr)
	USDTMint = types.PubkeyFromBase58(USDTMintStr)
)
