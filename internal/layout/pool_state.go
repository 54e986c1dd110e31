package layout

import (
	"frt-state-sol/internal/pkg/types"
)

// 链上数据布局（小端序，按字段声明顺序紧凑排列，无 discriminator）:
// [0:224]   7 × Pubkey(32)
// [224:256] 4 × u64（ratio 与流动性）
// [256:261] 5 × u8 bump seed
// [261]     flags(u8)
// [262:358] 12 × 8 字节（手续费配置、手续费统计、SOL 手续费、归集信息）
const PoolStateSize = 358

// PoolState 表示一个固定比率交易池账户的完整快照。
// 由 DecodePoolState 一次性解码生成，之后不可变；刷新状态 = 对新数据重新解码。
type PoolState struct {
	// 账户地址
	Owner        types.Pubkey // 池子创建者
	TokenAMint   types.Pubkey // Token A mint 地址
	TokenBMint   types.Pubkey // Token B mint 地址
	TokenAVault  types.Pubkey // Token A vault（池子 TokenAccount）
	TokenBVault  types.Pubkey // Token B vault
	LPTokenAMint types.Pubkey // A 侧 LP token mint
	LPTokenBMint types.Pubkey // B 侧 LP token mint

	// 固定比率与流动性（basis points，最小单位）
	RatioANumerator      uint64 // 比率分子，恒为正
	RatioBDenominator    uint64 // 比率分母，恒为正
	TotalTokenALiquidity uint64 // A 侧总流动性
	TotalTokenBLiquidity uint64 // B 侧总流动性

	// PDA bump seeds
	PoolAuthorityBumpSeed uint8
	TokenAVaultBumpSeed   uint8
	TokenBVaultBumpSeed   uint8
	LPTokenAMintBumpSeed  uint8
	LPTokenBMintBumpSeed  uint8

	// 位掩码标志字节，使用 InterpretFlags 解码为 PoolFlags 后消费，
	// 下游不应再直接检查原始字节。
	Flags uint8

	// 手续费配置（lamports / basis points）
	ContractLiquidityFee uint64 // 流动性操作固定费
	SwapContractFee      uint64 // swap 固定费

	// Token 手续费统计
	CollectedFeesTokenA      uint64
	CollectedFeesTokenB      uint64
	TotalFeesWithdrawnTokenA uint64
	TotalFeesWithdrawnTokenB uint64

	// SOL 手续费统计
	CollectedLiquidityFees    uint64
	CollectedSwapContractFees uint64
	TotalSolFeesCollected     uint64

	// 手续费归集信息
	LastConsolidationTimestamp int64 // Unix 时间戳（有符号）
	TotalConsolidations        uint64
	TotalFeesConsolidated      uint64
}

// DecodePoolState 将账户原始数据解码为 PoolState。
// 数据不足时返回带字段偏移的 *DecodeError（ErrTooShort），不会返回部分记录；
// 记录之后的多余字节（如 rent 填充）被忽略。
func DecodePoolState(data []byte) (*PoolState, error) {
	r := newReader(data)
	s := &PoolState{}
	var err error

	if s.Owner, err = r.pubkey("owner"); err != nil {
		return nil, err
	}
	if s.TokenAMint, err = r.pubkey("token_a_mint"); err != nil {
		return nil, err
	}
	if s.TokenBMint, err = r.pubkey("token_b_mint"); err != nil {
		return nil, err
	}
	if s.TokenAVault, err = r.pubkey("token_a_vault"); err != nil {
		return nil, err
	}
	if s.TokenBVault, err = r.pubkey("token_b_vault"); err != nil {
		return nil, err
	}
	if s.LPTokenAMint, err = r.pubkey("lp_token_a_mint"); err != nil {
		return nil, err
	}
	if s.LPTokenBMint, err = r.pubkey("lp_token_b_mint"); err != nil {
		return nil, err
	}

	if s.RatioANumerator, err = r.u64("ratio_a_numerator"); err != nil {
		return nil, err
	}
	if s.RatioBDenominator, err = r.u64("ratio_b_denominator"); err != nil {
		return nil, err
	}
	if s.TotalTokenALiquidity, err = r.u64("total_token_a_liquidity"); err != nil {
		return nil, err
	}
	if s.TotalTokenBLiquidity, err = r.u64("total_token_b_liquidity"); err != nil {
		return nil, err
	}

	if s.PoolAuthorityBumpSeed, err = r.u8("pool_authority_bump_seed"); err != nil {
		return nil, err
	}
	if s.TokenAVaultBumpSeed, err = r.u8("token_a_vault_bump_seed"); err != nil {
		return nil, err
	}
	if s.TokenBVaultBumpSeed, err = r.u8("token_b_vault_bump_seed"); err != nil {
		return nil, err
	}
	if s.LPTokenAMintBumpSeed, err = r.u8("lp_token_a_mint_bump_seed"); err != nil {
		return nil, err
	}
	if s.LPTokenBMintBumpSeed, err = r.u8("lp_token_b_mint_bump_seed"); err != nil {
		return nil, err
	}

	if s.Flags, err = r.u8("flags"); err != nil {
		return nil, err
	}

	if s.ContractLiquidityFee, err = r.u64("contract_liquidity_fee"); err != nil {
		return nil, err
	}
	if s.SwapContractFee, err = r.u64("swap_contract_fee"); err != nil {
		return nil, err
	}
	if s.CollectedFeesTokenA, err = r.u64("collected_fees_token_a"); err != nil {
		return nil, err
	}
	if s.CollectedFeesTokenB, err = r.u64("collected_fees_token_b"); err != nil {
		return nil, err
	}
	if s.TotalFeesWithdrawnTokenA, err = r.u64("total_fees_withdrawn_token_a"); err != nil {
		return nil, err
	}
	if s.TotalFeesWithdrawnTokenB, err = r.u64("total_fees_withdrawn_token_b"); err != nil {
		return nil, err
	}
	if s.CollectedLiquidityFees, err = r.u64("collected_liquidity_fees"); err != nil {
		return nil, err
	}
	if s.CollectedSwapContractFees, err = r.u64("collected_swap_contract_fees"); err != nil {
		return nil, err
	}
	if s.TotalSolFeesCollected, err = r.u64("total_sol_fees_collected"); err != nil {
		return nil, err
	}
	if s.LastConsolidationTimestamp, err = r.i64("last_consolidation_timestamp"); err != nil {
		return nil, err
	}
	if s.TotalConsolidations, err = r.u64("total_consolidations"); err != nil {
		return nil, err
	}
	if s.TotalFeesConsolidated, err = r.u64("total_fees_consolidated"); err != nil {
		return nil, err
	}

	return s, nil
}
