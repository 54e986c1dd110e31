package layout

// TreasuryState 链上布局：13 × u64 + 2 × i64，共 120 字节，小端序。
const TreasuryStateSize = 120

// TreasuryState 表示主金库账户快照：各类操作计数与手续费累计值。
type TreasuryState struct {
	// 余额与提取
	TotalBalance      uint64 // 当前余额（lamports）
	RentExemptMinimum uint64 // 免租最低余额
	TotalWithdrawn    uint64 // 累计已提取

	// 操作计数
	PoolCreationCount       uint64
	LiquidityOperationCount uint64
	RegularSwapCount        uint64
	TreasuryWithdrawalCount uint64
	FailedOperationCount    uint64

	// 手续费累计
	TotalPoolCreationFees  uint64
	TotalLiquidityFees     uint64
	TotalRegularSwapFees   uint64
	TotalSwapContractFees  uint64
	TotalConsolidationFees uint64

	// 时间戳（有符号）
	LastUpdateTimestamp     int64
	LastWithdrawalTimestamp int64
}

// DecodeTreasuryState 将账户原始数据解码为 TreasuryState，
// 读取纪律与 DecodePoolState 相同：逐字段长度校验，失败即返回 ErrTooShort。
func DecodeTreasuryState(data []byte) (*TreasuryState, error) {
	r := newReader(data)
	s := &TreasuryState{}

	fields := []struct {
		name string
		dst  *uint64
	}{
		{"total_balance", &s.TotalBalance},
		{"rent_exempt_minimum", &s.RentExemptMinimum},
		{"total_withdrawn", &s.TotalWithdrawn},
		{"pool_creation_count", &s.PoolCreationCount},
		{"liquidity_operation_count", &s.LiquidityOperationCount},
		{"regular_swap_count", &s.RegularSwapCount},
		{"treasury_withdrawal_count", &s.TreasuryWithdrawalCount},
		{"failed_operation_count", &s.FailedOperationCount},
		{"total_pool_creation_fees", &s.TotalPoolCreationFees},
		{"total_liquidity_fees", &s.TotalLiquidityFees},
		{"total_regular_swap_fees", &s.TotalRegularSwapFees},
		{"total_swap_contract_fees", &s.TotalSwapContractFees},
		{"total_consolidation_fees", &s.TotalConsolidationFees},
	}
	for _, f := range fields {
		v, err := r.u64(f.name)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	var err error
	if s.LastUpdateTimestamp, err = r.i64("last_update_timestamp"); err != nil {
		return nil, err
	}
	if s.LastWithdrawalTimestamp, err = r.i64("last_withdrawal_timestamp"); err != nil {
		return nil, err
	}

	return s, nil
}
