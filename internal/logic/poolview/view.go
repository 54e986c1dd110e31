package poolview

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"frt-state-sol/internal/layout"
	"frt-state-sol/internal/pkg/logger"
	"frt-state-sol/internal/ratio"
	"frt-state-sol/internal/tools"
)

// ErrSwapsPaused 表示池子标志位已暂停 swap，此时不应继续构造交易。
var ErrSwapsPaused = errors.New("swaps are paused for this pool")

// PoolView 是一个池子快照的组装视图：解码后的账户状态、具名标志集、比率对。
// 三者都是不可变快照，刷新 = 用新账户数据重新 Build。
type PoolView struct {
	State *layout.PoolState
	Flags layout.PoolFlags
	Pair  *ratio.RatioPair
}

// Build 从账户原始数据组装 PoolView：解码 → 解释标志 → 构造比率对。
// 任一步失败都记录日志并原样返回类型化错误，绝不带着默认值继续。
func Build(data []byte, metaA, metaB tools.TokenMeta) (*PoolView, error) {
	state, err := layout.DecodePoolState(data)
	if err != nil {
		logger.Errorf("[PoolView] 池子账户解码失败: %v", err)
		return nil, err
	}

	pair, err := ratio.FromPoolState(state, metaA, metaB)
	if err != nil {
		logger.Errorf("[PoolView] 比率对构造失败: pool=%s: %v", state.Owner, err)
		return nil, err
	}

	return &PoolView{
		State: state,
		Flags: layout.InterpretFlags(state.Flags),
		Pair:  pair,
	}, nil
}

// BuildWithKnownMeta 用内置注册表解析两侧 mint 的元数据后组装视图，
// 任一 mint 未注册时返回错误（元数据需由外部获取层提供）。
func BuildWithKnownMeta(data []byte) (*PoolView, error) {
	state, err := layout.DecodePoolState(data)
	if err != nil {
		logger.Errorf("[PoolView] 池子账户解码失败: %v", err)
		return nil, err
	}

	metaA, ok := tools.LookupTokenMeta(state.TokenAMint)
	if !ok {
		return nil, fmt.Errorf("token A mint %s not in built-in registry", state.TokenAMint)
	}
	metaB, ok := tools.LookupTokenMeta(state.TokenBMint)
	if !ok {
		return nil, fmt.Errorf("token B mint %s not in built-in registry", state.TokenBMint)
	}

	pair, err := ratio.FromPoolState(state, metaA, metaB)
	if err != nil {
		logger.Errorf("[PoolView] 比率对构造失败: pool=%s: %v", state.Owner, err)
		return nil, err
	}

	return &PoolView{
		State: state,
		Flags: layout.InterpretFlags(state.Flags),
		Pair:  pair,
	}, nil
}

// CanSwap 返回当前标志位下是否允许 swap。
func (v *PoolView) CanSwap() bool {
	return !v.Flags.SwapsPaused
}

// SwapAToB 计算 A→B 的兑换输出，并套用池子标志位的门禁：
//   - SwapsPaused 置位时拒绝；
//   - OneToManyRatio 置位的池子要求精确兑换，留 dust 的输入返回 ErrDustRemainder。
func (v *PoolView) SwapAToB(amountADisplay decimal.Decimal) (decimal.Decimal, error) {
	if v.Flags.SwapsPaused {
		return decimal.Decimal{}, ErrSwapsPaused
	}
	if v.Flags.OneToManyRatio {
		return v.Pair.SwapAToBExact(amountADisplay)
	}
	return v.Pair.SwapAToB(amountADisplay)
}

// SwapBToA 是 SwapAToB 的镜像方向。
func (v *PoolView) SwapBToA(amountBDisplay decimal.Decimal) (decimal.Decimal, error) {
	if v.Flags.SwapsPaused {
		return decimal.Decimal{}, ErrSwapsPaused
	}
	if v.Flags.OneToManyRatio {
		return v.Pair.SwapBToAExact(amountBDisplay)
	}
	return v.Pair.SwapBToA(amountBDisplay)
}
