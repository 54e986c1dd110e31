package ratio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"frt-state-sol/internal/layout"
	"frt-state-sol/internal/tools"
)

// ratePrecision 是展示汇率除法的小数位数。汇率只用于报价展示，
// 不参与任何资金计算，资金路径全部走整数运算。
const ratePrecision = 18

// RatioPair 表示两个 token 之间的固定兑换比率（含各自精度）。
// 从每个 PoolState 快照新建，构造后不可变；display 值与报价方向在构造时算好缓存。
type RatioPair struct {
	tickerA, tickerB     string
	ratioA, ratioB       uint64 // 原始比率（basis points，恒为正）
	decimalsA, decimalsB uint8

	displayA, displayB decimal.Decimal // 比率的精确 display 值
	canonicalAToB      bool            // 报价方向："1 A = rate B" 还是 "1 B = rate A"
}

// NewRatioPair 构造并校验一个固定比率对。
// 比率为 0 → ErrInvalidRatio；精度超出 0~9 → ErrInvalidDecimals；标签为空 → ErrMissingTicker。
func NewRatioPair(tickerA string, ratioA uint64, decimalsA uint8, tickerB string, ratioB uint64, decimalsB uint8) (*RatioPair, error) {
	if strings.TrimSpace(tickerA) == "" || strings.TrimSpace(tickerB) == "" {
		return nil, fmt.Errorf("ratio pair %q/%q: %w", tickerA, tickerB, ErrMissingTicker)
	}
	if ratioA == 0 || ratioB == 0 {
		return nil, fmt.Errorf("ratio pair %s/%s: ratioA=%d ratioB=%d: %w", tickerA, tickerB, ratioA, ratioB, ErrInvalidRatio)
	}
	if decimalsA > MaxDecimals || decimalsB > MaxDecimals {
		return nil, fmt.Errorf("ratio pair %s/%s: decimalsA=%d decimalsB=%d: %w", tickerA, tickerB, decimalsA, decimalsB, ErrInvalidDecimals)
	}

	displayA, err := BasisPointsToDisplay(ratioA, decimalsA)
	if err != nil {
		return nil, err
	}
	displayB, err := BasisPointsToDisplay(ratioB, decimalsB)
	if err != nil {
		return nil, err
	}

	return &RatioPair{
		tickerA:   tickerA,
		tickerB:   tickerB,
		ratioA:    ratioA,
		ratioB:    ratioB,
		decimalsA: decimalsA,
		decimalsB: decimalsB,
		displayA:  displayA,
		displayB:  displayB,
		// rateAtoB = displayB/displayA ≥ 1 时以 A 为报价基准；双方恰好相等时约定 A 为基准。
		canonicalAToB: displayB.Cmp(displayA) >= 0,
	}, nil
}

// FromPoolState 直接用已解码的池子状态和两侧 token 元数据构造比率对。
func FromPoolState(s *layout.PoolState, metaA, metaB tools.TokenMeta) (*RatioPair, error) {
	return NewRatioPair(
		metaA.Ticker, s.RatioANumerator, metaA.Decimals,
		metaB.Ticker, s.RatioBDenominator, metaB.Decimals,
	)
}

func (p *RatioPair) TickerA() string  { return p.tickerA }
func (p *RatioPair) TickerB() string  { return p.tickerB }
func (p *RatioPair) RatioA() uint64   { return p.ratioA }
func (p *RatioPair) RatioB() uint64   { return p.ratioB }
func (p *RatioPair) DecimalsA() uint8 { return p.decimalsA }
func (p *RatioPair) DecimalsB() uint8 { return p.decimalsB }

// DisplayA 返回 A 侧比率的精确 display 值。
func (p *RatioPair) DisplayA() decimal.Decimal { return p.displayA }

// DisplayB 返回 B 侧比率的精确 display 值。
func (p *RatioPair) DisplayB() decimal.Decimal { return p.displayB }

// RateAToB 返回 1 个 display 单位 A 兑换的 B 数量（仅用于展示）。
func (p *RatioPair) RateAToB() decimal.Decimal {
	return p.displayB.DivRound(p.displayA, ratePrecision)
}

// RateBToA 返回 1 个 display 单位 B 兑换的 A 数量（仅用于展示）。
func (p *RatioPair) RateBToA() decimal.Decimal {
	return p.displayA.DivRound(p.displayB, ratePrecision)
}

// CanonicalAToB 报价方向是否为 "1 A = rate B"。
// 约定更值钱的一侧作为 1 的计价单位，只影响展示顺序，不影响任何运算。
func (p *RatioPair) CanonicalAToB() bool { return p.canonicalAToB }

// CanonicalBase 返回报价基准侧 ticker（显示为 "1 <base>" 的一侧）。
func (p *RatioPair) CanonicalBase() string {
	if p.canonicalAToB {
		return p.tickerA
	}
	return p.tickerB
}

// CanonicalQuote 返回报价另一侧 ticker。
func (p *RatioPair) CanonicalQuote() string {
	if p.canonicalAToB {
		return p.tickerB
	}
	return p.tickerA
}

// CanonicalRate 返回报价方向上的汇率（仅用于展示）。
func (p *RatioPair) CanonicalRate() decimal.Decimal {
	if p.canonicalAToB {
		return p.RateAToB()
	}
	return p.RateBToA()
}
