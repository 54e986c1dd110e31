package ratio

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// swap 输出计算全程只走整数运算：
// u64 比率 × u64 金额的中间积可达 128 bit，用 big.Int 承载后再整除，
// 不允许出现任何浮点中间值。

// scaleFloor 计算 floor(input × numerator / denominator)。
// 向下截断是协议层的平局规则（偏向池子而不是用户），必须原样保留，永不向上舍入。
func scaleFloor(input, numerator, denominator uint64) (uint64, error) {
	prod := new(big.Int).Mul(
		new(big.Int).SetUint64(input),
		new(big.Int).SetUint64(numerator),
	)
	out := prod.Quo(prod, new(big.Int).SetUint64(denominator))
	if !out.IsUint64() {
		return 0, fmt.Errorf("scale %d*%d/%d: %w", input, numerator, denominator, ErrAmountOverflow)
	}
	return out.Uint64(), nil
}

// HasRemainder 判断 inputBP × numeratorRatio 是否无法被 denominatorRatio 整除。
// 为 true 时该输入在固定比率下会留下 dust；精确兑换模式必须在任何后续处理
// （例如构造交易）之前拒绝它，绝不允许静默舍掉。
func HasRemainder(inputBP, numeratorRatio, denominatorRatio uint64) bool {
	if denominatorRatio == 0 {
		// 分母为 0 不属于合法池状态（构造期已拒绝），这里只保证不崩溃。
		return false
	}
	prod := new(big.Int).Mul(
		new(big.Int).SetUint64(inputBP),
		new(big.Int).SetUint64(numeratorRatio),
	)
	rem := prod.Mod(prod, new(big.Int).SetUint64(denominatorRatio))
	return rem.Sign() != 0
}

// SwapAToB 计算用 amountADisplay（display 单位）换出的 B 数量（display 单位）。
// 路径：display → basis points → floor(in × ratioB / ratioA) → display。
func (p *RatioPair) SwapAToB(amountADisplay decimal.Decimal) (decimal.Decimal, error) {
	inBP, err := DisplayToBasisPoints(amountADisplay, p.decimalsA)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerA, p.tickerB, err)
	}
	outBP, err := scaleFloor(inBP, p.ratioB, p.ratioA)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerA, p.tickerB, err)
	}
	return BasisPointsToDisplay(outBP, p.decimalsB)
}

// SwapBToA 是 SwapAToB 的镜像：floor(in × ratioA / ratioB)。
func (p *RatioPair) SwapBToA(amountBDisplay decimal.Decimal) (decimal.Decimal, error) {
	inBP, err := DisplayToBasisPoints(amountBDisplay, p.decimalsB)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerB, p.tickerA, err)
	}
	outBP, err := scaleFloor(inBP, p.ratioA, p.ratioB)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerB, p.tickerA, err)
	}
	return BasisPointsToDisplay(outBP, p.decimalsA)
}

// SwapAToBExact 在精确兑换要求下计算 A→B：输入留有 dust 时返回 ErrDustRemainder，
// 不做任何截断兑换。
func (p *RatioPair) SwapAToBExact(amountADisplay decimal.Decimal) (decimal.Decimal, error) {
	inBP, err := DisplayToBasisPoints(amountADisplay, p.decimalsA)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerA, p.tickerB, err)
	}
	if HasRemainder(inBP, p.ratioB, p.ratioA) {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: input=%d bp ratio=%d/%d: %w",
			p.tickerA, p.tickerB, inBP, p.ratioB, p.ratioA, ErrDustRemainder)
	}
	outBP, err := scaleFloor(inBP, p.ratioB, p.ratioA)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerA, p.tickerB, err)
	}
	return BasisPointsToDisplay(outBP, p.decimalsB)
}

// SwapBToAExact 是 SwapAToBExact 的镜像。
func (p *RatioPair) SwapBToAExact(amountBDisplay decimal.Decimal) (decimal.Decimal, error) {
	inBP, err := DisplayToBasisPoints(amountBDisplay, p.decimalsB)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerB, p.tickerA, err)
	}
	if HasRemainder(inBP, p.ratioA, p.ratioB) {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: input=%d bp ratio=%d/%d: %w",
			p.tickerB, p.tickerA, inBP, p.ratioA, p.ratioB, ErrDustRemainder)
	}
	outBP, err := scaleFloor(inBP, p.ratioA, p.ratioB)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("swap %s->%s: %w", p.tickerB, p.tickerA, err)
	}
	return BasisPointsToDisplay(outBP, p.decimalsA)
}
