package display

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"frt-state-sol/internal/config"
	"frt-state-sol/internal/layout"
	"frt-state-sol/internal/ratio"
)

// Formatter 把 RatioEngine 的输出格式化成用户可读字符串。
// 纯展示层：这里绝不做任何影响余额的运算，所有金额计算归 ratio 包。
type Formatter struct {
	thousandsSep      string
	maxFractionDigits int32
	trimTrailingZeros bool
}

// New 按展示配置构造 Formatter。
func New(c config.DisplayConfig) *Formatter {
	sep := c.ThousandsSep
	if sep == "" {
		sep = ","
	}
	return &Formatter{
		thousandsSep:      sep,
		maxFractionDigits: int32(c.MaxFractionDigits),
		trimTrailingZeros: c.TrimTrailingZeros,
	}
}

// Default 返回默认格式（千位逗号分隔，最多 9 位小数，去尾零）。
func Default() *Formatter {
	return New(config.DisplayConfig{ThousandsSep: ",", MaxFractionDigits: 9, TrimTrailingZeros: true})
}

// FormatAmount 格式化一个 display 金额，如 100000000 → "100,000,000"。
// 超出小数位上限的部分仅在展示上截断，不影响底层数值。
func (f *Formatter) FormatAmount(d decimal.Decimal) string {
	truncated := d.Truncate(f.maxFractionDigits)

	var s string
	if f.trimTrailingZeros {
		s = truncated.String()
	} else {
		s = truncated.StringFixed(f.maxFractionDigits)
	}

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := groupThousands(intPart, f.thousandsSep)
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// CanonicalQuote 按报价方向输出 "1 SOL = 100,000,000 USDT" 形式的汇率。
func (f *Formatter) CanonicalQuote(p *ratio.RatioPair) string {
	return fmt.Sprintf("1 %s = %s %s", p.CanonicalBase(), f.FormatAmount(p.CanonicalRate()), p.CanonicalQuote())
}

// PairLabel 输出交易对标签，报价基准侧在前，如 "SOL/USDT"。
func (f *Formatter) PairLabel(p *ratio.RatioPair) string {
	return p.CanonicalBase() + "/" + p.CanonicalQuote()
}

// FlagSummary 输出池子标志的简短可读摘要（用于日志与 UI 提示）。
func (f *Formatter) FlagSummary(flags layout.PoolFlags) string {
	return flags.String()
}

// groupThousands 给十进制整数部分插入千位分隔符。
// 这里自己分组而不是用 locale 库：金额是任意精度十进制字符串，
// x/text/number 等面向 int/float 的格式化会丢精度。
func groupThousands(digits, sep string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + (n-1)/3*len(sep))
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
