// Пакет currency — форматирование сумм в бразильских реалах.
// Локаль фиксирована: "R$ 1.234,56", два знака после запятой,
// округление половины от нуля (0,125 → 0,13).
package currency

import (
	"errors"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFinite — NaN или бесконечность не форматируются.
var ErrNotFinite = errors.New("currency: amount is not finite")

const (
	symbol           = "R$"
	decimalSeparator = ","
	groupSeparator   = "."
	places           = 2
)

// Format — форматирует сумму.
func Format(amount decimal.Decimal) string {
	rounded := amount.Round(places)

	neg := rounded.IsNegative()
	if neg {
		rounded = rounded.Neg()
	}

	// StringFixed гарантирует ровно два знака: "1234.50".
	fixed := rounded.StringFixed(places)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteByte(' ')
	b.WriteString(groupThousands(intPart))
	b.WriteString(decimalSeparator)
	b.WriteString(fracPart)
	return b.String()
}

// FormatFloat — то же для float64; NaN и ±Inf отклоняются.
func FormatFloat(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrNotFinite
	}
	return Format(decimal.NewFromFloat(amount)), nil
}

// groupThousands — "1234567" → "1.234.567".
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
