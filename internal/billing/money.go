package billing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Amount = domain.Amount

var (
	printer = message.NewPrinter(language.Indonesian)

	minAmountDec = decimal.NewFromInt(math.MinInt64)
	maxAmountDec = decimal.NewFromInt(math.MaxInt64)
)

// Parse приводит внешнее представление суммы к Amount. Никогда не падает: все, что не удалось
// разобрать, превращается в 0. Отрицательные значения тоже дают 0.
//
// Строки разбираются по соглашению DigitsOnly: из строки выкидываются все символы кроме цифр,
// поэтому "12.345.000" это 12345000, а не 12.345. У рупии нет ходовых дробных единиц.
//
// Числа с дробной частью (float, json.Number, decimal.Decimal) молча усекаются к нулю: 50000.9 дает
// 50000. Вызывающий, которому нужна точная сумма, проверяет дробную часть сам до вызова Parse.
func Parse(value any) Amount {
	return parse(value, false)
}

// ParseSigned работает как Parse, но сохраняет знак. Нужен для скидок и предлагаемых платежей,
// где отрицательное значение должно дойти до проверки, а не превратиться в ноль.
func ParseSigned(value any) Amount {
	return parse(value, true)
}

func parse(value any, signed bool) Amount {
	switch v := value.(type) {
	case nil:
		return 0
	case Amount:
		return sign(int64(v), signed)
	case string:
		return parseDigitsOnly(v, signed)
	case []byte:
		return parseDigitsOnly(string(v), signed)
	case int:
		return sign(int64(v), signed)
	case int8:
		return sign(int64(v), signed)
	case int16:
		return sign(int64(v), signed)
	case int32:
		return sign(int64(v), signed)
	case int64:
		return sign(v, signed)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return Amount(v)
	case uint16:
		return Amount(v)
	case uint32:
		return Amount(v)
	case uint64:
		return fromUint(v)
	case float32:
		return fromFloat(float64(v), signed)
	case float64:
		return fromFloat(v, signed)
	case decimal.Decimal:
		return fromDecimal(v, signed)
	case json.Number:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return 0
		}
		return fromDecimal(d, signed)
	case fmt.Stringer:
		return parseDigitsOnly(v.String(), signed)
	default:
		return 0
	}
}

func sign(v int64, signed bool) Amount {
	if v < 0 && !signed {
		return 0
	}
	return Amount(v)
}

func fromUint(v uint64) Amount {
	if v > math.MaxInt64 {
		return 0
	}
	return Amount(v)
}

func fromFloat(v float64, signed bool) Amount {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return fromDecimal(decimal.NewFromFloat(v), signed)
}

// fromDecimal отбрасывает дробную часть в сторону нуля.
func fromDecimal(d decimal.Decimal, signed bool) Amount {
	d = d.Truncate(0)
	if d.LessThan(minAmountDec) || d.GreaterThan(maxAmountDec) {
		return 0
	}
	return sign(d.IntPart(), signed)
}

// parseDigitsOnly знак берется от минуса перед первой цифрой (пробелы между ними допустимы):
// "-5000", "- 5000" и "Rp -5.000" отрицательные, "10-5" это 105.
func parseDigitsOnly(s string, signed bool) Amount {
	var negative bool
	if first := strings.IndexFunc(s, isDigit); signed && first > 0 {
		negative = strings.HasSuffix(strings.TrimRightFunc(s[:first], unicode.IsSpace), "-")
	}

	var b strings.Builder
	for _, r := range s {
		if isDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		// переполнение
		return 0
	}
	if negative {
		n = -n
	}
	return Amount(n)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Format возвращает сумму с разделением разрядов по индонезийской локали: 12345000 -> "12.345.000".
func Format(a Amount) string {
	return printer.Sprintf("%d", int64(a))
}

// FormatRupiah то же, что Format, но с префиксом валюты.
func FormatRupiah(a Amount) string {
	return "Rp " + Format(a)
}
