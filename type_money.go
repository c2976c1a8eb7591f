package comercial

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single currency the tracker operates in.
const Currency = "BRL"

// Money represents a monetary value in the tracker's currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	default:
		panic("unreachable")
	}
}

// ParseMoney parses a plain decimal amount like "1234.56".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: d}, nil
}

// String returns the value formatted for the tracker's currency.
func (m Money) String() string {
	cur := money.GetCurrency(Currency)
	dec := m.value.Shift(int32(cur.Fraction))
	return money.New(dec.IntPart(), Currency).Display()
}

// Amount returns the plain decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

// Round2 rounds to 2 decimal places, half away from zero.
func (m Money) Round2() Money { return Money{value: m.value.Round(2)} }

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// SubFloor subtracts n, flooring the result at zero. It is the shape of
// every "pending" amount: received money above the sale value never yields
// a negative balance.
func (m Money) SubFloor(n Money) Money {
	r := m.value.Sub(n.value)
	if r.IsNegative() {
		return Money{}
	}
	return Money{value: r}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(2).MarshalJSON()
}

func (m *Money) UnmarshalJSON(bytes []byte) error {
	return m.value.UnmarshalJSON(bytes)
}
