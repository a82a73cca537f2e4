package marketplace

import (
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/bazaar-xyz/goapi/domain"
)

// Wei is an unsigned arbitrary-precision amount in the chain's smallest
// currency unit. The zero value is usable and means zero. It marshals to
// a decimal string, the form amounts take on every API boundary.
type Wei struct {
	v big.Int
}

func NewWei() *Wei {
	return &Wei{}
}

// WeiFromString parses a base-10 decimal string. Negative amounts are
// rejected, the type is unsigned.
func WeiFromString(s string) (*Wei, error) {
	if s == "" {
		return NewWei(), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, xerrors.Errorf("parse wei %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	if v.Sign() < 0 {
		return nil, xerrors.Errorf("negative wei %q: %w", s, domain.ErrInvalidNumberFormat)
	}
	w := &Wei{}
	w.v.Set(v)
	return w, nil
}

// WeiFromBig copies b. A nil or negative b yields zero.
func WeiFromBig(b *big.Int) *Wei {
	w := &Wei{}
	if b != nil && b.Sign() > 0 {
		w.v.Set(b)
	}
	return w
}

// Big returns a copy of the underlying integer.
func (w *Wei) Big() *big.Int {
	if w == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(&w.v)
}

func (w *Wei) Add(o *Wei) *Wei {
	res := &Wei{}
	res.v.Add(w.big(), o.big())
	return res
}

// SubClamped subtracts o and floors the result at zero instead of
// letting the unsigned amount underflow.
func (w *Wei) SubClamped(o *Wei) *Wei {
	res := &Wei{}
	if w.big().Cmp(o.big()) <= 0 {
		return res
	}
	res.v.Sub(w.big(), o.big())
	return res
}

func (w *Wei) Cmp(o *Wei) int {
	return w.big().Cmp(o.big())
}

func (w *Wei) IsZero() bool {
	return w.big().Sign() == 0
}

func (w *Wei) String() string {
	return w.big().String()
}

func (w *Wei) big() *big.Int {
	if w == nil {
		return new(big.Int)
	}
	return &w.v
}

func (w *Wei) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

func (w *Wei) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := WeiFromString(s)
	if err != nil {
		return err
	}
	w.v.Set(&parsed.v)
	return nil
}

// NativeTokenDecimals is the fixed-point scale of the native currency.
const NativeTokenDecimals = 18

// PriceConverter scales a human-readable decimal price string into the
// smallest currency unit. Injectable so the 18-decimal assumption stays
// in one place.
type PriceConverter func(amount string) (*Wei, error)

// ToSmallestUnit converts a decimal price string with the given number
// of decimal places, rejecting amounts with finer precision.
func ToSmallestUnit(amount string, decimals int32) (*Wei, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, xerrors.Errorf("parse amount %q: %w", amount, domain.ErrInvalidNumberFormat)
	}
	d = d.Shift(decimals)
	if !d.Equal(d.Truncate(0)) {
		return nil, xerrors.Errorf("amount %q finer than %d decimals: %w", amount, decimals, domain.ErrInvalidNumberFormat)
	}
	return WeiFromString(d.Truncate(0).String())
}

// NativeToSmallestUnit is the default PriceConverter, mirroring the
// native currency's 18-decimal convention.
func NativeToSmallestUnit(amount string) (*Wei, error) {
	return ToSmallestUnit(amount, NativeTokenDecimals)
}
