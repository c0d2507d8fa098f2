package validate

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/ledger/internal/apperrors"
)

// Amount converts loosely typed input into decimal.
// Booleans count as 1 and 0. Anything that is not a real number fails with apperrors.ErrAmountType,
// NaN and infinities fail with apperrors.ErrAmountRange.
func Amount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case bool:
		if n {
			return decimal.NewFromInt(1), nil
		}
		return decimal.Zero, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int8:
		return decimal.NewFromInt(int64(n)), nil
	case int16:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case uint:
		return fromUint(uint64(n)), nil
	case uint8:
		return fromUint(uint64(n)), nil
	case uint16:
		return fromUint(uint64(n)), nil
	case uint32:
		return fromUint(uint64(n)), nil
	case uint64:
		return fromUint(n), nil
	case float32:
		return fromFloat(float64(n))
	case float64:
		return fromFloat(n)
	case decimal.Decimal:
		return n, nil
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero, fmt.Errorf("%w: nil decimal", apperrors.ErrAmountType)
		}
		return *n, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %T is not a number", apperrors.ErrAmountType, v)
	}
}

// PositiveAmount is Amount that also requires the value to be strictly greater than zero
func PositiveAmount(v any) (decimal.Decimal, error) {
	amount, err := Amount(v)
	if err != nil {
		return amount, err
	}

	if !amount.IsPositive() {
		return amount, fmt.Errorf("%w: amount %s must be positive", apperrors.ErrAmountRange, amount)
	}

	return amount, nil
}

func fromUint(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: amount %v is not finite", apperrors.ErrAmountRange, f)
	}
	return decimal.NewFromFloat(f), nil
}
