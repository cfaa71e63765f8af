package decimal

import (
	"math"
	"math/big"
	"strconv"

	shopspring "github.com/shopspring/decimal"
)

// Largest magnitudes below which every integer is representable.
const (
	MaxExactFloat64 = 1<<53 - 1
	MaxExactFloat32 = 1<<24 - 1
)

// Text returns the numeral form of v. Exact is false when v is a float too
// large for its digits to be trusted; the text is still returned.
func Text(v interface{}) (s string, exact bool, err error) {
	switch v := v.(type) {
	case string:
		return v, true, nil
	case int:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int8:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int16:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int32:
		return strconv.FormatInt(int64(v), 10), true, nil
	case int64:
		return strconv.FormatInt(v, 10), true, nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true, nil
	case uint64:
		return strconv.FormatUint(v, 10), true, nil
	case float64:
		return float(v, 64, MaxExactFloat64)
	case float32:
		return float(float64(v), 32, MaxExactFloat32)
	case *big.Int:
		if v == nil {
			return "", false, InvalidFormat.New("nil *big.Int")
		}

		return v.String(), true, nil
	case *big.Float:
		if v == nil {
			return "", false, InvalidFormat.New("nil *big.Float")
		}

		if v.IsInf() {
			return "", false, InvalidFormat.New("%v is not a decimal numeral", v)
		}

		return v.Text('f', -1), true, nil
	case shopspring.Decimal:
		return v.String(), true, nil
	}

	return "", false, InvalidFormat.New("unsupported numeral type %T", v)
}

func float(f float64, bits int, limit float64) (s string, exact bool, err error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false, InvalidFormat.New("%v is not a decimal numeral", f)
	}

	// Negative zero has no sign as a numeral.
	if f == 0 {
		return "0", true, nil
	}

	return strconv.FormatFloat(f, 'f', -1, bits), math.Abs(f) <= limit, nil
}
