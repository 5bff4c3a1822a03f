package extract

import "strconv"

// int64Convertible covers wide-integer values that expose an explicit
// conversion, e.g. encoding/json.Number.
type int64Convertible interface {
	Int64() (int64, error)
}

// CoerceOffset resolves a loosely typed text-segment offset to a plain int.
//
// Resolution order: native integer kinds are used as-is; strings are parsed
// as base-10 integers; values exposing an Int64 conversion use it. Anything
// else, including nil and parse failures, coerces to 0. Malformed offsets
// are a tolerable data-quality issue, never an error.
func CoerceOffset(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case uint32:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		// JSON numbers decode as float64 by default.
		return int(n)
	case float32:
		return int(n)
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return int(i)
	}
	if c, ok := v.(int64Convertible); ok {
		i, err := c.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	}
	if c, ok := v.(interface{ Int64() int64 }); ok {
		// math/big.Int style conversion.
		return int(c.Int64())
	}
	return 0
}
