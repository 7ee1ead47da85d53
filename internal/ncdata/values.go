package ncdata

import (
	"fmt"
	"strconv"
)

// Strings normalizes a one-dimensional variable to its string form. Integers
// are rendered in base 10 and floats without trailing zeros, so a reach id
// stored as int64 or float64 compares equal to its decimal text.
func Strings(values any) ([]string, error) {
	switch v := values.(type) {
	case []string:
		return v, nil
	case []int64:
		return mapValues(v, func(x int64) string { return strconv.FormatInt(x, 10) }), nil
	case []int32:
		return mapValues(v, func(x int32) string { return strconv.FormatInt(int64(x), 10) }), nil
	case []int16:
		return mapValues(v, func(x int16) string { return strconv.FormatInt(int64(x), 10) }), nil
	case []uint64:
		return mapValues(v, func(x uint64) string { return strconv.FormatUint(x, 10) }), nil
	case []uint32:
		return mapValues(v, func(x uint32) string { return strconv.FormatUint(uint64(x), 10) }), nil
	case []float64:
		return mapValues(v, func(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }), nil
	case []float32:
		return mapValues(v, func(x float32) string { return strconv.FormatFloat(float64(x), 'f', -1, 32) }), nil
	default:
		return nil, fmt.Errorf("%w: cannot read %T as strings", ErrDataset, values)
	}
}

// Floats normalizes a one-dimensional numeric variable to float64.
func Floats(values any) ([]float64, error) {
	switch v := values.(type) {
	case []float64:
		return v, nil
	case []float32:
		return mapValues(v, func(x float32) float64 { return float64(x) }), nil
	case []int64:
		return mapValues(v, func(x int64) float64 { return float64(x) }), nil
	case []int32:
		return mapValues(v, func(x int32) float64 { return float64(x) }), nil
	default:
		return nil, fmt.Errorf("%w: cannot read %T as floats", ErrDataset, values)
	}
}

// FillFloat returns the fill value as a float64. Attributes may hold a
// scalar or a one-element slice.
func (v *Variable) FillFloat() (float64, bool) {
	switch f := v.Fill.(type) {
	case nil:
		return 0, false
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int64:
		return float64(f), true
	case int32:
		return float64(f), true
	case int16:
		return float64(f), true
	}

	values, err := Floats(v.Fill)
	if err != nil || len(values) != 1 {
		return 0, false
	}
	return values[0], true
}

func mapValues[T, U any](in []T, fn func(T) U) []U {
	out := make([]U, len(in))
	for i, x := range in {
		out[i] = fn(x)
	}
	return out
}
