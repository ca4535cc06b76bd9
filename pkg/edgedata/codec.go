package edgedata

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Float bounds accepted by Encode (inclusive).
const (
	MaxFloat32  = 3.4e38
	MaxDouble64 = 1.7e308
)

var (
	minInt32  = big.NewInt(math.MinInt32)
	maxInt32  = big.NewInt(math.MaxInt32)
	maxUInt32 = new(big.Int).SetUint64(math.MaxUint32)
	minInt64  = big.NewInt(math.MinInt64)
	maxInt64  = big.NewInt(math.MaxInt64)
	maxUInt64 = new(big.Int).SetUint64(math.MaxUint64)
	zero      = big.NewInt(0)
)

// Decode selects the value member matching p.Type. A point with an
// unrecognized type, or whose member does not match its type, decodes to
// (TypeUnknown, nil, "unknown").
func Decode(p DataPoint) (DataType, Value, string) {
	switch p.Type {
	case TypeInt32, TypeUInt32, TypeInt64, TypeUInt64, TypeFloat32, TypeDouble64:
		if p.Value != nil && p.Value.Type() == p.Type {
			return p.Type, p.Value, p.Type.String()
		}
	}
	return TypeUnknown, nil, TypeUnknown.String()
}

// DecodePoint returns a normalized copy of p with Type and Value replaced by
// the result of Decode.
func DecodePoint(p DataPoint) DataPoint {
	p.Type, p.Value, _ = Decode(p)
	return p
}

// Encode validates input against target and returns the matching value
// member. topic is only used for error reporting.
//
// Integer inputs may be any Go integer kind or *big.Int. Float inputs may be
// float32 or float64. Integers are promoted to float for the float types; a
// float never converts to an integer type.
func Encode(topic string, target DataType, input any) (Value, error) {
	fail := func(reason string) (Value, error) {
		return nil, &ValueError{Topic: topic, Type: target, Input: input, Reason: reason}
	}

	i, isInt := integerOf(input)
	f, isFloat := floatOf(input)
	if !isInt && !isFloat {
		return fail("input is not an int or float")
	}

	switch target {
	case TypeInt32, TypeUInt32, TypeInt64, TypeUInt64:
		if !isInt {
			return fail("float value for integer type")
		}
		return encodeInteger(target, i, fail)

	case TypeFloat32, TypeDouble64:
		if isInt {
			f, _ = new(big.Float).SetInt(i).Float64()
		}
		limit := MaxDouble64
		if target == TypeFloat32 {
			limit = MaxFloat32
		}
		// NaN fails both comparisons.
		if !(f <= limit && f >= -limit) {
			return fail(fmt.Sprintf("%s out of range", target))
		}
		if target == TypeFloat32 {
			return Float32(f), nil
		}
		return Double64(f), nil

	default:
		return fail("invalid datatype")
	}
}

func encodeInteger(target DataType, i *big.Int, fail func(string) (Value, error)) (Value, error) {
	var lo, hi *big.Int
	switch target {
	case TypeInt32:
		lo, hi = minInt32, maxInt32
	case TypeUInt32:
		lo, hi = zero, maxUInt32
	case TypeInt64:
		lo, hi = minInt64, maxInt64
	default:
		lo, hi = zero, maxUInt64
	}
	if i.Cmp(lo) < 0 || i.Cmp(hi) > 0 {
		return fail(fmt.Sprintf("%s out of range", target))
	}

	switch target {
	case TypeInt32:
		return Int32(i.Int64()), nil
	case TypeUInt32:
		return UInt32(i.Uint64()), nil
	case TypeInt64:
		return Int64(i.Int64()), nil
	default:
		return UInt64(i.Uint64()), nil
	}
}

// integerOf widens every Go integer kind to a big.Int.
func integerOf(input any) (*big.Int, bool) {
	switch v := input.(type) {
	case int:
		return big.NewInt(int64(v)), true
	case int8:
		return big.NewInt(int64(v)), true
	case int16:
		return big.NewInt(int64(v)), true
	case int32:
		return big.NewInt(int64(v)), true
	case int64:
		return big.NewInt(v), true
	case uint:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint8:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint16:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Int).SetUint64(v), true
	case *big.Int:
		if v == nil {
			return nil, false
		}
		return v, true
	}
	return nil, false
}

func floatOf(input any) (float64, bool) {
	switch v := input.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

// Tag returns the textual type tag of the decoded point.
func (p DataPoint) Tag() string {
	_, _, tag := Decode(p)
	return tag
}

// QualitySet returns the decoded quality flags of the point.
func (p DataPoint) QualitySet() QualitySet {
	return DecodeQuality(p.Quality)
}

// String formats the decoded point for log output.
func (p DataPoint) String() string {
	_, v, tag := Decode(p)
	value := "none"
	if v != nil {
		value = v.String()
	}
	return fmt.Sprintf("{topic: %s, value: %s, handle: %d, type: %s, quality: [%s], timestamp: %d}",
		p.Topic, value, p.Handle, tag, strings.Join(p.QualitySet().Names(), ", "), p.Timestamp)
}
