package edgedata

import "strconv"

// Value is the typed value of a data point. The set of implementations is
// closed: Int32, UInt32, Int64, UInt64, Float32 and Double64.
type Value interface {
	// Type returns the DataType this member belongs to.
	Type() DataType

	// String formats the value for display.
	String() string

	sealed()
}

// Int32 is the value member for TypeInt32.
type Int32 int32

// UInt32 is the value member for TypeUInt32.
type UInt32 uint32

// Int64 is the value member for TypeInt64.
type Int64 int64

// UInt64 is the value member for TypeUInt64.
type UInt64 uint64

// Float32 is the value member for TypeFloat32.
type Float32 float32

// Double64 is the value member for TypeDouble64.
type Double64 float64

func (Int32) Type() DataType    { return TypeInt32 }
func (UInt32) Type() DataType   { return TypeUInt32 }
func (Int64) Type() DataType    { return TypeInt64 }
func (UInt64) Type() DataType   { return TypeUInt64 }
func (Float32) Type() DataType  { return TypeFloat32 }
func (Double64) Type() DataType { return TypeDouble64 }

func (v Int32) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v UInt32) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Int64) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v UInt64) String() string   { return strconv.FormatUint(uint64(v), 10) }
func (v Float32) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v Double64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (Int32) sealed()    {}
func (UInt32) sealed()   {}
func (Int64) sealed()    {}
func (UInt64) sealed()   {}
func (Float32) sealed()  {}
func (Double64) sealed() {}

// Interface returns the plain Go value held by v, or nil.
func Interface(v Value) any {
	switch x := v.(type) {
	case Int32:
		return int32(x)
	case UInt32:
		return uint32(x)
	case Int64:
		return int64(x)
	case UInt64:
		return uint64(x)
	case Float32:
		return float32(x)
	case Double64:
		return float64(x)
	default:
		return nil
	}
}

// ZeroValue returns the zero member for t, or nil for TypeUnknown.
func ZeroValue(t DataType) Value {
	switch t {
	case TypeInt32:
		return Int32(0)
	case TypeUInt32:
		return UInt32(0)
	case TypeInt64:
		return Int64(0)
	case TypeUInt64:
		return UInt64(0)
	case TypeFloat32:
		return Float32(0)
	case TypeDouble64:
		return Double64(0)
	default:
		return nil
	}
}
