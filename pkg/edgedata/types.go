package edgedata

import "strings"

// Handle identifies a data point for the lifetime of one connection.
type Handle uint32

// InvalidHandle is returned by handle lookups for unknown topics.
const InvalidHandle Handle = 0

// IsValid reports whether h is not the invalid sentinel.
func (h Handle) IsValid() bool {
	return h != InvalidHandle
}

// DataType identifies the value type of a data point.
type DataType uint8

const (
	// TypeUnknown marks a point without a usable value.
	TypeUnknown DataType = 0
	// TypeInt32 is a signed 32-bit integer.
	TypeInt32 DataType = 1
	// TypeUInt32 is an unsigned 32-bit integer.
	TypeUInt32 DataType = 2
	// TypeInt64 is a signed 64-bit integer.
	TypeInt64 DataType = 3
	// TypeUInt64 is an unsigned 64-bit integer.
	TypeUInt64 DataType = 4
	// TypeFloat32 is a single precision float.
	TypeFloat32 DataType = 5
	// TypeDouble64 is a double precision float.
	TypeDouble64 DataType = 6
)

// String returns the textual tag of the type.
func (t DataType) String() string {
	switch t {
	case TypeInt32:
		return "int32"
	case TypeUInt32:
		return "uint32"
	case TypeInt64:
		return "int64"
	case TypeUInt64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeDouble64:
		return "double64"
	default:
		return "unknown"
	}
}

// IsInteger reports whether t is one of the integer types.
func (t DataType) IsInteger() bool {
	switch t {
	case TypeInt32, TypeUInt32, TypeInt64, TypeUInt64:
		return true
	}
	return false
}

// IsFloat reports whether t is one of the floating point types.
func (t DataType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeDouble64
}

// ParseDataType parses a type name. Both the runtime spelling ("INT32") and
// the textual tag ("int32") are accepted.
func ParseDataType(s string) (DataType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int32":
		return TypeInt32, true
	case "uint32":
		return TypeUInt32, true
	case "int64":
		return TypeInt64, true
	case "uint64":
		return TypeUInt64, true
	case "float32":
		return TypeFloat32, true
	case "double64":
		return TypeDouble64, true
	default:
		return TypeUnknown, false
	}
}

// DataPoint is a snapshot of one data point as held by the runtime.
type DataPoint struct {
	// Topic is the human readable name of the point.
	Topic string

	// Handle identifies the point on the current connection.
	Handle Handle

	// Type is the declared value type.
	Type DataType

	// Quality is the raw quality bitmask.
	Quality uint32

	// Value holds the member matching Type. Nil for TypeUnknown.
	Value Value

	// Timestamp is an opaque time value, typically nanoseconds.
	// Zero means "assigned by the runtime".
	Timestamp int64
}

// Valid reports whether the active value member matches Type.
func (p DataPoint) Valid() bool {
	if p.Type == TypeUnknown || p.Type > TypeDouble64 {
		return p.Value == nil
	}
	return p.Value != nil && p.Value.Type() == p.Type
}

// DiscoverInfo is the set of handles captured once per connection.
type DiscoverInfo struct {
	ReadHandles  []Handle
	WriteHandles []Handle
}

// Clone returns a copy that shares no memory with d.
func (d *DiscoverInfo) Clone() *DiscoverInfo {
	if d == nil {
		return nil
	}
	return &DiscoverInfo{
		ReadHandles:  append([]Handle(nil), d.ReadHandles...),
		WriteHandles: append([]Handle(nil), d.WriteHandles...),
	}
}
