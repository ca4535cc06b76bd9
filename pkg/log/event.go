package log

import (
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// Event represents one captured client activity.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the connection the event belongs to (UUID).
	// Empty for events outside a connection.
	SessionID string `cbor:"2,keyasint,omitempty"`

	// Direction indicates data flow relative to the client.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	StateChange *StateChangeEvent `cbor:"10,keyasint,omitempty"`
	Data        *DataEvent        `cbor:"11,keyasint,omitempty"`
	Sync        *SyncEvent        `cbor:"12,keyasint,omitempty"`
	Message     *MessageEvent     `cbor:"13,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"14,keyasint,omitempty"`
}

// Topic returns the topic the event refers to, if any.
func (e Event) Topic() string {
	switch {
	case e.Data != nil:
		return e.Data.Topic
	case e.Error != nil:
		return e.Error.Topic
	}
	return ""
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionIn is runtime to client: reads, events, runtime messages.
	DirectionIn Direction = 0
	// DirectionOut is client to runtime: writes, syncs, connects.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	CategoryState   Category = 0
	CategoryData    Category = 1
	CategorySync    Category = 2
	CategoryMessage Category = 3
	CategoryError   Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryState:
		return "STATE"
	case CategoryData:
		return "DATA"
	case CategorySync:
		return "SYNC"
	case CategoryMessage:
		return "MESSAGE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// StateChangeEvent captures a connection state transition.
type StateChangeEvent struct {
	OldState string `cbor:"1,keyasint,omitempty"`
	NewState string `cbor:"2,keyasint"`
	Reason   string `cbor:"3,keyasint,omitempty"`
}

// DataKind tells how a data point reached the capture log.
type DataKind uint8

const (
	// DataKindRead is a point returned by a foreground read.
	DataKindRead DataKind = 0
	// DataKindWrite is a point staged for the next sync write.
	DataKindWrite DataKind = 1
	// DataKindEvent is a point delivered by a data change subscription.
	DataKindEvent DataKind = 2
)

// String returns the kind name.
func (k DataKind) String() string {
	switch k {
	case DataKindRead:
		return "READ"
	case DataKindWrite:
		return "WRITE"
	case DataKindEvent:
		return "EVENT"
	default:
		return "UNKNOWN"
	}
}

// DataEvent captures a single decoded data point.
type DataEvent struct {
	Kind      DataKind          `cbor:"1,keyasint"`
	Topic     string            `cbor:"2,keyasint"`
	Handle    edgedata.Handle   `cbor:"3,keyasint"`
	Type      edgedata.DataType `cbor:"4,keyasint"`
	Value     string            `cbor:"5,keyasint,omitempty"` // textual value, empty for unknown types
	Quality   uint32            `cbor:"6,keyasint"`
	Timestamp int64             `cbor:"7,keyasint"`
}

// NewDataEvent builds a DataEvent from p. The point is decoded first so a
// mismatched value member is recorded as an unknown type.
func NewDataEvent(kind DataKind, p edgedata.DataPoint) *DataEvent {
	typ, v, _ := edgedata.Decode(p)
	d := &DataEvent{
		Kind:      kind,
		Topic:     p.Topic,
		Handle:    p.Handle,
		Type:      typ,
		Quality:   p.Quality,
		Timestamp: p.Timestamp,
	}
	if v != nil {
		d.Value = v.String()
	}
	return d
}

// SyncKind distinguishes the two batched sync operations.
type SyncKind uint8

const (
	SyncKindRead  SyncKind = 0
	SyncKindWrite SyncKind = 1
)

// String returns the kind name.
func (k SyncKind) String() string {
	switch k {
	case SyncKindRead:
		return "SYNC_READ"
	case SyncKindWrite:
		return "SYNC_WRITE"
	default:
		return "UNKNOWN"
	}
}

// SyncEvent captures one batched sync call.
type SyncEvent struct {
	Kind     SyncKind          `cbor:"1,keyasint"`
	Handles  []edgedata.Handle `cbor:"2,keyasint"`
	Status   edgedata.Status   `cbor:"3,keyasint"`
	Duration time.Duration     `cbor:"4,keyasint,omitempty"`
}

// MessageSource identifies who produced a log message.
type MessageSource uint8

const (
	// SourceClient marks messages produced by the client library.
	SourceClient MessageSource = 0
	// SourceRuntime marks messages forwarded from the runtime logger.
	SourceRuntime MessageSource = 1
)

// String returns the source name.
func (s MessageSource) String() string {
	switch s {
	case SourceClient:
		return "CLIENT"
	case SourceRuntime:
		return "RUNTIME"
	default:
		return "UNKNOWN"
	}
}

// MessageEvent captures a human readable log message.
type MessageEvent struct {
	Source MessageSource `cbor:"1,keyasint"`
	Text   string        `cbor:"2,keyasint"`
}

// ErrorEventData captures a failed operation.
type ErrorEventData struct {
	// Op is the client operation that failed (connect, read, write, ...).
	Op string `cbor:"1,keyasint"`

	// Message is the error text.
	Message string `cbor:"2,keyasint"`

	// Code is the runtime status code, if the failure carried one.
	Code *edgedata.Status `cbor:"3,keyasint,omitempty"`

	// Topic is set when the failure relates to a single topic.
	Topic string `cbor:"4,keyasint,omitempty"`
}
