package runtime

import "github.com/siapp-sdk/edgedata-go/pkg/edgedata"

// EventFunc receives a change notification for a subscribed read handle.
type EventFunc func(point edgedata.DataPoint)

// LogFunc receives a diagnostic message from the runtime.
type LogFunc func(text string)

// Runtime is the contract of the external data bus runtime.
type Runtime interface {
	// Connect opens the connection to the bus.
	Connect() edgedata.Status

	// Disconnect closes the connection.
	Disconnect() edgedata.Status

	// Discover returns the readable and writeable handles of the current
	// connection.
	Discover() (*edgedata.DiscoverInfo, error)

	// ReadableHandle resolves a topic to its read handle, or
	// edgedata.InvalidHandle.
	ReadableHandle(topic string) edgedata.Handle

	// WriteableHandle resolves a topic to its write handle, or
	// edgedata.InvalidHandle.
	WriteableHandle(topic string) edgedata.Handle

	// Data returns a copy of the point behind h as of the last sync.
	Data(h edgedata.Handle) (edgedata.DataPoint, error)

	// Stage stores a fully validated point into its write slot. The value
	// reaches the bus on the next SyncWrite covering point.Handle.
	Stage(point edgedata.DataPoint) error

	// SyncRead refreshes the snapshot of the given read handles.
	SyncRead(handles []edgedata.Handle) edgedata.Status

	// SyncWrite commits the staged slots of the given write handles.
	SyncWrite(handles []edgedata.Handle) edgedata.Status

	// SubscribeEvent registers cb for changes of a read handle.
	SubscribeEvent(h edgedata.Handle, cb EventFunc) edgedata.Status

	// RegisterLogger routes runtime diagnostics to cb.
	RegisterLogger(cb LogFunc) edgedata.Status
}
