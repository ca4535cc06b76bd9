// Package runtime defines the call contract of the native edge data runtime.
//
// The runtime owns the bus: it assigns handles, holds the current value of
// every point and delivers change events. The client in package client only
// talks to it through the Runtime interface, so any binding (a native
// library, an IPC bridge, or the simulator in package sim) can be plugged in.
//
// All calls are synchronous. Event and log callbacks are invoked from the
// runtime's own goroutines and may run concurrently with any foreground
// call.
package runtime
