package edgedata

import (
	"errors"
	"fmt"
)

// Error classes. Every error produced by this module matches one of these
// with errors.Is.
var (
	ErrConnectivity  = errors.New("edgedata: runtime unreachable")
	ErrUnknownTopic  = errors.New("edgedata: unknown topic")
	ErrUnknownHandle = errors.New("edgedata: unknown handle")
	ErrInvalidValue  = errors.New("edgedata: invalid value")
	ErrUnknownFlag   = errors.New("edgedata: unknown quality flag")
	ErrProtocol      = errors.New("edgedata: operation failed")
)

// StatusError is a non-OK status returned by a runtime call.
type StatusError struct {
	// Op is the runtime call, e.g. "sync_write".
	Op string

	// Status is the code reported by the runtime.
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Op, e.Status, int32(e.Status))
}

func (e *StatusError) Unwrap() error {
	return e.Status.sentinel()
}

// ValueError describes a value that could not be encoded for a topic.
type ValueError struct {
	// Topic is the target topic.
	Topic string

	// Type is the declared type of the target slot.
	Type DataType

	// Input is the rejected value.
	Input any

	// Reason describes the failed check.
	Reason string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %v for topic %s (%s): %s", e.Input, e.Topic, e.Type, e.Reason)
}

func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// FlagError names a quality flag that is not known.
type FlagError struct {
	Name string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("unknown quality flag %q", e.Name)
}

func (e *FlagError) Unwrap() error {
	return ErrUnknownFlag
}

// TopicError is returned when a topic has no handle in the requested role.
type TopicError struct {
	Topic string

	// Writeable is true for write handle lookups.
	Writeable bool
}

func (e *TopicError) Error() string {
	role := "readable"
	if e.Writeable {
		role = "writeable"
	}
	return fmt.Sprintf("no %s handle for topic %q", role, e.Topic)
}

func (e *TopicError) Unwrap() error {
	return ErrUnknownTopic
}

// HandleError is returned when a handle is not known to the runtime.
type HandleError struct {
	Handle Handle
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("unknown handle %d", e.Handle)
}

func (e *HandleError) Unwrap() error {
	return ErrUnknownHandle
}
