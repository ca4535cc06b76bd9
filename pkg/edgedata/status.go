package edgedata

import "strconv"

// Status is a result code reported by the runtime.
type Status int32

const (
	// StatusOK indicates success.
	StatusOK Status = 0

	// StatusNOK indicates a generic failure.
	StatusNOK Status = -1

	// StatusUnknownTopic indicates no handle exists for a topic.
	StatusUnknownTopic Status = -2

	// StatusInvalidValue indicates a type mismatch or out-of-range value.
	StatusInvalidValue Status = -3

	// StatusConnectivityError indicates the runtime is unreachable.
	StatusConnectivityError Status = -4

	// StatusUnknownHandle indicates a stale or invalid handle.
	StatusUnknownHandle Status = -5
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusNOK:
		return "NOK"
	case StatusUnknownTopic:
		return "UNKNOWN_TOPIC"
	case StatusInvalidValue:
		return "INVALID_VALUE"
	case StatusConnectivityError:
		return "ERROR_CONNECTIVITY"
	case StatusUnknownHandle:
		return "UNKNOWN_HANDLE"
	default:
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusOK
}

// Err returns nil for StatusOK and a *StatusError for every other code.
// op names the runtime call that produced the status.
func (s Status) Err(op string) error {
	if s == StatusOK {
		return nil
	}
	return &StatusError{Op: op, Status: s}
}

// sentinel maps the status to its error class.
func (s Status) sentinel() error {
	switch s {
	case StatusUnknownTopic:
		return ErrUnknownTopic
	case StatusInvalidValue:
		return ErrInvalidValue
	case StatusConnectivityError:
		return ErrConnectivity
	case StatusUnknownHandle:
		return ErrUnknownHandle
	default:
		return ErrProtocol
	}
}
