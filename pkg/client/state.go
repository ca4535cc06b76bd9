package client

// State represents the connection state of a Client.
type State uint8

const (
	// StateDisconnected indicates no open connection.
	StateDisconnected State = iota

	// StateConnecting indicates a connect call is in progress.
	StateConnecting

	// StateConnected indicates an open connection.
	StateConnected
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	default:
		return "UNKNOWN"
	}
}
