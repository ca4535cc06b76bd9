package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime"
)

// ErrNilRuntime is returned by New when no runtime is given.
var ErrNilRuntime = errors.New("nil runtime")

// Client is a connection to the edge data runtime.
type Client struct {
	rt          runtime.Runtime
	gracePeriod time.Duration
	logger      *slog.Logger
	capture     log.Logger
	metrics     *clientMetrics

	handler atomic.Pointer[handlerRef]
	pending *pendingSet

	// opMu serializes Connect, Disconnect and Rediscover.
	opMu sync.Mutex

	mu            sync.RWMutex
	state         State
	sessionID     string
	reg           *registry
	onStateChange func(oldState, newState State)
}

// New creates a client for rt and registers its log sink with the runtime.
func New(rt runtime.Runtime, cfg Config) (*Client, error) {
	if rt == nil {
		return nil, ErrNilRuntime
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := newClientMetrics(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	c := &Client{
		rt:          rt,
		gracePeriod: cfg.DisconnectGracePeriod,
		logger:      cfg.Logger,
		capture:     cfg.CaptureLogger,
		metrics:     m,
		pending:     newPendingSet(),
		state:       StateDisconnected,
	}
	c.SetHandler(cfg.Handler)
	m.setState(StateDisconnected)

	if st := rt.RegisterLogger(c.runtimeLog); !st.IsSuccess() {
		return nil, st.Err("register logger")
	}
	return c, nil
}

// SetHandler replaces the active handler. It applies to every later
// callback, including those already being dispatched by the runtime. Nil
// installs NoopHandler.
func (c *Client) SetHandler(h Handler) {
	if h == nil {
		h = NoopHandler{}
	}
	c.handler.Store(&handlerRef{Handler: h})
}

// Handler returns the active handler.
func (c *Client) Handler() Handler {
	return c.handler.Load().Handler
}

// OnStateChange sets a callback invoked after every state transition.
func (c *Client) OnStateChange(fn func(oldState, newState State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = fn
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// IsConnected returns true if currently connected.
func (c *Client) IsConnected() bool {
	return c.State() == StateConnected
}

// SessionID returns the identifier of the current connection, or "" when
// disconnected.
func (c *Client) SessionID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sessionID
}

// Connect opens the runtime connection, discovers the handle sets and
// subscribes every readable topic. It returns false if the runtime refuses
// the connection or ctx is already done.
//
// A discovery failure does not fail the connect: the client stays
// connected without topics and Discover returns nil until Rediscover
// succeeds.
func (c *Client) Connect(ctx context.Context) bool {
	if err := ctx.Err(); err != nil {
		c.logMessage(fmt.Sprintf("Error: Cant connect to edgedataapi: %v", err))
		c.metrics.recordOp("connect", false)
		return false
	}

	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.pending.reset()
	c.metrics.setPending(0)
	c.mu.Lock()
	c.reg = nil
	c.mu.Unlock()
	c.setState(StateConnecting, "connect")

	c.logMessage("Try to connect to edgedataapi")
	st := c.rt.Connect()
	if !st.IsSuccess() {
		c.logMessage(fmt.Sprintf("Error: Cant connect to edgedataapi: %s", st))
		c.captureError("connect", "", st.Err("connect"))
		c.setState(StateDisconnected, st.String())
		c.metrics.recordOp("connect", false)
		return false
	}

	c.mu.Lock()
	c.sessionID = uuid.NewString()
	c.mu.Unlock()
	c.setState(StateConnected, "connect")
	c.logMessage("Connected to edgedataapi")
	c.metrics.recordOp("connect", true)

	c.discoverAndSubscribe()
	return true
}

// Rediscover repeats discovery and subscription on a connection whose
// initial discovery failed. It returns false when not connected or when
// discovery fails again.
func (c *Client) Rediscover() bool {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if !c.IsConnected() {
		c.logMessage("Error: not connected to edgedataapi")
		return false
	}
	return c.discoverAndSubscribe()
}

// discoverAndSubscribe captures the handle sets and subscribes each read
// handle. Subscription failures are logged and do not fail the call.
func (c *Client) discoverAndSubscribe() bool {
	reg, err := discover(c.rt)
	c.metrics.recordOp("discover", err == nil)
	if err != nil {
		c.logMessage(fmt.Sprintf("Error: Cant discover edgedataapi: %v", err))
		c.captureError("discover", "", err)
		return false
	}

	c.mu.Lock()
	c.reg = reg
	c.mu.Unlock()
	c.debugLog("discovered handles",
		"read", len(reg.info.ReadHandles),
		"write", len(reg.info.WriteHandles))

	for _, h := range reg.info.ReadHandles {
		if st := c.rt.SubscribeEvent(h, c.dispatchEvent); !st.IsSuccess() {
			c.logMessage(fmt.Sprintf("Error: Cant subscribe handle %d: %s", h, st))
			c.captureError("subscribe", "", st.Err("subscribe"))
			c.metrics.recordOp("subscribe", false)
			continue
		}
		c.metrics.recordOp("subscribe", true)
	}
	return true
}

// Disconnect closes the runtime connection and waits the grace period so
// in-flight events can settle. Cancelling ctx cuts the wait short. The
// client always ends up disconnected; the runtime status is returned.
func (c *Client) Disconnect(ctx context.Context) edgedata.Status {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	c.logMessage("Try to disconnect")
	st := c.rt.Disconnect()
	c.logMessage(fmt.Sprintf("disconnected %s", st))
	c.metrics.recordOp("disconnect", st.IsSuccess())
	if !st.IsSuccess() {
		c.captureError("disconnect", "", st.Err("disconnect"))
	}

	if c.gracePeriod > 0 {
		timer := time.NewTimer(c.gracePeriod)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
		}
	}

	c.pending.reset()
	c.metrics.setPending(0)
	c.setState(StateDisconnected, "disconnect")
	c.mu.Lock()
	c.reg = nil
	c.sessionID = ""
	c.mu.Unlock()
	return st
}

// Discover returns the topic names of the current connection, or nil when
// not connected or not discovered.
func (c *Client) Discover() *Topics {
	reg := c.registry()
	if reg == nil {
		return nil
	}
	return reg.topics(func(h edgedata.Handle, err error) {
		c.logMessage(fmt.Sprintf("An error occurred: %v", err))
	})
}

func (c *Client) registry() *registry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.state != StateConnected {
		return nil
	}
	return c.reg
}

// setState transitions to s and fires the state change callback outside
// the lock.
func (c *Client) setState(s State, reason string) {
	c.mu.Lock()
	old := c.state
	c.state = s
	cb := c.onStateChange
	c.mu.Unlock()

	c.metrics.setState(s)
	if old == s {
		return
	}
	c.captureState(old, s, reason)
	if cb != nil {
		cb(old, s)
	}
}

// dispatchEvent is the subscription callback handed to the runtime.
func (c *Client) dispatchEvent(raw edgedata.DataPoint) {
	p := edgedata.DecodePoint(raw)
	c.metrics.recordEvent()
	c.captureData(log.DataKindEvent, p)
	c.handler.Load().OnDataChange(p)
}

// runtimeLog is the log sink registered with the runtime.
func (c *Client) runtimeLog(text string) {
	c.captureMessage(log.SourceRuntime, text)
	c.handler.Load().OnLogMessage(text)
}

// logMessage sends an SDK diagnostic to the active handler.
func (c *Client) logMessage(text string) {
	c.captureMessage(log.SourceClient, text)
	c.handler.Load().OnLogMessage(text)
}

// debugLog logs a debug message if a logger is configured.
func (c *Client) debugLog(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
