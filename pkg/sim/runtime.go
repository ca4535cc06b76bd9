package sim

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime"
)

// RuntimeConfig configures a simulated runtime.
type RuntimeConfig struct {
	// Logger receives operational debug output. Nil disables it.
	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// point is the runtime side of one discovered topic.
type point struct {
	spec TopicSpec

	// live is the bus value. For read topics the player updates it, for
	// write topics it is the last value committed by SyncWrite.
	live edgedata.DataPoint

	// slot is what the client sees: the read snapshot as of the last
	// SyncRead, or the staged write value.
	slot edgedata.DataPoint

	// received is set once a write topic has been committed.
	received bool

	subscriber runtime.EventFunc
}

// Runtime is an in-process runtime.Runtime backed by a Scenario.
//
// Handles are assigned from 1 in discover order, shared across read and
// write topics. The link to the bus is up after construction and can be
// cut with SetConnected to simulate connectivity loss.
type Runtime struct {
	scenario *Scenario
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.Mutex
	linkUp    bool
	open      bool
	points    map[edgedata.Handle]*point
	order     []edgedata.Handle
	read      map[string]edgedata.Handle
	write     map[string]edgedata.Handle
	logFunc   runtime.LogFunc
	connected int // number of successful connects
}

// NewRuntime creates a runtime for sc. The scenario is expected to be
// validated.
func NewRuntime(sc *Scenario, cfg RuntimeConfig) *Runtime {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	r := &Runtime{
		scenario: sc,
		logger:   cfg.Logger,
		now:      cfg.Now,
		linkUp:   true,
		points:   make(map[edgedata.Handle]*point, len(sc.Topics)),
		read:     make(map[string]edgedata.Handle),
		write:    make(map[string]edgedata.Handle),
	}

	next := edgedata.Handle(1)
	for _, t := range sc.Topics {
		r.points[next] = &point{spec: t}
		r.order = append(r.order, next)
		if t.Source == SourceWrite {
			r.write[t.Topic] = next
		} else {
			r.read[t.Topic] = next
		}
		next++
	}
	r.reset()
	return r
}

// reset loads initial values into every point. Caller holds mu or has
// exclusive access.
func (r *Runtime) reset() {
	ts := r.now().UnixNano()
	for _, h := range r.order {
		p := r.points[h]
		p.received = false
		p.subscriber = nil

		dp := edgedata.DataPoint{
			Topic:  p.spec.Topic,
			Handle: h,
			Type:   p.spec.Type,
			Value:  edgedata.ZeroValue(p.spec.Type),
		}
		if p.spec.Source == SourceRead {
			dp.Quality = uint32(edgedata.QualityNotTopical)
			dp.Timestamp = ts
			for _, row := range r.scenario.InitialRows() {
				if row.Topic != p.spec.Topic {
					continue
				}
				if v, err := ParseValue(p.spec.Type, row.Value); err == nil {
					dp.Value = v
				}
				dp.Quality = row.Quality
				break
			}
		}
		p.live = dp
		p.slot = dp
	}
}

// SetConnected raises or cuts the simulated link. While the link is down
// every bus call fails with a connectivity error.
func (r *Runtime) SetConnected(up bool) {
	r.mu.Lock()
	r.linkUp = up
	r.mu.Unlock()
	r.debug("link changed", "up", up)
}

// Connect opens a session and reloads the initial values.
func (r *Runtime) Connect() edgedata.Status {
	r.mu.Lock()
	if !r.linkUp {
		r.mu.Unlock()
		return edgedata.StatusConnectivityError
	}
	r.reset()
	r.open = true
	r.connected++
	n := r.connected
	r.mu.Unlock()

	r.logf("SIAPP connected to simulation (session %d)\n", n)
	return edgedata.StatusOK
}

// Disconnect closes the session and drops all subscriptions.
func (r *Runtime) Disconnect() edgedata.Status {
	r.mu.Lock()
	wasOpen := r.open
	r.open = false
	for _, p := range r.points {
		p.subscriber = nil
	}
	r.mu.Unlock()

	if wasOpen {
		r.logf("SIAPP disconnected from simulation\n")
	}
	return edgedata.StatusOK
}

// ready reports the status a bus call would fail with. Caller holds mu.
func (r *Runtime) ready() edgedata.Status {
	if !r.linkUp || !r.open {
		return edgedata.StatusConnectivityError
	}
	return edgedata.StatusOK
}

// Discover returns all handles in discover order.
func (r *Runtime) Discover() (*edgedata.DiscoverInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st := r.ready(); st != edgedata.StatusOK {
		return nil, st.Err("discover")
	}
	info := &edgedata.DiscoverInfo{}
	for _, h := range r.order {
		if r.points[h].spec.Source == SourceWrite {
			info.WriteHandles = append(info.WriteHandles, h)
		} else {
			info.ReadHandles = append(info.ReadHandles, h)
		}
	}
	return info, nil
}

// ReadableHandle resolves a read topic of the open session.
func (r *Runtime) ReadableHandle(topic string) edgedata.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return edgedata.InvalidHandle
	}
	return r.read[topic]
}

// WriteableHandle resolves a write topic of the open session.
func (r *Runtime) WriteableHandle(topic string) edgedata.Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.open {
		return edgedata.InvalidHandle
	}
	return r.write[topic]
}

// Data returns the client-visible slot of h.
func (r *Runtime) Data(h edgedata.Handle) (edgedata.DataPoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.points[h]
	if !ok {
		return edgedata.DataPoint{}, &edgedata.HandleError{Handle: h}
	}
	return p.slot, nil
}

// Stage stores a point into the write slot of its handle.
func (r *Runtime) Stage(dp edgedata.DataPoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.points[dp.Handle]
	if !ok || p.spec.Source != SourceWrite {
		return &edgedata.HandleError{Handle: dp.Handle}
	}
	if dp.Type != p.spec.Type || !dp.Valid() {
		return &edgedata.ValueError{
			Topic:  p.spec.Topic,
			Type:   p.spec.Type,
			Input:  edgedata.Interface(dp.Value),
			Reason: "staged value does not match the declared type",
		}
	}
	dp.Topic = p.spec.Topic
	p.slot = dp
	return nil
}

// checkHandles verifies every handle exists with the given source.
// Caller holds mu.
func (r *Runtime) checkHandles(handles []edgedata.Handle, src Source) edgedata.Status {
	if st := r.ready(); st != edgedata.StatusOK {
		return st
	}
	for _, h := range handles {
		p, ok := r.points[h]
		if !ok || p.spec.Source != src {
			return edgedata.StatusUnknownHandle
		}
	}
	return edgedata.StatusOK
}

// SyncRead copies the live values of handles into their snapshots.
// Nothing is copied unless every handle is a known read handle.
func (r *Runtime) SyncRead(handles []edgedata.Handle) edgedata.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st := r.checkHandles(handles, SourceRead); st != edgedata.StatusOK {
		return st
	}
	for _, h := range handles {
		p := r.points[h]
		p.slot = p.live
	}
	return edgedata.StatusOK
}

// SyncWrite commits the staged slots of handles. A zero timestamp is
// replaced by the sync time.
func (r *Runtime) SyncWrite(handles []edgedata.Handle) edgedata.Status {
	r.mu.Lock()
	if st := r.checkHandles(handles, SourceWrite); st != edgedata.StatusOK {
		r.mu.Unlock()
		return st
	}
	ts := r.now().UnixNano()
	committed := make([]edgedata.DataPoint, 0, len(handles))
	for _, h := range handles {
		p := r.points[h]
		dp := p.slot
		if dp.Timestamp == 0 {
			dp.Timestamp = ts
		}
		p.live = dp
		p.received = true
		committed = append(committed, dp)
	}
	r.mu.Unlock()

	for _, dp := range committed {
		value := "0"
		if dp.Value != nil {
			value = dp.Value.String()
		}
		r.logf("Topic %s received with Value: %s, Quality: %s\n", dp.Topic, value, FormatQuality(dp.Quality))
	}
	return edgedata.StatusOK
}

// SubscribeEvent registers cb for changes of a read handle. A later
// subscription replaces an earlier one.
func (r *Runtime) SubscribeEvent(h edgedata.Handle, cb runtime.EventFunc) edgedata.Status {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st := r.checkHandles([]edgedata.Handle{h}, SourceRead); st != edgedata.StatusOK {
		return st
	}
	r.points[h].subscriber = cb
	return edgedata.StatusOK
}

// RegisterLogger routes simulator diagnostics to cb.
func (r *Runtime) RegisterLogger(cb runtime.LogFunc) edgedata.Status {
	r.mu.Lock()
	r.logFunc = cb
	r.mu.Unlock()
	return edgedata.StatusOK
}

// publish sets the live value of a read topic and returns the event to
// deliver, if the topic has a subscriber.
func (r *Runtime) publish(topic string, value edgedata.Value, quality uint32) (edgedata.DataPoint, runtime.EventFunc, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st := r.ready(); st != edgedata.StatusOK {
		return edgedata.DataPoint{}, nil, st.Err("publish")
	}
	h, ok := r.read[topic]
	if !ok {
		return edgedata.DataPoint{}, nil, &edgedata.TopicError{Topic: topic}
	}
	p := r.points[h]
	p.live.Value = value
	p.live.Quality = quality
	p.live.Timestamp = r.now().UnixNano()
	return p.live, p.subscriber, nil
}

// Received returns the last committed value of a write topic. ok is false
// until the first SyncWrite covering the topic.
func (r *Runtime) Received(topic string) (edgedata.DataPoint, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, found := r.write[topic]
	if !found {
		return edgedata.DataPoint{}, false
	}
	p := r.points[h]
	return p.live, p.received
}

// IsOpen reports whether a client session is open.
func (r *Runtime) IsOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.open && r.linkUp
}

func (r *Runtime) logf(format string, args ...any) {
	r.mu.Lock()
	cb := r.logFunc
	r.mu.Unlock()

	text := fmt.Sprintf(format, args...)
	r.debug("runtime log", "text", text)
	if cb != nil {
		cb(text)
	}
}

func (r *Runtime) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

var _ runtime.Runtime = (*Runtime)(nil)
