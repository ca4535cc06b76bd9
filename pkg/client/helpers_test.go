package client

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime/mocks"
)

// recordingHandler collects everything dispatched to it.
type recordingHandler struct {
	mu       sync.Mutex
	points   []edgedata.DataPoint
	messages []string
}

func (h *recordingHandler) OnDataChange(p edgedata.DataPoint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.points = append(h.points, p)
}

func (h *recordingHandler) OnLogMessage(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, text)
}

func (h *recordingHandler) Points() []edgedata.DataPoint {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]edgedata.DataPoint(nil), h.points...)
}

func (h *recordingHandler) Messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.messages...)
}

// recordingLogger collects capture events.
type recordingLogger struct {
	mu     sync.Mutex
	events []log.Event
}

func (l *recordingLogger) Log(e log.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

func (l *recordingLogger) Events() []log.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]log.Event(nil), l.events...)
}

func (l *recordingLogger) byCategory(c log.Category) []log.Event {
	var out []log.Event
	for _, e := range l.Events() {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// Handles used by the mocked runtime.
const (
	hSpeed edgedata.Handle = 1
	hTemp  edgedata.Handle = 2
	hLamp  edgedata.Handle = 3
	hLevel edgedata.Handle = 4
)

var testInfo = &edgedata.DiscoverInfo{
	ReadHandles:  []edgedata.Handle{hSpeed, hTemp},
	WriteHandles: []edgedata.Handle{hLamp, hLevel},
}

type testEnv struct {
	client  *Client
	rt      *mocks.MockRuntime
	handler *recordingHandler
	capture *recordingLogger
	logFunc runtime.LogFunc
}

// newTestClient creates a client on a mocked runtime with no grace period.
func newTestClient(t *testing.T, opts ...func(*Config)) *testEnv {
	t.Helper()

	env := &testEnv{
		rt:      mocks.NewMockRuntime(t),
		handler: &recordingHandler{},
		capture: &recordingLogger{},
	}
	env.rt.EXPECT().RegisterLogger(mock.Anything).
		Run(func(cb runtime.LogFunc) { env.logFunc = cb }).
		Return(edgedata.StatusOK)

	cfg := DefaultConfig()
	cfg.DisconnectGracePeriod = 0
	cfg.Handler = env.handler
	cfg.CaptureLogger = env.capture
	for _, opt := range opts {
		opt(&cfg)
	}

	c, err := New(env.rt, cfg)
	require.NoError(t, err)
	env.client = c
	return env
}

// expectConnect sets up a successful connect with discovery and
// subscriptions. Subscription callbacks are stored in subs.
func (e *testEnv) expectConnect(subs map[edgedata.Handle]runtime.EventFunc) {
	e.rt.EXPECT().Connect().Return(edgedata.StatusOK).Once()
	e.rt.EXPECT().Discover().Return(testInfo, nil).Once()
	for _, h := range testInfo.ReadHandles {
		e.rt.EXPECT().SubscribeEvent(h, mock.Anything).
			Run(func(h edgedata.Handle, cb runtime.EventFunc) {
				if subs != nil {
					subs[h] = cb
				}
			}).
			Return(edgedata.StatusOK).Once()
	}
}

func (e *testEnv) connect(t *testing.T) {
	t.Helper()
	e.expectConnect(nil)
	require.True(t, e.client.Connect(t.Context()))
}

func (e *testEnv) expectTopics() {
	e.rt.EXPECT().ReadableHandle("Motor.Speed").Return(hSpeed).Maybe()
	e.rt.EXPECT().ReadableHandle(mock.Anything).Return(edgedata.InvalidHandle).Maybe()
	e.rt.EXPECT().WriteableHandle("Lamp.On").Return(hLamp).Maybe()
	e.rt.EXPECT().WriteableHandle("Lamp.Level").Return(hLevel).Maybe()
	e.rt.EXPECT().WriteableHandle(mock.Anything).Return(edgedata.InvalidHandle).Maybe()
}

func lampSlot() edgedata.DataPoint {
	return edgedata.DataPoint{Topic: "Lamp.On", Handle: hLamp, Type: edgedata.TypeInt32, Value: edgedata.Int32(0)}
}

func levelSlot() edgedata.DataPoint {
	return edgedata.DataPoint{Topic: "Lamp.Level", Handle: hLevel, Type: edgedata.TypeFloat32, Value: edgedata.Float32(0)}
}
