package client

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime"
	"github.com/siapp-sdk/edgedata-go/pkg/runtime/mocks"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "DISCONNECTED", StateDisconnected.String())
	assert.Equal(t, "CONNECTING", StateConnecting.String())
	assert.Equal(t, "CONNECTED", StateConnected.String())
	assert.Equal(t, "UNKNOWN", State(42).String())
}

func TestNew(t *testing.T) {
	t.Run("NilRuntime", func(t *testing.T) {
		_, err := New(nil, DefaultConfig())
		assert.ErrorIs(t, err, ErrNilRuntime)
	})

	t.Run("InvalidConfig", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DisconnectGracePeriod = -time.Second
		_, err := New(mocks.NewMockRuntime(t), cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("RegisterLoggerFails", func(t *testing.T) {
		rt := mocks.NewMockRuntime(t)
		rt.EXPECT().RegisterLogger(mock.Anything).Return(edgedata.StatusConnectivityError)
		_, err := New(rt, DefaultConfig())
		assert.ErrorIs(t, err, edgedata.ErrConnectivity)
	})

	t.Run("Defaults", func(t *testing.T) {
		env := newTestClient(t, func(c *Config) { c.Handler = nil })
		assert.Equal(t, StateDisconnected, env.client.State())
		assert.IsType(t, NoopHandler{}, env.client.Handler())
		assert.Empty(t, env.client.SessionID())
	})
}

func TestConnect(t *testing.T) {
	env := newTestClient(t)

	var mu sync.Mutex
	var transitions []string
	env.client.OnStateChange(func(oldState, newState State) {
		mu.Lock()
		defer mu.Unlock()
		transitions = append(transitions, oldState.String()+"->"+newState.String())
	})

	env.expectConnect(nil)
	require.True(t, env.client.Connect(t.Context()))

	assert.Equal(t, StateConnected, env.client.State())
	assert.True(t, env.client.IsConnected())
	assert.NotEmpty(t, env.client.SessionID())
	assert.Equal(t, []string{"DISCONNECTED->CONNECTING", "CONNECTING->CONNECTED"}, transitions)
	assert.Equal(t, []string{"Try to connect to edgedataapi", "Connected to edgedataapi"}, env.handler.Messages())

	states := env.capture.byCategory(log.CategoryState)
	require.Len(t, states, 2)
	assert.Equal(t, "CONNECTED", states[1].StateChange.NewState)
	assert.Equal(t, env.client.SessionID(), states[1].SessionID)
}

func TestConnectNewSessionPerConnection(t *testing.T) {
	env := newTestClient(t)
	env.connect(t)
	first := env.client.SessionID()

	env.connect(t)
	assert.NotEqual(t, first, env.client.SessionID())
}

func TestConnectRefused(t *testing.T) {
	env := newTestClient(t)
	env.rt.EXPECT().Connect().Return(edgedata.StatusNOK)

	assert.False(t, env.client.Connect(t.Context()))
	assert.Equal(t, StateDisconnected, env.client.State())
	assert.Nil(t, env.client.Discover())
	assert.Contains(t, env.handler.Messages(), "Error: Cant connect to edgedataapi: NOK")

	errs := env.capture.byCategory(log.CategoryError)
	require.Len(t, errs, 1)
	require.NotNil(t, errs[0].Error.Code)
	assert.Equal(t, edgedata.StatusNOK, *errs[0].Error.Code)
}

func TestConnectCancelledContext(t *testing.T) {
	env := newTestClient(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	// The mock fails the test on any runtime call.
	assert.False(t, env.client.Connect(ctx))
	assert.Equal(t, StateDisconnected, env.client.State())
}

func TestConnectDiscoverFailure(t *testing.T) {
	env := newTestClient(t)
	env.rt.EXPECT().Connect().Return(edgedata.StatusOK)
	env.rt.EXPECT().Discover().Return(nil, edgedata.StatusConnectivityError.Err("discover")).Once()

	require.True(t, env.client.Connect(t.Context()))
	assert.Equal(t, StateConnected, env.client.State())
	assert.Nil(t, env.client.Discover())

	env.rt.EXPECT().Discover().Return(testInfo, nil).Once()
	env.rt.EXPECT().SubscribeEvent(mock.Anything, mock.Anything).Return(edgedata.StatusOK).Times(2)
	env.rt.EXPECT().Data(mock.Anything).RunAndReturn(func(h edgedata.Handle) (edgedata.DataPoint, error) {
		return edgedata.DataPoint{Handle: h, Topic: fmt.Sprintf("T%d", h)}, nil
	})
	require.True(t, env.client.Rediscover())

	topics := env.client.Discover()
	require.NotNil(t, topics)
	assert.Equal(t, []string{"T1", "T2"}, topics.Read)
	assert.Equal(t, []string{"T3", "T4"}, topics.Write)
}

func TestRediscoverNotConnected(t *testing.T) {
	env := newTestClient(t)
	assert.False(t, env.client.Rediscover())
}

func TestConnectSubscribeFailureNotFatal(t *testing.T) {
	env := newTestClient(t)
	env.rt.EXPECT().Connect().Return(edgedata.StatusOK)
	env.rt.EXPECT().Discover().Return(testInfo, nil)
	env.rt.EXPECT().SubscribeEvent(hSpeed, mock.Anything).Return(edgedata.StatusUnknownHandle)
	env.rt.EXPECT().SubscribeEvent(hTemp, mock.Anything).Return(edgedata.StatusOK)

	assert.True(t, env.client.Connect(t.Context()))
	assert.Contains(t, env.handler.Messages(), "Error: Cant subscribe handle 1: UNKNOWN_HANDLE")
}

func TestDiscoverBeforeConnect(t *testing.T) {
	env := newTestClient(t)
	assert.Nil(t, env.client.Discover())
}

func TestDiscoverTopics(t *testing.T) {
	env := newTestClient(t)
	env.connect(t)

	env.rt.EXPECT().Data(hSpeed).Return(edgedata.DataPoint{Topic: "Motor.Speed"}, nil)
	env.rt.EXPECT().Data(hTemp).Return(edgedata.DataPoint{}, &edgedata.HandleError{Handle: hTemp})
	env.rt.EXPECT().Data(hLamp).Return(lampSlot(), nil)
	env.rt.EXPECT().Data(hLevel).Return(levelSlot(), nil)

	topics := env.client.Discover()
	require.NotNil(t, topics)
	assert.Equal(t, []string{"Motor.Speed"}, topics.Read)
	assert.Equal(t, []string{"Lamp.On", "Lamp.Level"}, topics.Write)
	assert.Contains(t, env.handler.Messages(), "An error occurred: resolve topic of handle 2: unknown handle 2")
}

func TestDisconnect(t *testing.T) {
	env := newTestClient(t)
	env.connect(t)

	env.rt.EXPECT().Disconnect().Return(edgedata.StatusOK)
	assert.Equal(t, edgedata.StatusOK, env.client.Disconnect(t.Context()))
	assert.Equal(t, StateDisconnected, env.client.State())
	assert.Empty(t, env.client.SessionID())
	assert.Nil(t, env.client.Discover())

	msgs := env.handler.Messages()
	assert.Equal(t, []string{"Try to disconnect", "disconnected OK"}, msgs[len(msgs)-2:])
}

func TestDisconnectFailureStillDisconnects(t *testing.T) {
	env := newTestClient(t)
	env.connect(t)

	env.rt.EXPECT().Disconnect().Return(edgedata.StatusConnectivityError)
	assert.Equal(t, edgedata.StatusConnectivityError, env.client.Disconnect(t.Context()))
	assert.Equal(t, StateDisconnected, env.client.State())
}

func TestDisconnectGracePeriod(t *testing.T) {
	t.Run("Waits", func(t *testing.T) {
		env := newTestClient(t, func(c *Config) { c.DisconnectGracePeriod = 50 * time.Millisecond })
		env.rt.EXPECT().Disconnect().Return(edgedata.StatusOK)

		start := time.Now()
		env.client.Disconnect(t.Context())
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("ContextCutsShort", func(t *testing.T) {
		env := newTestClient(t, func(c *Config) { c.DisconnectGracePeriod = time.Hour })
		env.rt.EXPECT().Disconnect().Return(edgedata.StatusOK)

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		env.client.Disconnect(ctx)
		assert.Less(t, time.Since(start), 5*time.Second)
		assert.Equal(t, StateDisconnected, env.client.State())
	})
}

func TestEventDispatch(t *testing.T) {
	env := newTestClient(t)
	subs := make(map[edgedata.Handle]runtime.EventFunc)
	env.expectConnect(subs)
	require.True(t, env.client.Connect(t.Context()))
	require.Len(t, subs, 2)

	subs[hSpeed](edgedata.DataPoint{Topic: "Motor.Speed", Handle: hSpeed, Type: edgedata.TypeInt32, Value: edgedata.Int32(7), Quality: 0x02})
	// Member does not match the declared type.
	subs[hTemp](edgedata.DataPoint{Topic: "Motor.Temp", Handle: hTemp, Type: edgedata.TypeDouble64, Value: edgedata.Int32(1)})

	points := env.handler.Points()
	require.Len(t, points, 2)
	assert.Equal(t, edgedata.Int32(7), points[0].Value)
	assert.Equal(t, []string{"FlagOverflow"}, points[0].QualitySet().Names())
	assert.Equal(t, edgedata.TypeUnknown, points[1].Type)
	assert.Nil(t, points[1].Value)

	data := env.capture.byCategory(log.CategoryData)
	require.Len(t, data, 2)
	assert.Equal(t, log.DataKindEvent, data[0].Data.Kind)
	assert.Equal(t, log.DirectionIn, data[0].Direction)
}

func TestRuntimeLogReachesHandler(t *testing.T) {
	env := newTestClient(t)
	require.NotNil(t, env.logFunc)

	env.logFunc("runtime says hi")
	assert.Equal(t, []string{"runtime says hi"}, env.handler.Messages())

	msgs := env.capture.byCategory(log.CategoryMessage)
	require.Len(t, msgs, 1)
	assert.Equal(t, log.SourceRuntime, msgs[0].Message.Source)
}

func TestSetHandlerSwap(t *testing.T) {
	env := newTestClient(t)
	subs := make(map[edgedata.Handle]runtime.EventFunc)
	env.expectConnect(subs)
	require.True(t, env.client.Connect(t.Context()))

	second := &recordingHandler{}
	point := edgedata.DataPoint{Handle: hSpeed, Type: edgedata.TypeInt32, Value: edgedata.Int32(1)}

	const events = 200
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range events {
			subs[hSpeed](point)
		}
	}()
	go func() {
		defer wg.Done()
		env.client.SetHandler(second)
	}()
	wg.Wait()

	// Every event reached exactly one of the handlers.
	assert.Equal(t, events, len(env.handler.Points())+len(second.Points()))

	subs[hSpeed](point)
	assert.Equal(t, events+1, len(env.handler.Points())+len(second.Points()))
	assert.Same(t, second, env.client.Handler())
}

func TestHandlerAdapters(t *testing.T) {
	t.Run("HandlerFuncs", func(t *testing.T) {
		var got []string
		h := HandlerFuncs{Log: func(text string) { got = append(got, text) }}
		h.OnLogMessage("a")
		h.OnDataChange(edgedata.DataPoint{})
		assert.Equal(t, []string{"a"}, got)
	})

	t.Run("MultiHandler", func(t *testing.T) {
		a, b := &recordingHandler{}, &recordingHandler{}
		m := MultiHandler{a, nil, b}
		m.OnLogMessage("x")
		m.OnDataChange(edgedata.DataPoint{Topic: "T"})
		assert.Equal(t, []string{"x"}, a.Messages())
		assert.Equal(t, []string{"x"}, b.Messages())
		assert.Len(t, b.Points(), 1)
	})
}
