package sim_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Unix(1700000000, 0)

func newTestRuntime(t *testing.T) *sim.Runtime {
	t.Helper()
	sc, err := sim.LoadScenarioCSV("testdata/discover.csv", "testdata/events.csv")
	require.NoError(t, err)
	return sim.NewRuntime(sc, sim.RuntimeConfig{Now: func() time.Time { return fixedNow }})
}

func TestRuntimeHandlesAndDiscover(t *testing.T) {
	rt := newTestRuntime(t)

	_, err := rt.Discover()
	require.Error(t, err, "discover before connect")
	assert.True(t, errors.Is(err, edgedata.ErrConnectivity))
	assert.Equal(t, edgedata.InvalidHandle, rt.ReadableHandle("Motor.Speed"))

	require.Equal(t, edgedata.StatusOK, rt.Connect())
	info, err := rt.Discover()
	require.NoError(t, err)
	assert.Equal(t, []edgedata.Handle{1, 2}, info.ReadHandles)
	assert.Equal(t, []edgedata.Handle{3, 4}, info.WriteHandles)

	assert.Equal(t, edgedata.Handle(1), rt.ReadableHandle("Motor.Speed"))
	assert.Equal(t, edgedata.InvalidHandle, rt.WriteableHandle("Motor.Speed"))
	assert.Equal(t, edgedata.Handle(4), rt.WriteableHandle("Lamp.Level"))
	assert.Equal(t, edgedata.InvalidHandle, rt.ReadableHandle("Lamp.Level"))
	assert.Equal(t, edgedata.InvalidHandle, rt.ReadableHandle("nope"))
}

func TestRuntimeInitialValues(t *testing.T) {
	rt := newTestRuntime(t)
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	speed, err := rt.Data(1)
	require.NoError(t, err)
	assert.Equal(t, edgedata.Int32(5), speed.Value)
	assert.Equal(t, uint32(0x03), speed.Quality)
	assert.Equal(t, fixedNow.UnixNano(), speed.Timestamp)

	temp, err := rt.Data(2)
	require.NoError(t, err)
	assert.Equal(t, edgedata.Double64(21.5), temp.Value)
	assert.Equal(t, uint32(0), temp.Quality)

	lamp, err := rt.Data(3)
	require.NoError(t, err)
	assert.Equal(t, edgedata.UInt32(0), lamp.Value)
	assert.Equal(t, "Lamp.On", lamp.Topic)

	_, err = rt.Data(99)
	assert.True(t, errors.Is(err, edgedata.ErrUnknownHandle))
}

func TestRuntimeInitialQualityDefaultsToNotTopical(t *testing.T) {
	sc := &sim.Scenario{Topics: []sim.TopicSpec{{Topic: "R", Type: edgedata.TypeInt64, Source: sim.SourceRead}}}
	rt := sim.NewRuntime(sc, sim.RuntimeConfig{})
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	p, err := rt.Data(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(edgedata.QualityNotTopical), p.Quality)
	assert.Equal(t, edgedata.Int64(0), p.Value)
}

func TestRuntimeStageAndSyncWrite(t *testing.T) {
	rt := newTestRuntime(t)
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	var logs []string
	rt.RegisterLogger(func(text string) { logs = append(logs, text) })

	require.NoError(t, rt.Stage(edgedata.DataPoint{Handle: 3, Type: edgedata.TypeUInt32, Value: edgedata.UInt32(1)}))
	require.NoError(t, rt.Stage(edgedata.DataPoint{Handle: 4, Type: edgedata.TypeFloat32, Value: edgedata.Float32(0.5), Quality: 0x20, Timestamp: 77}))

	_, ok := rt.Received("Lamp.On")
	assert.False(t, ok, "nothing committed before sync")

	require.Equal(t, edgedata.StatusOK, rt.SyncWrite([]edgedata.Handle{3, 4}))

	on, ok := rt.Received("Lamp.On")
	require.True(t, ok)
	assert.Equal(t, edgedata.UInt32(1), on.Value)
	assert.Equal(t, fixedNow.UnixNano(), on.Timestamp, "zero timestamp replaced by sync time")

	level, ok := rt.Received("Lamp.Level")
	require.True(t, ok)
	assert.Equal(t, int64(77), level.Timestamp)
	assert.Equal(t, uint32(0x20), level.Quality)

	assert.Contains(t, logs, "Topic Lamp.Level received with Value: 0.5, Quality: IV\n")
}

func TestRuntimeStageRejects(t *testing.T) {
	rt := newTestRuntime(t)
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	err := rt.Stage(edgedata.DataPoint{Handle: 1, Type: edgedata.TypeInt32, Value: edgedata.Int32(1)})
	assert.True(t, errors.Is(err, edgedata.ErrUnknownHandle), "read handle is not writeable")

	err = rt.Stage(edgedata.DataPoint{Handle: 3, Type: edgedata.TypeInt32, Value: edgedata.Int32(1)})
	assert.True(t, errors.Is(err, edgedata.ErrInvalidValue), "type mismatch")

	p, err := rt.Data(3)
	require.NoError(t, err)
	assert.Equal(t, edgedata.UInt32(0), p.Value, "slot untouched")
}

func TestRuntimeSyncReadSnapshot(t *testing.T) {
	rt := newTestRuntime(t)
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	player := sim.NewPlayer(rt, sim.PlayerConfig{Sleep: noSleep})
	require.NoError(t, player.Run(t.Context()))

	// The player only changed live values; the snapshot still holds the
	// initial value until the next SyncRead.
	p, err := rt.Data(1)
	require.NoError(t, err)
	assert.Equal(t, edgedata.Int32(5), p.Value)

	require.Equal(t, edgedata.StatusOK, rt.SyncRead([]edgedata.Handle{1, 2}))
	p, err = rt.Data(1)
	require.NoError(t, err)
	assert.Equal(t, edgedata.Int32(10), p.Value)
	assert.Equal(t, uint32(0), p.Quality)

	temp, err := rt.Data(2)
	require.NoError(t, err)
	assert.Equal(t, edgedata.Double64(22.5), temp.Value)
	assert.Equal(t, uint32(edgedata.QualityInvalid), temp.Quality)
}

func TestRuntimeSyncStatusCodes(t *testing.T) {
	rt := newTestRuntime(t)

	assert.Equal(t, edgedata.StatusConnectivityError, rt.SyncRead([]edgedata.Handle{1}), "not connected")
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	assert.Equal(t, edgedata.StatusUnknownHandle, rt.SyncRead([]edgedata.Handle{1, 3}), "write handle in read sync")
	assert.Equal(t, edgedata.StatusUnknownHandle, rt.SyncWrite([]edgedata.Handle{42}))
	assert.Equal(t, edgedata.StatusOK, rt.SyncWrite(nil))

	rt.SetConnected(false)
	assert.Equal(t, edgedata.StatusConnectivityError, rt.SyncRead([]edgedata.Handle{1}))
	assert.Equal(t, edgedata.StatusConnectivityError, rt.SyncWrite([]edgedata.Handle{3}))
	assert.False(t, rt.IsOpen())

	rt.SetConnected(true)
	assert.True(t, rt.IsOpen())
}

func TestRuntimeConnectFailsWithoutLink(t *testing.T) {
	rt := newTestRuntime(t)
	rt.SetConnected(false)
	assert.Equal(t, edgedata.StatusConnectivityError, rt.Connect())
	assert.False(t, rt.IsOpen())
}

func TestRuntimeSubscribe(t *testing.T) {
	rt := newTestRuntime(t)
	require.Equal(t, edgedata.StatusOK, rt.Connect())

	assert.Equal(t, edgedata.StatusUnknownHandle, rt.SubscribeEvent(3, func(edgedata.DataPoint) {}))

	var mu sync.Mutex
	var got []edgedata.DataPoint
	require.Equal(t, edgedata.StatusOK, rt.SubscribeEvent(1, func(p edgedata.DataPoint) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	}))

	require.NoError(t, sim.NewPlayer(rt, sim.PlayerConfig{Sleep: noSleep}).Run(t.Context()))

	events := func() []edgedata.DataPoint {
		mu.Lock()
		defer mu.Unlock()
		return append([]edgedata.DataPoint(nil), got...)
	}
	require.Len(t, events(), 1)
	assert.Equal(t, "Motor.Speed", events()[0].Topic)
	assert.Equal(t, edgedata.Int32(10), events()[0].Value)
	assert.Equal(t, fixedNow.UnixNano(), events()[0].Timestamp)

	// Subscriptions end with the session.
	rt.Disconnect()
	require.Equal(t, edgedata.StatusOK, rt.Connect())
	require.NoError(t, sim.NewPlayer(rt, sim.PlayerConfig{Sleep: noSleep}).Run(t.Context()))
	assert.Len(t, events(), 1)
}
