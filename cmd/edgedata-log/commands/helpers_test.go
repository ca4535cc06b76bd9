package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

const testSession = "3f2a9c1e-5b7d-4e21-9a0c-1d2e3f4a5b6c"

var baseTime = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.elog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}
	return path
}

// sessionEvents is a short connected session: connect, two reads, a
// write with its sync and one failed sync.
func sessionEvents() []log.Event {
	nok := edgedata.StatusNOK
	return []log.Event{
		{
			Timestamp: baseTime,
			SessionID: testSession,
			Direction: log.DirectionOut,
			Category:  log.CategoryState,
			StateChange: &log.StateChangeEvent{
				OldState: "CONNECTING",
				NewState: "CONNECTED",
			},
		},
		{
			Timestamp: baseTime.Add(100 * time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionIn,
			Category:  log.CategoryData,
			Data: &log.DataEvent{
				Kind:    log.DataKindRead,
				Topic:   "Motor.Speed",
				Handle:  1,
				Type:    edgedata.TypeInt32,
				Value:   "5",
				Quality: uint32(edgedata.QualityNotTopical | edgedata.QualityFlagOverflow),
			},
		},
		{
			Timestamp: baseTime.Add(200 * time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionOut,
			Category:  log.CategoryData,
			Data: &log.DataEvent{
				Kind:   log.DataKindWrite,
				Topic:  "Lamp.On",
				Handle: 3,
				Type:   edgedata.TypeUInt32,
				Value:  "1",
			},
		},
		{
			Timestamp: baseTime.Add(300 * time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionOut,
			Category:  log.CategorySync,
			Sync: &log.SyncEvent{
				Kind:     log.SyncKindWrite,
				Handles:  []edgedata.Handle{3},
				Status:   edgedata.StatusOK,
				Duration: 1500 * time.Microsecond,
			},
		},
		{
			Timestamp: baseTime.Add(400 * time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionOut,
			Category:  log.CategorySync,
			Sync: &log.SyncEvent{
				Kind:    log.SyncKindRead,
				Handles: []edgedata.Handle{1, 2},
				Status:  edgedata.StatusNOK,
			},
		},
		{
			Timestamp: baseTime.Add(500 * time.Millisecond),
			SessionID: testSession,
			Direction: log.DirectionOut,
			Category:  log.CategoryError,
			Error: &log.ErrorEventData{
				Op:      "read",
				Message: `no readable handle for topic "Motor.Missing"`,
				Code:    &nok,
				Topic:   "Motor.Missing",
			},
		},
		{
			Timestamp: baseTime.Add(time.Second),
			Direction: log.DirectionIn,
			Category:  log.CategoryMessage,
			Message: &log.MessageEvent{
				Source: log.SourceRuntime,
				Text:   "SIAPP connected to simulation (session 1)\n",
			},
		},
	}
}
