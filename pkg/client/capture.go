package client

import (
	"errors"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// emit stamps and forwards a capture event.
func (c *Client) emit(e log.Event) {
	if c.capture == nil {
		return
	}
	e.Timestamp = time.Now()
	e.SessionID = c.SessionID()
	c.capture.Log(e)
}

func (c *Client) captureState(from, to State, reason string) {
	c.emit(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

func (c *Client) captureData(kind log.DataKind, p edgedata.DataPoint) {
	dir := log.DirectionIn
	if kind == log.DataKindWrite {
		dir = log.DirectionOut
	}
	c.emit(log.Event{
		Direction: dir,
		Category:  log.CategoryData,
		Data:      log.NewDataEvent(kind, p),
	})
}

func (c *Client) captureSync(kind log.SyncKind, handles []edgedata.Handle, st edgedata.Status, d time.Duration) {
	c.emit(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategorySync,
		Sync: &log.SyncEvent{
			Kind:     kind,
			Handles:  handles,
			Status:   st,
			Duration: d,
		},
	})
}

func (c *Client) captureMessage(src log.MessageSource, text string) {
	dir := log.DirectionOut
	if src == log.SourceRuntime {
		dir = log.DirectionIn
	}
	c.emit(log.Event{
		Direction: dir,
		Category:  log.CategoryMessage,
		Message:   &log.MessageEvent{Source: src, Text: text},
	})
}

func (c *Client) captureError(op, topic string, err error) {
	data := &log.ErrorEventData{Op: op, Message: err.Error(), Topic: topic}
	var se *edgedata.StatusError
	if errors.As(err, &se) {
		code := se.Status
		data.Code = &code
	}
	c.emit(log.Event{
		Direction: log.DirectionOut,
		Category:  log.CategoryError,
		Error:     data,
	})
}
