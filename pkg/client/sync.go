package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// ErrEmptyWrite is returned by WriteErr when the request carries neither a
// value nor quality flags.
var ErrEmptyWrite = fmt.Errorf("%w: at least one value or quality parameter must be set", edgedata.ErrInvalidValue)

// WriteRequest describes a write to one topic. At least one of Value and
// Quality must be set.
type WriteRequest struct {
	// Value is any Go integer or float, or a *big.Int. Nil keeps the
	// staged value.
	Value any

	// Quality lists flag names such as "VALID_VALUE" or "FLAG_OVERFLOW".
	// Empty keeps the staged quality.
	Quality []string

	// Timestamp is stored verbatim. Nil resets it to 0 so the runtime
	// stamps the point on sync.
	Timestamp *int64
}

// Read returns the decoded snapshot of a readable topic as of the last
// SyncRead, or nil. Failures are reported to the handler.
func (c *Client) Read(topic string) *edgedata.DataPoint {
	p, err := c.ReadErr(topic)
	if err != nil {
		c.logMessage(fmt.Sprintf("An error occurred: %v", err))
		return nil
	}
	return &p
}

// ReadErr is Read with an error result.
func (c *Client) ReadErr(topic string) (edgedata.DataPoint, error) {
	p, err := c.read(topic)
	c.metrics.recordOp("read", err == nil)
	if err != nil {
		c.captureError("read", topic, err)
		return edgedata.DataPoint{}, err
	}
	c.captureData(log.DataKindRead, p)
	return p, nil
}

func (c *Client) read(topic string) (edgedata.DataPoint, error) {
	h, err := resolveReadable(c.rt, topic)
	if err != nil {
		return edgedata.DataPoint{}, err
	}
	raw, err := c.rt.Data(h)
	if err != nil {
		return edgedata.DataPoint{}, err
	}
	p := edgedata.DecodePoint(raw)
	p.Topic = topic
	p.Handle = h
	return p, nil
}

// Write stages a value and/or quality for a writeable topic. Nothing is
// staged unless every present part validates. The write reaches the bus on
// the next SyncWrite. Failures are reported to the handler.
func (c *Client) Write(topic string, req WriteRequest) bool {
	p, err := c.WriteErr(topic, req)
	if err != nil {
		c.logMessage(writeErrorText(topic, err))
		return false
	}
	c.logMessage(fmt.Sprintf("Data written %s", p))
	return true
}

// WriteErr is Write with the staged point and an error result.
func (c *Client) WriteErr(topic string, req WriteRequest) (edgedata.DataPoint, error) {
	p, err := c.write(topic, req)
	c.metrics.recordOp("write", err == nil)
	if err != nil {
		c.captureError("write", topic, err)
		return edgedata.DataPoint{}, err
	}
	c.captureData(log.DataKindWrite, p)
	return p, nil
}

func (c *Client) write(topic string, req WriteRequest) (edgedata.DataPoint, error) {
	if req.Value == nil && len(req.Quality) == 0 {
		return edgedata.DataPoint{}, ErrEmptyWrite
	}

	h, err := resolveWriteable(c.rt, topic)
	if err != nil {
		return edgedata.DataPoint{}, err
	}
	slot, err := c.rt.Data(h)
	if err != nil {
		return edgedata.DataPoint{}, err
	}

	// Build into a copy so a failed part leaves the slot untouched.
	staged := slot
	staged.Topic = topic
	staged.Handle = h
	if req.Value != nil {
		v, err := edgedata.Encode(topic, slot.Type, req.Value)
		if err != nil {
			return edgedata.DataPoint{}, err
		}
		staged.Value = v
	}
	if len(req.Quality) > 0 {
		q, err := edgedata.EncodeQuality(req.Quality)
		if err != nil {
			return edgedata.DataPoint{}, err
		}
		staged.Quality = q
	}
	staged.Timestamp = 0
	if req.Timestamp != nil {
		staged.Timestamp = *req.Timestamp
	}

	if err := c.rt.Stage(staged); err != nil {
		return edgedata.DataPoint{}, err
	}
	c.metrics.setPending(c.pending.add(h))
	return staged, nil
}

// writeErrorText renders a write failure for the handler.
func writeErrorText(topic string, err error) string {
	var ve *edgedata.ValueError
	var fe *edgedata.FlagError
	switch {
	case errors.Is(err, ErrEmptyWrite):
		return "Error: at least one value or quality parameter must be set"
	case errors.As(err, &ve):
		return fmt.Sprintf("Error: %s for topic %s", ve.Reason, topic)
	case errors.As(err, &fe):
		return fmt.Sprintf("Error: Invalid quality parameter for topic %s: %s", topic, fe.Name)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// SyncRead refreshes the snapshot of every discovered read handle in one
// batch.
func (c *Client) SyncRead() bool {
	var handles []edgedata.Handle
	if reg := c.registry(); reg != nil {
		handles = reg.info.ReadHandles
	}

	start := time.Now()
	st := c.rt.SyncRead(handles)
	c.captureSync(log.SyncKindRead, handles, st, time.Since(start))
	c.metrics.recordOp("sync_read", st.IsSuccess())
	if !st.IsSuccess() {
		c.logMessage(fmt.Sprintf("Error: Cant sync read data: %s", st))
		return false
	}
	c.logMessage("Readable data synchronized")
	return true
}

// SyncWrite commits every handle written since the last SyncWrite in one
// batch. The pending set is cleared whether or not the commit succeeds;
// failed writes are not retried.
func (c *Client) SyncWrite() bool {
	handles := c.pending.drain()
	c.metrics.setPending(c.pending.len())

	start := time.Now()
	st := c.rt.SyncWrite(handles)
	c.captureSync(log.SyncKindWrite, handles, st, time.Since(start))
	c.metrics.recordOp("sync_write", st.IsSuccess())
	if !st.IsSuccess() {
		c.logMessage(fmt.Sprintf("Error: Cant sync write data: %s", st))
		return false
	}
	c.logMessage("Writeable data synchronized")
	return true
}

// Pending returns the write handles staged since the last SyncWrite, in
// first-write order.
func (c *Client) Pending() []edgedata.Handle {
	return c.pending.snapshot()
}
