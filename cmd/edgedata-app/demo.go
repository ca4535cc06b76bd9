package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/client"
	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// Demo exit codes.
const (
	exitSyncReadFailed  = -1
	exitSyncWriteFailed = -2
	exitConnectFailed   = -3
)

// settleDelay is the pause between the first reads and the first sync.
var settleDelay = 2 * time.Second

// runDemo walks through the SDK: reads before and after a sync, two
// rounds of writes to every write topic, then waits for events.
func runDemo(ctx context.Context, c *client.Client, out io.Writer, wait time.Duration) int {
	if !c.Connect(ctx) {
		fmt.Fprintln(out, "Connection failed")
		return exitConnectFailed
	}

	topics := c.Discover()
	if topics == nil {
		topics = &client.Topics{}
	}
	for _, topic := range topics.Read {
		fmt.Fprintf(out, "Discovered Read Topic: %s\n", topic)
	}
	for _, topic := range topics.Write {
		fmt.Fprintf(out, "Discovered Write Topic: %s\n", topic)
	}

	printReads(out, c, "Manual Read Data", topics.Read)
	sleep(ctx, settleDelay)

	// Snapshots only change on sync.
	if !c.SyncRead() {
		fmt.Fprintln(out, "Sync read failed")
		c.Disconnect(ctx)
		return exitSyncReadFailed
	}
	printReads(out, c, "Manual Read Data", topics.Read)

	value := 1
	value = writeAll(out, c, topics.Write, value, []string{"VALID_VALUE"})
	if !c.SyncWrite() {
		fmt.Fprintln(out, "Sync write failed")
		c.Disconnect(ctx)
		return exitSyncWriteFailed
	}
	printReads(out, c, "Manual Write Data", topics.Write)

	writeAll(out, c, topics.Write, value, []string{"FLAG_OVERFLOW", "TEST"})
	if !c.SyncWrite() {
		fmt.Fprintln(out, "Sync write failed")
		c.Disconnect(ctx)
		return exitSyncWriteFailed
	}

	// Events keep arriving on the handler meanwhile.
	sleep(ctx, wait)
	c.Disconnect(context.Background())
	return 0
}

// writeAll writes increasing values starting at value and returns the
// next unused value.
func writeAll(out io.Writer, c *client.Client, topics []string, value int, quality []string) int {
	for _, topic := range topics {
		ts := time.Now().UnixNano()
		if !c.Write(topic, client.WriteRequest{Value: value, Quality: quality, Timestamp: &ts}) {
			fmt.Fprintln(out, "Write failed")
		}
		value++
	}
	return value
}

func printReads(out io.Writer, c *client.Client, label string, topics []string) {
	for _, topic := range topics {
		fmt.Fprintf(out, "%s: %s\n", label, formatPoint(c.Read(topic)))
	}
}

func formatPoint(p *edgedata.DataPoint) string {
	if p == nil {
		return "none"
	}
	return p.String()
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
