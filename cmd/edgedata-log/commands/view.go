package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

const timeLayout = "2006-01-02T15:04:05.000000Z"

// RunView prints the events of a capture file matching filter.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timeLayout)
	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s\n",
		ts, shortenSessionID(event.SessionID), event.Direction, event.Category, eventType(event))

	switch {
	case event.StateChange != nil:
		sc := event.StateChange
		if sc.OldState != "" {
			fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
		} else {
			fmt.Fprintf(w, "  -> %s\n", sc.NewState)
		}
		if sc.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
		}

	case event.Data != nil:
		d := event.Data
		value := d.Value
		if value == "" {
			value = "none"
		}
		fmt.Fprintf(w, "  Topic: %s (handle %d)\n", d.Topic, d.Handle)
		fmt.Fprintf(w, "  Value: %s %s\n", value, d.Type)
		fmt.Fprintf(w, "  Quality: [%s]\n", strings.Join(edgedata.DecodeQuality(d.Quality).Names(), ", "))
		if d.Timestamp != 0 {
			fmt.Fprintf(w, "  Timestamp: %d\n", d.Timestamp)
		}

	case event.Sync != nil:
		s := event.Sync
		fmt.Fprintf(w, "  Handles: %s\n", formatHandles(s.Handles))
		fmt.Fprintf(w, "  Status: %s (%d)\n", s.Status, s.Status)
		if s.Duration > 0 {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(s.Duration))
		}

	case event.Message != nil:
		fmt.Fprintf(w, "  %s: %s\n", event.Message.Source, strings.TrimRight(event.Message.Text, "\n"))

	case event.Error != nil:
		e := event.Error
		fmt.Fprintf(w, "  Op: %s\n", e.Op)
		fmt.Fprintf(w, "  Message: %s\n", e.Message)
		if e.Code != nil {
			fmt.Fprintf(w, "  Code: %s (%d)\n", *e.Code, *e.Code)
		}
		if e.Topic != "" {
			fmt.Fprintf(w, "  Topic: %s\n", e.Topic)
		}
	}

	fmt.Fprintln(w)
}

func formatHandles(handles []edgedata.Handle) string {
	parts := make([]string, len(handles))
	for i, h := range handles {
		parts[i] = fmt.Sprintf("%d", h)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}
