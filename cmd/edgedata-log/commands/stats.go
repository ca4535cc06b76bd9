package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// Stats holds aggregate statistics about a capture file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]*SessionStats
	Topics            map[string]*TopicStats
	FailedSyncs       int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single connection.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
}

// TopicStats counts data events per topic.
type TopicStats struct {
	Reads  int
	Writes int
	Events int
	Errors int
}

// Collect aggregates every event of reader.
func Collect(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]*SessionStats),
		Topics:            make(map[string]*TopicStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.SessionID != "" {
		sess, ok := s.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
			s.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
	}

	if topic := event.Topic(); topic != "" {
		ts, ok := s.Topics[topic]
		if !ok {
			ts = &TopicStats{}
			s.Topics[topic] = ts
		}
		switch {
		case event.Data == nil:
			ts.Errors++
		case event.Data.Kind == log.DataKindRead:
			ts.Reads++
		case event.Data.Kind == log.DataKindWrite:
			ts.Writes++
		default:
			ts.Events++
		}
	}

	if event.Sync != nil && !event.Sync.Status.IsSuccess() {
		s.FailedSyncs++
	}
	if event.Error != nil {
		s.Errors++
	}
}

// RunStats analyzes the capture file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := Collect(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Edge Data Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryState, log.CategoryData, log.CategorySync, log.CategoryMessage, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	type sessionInfo struct {
		id    string
		stats *SessionStats
	}
	sessions := make([]sessionInfo, 0, len(stats.Sessions))
	for id, ss := range stats.Sessions {
		sessions = append(sessions, sessionInfo{id, ss})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
	})
	for _, s := range sessions {
		duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenSessionID(s.id), s.stats.Events, duration)
	}

	if len(stats.Topics) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Topics:")
		names := make([]string, 0, len(stats.Topics))
		for name := range stats.Topics {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			t := stats.Topics[name]
			fmt.Fprintf(w, "  %-24s reads=%d writes=%d events=%d errors=%d\n", name, t.Reads, t.Writes, t.Events, t.Errors)
		}
	}

	if stats.FailedSyncs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Failed Syncs: %d\n", stats.FailedSyncs)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
