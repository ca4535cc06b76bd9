package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the view and filter
// commands.
type FilterOptions struct {
	Output    string
	SessionID string
	Topic     string
	TimeStart string
	TimeEnd   string
	Direction string
	Category  string
}

// Filter converts the options into a reader filter.
func (o FilterOptions) Filter() (log.Filter, error) {
	filter := log.Filter{
		SessionID: o.SessionID,
		Topic:     o.Topic,
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}
	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// RunFilter writes the events of path matching opts to opts.Output and
// reports the count on w.
func RunFilter(path string, opts FilterOptions, w io.Writer) error {
	filter, err := opts.Filter()
	if err != nil {
		return err
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}

	fmt.Fprintf(w, "Filtered %d events to %s\n", count, opts.Output)
	return nil
}
