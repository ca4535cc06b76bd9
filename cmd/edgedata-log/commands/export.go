package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// Record is the flattened form of an event used by the JSON exports.
type Record struct {
	Timestamp string   `json:"timestamp"`
	SessionID string   `json:"session_id,omitempty"`
	Direction string   `json:"direction"`
	Category  string   `json:"category"`
	Type      string   `json:"type"`
	Topic     string   `json:"topic,omitempty"`
	Handle    uint32   `json:"handle,omitempty"`
	DataType  string   `json:"data_type,omitempty"`
	Value     string   `json:"value,omitempty"`
	Quality   []string `json:"quality,omitempty"`
	DataTime  int64    `json:"data_timestamp,omitempty"`
	Handles   []uint32 `json:"handles,omitempty"`
	Status    string   `json:"status,omitempty"`
	Duration  string   `json:"duration,omitempty"`
	OldState  string   `json:"old_state,omitempty"`
	NewState  string   `json:"new_state,omitempty"`
	Source    string   `json:"source,omitempty"`
	Text      string   `json:"text,omitempty"`
	Op        string   `json:"op,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// NewRecord flattens event.
func NewRecord(event log.Event) Record {
	r := Record{
		Timestamp: event.Timestamp.UTC().Format(timeLayout),
		SessionID: event.SessionID,
		Direction: event.Direction.String(),
		Category:  event.Category.String(),
		Type:      eventType(event),
		Topic:     event.Topic(),
	}

	switch {
	case event.StateChange != nil:
		r.OldState = event.StateChange.OldState
		r.NewState = event.StateChange.NewState
		r.Text = event.StateChange.Reason
	case event.Data != nil:
		r.Handle = uint32(event.Data.Handle)
		r.DataType = event.Data.Type.String()
		r.Value = event.Data.Value
		r.Quality = edgedata.DecodeQuality(event.Data.Quality).Names()
		r.DataTime = event.Data.Timestamp
	case event.Sync != nil:
		for _, h := range event.Sync.Handles {
			r.Handles = append(r.Handles, uint32(h))
		}
		r.Status = event.Sync.Status.String()
		r.Duration = event.Sync.Duration.String()
	case event.Message != nil:
		r.Source = event.Message.Source.String()
		r.Text = event.Message.Text
	case event.Error != nil:
		r.Op = event.Error.Op
		r.Error = event.Error.Message
		if event.Error.Code != nil {
			r.Status = event.Error.Code.String()
		}
	}
	return r
}

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return Export(reader, format, w)
}

// Export writes every event of reader to w in format (json, jsonl or csv).
func Export(reader *log.Reader, format string, w io.Writer) error {
	switch format {
	case "json":
		return exportJSON(reader, w)
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: json, jsonl, csv)", format)
	}
}

func readRecords(reader *log.Reader, fn func(Record) error) error {
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := fn(NewRecord(event)); err != nil {
			return err
		}
	}
}

func exportJSON(reader *log.Reader, w io.Writer) error {
	records := []Record{}
	if err := readRecords(reader, func(r Record) error {
		records = append(records, r)
		return nil
	}); err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	return readRecords(reader, func(r Record) error {
		if err := encoder.Encode(r); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
		return nil
	})
}

var csvHeader = []string{"timestamp", "session_id", "direction", "category", "type", "topic", "value", "quality", "status", "text"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := readRecords(reader, func(r Record) error {
		text := r.Text
		if r.Error != "" {
			text = r.Error
		}
		if r.NewState != "" {
			text = r.OldState + " -> " + r.NewState
		}
		if len(r.Handles) > 0 {
			hs := make([]string, len(r.Handles))
			for i, h := range r.Handles {
				hs[i] = strconv.FormatUint(uint64(h), 10)
			}
			text = strings.Join(hs, " ")
		}
		row := []string{
			r.Timestamp,
			r.SessionID,
			r.Direction,
			r.Category,
			r.Type,
			r.Topic,
			r.Value,
			strings.Join(r.Quality, "|"),
			r.Status,
			strings.TrimRight(text, "\n"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
