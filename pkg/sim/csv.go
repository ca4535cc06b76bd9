package sim

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// Default file names used by the simulator when none are given.
const (
	DefaultDiscoverFile = "discover.csv"
	DefaultEventsFile   = "events.csv"
)

var (
	discoverColumns = []string{"topic", "type", "source"}
	eventsColumns   = []string{"topic", "quality", "value", "wait_ms"}
)

// csvTable is a header-indexed view over a ';' separated file.
type csvTable struct {
	file    string
	reader  *csv.Reader
	columns map[string]int
}

func openTable(r io.Reader, file string, valid []string) (*csvTable, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{File: file, Line: 1, Message: "missing csv header"}
	}
	if err != nil {
		return nil, &LoadError{File: file, Message: "failed to read csv header", Cause: err}
	}

	t := &csvTable{file: file, reader: cr, columns: make(map[string]int, len(header))}
	for i, name := range header {
		name = strings.TrimSpace(name)
		if !contains(valid, name) {
			return nil, &LoadError{
				File:    file,
				Line:    1,
				Message: fmt.Sprintf("invalid csv header %q (valid header: %s)", name, strings.Join(valid, ";")),
			}
		}
		t.columns[name] = i
	}
	for _, name := range valid {
		if _, ok := t.columns[name]; !ok {
			return nil, &LoadError{File: file, Line: 1, Message: fmt.Sprintf("missing csv column %q", name)}
		}
	}
	return t, nil
}

// next returns the next non-empty row as a column lookup and its line.
func (t *csvTable) next() (func(string) string, int, error) {
	for {
		record, err := t.reader.Read()
		if err == io.EOF {
			return nil, 0, io.EOF
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, 0, &LoadError{File: t.file, Line: line, Message: "malformed csv row", Cause: err}
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		line, _ := t.reader.FieldPos(0)
		get := func(name string) string {
			i := t.columns[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		return get, line, nil
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ReadDiscoverCSV parses a discover file. file names the source in errors.
func ReadDiscoverCSV(r io.Reader, file string) ([]TopicSpec, error) {
	t, err := openTable(r, file, discoverColumns)
	if err != nil {
		return nil, err
	}

	var topics []TopicSpec
	seen := make(map[string]struct{})
	for {
		get, line, err := t.next()
		if err == io.EOF {
			return topics, nil
		}
		if err != nil {
			return nil, err
		}

		topic := get("topic")
		if _, dup := seen[topic]; dup {
			return nil, &LoadError{File: file, Line: line, Message: fmt.Sprintf("duplicate topic %q", topic), Cause: ErrInvalidScenario}
		}
		seen[topic] = struct{}{}

		typ, ok := edgedata.ParseDataType(get("type"))
		if !ok {
			return nil, &LoadError{
				File:    file,
				Line:    line,
				Message: fmt.Sprintf("invalid type %q (allowed values: UINT32,INT32,INT64,UINT64,FLOAT32,DOUBLE64)", get("type")),
				Cause:   ErrInvalidScenario,
			}
		}
		src, ok := ParseSource(get("source"))
		if !ok {
			return nil, &LoadError{
				File:    file,
				Line:    line,
				Message: fmt.Sprintf("invalid source %q (allowed values: READ,WRITE)", get("source")),
				Cause:   ErrInvalidScenario,
			}
		}
		topics = append(topics, TopicSpec{Topic: topic, Type: typ, Source: src})
	}
}

// ReadEventsCSV parses an events file. file names the source in errors.
func ReadEventsCSV(r io.Reader, file string) ([]EventRow, error) {
	t, err := openTable(r, file, eventsColumns)
	if err != nil {
		return nil, err
	}

	var rows []EventRow
	for {
		get, line, err := t.next()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}

		topic := get("topic")
		n, isGoto, err := parseGoto(topic)
		if err != nil {
			return nil, &LoadError{File: file, Line: line, Message: err.Error(), Cause: ErrInvalidScenario}
		}
		if isGoto {
			rows = append(rows, EventRow{Line: line, Topic: topic, Goto: n})
			continue
		}

		quality, err := ParseQuality(get("quality"))
		if err != nil {
			return nil, &LoadError{File: file, Line: line, Message: err.Error(), Cause: ErrInvalidScenario}
		}
		wait := 0
		if s := get("wait_ms"); s != "" {
			wait, err = strconv.Atoi(s)
			if err != nil || wait < 0 {
				return nil, &LoadError{File: file, Line: line, Message: fmt.Sprintf("invalid wait_ms %q", s), Cause: ErrInvalidScenario}
			}
		}
		rows = append(rows, EventRow{
			Line:    line,
			Topic:   topic,
			Quality: quality,
			Value:   get("value"),
			WaitMs:  wait,
		})
	}
}

// LoadDiscoverCSV loads a discover file from disk.
func LoadDiscoverCSV(path string) ([]TopicSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}
	defer f.Close()
	return ReadDiscoverCSV(f, path)
}

// LoadEventsCSV loads an events file from disk.
func LoadEventsCSV(path string) ([]EventRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}
	defer f.Close()
	return ReadEventsCSV(f, path)
}

// LoadScenarioCSV loads and validates a discover/events file pair.
func LoadScenarioCSV(discoverPath, eventsPath string) (*Scenario, error) {
	topics, err := LoadDiscoverCSV(discoverPath)
	if err != nil {
		return nil, err
	}
	events, err := LoadEventsCSV(eventsPath)
	if err != nil {
		return nil, err
	}
	sc := &Scenario{Topics: topics, Events: events}
	if err := sc.Validate(); err != nil {
		return nil, &LoadError{File: eventsPath, Message: "scenario does not verify", Cause: err}
	}
	return sc, nil
}
