package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// ErrInvalidScenario is matched by every scenario validation failure.
var ErrInvalidScenario = errors.New("sim: invalid scenario")

// LoadError describes a scenario file that could not be loaded.
type LoadError struct {
	// File is the path to the file that failed to load.
	File string

	// Line is the line number where the error occurred (0 if unknown).
	Line int

	// Message describes the error.
	Message string

	// Cause is the underlying error, if any.
	Cause error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.Line > 0 {
		return e.File + ":" + strconv.Itoa(e.Line) + ": " + msg
	}
	return e.File + ": " + msg
}

func (e *LoadError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return ErrInvalidScenario
}

// Source is the direction a topic is published in.
type Source uint8

const (
	// SourceRead topics are produced by the bus and read by the application.
	SourceRead Source = 1
	// SourceWrite topics are written by the application.
	SourceWrite Source = 2
)

// String returns the source name as used in discover files.
func (s Source) String() string {
	switch s {
	case SourceRead:
		return "READ"
	case SourceWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// ParseSource parses READ or WRITE.
func ParseSource(s string) (Source, bool) {
	switch strings.TrimSpace(s) {
	case "READ":
		return SourceRead, true
	case "WRITE":
		return SourceWrite, true
	default:
		return 0, false
	}
}

// TopicSpec is one row of the discover file.
type TopicSpec struct {
	Topic  string
	Type   edgedata.DataType
	Source Source
}

// EventRow is one row of the events file. A row with Goto > 0 is a
// repetition marker and carries no data.
type EventRow struct {
	// Line is the line number in the source file, 0 if unknown.
	Line int

	Topic   string
	Quality uint32
	Value   string
	WaitMs  int

	// Goto is the events file line a repetition restarts at, counting the
	// header as line 1 and skipping blank lines.
	Goto int
}

// IsGoto reports whether the row is a GOTO marker.
func (r EventRow) IsGoto() bool {
	return r.Goto > 0
}

// Scenario is a complete twin description.
type Scenario struct {
	Topics []TopicSpec
	Events []EventRow
}

// Topic returns the spec of a topic.
func (s *Scenario) Topic(name string) (TopicSpec, bool) {
	for _, t := range s.Topics {
		if t.Topic == name {
			return t, true
		}
	}
	return TopicSpec{}, false
}

// Goto returns the line of the first GOTO marker, or 0.
func (s *Scenario) Goto() int {
	for _, r := range s.Events {
		if r.IsGoto() {
			return r.Goto
		}
	}
	return 0
}

// restartIndex returns the index into Events a repetition starts at.
// Line n of the events file is Events[n-2]; initial rows are never
// replayed.
func (s *Scenario) restartIndex() int {
	first := len(s.InitialRows())
	n := s.Goto()
	if n == 0 || n-2 < first {
		return first
	}
	return n - 2
}

// InitialRows returns the leading rows with a zero wait. They hold the
// initial values of the read topics and are not replayed.
func (s *Scenario) InitialRows() []EventRow {
	for i, r := range s.Events {
		if r.IsGoto() || r.WaitMs != 0 {
			return s.Events[:i]
		}
	}
	return s.Events
}

// Validate checks the scenario for duplicate topics, event rows referring
// to undiscovered topics, values that do not parse as their topic's type
// and GOTO markers pointing outside the events file.
func (s *Scenario) Validate() error {
	seen := make(map[string]struct{}, len(s.Topics))
	for _, t := range s.Topics {
		if t.Topic == "" {
			return fmt.Errorf("%w: empty topic name", ErrInvalidScenario)
		}
		if _, dup := seen[t.Topic]; dup {
			return fmt.Errorf("%w: duplicate topic %q", ErrInvalidScenario, t.Topic)
		}
		seen[t.Topic] = struct{}{}
		if t.Type == edgedata.TypeUnknown || t.Type > edgedata.TypeDouble64 {
			return fmt.Errorf("%w: topic %q has no valid type", ErrInvalidScenario, t.Topic)
		}
		if t.Source != SourceRead && t.Source != SourceWrite {
			return fmt.Errorf("%w: topic %q has no valid source", ErrInvalidScenario, t.Topic)
		}
	}

	for _, r := range s.Events {
		if r.IsGoto() {
			// Line 1 is the header.
			if r.Goto == 1 || r.Goto > len(s.Events)+1 {
				return fmt.Errorf("%w: unknown GOTO line number %d", ErrInvalidScenario, r.Goto)
			}
			continue
		}
		t, ok := s.Topic(r.Topic)
		if !ok {
			return fmt.Errorf("%w: unknown topic %q (missing in discover)", ErrInvalidScenario, r.Topic)
		}
		if r.WaitMs < 0 {
			return fmt.Errorf("%w: negative wait for topic %q", ErrInvalidScenario, r.Topic)
		}
		if _, err := ParseValue(t.Type, r.Value); err != nil {
			return fmt.Errorf("%w: topic %q: %v", ErrInvalidScenario, r.Topic, err)
		}
	}
	return nil
}

// ParseValue parses the textual value of an event row.
func ParseValue(t edgedata.DataType, s string) (edgedata.Value, error) {
	s = strings.TrimSpace(s)
	switch t {
	case edgedata.TypeInt32:
		v, err := strconv.ParseInt(s, 10, 32)
		return edgedata.Int32(v), err
	case edgedata.TypeUInt32:
		v, err := strconv.ParseUint(s, 10, 32)
		return edgedata.UInt32(v), err
	case edgedata.TypeInt64:
		v, err := strconv.ParseInt(s, 10, 64)
		return edgedata.Int64(v), err
	case edgedata.TypeUInt64:
		v, err := strconv.ParseUint(s, 10, 64)
		return edgedata.UInt64(v), err
	case edgedata.TypeFloat32:
		v, err := strconv.ParseFloat(s, 32)
		return edgedata.Float32(v), err
	case edgedata.TypeDouble64:
		v, err := strconv.ParseFloat(s, 64)
		return edgedata.Double64(v), err
	default:
		return nil, fmt.Errorf("unsupported type %s", t)
	}
}

// quality shorthands in bit order
var qualityShorthands = []struct {
	name string
	flag edgedata.QualityFlag
}{
	{"NT", edgedata.QualityNotTopical},
	{"OV", edgedata.QualityFlagOverflow},
	{"OB", edgedata.QualityOperatorBlocked},
	{"SB", edgedata.QualitySubstituted},
	{"T", edgedata.QualityTest},
	{"IV", edgedata.QualityInvalid},
}

// ParseQuality parses a '|' separated list of quality shorthands. Empty
// entries are skipped, so "" is a valid value.
func ParseQuality(s string) (uint32, error) {
	var raw uint32
	for _, tok := range strings.Split(s, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		found := false
		for _, q := range qualityShorthands {
			if q.name == tok {
				raw |= uint32(q.flag)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("invalid quality bit %q (allowed values: NT|OV|OB|T|SB|IV)", tok)
		}
	}
	return raw, nil
}

// FormatQuality renders a bitmask as shorthands, "" for a valid value.
func FormatQuality(raw uint32) string {
	var parts []string
	for _, q := range qualityShorthands {
		if raw&uint32(q.flag) != 0 {
			parts = append(parts, q.name)
		}
	}
	return strings.Join(parts, "|")
}

// parseGoto extracts n from a GOTO<n> topic.
func parseGoto(topic string) (int, bool, error) {
	if !strings.HasPrefix(topic, "GOTO") {
		return 0, false, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(topic, "GOTO")))
	if err != nil || n <= 0 {
		return 0, true, fmt.Errorf("unknown GOTO line number in %q", topic)
	}
	return n, true, nil
}
