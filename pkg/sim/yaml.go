package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// scenarioYAML is the on-disk form of a scenario:
//
//	topics:
//	  - topic: Motor.Speed
//	    type: INT32
//	    source: READ
//	events:
//	  - topic: Motor.Speed
//	    quality: NT|OV
//	    value: "5"
//	    wait_ms: 100
//	  - goto: 2
type scenarioYAML struct {
	Topics []topicYAML `yaml:"topics"`
	Events []eventYAML `yaml:"events"`
}

type topicYAML struct {
	Topic  string `yaml:"topic"`
	Type   string `yaml:"type"`
	Source string `yaml:"source"`
}

type eventYAML struct {
	Topic   string `yaml:"topic,omitempty"`
	Quality string `yaml:"quality,omitempty"`
	Value   string `yaml:"value,omitempty"`
	WaitMs  int    `yaml:"wait_ms,omitempty"`
	Goto    int    `yaml:"goto,omitempty"`
}

// ParseScenarioYAML parses and validates a scenario from YAML bytes.
//
// Event i of the document counts as line i+2 for GOTO targets, matching the
// line numbering of an events file with a header.
func ParseScenarioYAML(data []byte) (*Scenario, error) {
	var doc scenarioYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Message: "failed to parse YAML", Cause: err}
	}
	if len(doc.Topics) == 0 {
		return nil, &LoadError{Message: "scenario must declare at least one topic", Cause: ErrInvalidScenario}
	}

	sc := &Scenario{}
	for _, t := range doc.Topics {
		typ, ok := edgedata.ParseDataType(t.Type)
		if !ok {
			return nil, &LoadError{Message: fmt.Sprintf("topic %q: invalid type %q", t.Topic, t.Type), Cause: ErrInvalidScenario}
		}
		src, ok := ParseSource(t.Source)
		if !ok {
			return nil, &LoadError{Message: fmt.Sprintf("topic %q: invalid source %q", t.Topic, t.Source), Cause: ErrInvalidScenario}
		}
		sc.Topics = append(sc.Topics, TopicSpec{Topic: t.Topic, Type: typ, Source: src})
	}

	for i, e := range doc.Events {
		line := i + 2
		if e.Goto != 0 {
			sc.Events = append(sc.Events, EventRow{Line: line, Topic: fmt.Sprintf("GOTO%d", e.Goto), Goto: e.Goto})
			continue
		}
		quality, err := ParseQuality(e.Quality)
		if err != nil {
			return nil, &LoadError{Line: line, Message: err.Error(), Cause: ErrInvalidScenario}
		}
		sc.Events = append(sc.Events, EventRow{
			Line:    line,
			Topic:   e.Topic,
			Quality: quality,
			Value:   e.Value,
			WaitMs:  e.WaitMs,
		})
	}

	if err := sc.Validate(); err != nil {
		return nil, &LoadError{Message: "scenario does not verify", Cause: err}
	}
	return sc, nil
}

// LoadScenarioYAML loads a scenario from a YAML file.
func LoadScenarioYAML(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{File: path, Message: "failed to read file", Cause: err}
	}

	sc, err := ParseScenarioYAML(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}
	return sc, nil
}
