package sim_test

import (
	"errors"
	"testing"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
	"github.com/siapp-sdk/edgedata-go/pkg/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseScenario() *sim.Scenario {
	return &sim.Scenario{
		Topics: []sim.TopicSpec{
			{Topic: "R", Type: edgedata.TypeInt32, Source: sim.SourceRead},
			{Topic: "W", Type: edgedata.TypeDouble64, Source: sim.SourceWrite},
		},
		Events: []sim.EventRow{
			{Topic: "R", Value: "1"},
			{Topic: "R", Value: "2", WaitMs: 10},
			{Topic: "W", Value: "0.5", WaitMs: 10},
		},
	}
}

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*sim.Scenario)
	}{
		{"duplicate topic", func(s *sim.Scenario) {
			s.Topics = append(s.Topics, sim.TopicSpec{Topic: "R", Type: edgedata.TypeInt32, Source: sim.SourceWrite})
		}},
		{"unknown event topic", func(s *sim.Scenario) {
			s.Events = append(s.Events, sim.EventRow{Topic: "X", Value: "1", WaitMs: 1})
		}},
		{"value does not parse", func(s *sim.Scenario) {
			s.Events[1].Value = "1.5"
		}},
		{"int32 overflow", func(s *sim.Scenario) {
			s.Events[1].Value = "2147483648"
		}},
		{"goto header line", func(s *sim.Scenario) {
			s.Events = append(s.Events, sim.EventRow{Topic: "GOTO1", Goto: 1})
		}},
		{"goto past end", func(s *sim.Scenario) {
			s.Events = append(s.Events, sim.EventRow{Topic: "GOTO9", Goto: 9})
		}},
		{"missing type", func(s *sim.Scenario) {
			s.Topics[0].Type = edgedata.TypeUnknown
		}},
	}

	require.NoError(t, baseScenario().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := baseScenario()
			tt.modify(sc)
			err := sc.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, sim.ErrInvalidScenario))
		})
	}
}

func TestScenarioGotoBounds(t *testing.T) {
	sc := baseScenario()
	// Header is line 1, the three rows are lines 2-4 and the marker line 5.
	sc.Events = append(sc.Events, sim.EventRow{Topic: "GOTO5", Goto: 5})
	assert.NoError(t, sc.Validate())
	assert.Equal(t, 5, sc.Goto())
}

func TestInitialRows(t *testing.T) {
	sc := baseScenario()
	assert.Len(t, sc.InitialRows(), 1)

	sc.Events[1].WaitMs = 0
	sc.Events[2].WaitMs = 0
	assert.Len(t, sc.InitialRows(), 3)
}

func TestParseQuality(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"NT", 0x01},
		{"NT|OV", 0x03},
		{"OB|SB|T|IV", 0x04 | 0x08 | 0x10 | 0x20},
		{"NT||IV", 0x21},
		{" OV | T ", 0x12},
	}
	for _, tt := range tests {
		got, err := sim.ParseQuality(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := sim.ParseQuality("NT|BAD")
	assert.Error(t, err)
}

func TestFormatQuality(t *testing.T) {
	assert.Equal(t, "", sim.FormatQuality(0))
	assert.Equal(t, "NT|OV", sim.FormatQuality(0x03))
	assert.Equal(t, "OB|SB|T|IV", sim.FormatQuality(0x3c))
}

func TestParseValue(t *testing.T) {
	v, err := sim.ParseValue(edgedata.TypeUInt64, "18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, edgedata.UInt64(18446744073709551615), v)

	v, err = sim.ParseValue(edgedata.TypeFloat32, " 1.25 ")
	require.NoError(t, err)
	assert.Equal(t, edgedata.Float32(1.25), v)

	_, err = sim.ParseValue(edgedata.TypeUInt32, "-1")
	assert.Error(t, err)

	_, err = sim.ParseValue(edgedata.TypeUnknown, "1")
	assert.Error(t, err)
}
