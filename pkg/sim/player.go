package sim

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// Match is the outcome of checking one write topic row against the value
// the application committed.
type Match struct {
	Row          EventRow
	Received     edgedata.DataPoint
	HasReceived  bool
	ValueMatch   bool
	QualityMatch bool
}

// OK reports whether both value and quality matched.
func (m Match) OK() bool {
	return m.HasReceived && m.ValueMatch && m.QualityMatch
}

// PlayerConfig configures a Player.
type PlayerConfig struct {
	// Loop repeats the script until the context is cancelled. Repetitions
	// start at the GOTO line if the script has one.
	Loop bool

	// OnMatch is called for every write topic row that was checked.
	OnMatch func(Match)

	// Logger receives operational debug output. Nil disables it.
	Logger *slog.Logger

	// Sleep waits between rows. Defaults to a context aware timer; tests
	// replace it to run without delays.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Player replays the events of a scenario against a Runtime.
type Player struct {
	rt  *Runtime
	cfg PlayerConfig
}

// NewPlayer creates a player for rt.
func NewPlayer(rt *Runtime, cfg PlayerConfig) *Player {
	if cfg.Sleep == nil {
		cfg.Sleep = sleepContext
	}
	return &Player{rt: rt, cfg: cfg}
}

// Run replays the script. It returns nil after one pass when Loop is
// false, ctx.Err() on cancellation and an error if the session is closed
// while a read topic update is sent.
func (p *Player) Run(ctx context.Context) error {
	events := p.rt.scenario.Events
	start := len(p.rt.scenario.InitialRows())

	for pass := 1; ; pass++ {
		if pass > 1 {
			p.rt.logf("......................................\n")
			p.rt.logf("%dth Repetition of data transmission\n", pass-1)
			p.rt.logf("......................................\n")
		}
		played := 0
		for _, row := range events[start:] {
			if row.IsGoto() {
				continue
			}
			if err := p.play(ctx, row); err != nil {
				return err
			}
			played++
		}
		if !p.cfg.Loop || played == 0 {
			return nil
		}
		start = p.rt.scenario.restartIndex()
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

func (p *Player) play(ctx context.Context, row EventRow) error {
	spec, ok := p.rt.scenario.Topic(row.Topic)
	if !ok {
		return nil
	}
	wait := time.Duration(row.WaitMs) * time.Millisecond

	switch spec.Source {
	case SourceRead:
		value, err := ParseValue(spec.Type, row.Value)
		if err != nil {
			return err
		}
		p.rt.logf("Wait for %d ms\n", row.WaitMs)
		if err := p.cfg.Sleep(ctx, wait); err != nil {
			return err
		}
		dp, cb, err := p.rt.publish(row.Topic, value, row.Quality)
		if err != nil {
			p.rt.logf("Connection aborted\n")
			return err
		}
		p.rt.logf(" Send update for topic: %s, value: %s, quality: %s\n", row.Topic, value.String(), FormatQuality(row.Quality))
		if cb != nil {
			cb(dp)
		}

	case SourceWrite:
		if err := p.cfg.Sleep(ctx, wait); err != nil {
			return err
		}
		p.check(spec, row)
	}
	return nil
}

// check compares an expected write row against the committed value.
func (p *Player) check(spec TopicSpec, row EventRow) {
	expected, err := ParseValue(spec.Type, row.Value)
	if err != nil {
		return
	}
	got, received := p.rt.Received(row.Topic)

	m := Match{Row: row, Received: got, HasReceived: received}
	current := "0"
	if received && got.Value != nil {
		current = got.Value.String()
		m.ValueMatch = got.Value == expected
	}
	m.QualityMatch = received && got.Quality == row.Quality

	if m.ValueMatch {
		p.rt.logf("Value (%s) matches csv file content (expected=%s, current=%s)\n", row.Topic, expected.String(), current)
	} else {
		p.rt.logf("Value (%s) DOES NOT MATCH csv file content (expected=%s, current=%s)\n", row.Topic, expected.String(), current)
	}
	if m.QualityMatch {
		p.rt.logf("Quality (%s) matches csv file content (expected=%s, current=%s)\n", row.Topic, FormatQuality(row.Quality), FormatQuality(got.Quality))
	} else {
		p.rt.logf("Quality (%s) DOES NOT MATCH csv file content (expected=%s, current=%s)\n", row.Topic, FormatQuality(row.Quality), FormatQuality(got.Quality))
	}

	if p.cfg.Logger != nil {
		p.cfg.Logger.Debug("write check", "topic", row.Topic, "ok", m.OK())
	}
	if p.cfg.OnMatch != nil {
		p.cfg.OnMatch(m)
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// IsAborted reports whether err ended a Run because the session closed.
func IsAborted(err error) bool {
	return errors.Is(err, edgedata.ErrConnectivity)
}
