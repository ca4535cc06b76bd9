package main

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/siapp-sdk/edgedata-go/pkg/client"
	"github.com/siapp-sdk/edgedata-go/pkg/sim"
)

// newSimulation loads the scenario and creates the simulated runtime with
// its event player.
func newSimulation(files client.SimFiles, logger *slog.Logger) (*sim.Runtime, *sim.Player, error) {
	var (
		sc  *sim.Scenario
		err error
	)
	if files.Scenario != "" {
		sc, err = sim.LoadScenarioYAML(files.Scenario)
	} else {
		sc, err = sim.LoadScenarioCSV(files.Discover, files.Events)
	}
	if err != nil {
		return nil, nil, err
	}
	logger.Info("scenario loaded", "topics", len(sc.Topics), "events", len(sc.Events))

	rt := sim.NewRuntime(sc, sim.RuntimeConfig{Logger: logger})
	player := sim.NewPlayer(rt, sim.PlayerConfig{
		Loop:   files.Loop,
		Logger: logger,
		OnMatch: func(m sim.Match) {
			logger.Debug("write check", "topic", m.Row.Topic, "ok", m.OK())
		},
	})
	return rt, player, nil
}

// simDriver runs the player while the client is connected.
type simDriver struct {
	parent context.Context
	player *sim.Player
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newSimDriver(ctx context.Context, player *sim.Player, logger *slog.Logger) *simDriver {
	return &simDriver{parent: ctx, player: player, logger: logger}
}

// onStateChange starts the player on connect and stops it on every other
// transition.
func (d *simDriver) onStateChange(_, newState client.State) {
	if newState == client.StateConnected {
		d.start()
	} else {
		d.stop()
	}
}

func (d *simDriver) start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(d.parent)
	d.cancel = cancel
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := d.player.Run(ctx)
		switch {
		case err == nil:
			d.logger.Debug("scenario finished")
		case errors.Is(err, context.Canceled), sim.IsAborted(err):
			d.logger.Debug("scenario stopped", "reason", err)
		default:
			d.logger.Error("scenario failed", "error", err)
		}
	}()
}

func (d *simDriver) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// wait stops the player and waits for it to return.
func (d *simDriver) wait() {
	d.stop()
	d.wg.Wait()
}
