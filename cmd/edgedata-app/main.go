// Command edgedata-app is the reference edge data application.
//
// It connects to a simulated data bus runtime driven by a scenario and
// either runs the demo flow (connect, discover, read, sync, write, sync,
// wait for events, disconnect) or opens an interactive console.
//
// Usage:
//
//	edgedata-app [flags]
//
// Flags:
//
//	-config string        Configuration file path (YAML)
//	-discover string      Discover CSV file of the simulated runtime
//	-events string        Events CSV file of the simulated runtime
//	-scenario string      YAML scenario file (replaces -discover/-events)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-capture string       Write a capture log (.elog) to this path
//	-metrics-addr string  Serve Prometheus metrics on this address
//	-interactive          Start the interactive console
//	-wait duration        Time the demo waits for events (default 20s)
//
// Examples:
//
//	# Run the demo against CSV scenario files
//	edgedata-app -discover discover.csv -events events.csv
//
//	# Interactive console with capture and metrics
//	edgedata-app -scenario scenario.yaml -interactive -capture run.elog -metrics-addr :9090
//
// Exit codes of the demo: -1 sync read failed, -2 sync write failed,
// -3 connection failed.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/siapp-sdk/edgedata-go/cmd/edgedata-app/interactive"
	"github.com/siapp-sdk/edgedata-go/pkg/client"
	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// Options holds the command line flags.
type Options struct {
	ConfigFile  string
	Discover    string
	Events      string
	Scenario    string
	LogLevel    string
	Capture     string
	MetricsAddr string
	Interactive bool
	Wait        time.Duration
}

var opts Options

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "", "Configuration file path (YAML)")
	flag.StringVar(&opts.Discover, "discover", "", "Discover CSV file of the simulated runtime")
	flag.StringVar(&opts.Events, "events", "", "Events CSV file of the simulated runtime")
	flag.StringVar(&opts.Scenario, "scenario", "", "YAML scenario file (replaces -discover/-events)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.Capture, "capture", "", "Write a capture log (.elog) to this path")
	flag.StringVar(&opts.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	flag.BoolVar(&opts.Interactive, "interactive", false, "Start the interactive console")
	flag.DurationVar(&opts.Wait, "wait", 20*time.Second, "Time the demo waits for events")
}

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 1
	}

	level, _ := client.ParseLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, player, err := newSimulation(cfg.Sim, logger)
	if err != nil {
		logger.Error("failed to load scenario", "error", err)
		return 1
	}

	clientCfg := client.DefaultConfig()
	clientCfg.DisconnectGracePeriod = cfg.DisconnectGracePeriod
	clientCfg.Logger = logger

	capture := []log.Logger{log.NewSlogAdapter(logger)}
	if cfg.Capture != "" {
		fl, err := log.NewFileLogger(cfg.Capture)
		if err != nil {
			logger.Error("failed to open capture log", "path", cfg.Capture, "error", err)
			return 1
		}
		defer fl.Close()
		capture = append(capture, fl)
		logger.Info("capturing events", "path", cfg.Capture)
	}
	clientCfg.CaptureLogger = log.NewMultiLogger(capture...)

	if cfg.MetricsAddr != "" {
		reg := newRegistry()
		clientCfg.Metrics = reg
		srv := serveMetrics(cfg.MetricsAddr, reg, logger)
		defer shutdownMetrics(srv, logger)
	}

	var console *interactive.Console
	if opts.Interactive {
		console, err = interactive.New()
		if err != nil {
			logger.Error("failed to start console", "error", err)
			return 1
		}
		logger = slog.New(slog.NewTextHandler(console.Stderr(), &slog.HandlerOptions{Level: level}))
		clientCfg.Logger = logger
		clientCfg.Handler = &printHandler{out: console.Stdout()}
	} else {
		clientCfg.Handler = &printHandler{out: os.Stdout}
	}

	c, err := client.New(rt, clientCfg)
	if err != nil {
		logger.Error("failed to create client", "error", err)
		return 1
	}

	driver := newSimDriver(ctx, player, logger)
	c.OnStateChange(driver.onStateChange)
	defer driver.wait()

	if console != nil {
		console.Run(ctx, stop, c)
		if c.IsConnected() {
			c.Disconnect(context.Background())
		}
		return 0
	}
	return runDemo(ctx, c, os.Stdout, opts.Wait)
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(o Options) (client.FileConfig, error) {
	cfg := client.DefaultFileConfig()
	if o.ConfigFile != "" {
		var err error
		cfg, err = client.LoadFileConfig(o.ConfigFile)
		if err != nil {
			return cfg, err
		}
	}

	if o.Scenario != "" {
		cfg.Sim.Scenario = o.Scenario
	}
	if o.Discover != "" {
		cfg.Sim.Discover = o.Discover
	}
	if o.Events != "" {
		cfg.Sim.Events = o.Events
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.Capture != "" {
		cfg.Capture = o.Capture
	}
	if o.MetricsAddr != "" {
		cfg.MetricsAddr = o.MetricsAddr
	}
	return cfg, cfg.Validate()
}

// newRegistry creates the metrics registry with Go runtime collectors.
func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	registerRuntimeCollectors(reg)
	return reg
}
