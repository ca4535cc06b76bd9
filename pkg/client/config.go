package client

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/siapp-sdk/edgedata-go/pkg/log"
)

// DefaultDisconnectGracePeriod is the time Disconnect waits after closing
// the runtime connection so in-flight event delivery can settle.
const DefaultDisconnectGracePeriod = 2 * time.Second

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config configures a Client.
type Config struct {
	// DisconnectGracePeriod is the wait after a runtime disconnect.
	DisconnectGracePeriod time.Duration

	// Handler receives data changes and log messages. Nil installs
	// NoopHandler.
	Handler Handler

	// Logger is an optional logger for operational debug output.
	// If nil, no logging is performed.
	Logger *slog.Logger

	// CaptureLogger receives a structured event for every state change,
	// data access, sync and message. If nil, nothing is captured.
	CaptureLogger log.Logger

	// Metrics is the registerer for client collectors. If nil, metrics are
	// disabled.
	Metrics prometheus.Registerer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DisconnectGracePeriod: DefaultDisconnectGracePeriod,
		Handler:               NoopHandler{},
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.DisconnectGracePeriod < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// FileConfig is the on-disk configuration of the edgedata programs.
type FileConfig struct {
	// DisconnectGracePeriod overrides DefaultDisconnectGracePeriod.
	DisconnectGracePeriod time.Duration `yaml:"disconnect_grace_period"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Capture is the path of the capture log file. Empty disables capture.
	Capture string `yaml:"capture"`

	// MetricsAddr is the listen address of the /metrics endpoint. Empty
	// disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// Sim selects the scenario files of the simulated runtime.
	Sim SimFiles `yaml:"sim"`
}

// SimFiles names the scenario files of the simulated runtime. Either
// Scenario or the Discover/Events pair is used.
type SimFiles struct {
	Discover string `yaml:"discover"`
	Events   string `yaml:"events"`
	Scenario string `yaml:"scenario"`
	Loop     bool   `yaml:"loop"`
}

// DefaultFileConfig returns the configuration used when no file is given.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		DisconnectGracePeriod: DefaultDisconnectGracePeriod,
		LogLevel:              "info",
		Sim: SimFiles{
			Discover: "discover.csv",
			Events:   "events.csv",
			Loop:     true,
		},
	}
}

// LoadFileConfig reads a YAML configuration file. Keys missing from the
// file keep their DefaultFileConfig values.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the file config is valid.
func (c *FileConfig) Validate() error {
	if c.DisconnectGracePeriod < 0 {
		return fmt.Errorf("%w: negative disconnect_grace_period", ErrInvalidConfig)
	}
	if _, ok := ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Sim.Scenario == "" && (c.Sim.Discover == "") != (c.Sim.Events == "") {
		return fmt.Errorf("%w: sim needs both discover and events files", ErrInvalidConfig)
	}
	return nil
}

// ParseLevel maps a level name to its slog.Level. Empty selects info.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "", "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
