// Package config loads the protocol core's tunables from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "10m".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the protocol core's tunables. The ping interval is fixed by
// the protocol and intentionally not configurable.
type Config struct {
	// PingTimeout is how long a peer may leave a ping unanswered.
	PingTimeout Duration `yaml:"ping_timeout"`
	// TickInterval is how often the driver should deliver ticks.
	TickInterval Duration `yaml:"tick_interval"`
	// ProtocolVersion is the negotiated protocol version.
	ProtocolVersion uint32 `yaml:"protocol_version"`
	// UserAgent is advertised during the handshake.
	UserAgent string `yaml:"user_agent"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		PingTimeout:     Duration(10 * time.Minute),
		TickInterval:    Duration(time.Second),
		ProtocolVersion: 70016,
		UserAgent:       "/lantern:0.1.0/",
	}
}

// Validate checks the configuration for nonsensical values.
func (c *Config) Validate() error {
	if c.PingTimeout <= 0 {
		return errors.New("ping_timeout must be positive")
	}
	if c.TickInterval <= 0 {
		return errors.New("tick_interval must be positive")
	}
	if c.UserAgent == "" {
		return errors.New("user_agent must not be empty")
	}
	return nil
}

// LoadFromFile loads a Config from a YAML file. Missing fields keep their
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Load(data)
}

// Load loads a Config from YAML bytes on top of the defaults.
func Load(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
