package cliconfig

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/bft-labs/framezip/internal/app"
	"github.com/bft-labs/framezip/internal/domain"
	"github.com/bft-labs/framezip/pkg/log"
)

// DefaultOutput is the container file name used when none is configured.
const DefaultOutput = "video.vzip"

// Config holds CLI configuration for framezip.
type Config struct {
	InputDir string
	Output   string
	Ext      string

	GroupSize     int
	MaxFrameBytes int
	Level         int
	Remainder     string

	ReportPath  string
	SummaryPath string

	Watch    bool
	Debounce time.Duration
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Output:        DefaultOutput,
		Ext:           ".ppm",
		GroupSize:     app.DefaultGroupSize,
		MaxFrameBytes: 1 << 20, // 1MB
		Level:         9,
		Remainder:     app.RemainderKeep.String(),
		Debounce:      500 * time.Millisecond,
		LogLevel:      "warn",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input directory is required", domain.ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", domain.ErrInvalidConfig)
	}
	if c.Ext == "" {
		return fmt.Errorf("%w: frame extension is required", domain.ErrInvalidConfig)
	}
	if c.GroupSize <= 0 {
		return fmt.Errorf("%w: group size must be positive", domain.ErrInvalidConfig)
	}
	if c.MaxFrameBytes <= 0 || uint64(c.MaxFrameBytes) > math.MaxUint32 {
		return fmt.Errorf("%w: max frame bytes %d", domain.ErrAllocation, c.MaxFrameBytes)
	}
	if c.Level < 1 || c.Level > 9 {
		return fmt.Errorf("%w: compression level must be 1-9", domain.ErrInvalidConfig)
	}
	if _, err := app.ParseRemainderPolicy(c.Remainder); err != nil {
		return err
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("%w: debounce must be positive", domain.ErrInvalidConfig)
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
