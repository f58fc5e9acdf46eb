package cliconfig

import (
	"errors"
	"testing"
	"time"

	"github.com/bft-labs/framezip/internal/domain"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output != "video.vzip" {
		t.Errorf("Output = %v, want video.vzip", cfg.Output)
	}
	if cfg.Ext != ".ppm" {
		t.Errorf("Ext = %v, want .ppm", cfg.Ext)
	}
	if cfg.GroupSize != 10 {
		t.Errorf("GroupSize = %v, want 10", cfg.GroupSize)
	}
	if cfg.MaxFrameBytes != 1<<20 {
		t.Errorf("MaxFrameBytes = %v, want 1MB", cfg.MaxFrameBytes)
	}
	if cfg.Level != 9 {
		t.Errorf("Level = %v, want 9", cfg.Level)
	}
	if cfg.Remainder != "keep" {
		t.Errorf("Remainder = %v, want keep", cfg.Remainder)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.InputDir = "/frames"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"valid defaults", func(*Config) {}, nil},
		{"missing input dir", func(c *Config) { c.InputDir = "" }, domain.ErrInvalidConfig},
		{"missing output", func(c *Config) { c.Output = "" }, domain.ErrInvalidConfig},
		{"missing ext", func(c *Config) { c.Ext = "" }, domain.ErrInvalidConfig},
		{"zero group size", func(c *Config) { c.GroupSize = 0 }, domain.ErrInvalidConfig},
		{"zero buffer", func(c *Config) { c.MaxFrameBytes = 0 }, domain.ErrAllocation},
		{"level too high", func(c *Config) { c.Level = 10 }, domain.ErrInvalidConfig},
		{"level zero", func(c *Config) { c.Level = 0 }, domain.ErrInvalidConfig},
		{"unknown remainder", func(c *Config) { c.Remainder = "pad" }, domain.ErrInvalidConfig},
		{"drop remainder", func(c *Config) { c.Remainder = "drop" }, nil},
		{"unknown log level", func(c *Config) { c.LogLevel = "chatty" }, domain.ErrInvalidConfig},
		{"watch without debounce", func(c *Config) { c.Watch = true; c.Debounce = 0 }, domain.ErrInvalidConfig},
		{"watch with debounce", func(c *Config) { c.Watch = true; c.Debounce = time.Second }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
