package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	InputDir      string `toml:"input_dir"`
	Output        string `toml:"output"`
	Ext           string `toml:"ext"`
	GroupSize     int    `toml:"group_size"`
	MaxFrameBytes int    `toml:"max_frame_bytes"`
	Level         int    `toml:"level"`
	Remainder     string `toml:"remainder"`
	ReportPath    string `toml:"report"`
	SummaryPath   string `toml:"summary"`
	Watch         *bool  `toml:"watch"`
	Debounce      string `toml:"debounce"`
	LogLevel      string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.framezip/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".framezip", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.InputDir, &cfg.InputDir)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("ext", fc.Ext, &cfg.Ext)
	s.setString("remainder", fc.Remainder, &cfg.Remainder)
	s.setString("report", fc.ReportPath, &cfg.ReportPath)
	s.setString("summary", fc.SummaryPath, &cfg.SummaryPath)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	s.setInt("group-size", fc.GroupSize, &cfg.GroupSize)
	s.setInt("max-frame-bytes", fc.MaxFrameBytes, &cfg.MaxFrameBytes)
	s.setInt("level", fc.Level, &cfg.Level)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	s.setBool("watch", fc.Watch, &cfg.Watch)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
