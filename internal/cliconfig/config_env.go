package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FRAMEZIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("FRAMEZIP_INPUT_DIR"), &cfg.InputDir)
	s.setString("output", os.Getenv("FRAMEZIP_OUTPUT"), &cfg.Output)
	s.setString("ext", os.Getenv("FRAMEZIP_EXT"), &cfg.Ext)
	s.setString("remainder", os.Getenv("FRAMEZIP_REMAINDER"), &cfg.Remainder)
	s.setString("report", os.Getenv("FRAMEZIP_REPORT"), &cfg.ReportPath)
	s.setString("summary", os.Getenv("FRAMEZIP_SUMMARY"), &cfg.SummaryPath)
	s.setString("log-level", os.Getenv("FRAMEZIP_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setIntFromString("group-size", os.Getenv("FRAMEZIP_GROUP_SIZE"), &cfg.GroupSize); err != nil {
		return err
	}
	if err := s.setIntFromString("max-frame-bytes", os.Getenv("FRAMEZIP_MAX_FRAME_BYTES"), &cfg.MaxFrameBytes); err != nil {
		return err
	}
	if err := s.setIntFromString("level", os.Getenv("FRAMEZIP_LEVEL"), &cfg.Level); err != nil {
		return err
	}
	if err := s.setDuration("debounce", os.Getenv("FRAMEZIP_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}

	s.setBoolFromString("watch", os.Getenv("FRAMEZIP_WATCH"), &cfg.Watch)

	return nil
}
