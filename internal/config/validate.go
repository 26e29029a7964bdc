package config

import (
	"errors"
	"fmt"
)

var outputFormats = map[string]struct{}{
	"mp4":  {},
	"mov":  {},
	"webm": {},
	"mkv":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Paths.LibraryDir == "" {
		return errors.New("paths.library_dir must be set")
	}
	if c.Paths.APIBind == "" {
		return errors.New("paths.api_bind must be set")
	}
	if c.History.MaxDepth <= 0 {
		return errors.New("history.max_depth must be positive")
	}
	if c.History.DebounceMS <= 0 {
		return errors.New("history.debounce_ms must be positive")
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return fmt.Errorf("output dimensions must be positive, got %dx%d", c.Output.Width, c.Output.Height)
	}
	if c.Output.FPS <= 0 {
		return errors.New("output.fps must be positive")
	}
	if c.Output.Format != "" {
		if _, ok := outputFormats[c.Output.Format]; !ok {
			return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
		}
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
