package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory and bind address configuration.
type Paths struct {
	LibraryDir string `toml:"library_dir"`
	LogDir     string `toml:"log_dir"`
	APIBind    string `toml:"api_bind"`
}

// History contains undo/redo tuning.
type History struct {
	// MaxDepth is how many undo steps are retained per session.
	MaxDepth int `toml:"max_depth"`
	// DebounceMS groups rapid successive edits into one undo step.
	DebounceMS int `toml:"debounce_ms"`
}

// Output contains the default render target for new projects.
type Output struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	FPS          float64 `toml:"fps"`
	VideoBitrate int     `toml:"video_bitrate"`
	AudioBitrate int     `toml:"audio_bitrate"`
	Format       string  `toml:"format"`
}

// Logging contains log output configuration.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for cutline.
type Config struct {
	Paths   Paths   `toml:"paths"`
	History History `toml:"history"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path of the default config location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cutline/config.toml")
}

// SampleConfig returns the embedded annotated sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was actually found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("cutline.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	libraryDir, err := expandPath(c.Paths.LibraryDir)
	if err != nil {
		return err
	}
	c.Paths.LibraryDir = libraryDir

	logDir, err := expandPath(c.Paths.LogDir)
	if err != nil {
		return err
	}
	c.Paths.LogDir = logDir

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	return nil
}

// EnsureDirectories creates the library and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LibraryDir, c.Paths.LogDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// ExpandPath resolves ~ and relative segments to an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// CreateSample writes the annotated sample configuration to the given path.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		trimmed = filepath.Join(home, trimmed[2:])
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}
	return abs, nil
}
