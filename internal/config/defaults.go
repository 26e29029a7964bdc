package config

const (
	defaultLibraryDir      = "~/.local/share/cutline/library"
	defaultLogDir          = "~/.local/share/cutline/logs"
	defaultAPIBind         = "127.0.0.1:7519"
	defaultHistoryMaxDepth = 50
	defaultHistoryDebounce = 500
	defaultOutputWidth     = 1920
	defaultOutputHeight    = 1080
	defaultOutputFPS       = 30.0
	defaultOutputFormat    = "mp4"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			APIBind:    defaultAPIBind,
		},
		History: History{
			MaxDepth:   defaultHistoryMaxDepth,
			DebounceMS: defaultHistoryDebounce,
		},
		Output: Output{
			Width:  defaultOutputWidth,
			Height: defaultOutputHeight,
			FPS:    defaultOutputFPS,
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
