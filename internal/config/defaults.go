package config

const (
	defaultLogDir    = "~/.local/share/subgen/logs"
	defaultEngine    = "whisper"
	defaultModel     = "medium"
	defaultDevice    = "cpu"
	defaultLanguage  = "en"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

var defaultExtensions = []string{".mp4", ".avi", ".mkv", ".mov"}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Media: Media{
			Extensions: append([]string(nil), defaultExtensions...),
		},
		Transcriber: Transcriber{
			Engine:   defaultEngine,
			Model:    defaultModel,
			Device:   defaultDevice,
			Language: defaultLanguage,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
