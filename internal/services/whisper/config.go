package whisper

// Config captures runtime settings for engine invocations.
type Config struct {
	// Binary is the engine executable name or path.
	Binary string
	// Model is the model identifier passed to --model.
	Model string
	// Device is the compute device passed to --device.
	Device string
	// Language is the language hint passed to --language. Ignored when
	// AutoLanguage is set.
	Language string
	// AutoLanguage omits the --language argument so the engine detects
	// the spoken language itself.
	AutoLanguage bool
	// Verbose streams the engine's stdout/stderr to the terminal instead
	// of suppressing them.
	Verbose bool
}

// Engine invocation defaults.
const (
	DefaultBinary   = "whisper"
	DefaultModel    = "medium"
	DefaultDevice   = "cpu"
	DefaultLanguage = "en"
)
