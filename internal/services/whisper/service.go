// Package whisper wraps the external speech-to-text engine behind a narrow
// invocation surface. The engine is opaque: it is handed a media path and is
// expected to write subtitle files next to it. Nothing here validates that
// output appeared.
package whisper

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Service invokes the transcription engine for one media file at a time.
type Service struct {
	cfg           Config
	logger        *slog.Logger
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates an engine service with the given configuration.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Device == "" {
		cfg.Device = DefaultDevice
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, logger: logger}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Binary returns the configured engine executable.
func (s *Service) Binary() string {
	return s.cfg.Binary
}

// Model returns the configured model identifier for logging.
func (s *Service) Model() string {
	return s.cfg.Model
}

// Args constructs the engine argument vector for one media file. The model
// and device are fixed per run; the language pair is omitted in auto-detect
// mode so the engine infers it.
func (s *Service) Args(path string) []string {
	args := []string{
		"--model", s.cfg.Model,
		"--device", s.cfg.Device,
		path,
	}
	if !s.cfg.AutoLanguage {
		args = append(args, "--language", s.cfg.Language)
	}
	return args
}

// Transcribe runs the engine against one media file and blocks until it
// exits. On success the engine is expected to have written subtitle files
// next to the input; on failure the error names the file and carries the
// engine's trailing output when it was captured.
func (s *Service) Transcribe(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("transcribe: media path required")
	}

	args := s.Args(path)
	if s.cfg.Verbose {
		s.logger.Info("invoking transcription engine",
			slog.String("command", s.cfg.Binary+" "+strings.Join(args, " ")))
	}

	if s.commandRunner != nil {
		if err := s.commandRunner(ctx, s.cfg.Binary, args...); err != nil {
			return fmt.Errorf("transcribe %s: %w", path, err)
		}
		return nil
	}

	cmd := exec.CommandContext(ctx, s.cfg.Binary, args...) //nolint:gosec
	if s.cfg.Verbose {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("transcribe %s: %s: %w", path, s.cfg.Binary, err)
		}
		return nil
	}

	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("transcribe %s: %s: %w: %s",
			path, s.cfg.Binary, err, tail(string(output)))
	}
	return nil
}

// tail trims captured engine output to its last few lines so errors stay
// readable; the engine can be very chatty on failure.
func tail(output string) string {
	const maxLines = 5
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return "(no output)"
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return strings.Join(lines, " | ")
}
