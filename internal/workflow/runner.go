package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"subgen/internal/config"
	"subgen/internal/media"
	"subgen/internal/subtitles"
)

// lockFileName guards against two runs mutating the same artifacts. The
// per-file check-then-act is racy across processes; the lock keeps execution
// single-instance instead of pretending otherwise.
const lockFileName = "subgen.lock"

// Transcriber is the narrow capability the runner needs from the engine.
type Transcriber interface {
	Transcribe(ctx context.Context, path string) error
}

// Options are the per-run invocation parameters. Read-only during the run.
type Options struct {
	// Root is the directory to walk. Empty means the current directory.
	Root string
}

// Result aggregates batch outcomes for summary reporting.
type Result struct {
	Total            int
	Transcribed      int
	Skipped          int
	Failed           int
	ArtifactsRemoved int
}

// Runner executes one sequential batch pass.
type Runner struct {
	cfg         *config.Config
	logger      *slog.Logger
	transcriber Transcriber
	progressOut io.Writer
}

// NewRunner constructs a runner with initialized dependencies.
func NewRunner(cfg *config.Config, logger *slog.Logger, transcriber Transcriber) (*Runner, error) {
	if cfg == nil || logger == nil || transcriber == nil {
		return nil, fmt.Errorf("runner requires config, logger, and transcriber")
	}
	return &Runner{
		cfg:         cfg,
		logger:      logger,
		transcriber: transcriber,
		progressOut: os.Stdout,
	}, nil
}

// SetProgressOutput redirects progress rendering (for testing).
func (r *Runner) SetProgressOutput(w io.Writer) {
	r.progressOut = w
}

// Run walks the root and processes every candidate file in order. Discovery
// failures are fatal; everything after discovery is best-effort per file.
func (r *Runner) Run(ctx context.Context, opts Options) (Result, error) {
	var result Result

	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return result, fmt.Errorf("resolve working directory: %w", err)
		}
		root = wd
	}

	release, err := r.acquireLock()
	if err != nil {
		return result, err
	}
	defer release()

	files, err := media.Scan(root, r.cfg.Media.Extensions)
	if err != nil {
		return result, err
	}
	result.Total = len(files)

	logger := r.logger.With(
		slog.String("component", "workflow"),
		slog.String("run_id", uuid.NewString()),
	)
	logger.Info("starting batch run",
		slog.String("root", root),
		slog.Int("files", len(files)))

	bar := newProgress(len(files), r.progressOut)
	defer bar.Finish()

	for _, file := range files {
		if ctx.Err() != nil {
			logger.Warn("run interrupted", slog.String("reason", ctx.Err().Error()))
			break
		}
		bar.Label(file.Base + file.Ext)
		r.processFile(ctx, logger, file, &result)
		bar.Step()
	}

	logger.Info("batch run complete",
		slog.Int("transcribed", result.Transcribed),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.Int("artifacts_removed", result.ArtifactsRemoved))
	return result, nil
}

// processFile handles one media file: clean, decide, transcribe, clean again.
// Panics are contained here so a misbehaving engine wrapper cannot take down
// the batch.
func (r *Runner) processFile(ctx context.Context, logger *slog.Logger, file media.VideoFile, result *Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result.Failed++
			logger.Error("unexpected panic while processing file",
				slog.String("file", file.Path),
				slog.Any("panic", rec))
		}
	}()

	// Stale byproducts must go before the existence check so they never
	// produce a false "already transcribed" read.
	result.ArtifactsRemoved += r.clean(logger, file)

	hasFinal, err := subtitles.HasFinal(file.Dir, file.Base)
	if err != nil {
		result.Failed++
		logger.Warn("cannot determine subtitle state",
			slog.String("file", file.Path),
			slog.Any("error", err))
		return
	}
	if hasFinal {
		result.Skipped++
		logger.Debug("final subtitle present, skipping",
			slog.String("file", file.Path))
		return
	}

	if err := r.transcriber.Transcribe(ctx, file.Path); err != nil {
		result.Failed++
		logger.Warn("transcription failed, continuing batch",
			slog.String("file", file.Path),
			slog.Any("error", err))
	} else {
		result.Transcribed++
		logger.Info("transcribed", slog.String("file", file.Path))
	}

	// The engine writes the whole subtitle family next to the input; sweep
	// its byproducts whether it succeeded or died halfway.
	result.ArtifactsRemoved += r.clean(logger, file)
}

func (r *Runner) clean(logger *slog.Logger, file media.VideoFile) int {
	removals := subtitles.CleanArtifacts(file.Dir, file.Base)
	for _, removal := range removals {
		if removal.State == subtitles.Failed {
			logger.Warn("cannot remove artifact",
				slog.String("path", removal.Path),
				slog.Any("error", removal.Err))
		}
	}
	return subtitles.CountRemoved(removals)
}

func (r *Runner) acquireLock() (func(), error) {
	if r.cfg.Paths.LogDir == "" {
		return func() {}, nil
	}
	if err := os.MkdirAll(r.cfg.Paths.LogDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}

	lock := flock.New(filepath.Join(r.cfg.Paths.LogDir, lockFileName))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another subgen run is already in progress (lock: %s)", lock.Path())
	}
	return func() { _ = lock.Unlock() }, nil
}
