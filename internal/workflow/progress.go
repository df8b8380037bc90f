package workflow

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// progress wraps the terminal progress bar. Rendering is presentation only:
// it is suppressed off-TTY and always cleared at end of run so a partial bar
// never survives a failure.
type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress(total int, out io.Writer) *progress {
	visible := false
	if file, ok := out.(*os.File); ok {
		fd := file.Fd()
		visible = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
	return &progress{bar: bar}
}

// Label updates the per-file status label shown next to the bar.
func (p *progress) Label(label string) {
	p.bar.Describe(label)
}

// Step marks one file as processed.
func (p *progress) Step() {
	_ = p.bar.Add(1)
}

// Finish clears the bar from the terminal.
func (p *progress) Finish() {
	_ = p.bar.Finish()
	_ = p.bar.Clear()
}
