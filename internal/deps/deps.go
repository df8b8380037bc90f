// Package deps reports whether the external binaries subgen shells out to
// are reachable on PATH. A missing engine never aborts a run (per-file
// invocation failures are non-fatal); these checks exist so the operator
// finds out before an hour-long batch, not during it.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"subgen/internal/config"
)

// Requirement defines an external binary subgen relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of one requirement.
type Status struct {
	Requirement
	Available bool
	Detail    string
}

// Requirements derives the external binary set from configuration. Today
// that is only the transcription engine.
func Requirements(cfg *config.Config) []Requirement {
	engine := config.Default().Transcriber.Engine
	if cfg != nil && cfg.Transcriber.Engine != "" {
		engine = cfg.Transcriber.Engine
	}
	return []Requirement{
		{
			Name:        "transcription engine",
			Command:     engine,
			Description: "speech-to-text engine invoked per media file",
		},
	}
}

// Check evaluates the requirements against PATH.
func Check(requirements []Requirement) []Status {
	statuses := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		command := strings.TrimSpace(req.Command)
		switch {
		case command == "":
			status.Detail = "command not configured"
		default:
			if path, err := exec.LookPath(command); err != nil {
				status.Detail = fmt.Sprintf("binary %q not found on PATH", command)
			} else {
				status.Available = true
				status.Detail = path
			}
		}
		statuses = append(statuses, status)
	}
	return statuses
}
