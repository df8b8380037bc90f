// Package subtitles tracks the subtitle files the transcription engine
// leaves next to a media file: the final .srt that marks a file as done,
// and the intermediate byproducts that get cleaned up every run.
package subtitles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FinalExt marks a media file as already transcribed when a sibling with
// this extension exists.
const FinalExt = ".srt"

// AuxiliaryExts are engine byproducts that are always removed. Order is the
// attempt order for cleanup.
var AuxiliaryExts = []string{".json", ".tsv", ".txt", ".vtt"}

// RemovalState tags the outcome of one artifact removal attempt.
type RemovalState int

const (
	// Removed means the artifact existed and was deleted.
	Removed RemovalState = iota
	// NotFound means no artifact with that extension existed.
	NotFound
	// Failed means the artifact could not be deleted.
	Failed
)

// Removal records one best-effort deletion attempt.
type Removal struct {
	Path  string
	State RemovalState
	Err   error
}

// FinalPath returns the path of the final subtitle for base in dir.
func FinalPath(dir, base string) string {
	return filepath.Join(dir, base+FinalExt)
}

// HasFinal reports whether a final subtitle exists for base in dir.
func HasFinal(dir, base string) (bool, error) {
	_, err := os.Stat(FinalPath(dir, base))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("check final subtitle: %w", err)
}

// ListArtifacts returns the auxiliary artifact paths that currently exist
// for base in dir, without touching them. Used by dry-run reporting.
func ListArtifacts(dir, base string) []string {
	var present []string
	for _, ext := range AuxiliaryExts {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			present = append(present, path)
		}
	}
	return present
}

// CleanArtifacts deletes every auxiliary artifact for base in dir. Deletion
// is best-effort per extension: a missing file is NotFound rather than an
// error, and a failure on one extension never stops the remaining attempts.
// Running it twice with no intervening writes yields the same state.
func CleanArtifacts(dir, base string) []Removal {
	removals := make([]Removal, 0, len(AuxiliaryExts))
	for _, ext := range AuxiliaryExts {
		path := filepath.Join(dir, base+ext)
		err := os.Remove(path)
		switch {
		case err == nil:
			removals = append(removals, Removal{Path: path, State: Removed})
		case errors.Is(err, fs.ErrNotExist):
			removals = append(removals, Removal{Path: path, State: NotFound})
		default:
			removals = append(removals, Removal{Path: path, State: Failed, Err: err})
		}
	}
	return removals
}

// CountRemoved returns how many attempts in removals actually deleted a file.
func CountRemoved(removals []Removal) int {
	n := 0
	for _, r := range removals {
		if r.State == Removed {
			n++
		}
	}
	return n
}
