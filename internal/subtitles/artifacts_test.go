package subtitles

import (
	"os"
	"path/filepath"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCleanArtifactsRemovesOnlyAuxiliary(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.json"))
	touch(t, filepath.Join(dir, "a.vtt"))
	touch(t, filepath.Join(dir, "a.srt"))
	touch(t, filepath.Join(dir, "a.mp4"))
	touch(t, filepath.Join(dir, "b.json"))

	removals := CleanArtifacts(dir, "a")
	if got := CountRemoved(removals); got != 2 {
		t.Fatalf("expected 2 removed, got %d", got)
	}

	for _, keep := range []string{"a.srt", "a.mp4", "b.json"} {
		if _, err := os.Stat(filepath.Join(dir, keep)); err != nil {
			t.Fatalf("%s should survive cleanup: %v", keep, err)
		}
	}
	for _, gone := range []string{"a.json", "a.vtt"} {
		if _, err := os.Stat(filepath.Join(dir, gone)); !os.IsNotExist(err) {
			t.Fatalf("%s should be deleted", gone)
		}
	}
}

func TestCleanArtifactsMissingFilesNotFatal(t *testing.T) {
	dir := t.TempDir()

	removals := CleanArtifacts(dir, "ghost")
	if len(removals) != len(AuxiliaryExts) {
		t.Fatalf("expected %d attempts, got %d", len(AuxiliaryExts), len(removals))
	}
	for _, r := range removals {
		if r.State != NotFound {
			t.Fatalf("expected NotFound for %s, got %v (err=%v)", r.Path, r.State, r.Err)
		}
	}
}

func TestCleanArtifactsIdempotent(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.tsv"))

	first := CleanArtifacts(dir, "a")
	if CountRemoved(first) != 1 {
		t.Fatalf("first pass should remove one file")
	}

	second := CleanArtifacts(dir, "a")
	if CountRemoved(second) != 0 {
		t.Fatalf("second pass should remove nothing")
	}
	for _, r := range second {
		if r.State == Failed {
			t.Fatalf("second pass failed on %s: %v", r.Path, r.Err)
		}
	}
}

func TestCleanArtifactsFailureDoesNotStopRemainingAttempts(t *testing.T) {
	dir := t.TempDir()
	// A non-empty directory in an artifact's place makes os.Remove fail,
	// independent of file permissions.
	if err := os.MkdirAll(filepath.Join(dir, "a.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "a.json", "inner"))
	touch(t, filepath.Join(dir, "a.tsv"))

	removals := CleanArtifacts(dir, "a")
	if len(removals) != len(AuxiliaryExts) {
		t.Fatalf("expected %d attempts, got %d", len(AuxiliaryExts), len(removals))
	}

	byPath := map[string]Removal{}
	for _, r := range removals {
		byPath[filepath.Base(r.Path)] = r
	}
	if got := byPath["a.json"]; got.State != Failed || got.Err == nil {
		t.Fatalf("expected Failed with error for a.json, got %+v", got)
	}
	// The failure on .json must not prevent the .tsv removal.
	if got := byPath["a.tsv"]; got.State != Removed {
		t.Fatalf("expected Removed for a.tsv, got %+v", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "a.tsv")); !os.IsNotExist(err) {
		t.Fatal("a.tsv should be deleted despite the earlier failure")
	}
	if CountRemoved(removals) != 1 {
		t.Fatalf("expected exactly one removal, got %d", CountRemoved(removals))
	}
}

func TestHasFinal(t *testing.T) {
	dir := t.TempDir()

	ok, err := HasFinal(dir, "a")
	if err != nil || ok {
		t.Fatalf("expected absent final subtitle, got ok=%v err=%v", ok, err)
	}

	touch(t, filepath.Join(dir, "a.srt"))
	ok, err = HasFinal(dir, "a")
	if err != nil || !ok {
		t.Fatalf("expected present final subtitle, got ok=%v err=%v", ok, err)
	}
}

func TestListArtifacts(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "a.srt"))

	present := ListArtifacts(dir, "a")
	if len(present) != 1 || present[0] != filepath.Join(dir, "a.txt") {
		t.Fatalf("unexpected artifacts: %v", present)
	}
	// Listing must not delete anything.
	if _, err := os.Stat(filepath.Join(dir, "a.txt")); err != nil {
		t.Fatal(err)
	}
}
