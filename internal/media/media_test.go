package media

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanFiltersAndSorts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b", "episode.mkv"))
	writeFile(t, filepath.Join(root, "a", "movie.MP4"))
	writeFile(t, filepath.Join(root, "a", "notes.txt"))
	writeFile(t, filepath.Join(root, "a", "movie.srt"))

	files, err := Scan(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Base != "movie" || files[0].Ext != ".mp4" {
		t.Fatalf("unexpected first entry: %+v", files[0])
	}
	if files[1].Base != "episode" || files[1].Ext != ".mkv" {
		t.Fatalf("unexpected second entry: %+v", files[1])
	}
	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Fatalf("expected absolute path, got %q", f.Path)
		}
		if f.Dir != filepath.Dir(f.Path) {
			t.Fatalf("dir mismatch: %+v", f)
		}
	}
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
}

func TestScanRootIsFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "movie.mp4")
	writeFile(t, path)

	_, err := Scan(path, nil)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
}

func TestScanEmptyResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "readme.md"))

	_, err := Scan(root, nil)
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("expected ErrNoMatches, got %v", err)
	}
}

func TestScanCustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "clip.webm"))
	writeFile(t, filepath.Join(root, "clip.mp4"))

	files, err := Scan(root, []string{"webm"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Ext != ".webm" {
		t.Fatalf("unexpected result: %+v", files)
	}
}

func TestNewVideoFile(t *testing.T) {
	f := NewVideoFile("/videos/show/S01E01.MKV")
	if f.Dir != "/videos/show" || f.Base != "S01E01" || f.Ext != ".mkv" {
		t.Fatalf("unexpected VideoFile: %+v", f)
	}
}
