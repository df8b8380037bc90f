// Package media discovers candidate video files under a root directory.
package media

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for batch-fatal discovery failures.
var (
	// ErrRootNotFound indicates the scan root does not exist or is not a directory.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrNoMatches indicates the scan found zero files with an allowed extension.
	ErrNoMatches = errors.New("no matching media files")
)

// DefaultExtensions is the allowed media extension set (lowercase, leading dot).
var DefaultExtensions = []string{".mp4", ".avi", ".mkv", ".mov"}

// VideoFile describes one discovered media file. Immutable after discovery.
type VideoFile struct {
	// Path is the absolute file path.
	Path string
	// Dir is the containing directory.
	Dir string
	// Base is the file name without its extension.
	Base string
	// Ext is the lowercase extension including the leading dot.
	Ext string
}

// NewVideoFile splits an absolute path into its VideoFile components.
func NewVideoFile(path string) VideoFile {
	name := filepath.Base(path)
	ext := filepath.Ext(name)
	return VideoFile{
		Path: path,
		Dir:  filepath.Dir(path),
		Base: strings.TrimSuffix(name, ext),
		Ext:  strings.ToLower(ext),
	}
}

// Scan walks root recursively and returns every file whose extension is in
// extensions, sorted lexicographically by path for deterministic processing
// order. The walk is read-only. A missing root yields ErrRootNotFound; an
// empty result yields ErrNoMatches. Both are batch-fatal to callers.
func Scan(root string, extensions []string) ([]VideoFile, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("scan: %w: empty root path", ErrRootNotFound)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("scan: resolve root: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("scan: %w: %s", ErrRootNotFound, absRoot)
		}
		return nil, fmt.Errorf("scan: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan: %w: %s is not a directory", ErrRootNotFound, absRoot)
	}

	allowed := extensionSet(extensions)

	var files []VideoFile
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := allowed[ext]; ok {
			files = append(files, NewVideoFile(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan: walk %s: %w", absRoot, err)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("scan: %w under %s", ErrNoMatches, absRoot)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func extensionSet(extensions []string) map[string]struct{} {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
