package workflow

import (
	"subgen/internal/media"
	"subgen/internal/subtitles"
)

// Decision describes what a run would do for one file. Produced by Plan for
// dry-run reporting; building it touches nothing on disk.
type Decision struct {
	File media.VideoFile
	// HasFinal reports whether a final subtitle already exists.
	HasFinal bool
	// StaleArtifacts are auxiliary files a run would delete.
	StaleArtifacts []string
}

// Plan scans root and reports the decision a run would make per file,
// without deleting artifacts or invoking the engine.
func Plan(root string, extensions []string) ([]Decision, error) {
	files, err := media.Scan(root, extensions)
	if err != nil {
		return nil, err
	}

	decisions := make([]Decision, 0, len(files))
	for _, file := range files {
		hasFinal, err := subtitles.HasFinal(file.Dir, file.Base)
		if err != nil {
			// Dry run: report the file as undecided-pessimistic rather
			// than failing the listing.
			hasFinal = false
		}
		decisions = append(decisions, Decision{
			File:           file,
			HasFinal:       hasFinal,
			StaleArtifacts: subtitles.ListArtifacts(file.Dir, file.Base),
		})
	}
	return decisions, nil
}
