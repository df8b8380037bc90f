// Package workflow drives the batch run: discover candidate videos, clean
// stale subtitle artifacts, decide per file whether a final subtitle already
// exists, and invoke the transcription engine for the ones that lack it.
//
// Processing is strictly sequential and single-pass. Per-file failures are
// logged and counted, never fatal; only configuration and discovery failures
// abort a run. All operations take absolute paths — the process working
// directory is never changed.
package workflow
