// Package watchmode monitors a drop directory for transcript files and
// analyzes them as they arrive.
//
// Filesystem events are debounced so a transcript written in several chunks
// is processed once, after writes settle. A file lock enforces a single
// watcher per data directory, and transcripts whose content fingerprint is
// already stored are skipped.
package watchmode
