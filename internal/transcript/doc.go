// Package transcript defines the chunk data model and loads transcript
// documents from disk.
//
// Two JSON shapes are recognized: the plain podium transcript document
// (duration plus an ordered chunk list) and WhisperX-style transcription
// output (segments with decimal start/end seconds). Loading also derives a
// display title from the file name and a BLAKE3 content fingerprint used for
// report deduplication.
//
// Loading is the I/O boundary of the repository: unlike the analysis engine,
// loaders return errors for unreadable files and unrecognized shapes.
package transcript
