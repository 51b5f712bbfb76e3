// Package analysis computes descriptive speech-quality metrics from finalized
// transcript chunks.
//
// The engine is a pure, synchronous computation: finalized chunk text plus a
// duration in, a Report out. Five independent detectors run over the
// normalized text (filler words, pacing, repetition, weak sentence starters,
// weak vocabulary), followed by a scoring stage that derives three 0-100
// scores from the detector output. Detection is strictly lexical: exact token
// or substring matching against the configured lexicon, never grammatical or
// semantic.
//
// The engine never returns an error. When no chunk is final or the finalized
// text yields no tokens, Analyze returns nil; callers treat that as
// "insufficient data", not a failure. Identical input always produces
// identical output, so an engine may be shared across goroutines for
// independent transcripts.
package analysis
