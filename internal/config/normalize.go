package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeWatch(); err != nil {
		return err
	}
	c.normalizeAnalysis()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeWatch() error {
	var err error
	if strings.TrimSpace(c.Watch.Dir) == "" {
		c.Watch.Dir = defaultWatchDir
	}
	if c.Watch.Dir, err = expandPath(c.Watch.Dir); err != nil {
		return fmt.Errorf("watch.dir: %w", err)
	}
	if c.Watch.DebounceMS <= 0 {
		c.Watch.DebounceMS = defaultWatchDebounceMS
	}
	if c.Watch.MaxBatch <= 0 {
		c.Watch.MaxBatch = defaultWatchMaxBatch
	}
	return nil
}

func (c *Config) normalizeAnalysis() {
	c.Analysis.FillerWords = normalizeWordList(c.Analysis.FillerWords)
	c.Analysis.WeakStarters = normalizeWordList(c.Analysis.WeakStarters)
	c.Analysis.WeakWords = normalizeWordList(c.Analysis.WeakWords)
	c.Analysis.StopWords = normalizeWordList(c.Analysis.StopWords)
	if c.Analysis.MinRepeatWordLength <= 0 {
		c.Analysis.MinRepeatWordLength = defaultMinRepeatWordLength
	}
	if c.Analysis.MinWordRepetitions <= 0 {
		c.Analysis.MinWordRepetitions = defaultMinWordRepetitions
	}
	if c.Analysis.MinPhraseRepetitions <= 0 {
		c.Analysis.MinPhraseRepetitions = defaultMinPhraseReps
	}
	if c.Analysis.MinDurationMinutes <= 0 {
		c.Analysis.MinDurationMinutes = defaultMinDurationMinutes
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeWordList lowercases, trims, and deduplicates a word list while
// preserving first-occurrence order.
func normalizeWordList(words []string) []string {
	if len(words) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		trimmed := strings.ToLower(strings.TrimSpace(word))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	if len(normalized) == 0 {
		return nil
	}
	return normalized
}
