package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	if err := c.validateWatch(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if err := ensurePositiveMap(map[string]int{
		"analysis.min_repeat_word_length": c.Analysis.MinRepeatWordLength,
		"analysis.min_word_repetitions":   c.Analysis.MinWordRepetitions,
		"analysis.min_phrase_repetitions": c.Analysis.MinPhraseRepetitions,
	}); err != nil {
		return err
	}
	if c.Analysis.MinDurationMinutes <= 0 {
		return errors.New("analysis.min_duration_minutes must be positive")
	}
	return nil
}

func (c *Config) validateWatch() error {
	return ensurePositiveMap(map[string]int{
		"watch.debounce_ms": c.Watch.DebounceMS,
		"watch.max_batch":   c.Watch.MaxBatch,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
