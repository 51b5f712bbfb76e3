package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"podium/internal/analysis"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Analysis contains word-list overrides and detector thresholds. Empty lists
// fall back to the built-in lexicon so a fresh config analyzes sensibly.
type Analysis struct {
	FillerWords  []string `toml:"filler_words"`
	WeakStarters []string `toml:"weak_starters"`
	WeakWords    []string `toml:"weak_words"`
	StopWords    []string `toml:"stop_words"`

	MinRepeatWordLength  int     `toml:"min_repeat_word_length"`
	MinWordRepetitions   int     `toml:"min_word_repetitions"`
	MinPhraseRepetitions int     `toml:"min_phrase_repetitions"`
	MinDurationMinutes   float64 `toml:"min_duration_minutes"`
}

// Watch contains drop-directory watch mode settings.
type Watch struct {
	Dir        string `toml:"dir"`
	DebounceMS int    `toml:"debounce_ms"`
	MaxBatch   int    `toml:"max_batch"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for podium.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - Analysis: lexicon overrides and detector thresholds
//   - Watch: drop-directory monitoring
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Analysis Analysis `toml:"analysis"`
	Watch    Watch    `toml:"watch"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/podium/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and word lists normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("podium.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories podium writes to. The watch
// directory is created on a best-effort basis so config loading still
// succeeds when watch mode is unused.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Watch.Dir) != "" {
		_ = os.MkdirAll(c.Watch.Dir, 0o755)
	}
	return nil
}

// Lexicon translates the analysis section into an engine lexicon. Empty word
// lists fall back to the built-in defaults; thresholds carry over as-is.
func (c *Config) Lexicon() analysis.Lexicon {
	lexicon := analysis.DefaultLexicon()
	if len(c.Analysis.FillerWords) > 0 {
		lexicon.FillerWords = c.Analysis.FillerWords
	}
	if len(c.Analysis.WeakStarters) > 0 {
		lexicon.WeakStarters = c.Analysis.WeakStarters
	}
	if len(c.Analysis.WeakWords) > 0 {
		lexicon.WeakWords = c.Analysis.WeakWords
	}
	if len(c.Analysis.StopWords) > 0 {
		lexicon.StopWords = c.Analysis.StopWords
	}
	lexicon.MinRepeatWordLength = c.Analysis.MinRepeatWordLength
	lexicon.MinWordRepetitions = c.Analysis.MinWordRepetitions
	lexicon.MinPhraseRepetitions = c.Analysis.MinPhraseRepetitions
	lexicon.MinDurationMinutes = c.Analysis.MinDurationMinutes
	return lexicon
}

// DatabasePath returns the report database location under the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Paths.DataDir, "reports.db")
}

// LockPath returns the watch-mode lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "podium.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
