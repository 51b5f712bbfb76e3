package config

const (
	defaultDataDir             = "~/.local/share/podium"
	defaultLogDir              = "~/.local/share/podium/logs"
	defaultWatchDir            = "~/.local/share/podium/drop"
	defaultWatchDebounceMS     = 500
	defaultWatchMaxBatch       = 32
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultMinRepeatWordLength = 3
	defaultMinWordRepetitions  = 3
	defaultMinPhraseReps       = 2
	defaultMinDurationMinutes  = 0.1
)

// Default returns a Config populated with repository defaults. The analysis
// word lists stay empty so the built-in lexicon applies.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Analysis: Analysis{
			MinRepeatWordLength:  defaultMinRepeatWordLength,
			MinWordRepetitions:   defaultMinWordRepetitions,
			MinPhraseRepetitions: defaultMinPhraseReps,
			MinDurationMinutes:   defaultMinDurationMinutes,
		},
		Watch: Watch{
			Dir:        defaultWatchDir,
			DebounceMS: defaultWatchDebounceMS,
			MaxBatch:   defaultWatchMaxBatch,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
