package config

const (
	defaultDataDir             = "~/.local/share/quorum"
	defaultLogDir              = "~/.local/share/quorum/logs"
	defaultSimilarityThreshold = 0.80
	defaultWordDistanceMax     = 3
	defaultWordLengthGapMax    = 3
	defaultMinLengthRatio      = 0.5
	defaultHistoryKeepRuns     = 200
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Reconcile: Reconcile{
			SimilarityThreshold: defaultSimilarityThreshold,
			WordDistanceMax:     defaultWordDistanceMax,
			WordLengthGapMax:    defaultWordLengthGapMax,
			MinLengthRatio:      defaultMinLengthRatio,
		},
		History: History{
			Enabled:  true,
			KeepRuns: defaultHistoryKeepRuns,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
