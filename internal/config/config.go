package config

import (
	"time"

	"github.com/commait/commait/internal/ollama"
	"github.com/spf13/viper"
)

// Settings is a snapshot of the effective configuration, passed into
// components so tests can substitute different endpoints and timeouts.
type Settings struct {
	// Host is the base URL of the Ollama HTTP API.
	Host string
	// Model is the Ollama model used for generation.
	Model string

	// PollInterval is the delay between readiness probes during startup.
	PollInterval time.Duration
	// StartupAttempts bounds the readiness polling for server and model.
	StartupAttempts int
	// GenerateTimeout bounds the single generation request.
	GenerateTimeout time.Duration

	// RecentCount is how many of the most recent commits to use as examples.
	RecentCount int
	// RecentLookback is how many commits to search for recent examples.
	RecentLookback int
	// RandomCount is how many randomly sampled older commits to add.
	RandomCount int
	// RandomPool is the size of the older-commit pool sampled from.
	RandomPool int
	// RandomSkip is how many newest commits the random pool skips,
	// so it does not overlap with the recent examples.
	RandomSkip int
}

// SetDefaults registers default values for every configuration key.
func SetDefaults() {
	viper.SetDefault("ollama.host", ollama.DefaultHost)
	viper.SetDefault("ollama.model", ollama.DefaultModel)
	viper.SetDefault("ollama.poll_interval", "1s")
	viper.SetDefault("ollama.startup_attempts", 60)
	viper.SetDefault("ollama.generate_timeout", "120s")
	viper.SetDefault("examples.recent_count", 5)
	viper.SetDefault("examples.recent_lookback", 20)
	viper.SetDefault("examples.random_count", 5)
	viper.SetDefault("examples.random_pool", 100)
	viper.SetDefault("examples.random_skip", 5)
}

// Load returns the effective settings from viper.
func Load() Settings {
	return Settings{
		Host:            viper.GetString("ollama.host"),
		Model:           viper.GetString("ollama.model"),
		PollInterval:    viper.GetDuration("ollama.poll_interval"),
		StartupAttempts: viper.GetInt("ollama.startup_attempts"),
		GenerateTimeout: viper.GetDuration("ollama.generate_timeout"),
		RecentCount:     viper.GetInt("examples.recent_count"),
		RecentLookback:  viper.GetInt("examples.recent_lookback"),
		RandomCount:     viper.GetInt("examples.random_count"),
		RandomPool:      viper.GetInt("examples.random_pool"),
		RandomSkip:      viper.GetInt("examples.random_skip"),
	}
}
