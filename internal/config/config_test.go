package config

import (
	"testing"
	"time"

	"github.com/commait/commait/internal/ollama"
	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	s := Load()

	if s.Host != ollama.DefaultHost {
		t.Errorf("unexpected default host: %s", s.Host)
	}
	if s.Model != ollama.DefaultModel {
		t.Errorf("unexpected default model: %s", s.Model)
	}
	if s.PollInterval != time.Second {
		t.Errorf("unexpected poll interval: %v", s.PollInterval)
	}
	if s.StartupAttempts != 60 {
		t.Errorf("unexpected startup attempts: %d", s.StartupAttempts)
	}
	if s.GenerateTimeout != 120*time.Second {
		t.Errorf("unexpected generate timeout: %v", s.GenerateTimeout)
	}
	if s.RecentCount != 5 || s.RandomCount != 5 {
		t.Errorf("unexpected example counts: %d/%d", s.RecentCount, s.RandomCount)
	}
	if s.RecentLookback != 20 || s.RandomPool != 100 || s.RandomSkip != 5 {
		t.Errorf("unexpected sampling windows: %d/%d/%d", s.RecentLookback, s.RandomPool, s.RandomSkip)
	}
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	SetDefaults()

	viper.Set("ollama.host", "http://10.0.0.5:11434")
	viper.Set("ollama.model", "codellama")
	viper.Set("ollama.startup_attempts", 3)
	viper.Set("examples.recent_count", 2)

	s := Load()

	if s.Host != "http://10.0.0.5:11434" {
		t.Errorf("host override not applied: %s", s.Host)
	}
	if s.Model != "codellama" {
		t.Errorf("model override not applied: %s", s.Model)
	}
	if s.StartupAttempts != 3 {
		t.Errorf("attempts override not applied: %d", s.StartupAttempts)
	}
	if s.RecentCount != 2 {
		t.Errorf("recent count override not applied: %d", s.RecentCount)
	}
}
