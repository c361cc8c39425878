package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the command layer needs for one invocation.
type Config struct {
	Token  string `mapstructure:"token"`
	APIURL string `mapstructure:"api_url"`
	Wrap   uint   `mapstructure:"wrap"`
	Lines  int    `mapstructure:"lines"`
}

// Load reads configuration from the environment. GHTIMELINE_TOKEN wins;
// GITHUB_TOKEN is honored as the conventional fallback.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ghtimeline")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{"api_url", "wrap", "lines"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	if err := v.BindEnv("token", "GHTIMELINE_TOKEN", "GITHUB_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind token: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.APIURL == "" {
		cfg.APIURL = "https://api.github.com"
	}
	if cfg.Wrap == 0 {
		cfg.Wrap = 80
	}
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	if c.Lines < 0 {
		return fmt.Errorf("lines must be >= 0, got %d", c.Lines)
	}
	return nil
}
