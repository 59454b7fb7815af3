// internal/workers/matchmaking/compute-guna-milan/config.go
package computegunamilan

import (
	"fmt"
	"time"

	"guna-milan-workers/internal/common/config"
	"guna-milan-workers/internal/gunamilan"
)

type Config struct {
	Enabled         bool
	MaxJobsActive   int
	Timeout         time.Duration
	MaxRetries      int
	CacheTTL        time.Duration // zero disables the report cache
	DefaultLanguage string
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		MaxJobsActive:   5,
		Timeout:         30 * time.Second,
		MaxRetries:      3,
		CacheTTL:        24 * time.Hour,
		DefaultLanguage: string(gunamilan.English),
	}
}

// LoadConfig reads the worker and matching sections of the application config.
func LoadConfig(appCfg *config.Config) *Config {
	cfg := DefaultConfig()
	if appCfg == nil {
		return cfg
	}

	w := config.GetWorkerConfig(appCfg, TaskType)
	cfg.Enabled = w.Enabled
	if w.MaxJobsActive > 0 {
		cfg.MaxJobsActive = w.MaxJobsActive
	}
	if w.Timeout > 0 {
		cfg.Timeout = config.GetDuration(w.Timeout)
	}
	if w.MaxRetries > 0 {
		cfg.MaxRetries = w.MaxRetries
	}

	if appCfg.Matching.DefaultLanguage != "" {
		cfg.DefaultLanguage = appCfg.Matching.DefaultLanguage
	}
	switch ttl := appCfg.Matching.CacheTTL; {
	case ttl < 0:
		cfg.CacheTTL = 0
	case ttl > 0:
		cfg.CacheTTL = config.GetDuration(ttl)
	}

	return cfg
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}
	if lang := gunamilan.Language(c.DefaultLanguage); lang != gunamilan.English && lang != gunamilan.Hindi {
		return fmt.Errorf("default_language must be en or hi, got %q", c.DefaultLanguage)
	}
	return nil
}

func (c *Config) CachingEnabled() bool {
	return c.CacheTTL > 0
}
