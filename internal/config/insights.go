package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// InsightsConfig tunes the insight synthesizer.
type InsightsConfig struct {
	LowStockThreshold int `mapstructure:"lowStockThreshold"`
}

func DefaultInsightsConfig() InsightsConfig {
	return InsightsConfig{
		LowStockThreshold: 10,
	}
}

// InsightsHolder exposes the current insights config and reloads it when
// the underlying file changes.
type InsightsHolder struct {
	current atomic.Value // holds InsightsConfig
}

func NewInsightsHolder() (*InsightsHolder, error) {
	v := viper.New()

	v.SetConfigName("insights")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/shopsight")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SHOPSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultInsightsConfig()
	v.SetDefault("insights.lowStockThreshold", defaults.LowStockThreshold)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg InsightsConfig
	if err := v.UnmarshalKey("insights", &cfg); err != nil {
		return nil, err
	}
	if err := validateInsightsConfig(cfg); err != nil {
		return nil, err
	}

	holder := &InsightsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated InsightsConfig
		if err := v.UnmarshalKey("insights", &updated); err != nil {
			log.Printf("[insights-config] reload failed: %v", err)
			return
		}
		if err := validateInsightsConfig(updated); err != nil {
			log.Printf("[insights-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[insights-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *InsightsHolder) Get() InsightsConfig {
	return h.current.Load().(InsightsConfig)
}

// NewStaticInsightsHolder returns a holder pinned to cfg. Used by tests.
func NewStaticInsightsHolder(cfg InsightsConfig) *InsightsHolder {
	holder := &InsightsHolder{}
	holder.current.Store(cfg)
	return holder
}

func validateInsightsConfig(cfg InsightsConfig) error {
	if cfg.LowStockThreshold <= 0 {
		return errors.New("insights.lowStockThreshold must be positive")
	}
	return nil
}
