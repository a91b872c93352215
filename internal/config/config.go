package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Interpreter strategy names accepted in config.
const (
	StrategyPattern = "pattern"
	StrategyLLM     = "llm"
)

// Config carries every engine setting read at startup. The device manifest
// itself lives in its own file (see DevicesFile) and is loaded by the
// registry package.
type Config struct {
	Port         string
	DevicesFile  string
	ResponseMode string
	HistoryLimit int
	Strategy     string
	LLMEndpoint  string
	LLMTimeout   time.Duration
	LogLevel     string
}

// Load reads configs/<name>.yml from the given directory and applies
// defaults. Unknown strategy or mode values fail fast here rather than at
// the first command.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")

	v.SetDefault("port", "8080")
	v.SetDefault("devices", "configs/devices.yml")
	v.SetDefault("response.mode", "natural")
	v.SetDefault("history.limit", 10)
	v.SetDefault("interpreter.strategy", StrategyPattern)
	v.SetDefault("interpreter.llm.endpoint", "http://127.0.0.1:8081")
	v.SetDefault("interpreter.llm.timeout", "10s")
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{
		Port:         v.GetString("port"),
		DevicesFile:  v.GetString("devices"),
		ResponseMode: v.GetString("response.mode"),
		HistoryLimit: v.GetInt("history.limit"),
		Strategy:     v.GetString("interpreter.strategy"),
		LLMEndpoint:  v.GetString("interpreter.llm.endpoint"),
		LLMTimeout:   v.GetDuration("interpreter.llm.timeout"),
		LogLevel:     v.GetString("log.level"),
	}

	if cfg.Strategy != StrategyPattern && cfg.Strategy != StrategyLLM {
		return nil, fmt.Errorf("interpreter.strategy %q: want %q or %q", cfg.Strategy, StrategyPattern, StrategyLLM)
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("history.limit must be positive, got %d", cfg.HistoryLimit)
	}
	return cfg, nil
}
