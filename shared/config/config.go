package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	AI      AIConfig      `yaml:"ai"`
	Script  ScriptConfig  `yaml:"script"`
	Output  OutputConfig  `yaml:"output"`
	Cache   CacheConfig   `yaml:"cache"`
	History HistoryConfig `yaml:"history"`
	Server  ServerConfig  `yaml:"server"`
}

type AIConfig struct {
	GeminiAPIKey              string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Model                     string `yaml:"model"`
	DecomposeTimeoutSeconds   int    `yaml:"decompose_timeout_seconds"`
	FeasibilityTimeoutSeconds int    `yaml:"feasibility_timeout_seconds"`
	RateIntervalSeconds       int    `yaml:"rate_interval_seconds"`
}

type ScriptConfig struct {
	MinLength int `yaml:"min_length"`
	MaxLength int `yaml:"max_length"`
}

type OutputConfig struct {
	DefaultDuration     int     `yaml:"default_duration"`
	DefaultAspectRatio  string  `yaml:"default_aspect_ratio"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
}

type CacheConfig struct {
	TTLSeconds int `yaml:"ttl_seconds"`
}

type HistoryConfig struct {
	DataDir         string `yaml:"data_dir"`
	MaxAgeDays      int    `yaml:"max_age_days"`
	CleanupSchedule string `yaml:"cleanup_schedule"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE, default
// config.yaml), then fills gaps from environment variables and defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}

	var cfg Config
	data, err := os.ReadFile(configFile)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}

	if cfg.AI.GeminiAPIKey == "" {
		cfg.AI.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = os.Getenv("GEMINI_MODEL")
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.AI.DecomposeTimeoutSeconds == 0 {
		cfg.AI.DecomposeTimeoutSeconds = envInt("DECOMPOSE_TIMEOUT_SECONDS", 30)
	}
	if cfg.AI.FeasibilityTimeoutSeconds == 0 {
		cfg.AI.FeasibilityTimeoutSeconds = envInt("FEASIBILITY_TIMEOUT_SECONDS", 15)
	}

	if cfg.Script.MinLength == 0 {
		cfg.Script.MinLength = envInt("MIN_SCRIPT_LENGTH", 10)
	}
	if cfg.Script.MaxLength == 0 {
		cfg.Script.MaxLength = envInt("MAX_SCRIPT_LENGTH", 5000)
	}

	if cfg.Output.DefaultDuration == 0 {
		cfg.Output.DefaultDuration = envInt("DEFAULT_DURATION", 3)
	}
	if cfg.Output.DefaultAspectRatio == "" {
		cfg.Output.DefaultAspectRatio = os.Getenv("DEFAULT_ASPECT_RATIO")
	}
	if cfg.Output.DefaultAspectRatio == "" {
		cfg.Output.DefaultAspectRatio = "9:16"
	}
	if cfg.Output.ConfidenceThreshold == 0 {
		cfg.Output.ConfidenceThreshold = envFloat("CONFIDENCE_THRESHOLD", 0.4)
	}

	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = envInt("CACHE_TTL", 3600)
	}

	if cfg.History.DataDir == "" {
		cfg.History.DataDir = "data"
	}
	if cfg.History.MaxAgeDays == 0 {
		cfg.History.MaxAgeDays = 7
	}
	if cfg.History.CleanupSchedule == "" {
		cfg.History.CleanupSchedule = "0 0 3 * * *" // Daily at 3 AM
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = envInt("PORT", 8080)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.AI.GeminiAPIKey == "" {
		return fmt.Errorf("Gemini API key is required (set GEMINI_API_KEY or ai.gemini_api_key)")
	}
	if c.Script.MinLength >= c.Script.MaxLength {
		return fmt.Errorf("script min length %d must be below max length %d", c.Script.MinLength, c.Script.MaxLength)
	}
	if c.Output.ConfidenceThreshold < 0 || c.Output.ConfidenceThreshold >= 1 {
		return fmt.Errorf("confidence threshold %.3f must be in [0,1)", c.Output.ConfidenceThreshold)
	}
	if c.Output.DefaultDuration < 1 || c.Output.DefaultDuration > 30 {
		return fmt.Errorf("default duration %d must be 1-30 seconds", c.Output.DefaultDuration)
	}
	return nil
}

// DecomposeTimeout returns the script decomposition timeout.
func (c *AIConfig) DecomposeTimeout() time.Duration {
	return time.Duration(c.DecomposeTimeoutSeconds) * time.Second
}

// FeasibilityTimeout returns the per-scene feasibility timeout.
func (c *AIConfig) FeasibilityTimeout() time.Duration {
	return time.Duration(c.FeasibilityTimeoutSeconds) * time.Second
}

// RateInterval returns the minimum spacing between generative calls.
// Zero disables pacing.
func (c *AIConfig) RateInterval() time.Duration {
	return time.Duration(c.RateIntervalSeconds) * time.Second
}

// TTL returns the decomposition cache time-to-live.
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// MaxAge returns how long history records are retained.
func (c *HistoryConfig) MaxAge() time.Duration {
	return time.Duration(c.MaxAgeDays) * 24 * time.Hour
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
