// Package config loads bookdex configuration from per-environment YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the bookdex configuration.
type Config struct {
	Catalog    CatalogConfig    `yaml:"catalog"`
	Artifacts  ArtifactsConfig  `yaml:"artifacts"`
	Vectorizer VectorizerConfig `yaml:"vectorizer"`
	Search     SearchConfig     `yaml:"search"`
	Intent     IntentConfig     `yaml:"intent"`
	Cache      CacheConfig      `yaml:"cache"`
	HTTP       HTTPConfig       `yaml:"http"`
	Auth       AuthConfig       `yaml:"auth"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// CatalogConfig points at the catalog file (.csv or .parquet).
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// ArtifactsConfig holds the artifact store location.
type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

// VectorizerConfig holds vector space fitting parameters.
type VectorizerConfig struct {
	MaxFeatures      int     `yaml:"max_features"`
	MinDF            int     `yaml:"min_df"`
	MaxDFRatio       float64 `yaml:"max_df_ratio"`
	MaxMatrixEntries int     `yaml:"max_matrix_entries"` // 0 = unlimited
}

// SearchConfig holds query-time defaults.
type SearchConfig struct {
	TopN int `yaml:"top_n"`
}

// IntentConfig holds intent extraction provider settings.
// An empty API key disables extraction; search degrades to raw-text queries.
type IntentConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// CacheConfig holds the optional Redis intent cache settings.
type CacheConfig struct {
	Enabled          bool     `yaml:"enabled"`
	Addrs            []string `yaml:"addrs"`
	Password         string   `yaml:"password"`
	TTLSec           int      `yaml:"ttl_sec"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// HTTPConfig holds HTTP server settings for serve mode.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR} / ${VAR:-default}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Catalog.Path == "" {
		c.Catalog.Path = "data/books.csv"
	}
	if c.Artifacts.Dir == "" {
		c.Artifacts.Dir = "models"
	}
	if c.Vectorizer.MaxFeatures <= 0 {
		c.Vectorizer.MaxFeatures = 20000
	}
	if c.Vectorizer.MinDF <= 0 {
		c.Vectorizer.MinDF = 2
	}
	if c.Vectorizer.MaxDFRatio <= 0 {
		c.Vectorizer.MaxDFRatio = 0.85
	}
	if c.Search.TopN <= 0 {
		c.Search.TopN = 5
	}
	if c.Intent.Model == "" {
		c.Intent.Model = "gpt-4o-mini"
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = 86400
	}
	if c.Cache.ReadinessTimeout <= 0 {
		c.Cache.ReadinessTimeout = 10
	}
	if c.HTTP.Port <= 0 {
		c.HTTP.Port = 8080
	}
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.Vectorizer.MaxDFRatio > 1 {
		return fmt.Errorf("vectorizer.max_df_ratio must be at most 1, got %g", c.Vectorizer.MaxDFRatio)
	}
	if c.Cache.Enabled && len(c.Cache.Addrs) == 0 {
		return fmt.Errorf("cache.addrs is required when the cache is enabled")
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
