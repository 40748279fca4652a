// Package config handles configuration loading for StockInsight.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Markets  MarketsConfig  `mapstructure:"markets"  yaml:"markets"`
	News     NewsConfig     `mapstructure:"news"     yaml:"news"`
	Provider ProviderConfig `mapstructure:"provider" yaml:"provider"`
	History  HistoryConfig  `mapstructure:"history"  yaml:"history"`
	API      APIConfig      `mapstructure:"api"      yaml:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// MarketsConfig holds the market classification settings. The domestic
// suffix set is injectable so additional home exchanges can be added
// without a code change.
type MarketsConfig struct {
	DomesticSuffixes []string `mapstructure:"domestic_suffixes" yaml:"domestic_suffixes"` // e.g., [".NS", ".BO"]
}

// NewsConfig holds news-link resolution settings.
type NewsConfig struct {
	PortalName       string `mapstructure:"portal_name"        yaml:"portal_name"`        // research portal label for domestic tickers
	PortalSearchURL  string `mapstructure:"portal_search_url"  yaml:"portal_search_url"`  // template, %s replaced by the encoded company name
	FallbackSearch   string `mapstructure:"fallback_search"    yaml:"fallback_search"`    // template, %s replaced by the encoded title
	DefaultPublisher string `mapstructure:"default_publisher"  yaml:"default_publisher"`  // publisher label for foreign tickers
	MaxItems         int    `mapstructure:"max_items"          yaml:"max_items"`
}

// ProviderConfig selects and tunes the market-data provider.
type ProviderConfig struct {
	Name      string `mapstructure:"name"       yaml:"name"`       // "yfinance"
	CacheTTL  int    `mapstructure:"cache_ttl"  yaml:"cache_ttl"`  // seconds
	RateLimit int    `mapstructure:"rate_limit" yaml:"rate_limit"` // requests per second
}

// HistoryConfig holds price-history window settings.
type HistoryConfig struct {
	DefaultDays int `mapstructure:"default_days" yaml:"default_days"`
	MinDays     int `mapstructure:"min_days"     yaml:"min_days"`
	MaxDays     int `mapstructure:"max_days"     yaml:"max_days"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "console" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.stockinsight/config.yaml (home directory)
//  3. /etc/stockinsight/config.yaml (system)
//
// Environment variables override config file values.
// Format: STOCKINSIGHT_<SECTION>_<KEY>, e.g., STOCKINSIGHT_API_PORT
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".stockinsight"))
	v.AddConfigPath("/etc/stockinsight")

	v.SetEnvPrefix("STOCKINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("STOCKINSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Market classification defaults: NSE and BSE listings count as domestic.
	v.SetDefault("markets.domestic_suffixes", []string{".NS", ".BO"})

	// News defaults mirror the research-portal integration.
	v.SetDefault("news.portal_name", "Moneycontrol")
	v.SetDefault("news.portal_search_url",
		"https://www.moneycontrol.com/stocks/cptmarket/compsearchnew.php?search_data=%s&topsearch_type=1&search_str=%s")
	v.SetDefault("news.fallback_search", "https://www.google.com/search?q=%s")
	v.SetDefault("news.default_publisher", "Market News")
	v.SetDefault("news.max_items", 3)

	// Provider defaults.
	v.SetDefault("provider.name", "yfinance")
	v.SetDefault("provider.cache_ttl", 300) // 5 minutes
	v.SetDefault("provider.rate_limit", 5)  // 5 req/s

	// History defaults: the chart window slider range.
	v.SetDefault("history.default_days", 90)
	v.SetDefault("history.min_days", 5)
	v.SetDefault("history.max_days", 365)

	// API defaults.
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Logging defaults.
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
