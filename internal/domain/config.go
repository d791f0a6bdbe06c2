package domain

import (
	"time"
)

// Config represents the main application configuration
type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Registry    RegistryConfig    `mapstructure:"registry"`
	GeneSource  GeneSourceConfig  `mapstructure:"gene_source"`
	News        NewsConfig        `mapstructure:"news"`
	Classifier  ClassifierConfig  `mapstructure:"classifier"`
	Enrichment  EnrichmentConfig  `mapstructure:"enrichment"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Sync        SyncConfig        `mapstructure:"sync"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Database        string        `mapstructure:"database"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationsPath  string        `mapstructure:"migrations_path"`
}

// RegistryConfig represents the ClinicalTrials.gov API client configuration
type RegistryConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	PageSize  int           `mapstructure:"page_size"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit int           `mapstructure:"rate_limit"`
}

// GeneSourceConfig represents the ALSoD gene dictionary source configuration
type GeneSourceConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RateLimit    int           `mapstructure:"rate_limit"`
	StalenessAge time.Duration `mapstructure:"staleness_age"`
}

// NewsConfig represents the RSS news pipeline configuration
type NewsConfig struct {
	Feeds          []string      `mapstructure:"feeds"`
	Timeout        time.Duration `mapstructure:"timeout"`
	DedupThreshold int           `mapstructure:"dedup_threshold"`
	DedupWindow    time.Duration `mapstructure:"dedup_window"`
	RecencySlack   time.Duration `mapstructure:"recency_slack"`
	MaxTags        int           `mapstructure:"max_tags"`
}

// ClassifierConfig represents the condition classifier configuration.
// The 75/100 threshold is an empirically chosen constant, kept
// configurable rather than hard-coded.
type ClassifierConfig struct {
	IncludeConditions []string `mapstructure:"include_conditions"`
	ExcludeConditions []string `mapstructure:"exclude_conditions"`
	MatchThreshold    int      `mapstructure:"match_threshold"`
	ScoreCacheSize    int      `mapstructure:"score_cache_size"`
}

// EnrichmentConfig represents the eligibility-criteria enrichment service
type EnrichmentConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Model       string        `mapstructure:"model"`
	Temperature float64       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxRetries  int           `mapstructure:"max_retries"`
	Enabled     bool          `mapstructure:"enabled"`
}

// CacheConfig represents the dataset projection cache configuration
type CacheConfig struct {
	RedisURL   string        `mapstructure:"redis_url"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
	Enabled    bool          `mapstructure:"enabled"`
}

// SyncConfig represents sync run behavior
type SyncConfig struct {
	Workers      int  `mapstructure:"workers"`
	ForceRefresh bool `mapstructure:"force_refresh"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
