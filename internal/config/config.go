package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/alsftd-research/datasync/internal/domain"
)

// Manager loads and serves application configuration using Viper
type Manager struct {
	config *domain.Config
}

// NewManager creates a new configuration manager
func NewManager() (*Manager, error) {
	m := &Manager{}
	if err := m.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return m, nil
}

// loadConfig loads configuration from file, environment, and defaults
func (m *Manager) loadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/alsftd-datasync/")

	viper.SetEnvPrefix("ALSFTD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	m.setDefaults()

	// Config file is optional; defaults and env vars cover everything
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &domain.Config{}
	if err := viper.Unmarshal(config); err != nil {
		return fmt.Errorf("error unmarshaling config: %w", err)
	}

	m.config = config
	return nil
}

// setDefaults sets default configuration values
func (m *Manager) setDefaults() {
	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.database", "alsftd_dashboard")
	viper.SetDefault("database.username", "postgres")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.min_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", "5m")
	viper.SetDefault("database.migrations_path", "migrations")

	// ClinicalTrials.gov API v2
	viper.SetDefault("registry.base_url", "https://clinicaltrials.gov/api/v2")
	viper.SetDefault("registry.page_size", 1000)
	viper.SetDefault("registry.timeout", "60s")
	viper.SetDefault("registry.rate_limit", 3)

	// ALSoD gene dictionary source
	viper.SetDefault("gene_source.base_url", "https://alsod.ac.uk/")
	viper.SetDefault("gene_source.timeout", "30s")
	viper.SetDefault("gene_source.rate_limit", 1)
	viper.SetDefault("gene_source.staleness_age", "720h") // 30 days

	// News pipeline
	viper.SetDefault("news.feeds", defaultNewsFeeds)
	viper.SetDefault("news.timeout", "30s")
	viper.SetDefault("news.dedup_threshold", 85)
	viper.SetDefault("news.dedup_window", "168h") // 7 days
	viper.SetDefault("news.recency_slack", "4h")
	viper.SetDefault("news.max_tags", 5)

	// Condition classifier
	viper.SetDefault("classifier.include_conditions", defaultIncludeConditions)
	viper.SetDefault("classifier.exclude_conditions", defaultExcludeConditions)
	viper.SetDefault("classifier.match_threshold", 75)
	viper.SetDefault("classifier.score_cache_size", 4096)

	// Enrichment service (OpenAI-compatible endpoint or local model)
	viper.SetDefault("enrichment.base_url", "")
	viper.SetDefault("enrichment.api_key", "")
	viper.SetDefault("enrichment.model", "local-model")
	viper.SetDefault("enrichment.temperature", 0.3)
	viper.SetDefault("enrichment.max_tokens", 8192)
	viper.SetDefault("enrichment.timeout", "120s")
	viper.SetDefault("enrichment.max_retries", 3)
	viper.SetDefault("enrichment.enabled", false)

	// Dataset projection cache
	viper.SetDefault("cache.redis_url", "redis://localhost:6379")
	viper.SetDefault("cache.default_ttl", "24h")
	viper.SetDefault("cache.enabled", true)

	// Sync run behavior
	viper.SetDefault("sync.workers", 8)
	viper.SetDefault("sync.force_refresh", false)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("logging.output", "stdout")
}

// GetConfig returns the complete configuration
func (m *Manager) GetConfig() *domain.Config {
	return m.config
}

// GetDatabaseConfig returns database configuration
func (m *Manager) GetDatabaseConfig() *domain.DatabaseConfig {
	return &m.config.Database
}

// Validate validates the configuration
func (m *Manager) Validate() error {
	config := m.config

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Registry.BaseURL == "" {
		return fmt.Errorf("registry base URL is required")
	}
	if config.Registry.PageSize <= 0 {
		return fmt.Errorf("registry page size must be positive: %d", config.Registry.PageSize)
	}
	if config.GeneSource.BaseURL == "" {
		return fmt.Errorf("gene source base URL is required")
	}
	if config.Classifier.MatchThreshold < 0 || config.Classifier.MatchThreshold > 100 {
		return fmt.Errorf("classifier match threshold must be 0-100: %d", config.Classifier.MatchThreshold)
	}
	if config.News.DedupThreshold < 0 || config.News.DedupThreshold > 100 {
		return fmt.Errorf("news dedup threshold must be 0-100: %d", config.News.DedupThreshold)
	}
	if len(config.Classifier.IncludeConditions) == 0 {
		return fmt.Errorf("classifier include conditions must not be empty")
	}
	if config.Sync.Workers <= 0 {
		return fmt.Errorf("sync workers must be positive: %d", config.Sync.Workers)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true, "fatal": true, "panic": true,
	}
	if !validLogLevels[strings.ToLower(config.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	return nil
}

// GetDatabaseConnectionString returns a formatted database connection string
func (m *Manager) GetDatabaseConnectionString() string {
	db := m.config.Database
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.Username, db.Password, db.Database, db.SSLMode)
}

// GetDatabaseURL returns the database URL used by the migration runner
func (m *Manager) GetDatabaseURL() string {
	db := m.config.Database
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.Username, db.Password, db.Host, db.Port, db.Database, db.SSLMode)
}
