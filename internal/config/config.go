package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	General     GeneralConfig     `mapstructure:"general"`
	UI          UIConfig          `mapstructure:"ui"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	History     HistoryConfig     `mapstructure:"history"`
	Performance PerformanceConfig `mapstructure:"performance"`
}

type GeneralConfig struct {
	DefaultLimit  int  `mapstructure:"default_limit"`
	ConfirmExport bool `mapstructure:"confirm_export"`
}

type UIConfig struct {
	Theme           string `mapstructure:"theme"`
	MouseEnabled    bool   `mapstructure:"mouse_enabled"`
	PanelWidthRatio int    `mapstructure:"panel_width_ratio"`
	ShowPreview     bool   `mapstructure:"show_preview"`
}

// CatalogConfig selects the catalog source: a local file, or a PostgreSQL
// table when postgres.host is set.
type CatalogConfig struct {
	Path                 string         `mapstructure:"path"`
	MaxCellDisplayLength int            `mapstructure:"max_cell_display_length"`
	Postgres             PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Database string `mapstructure:"database"`
	User     string `mapstructure:"user"`
	SSLMode  string `mapstructure:"ssl_mode"`
	Table    string `mapstructure:"table"`
}

type HistoryConfig struct {
	Enabled        bool `mapstructure:"enabled"`
	MaxEntries     int  `mapstructure:"max_entries"`
	SaveFailedRuns bool `mapstructure:"save_failed_runs"`
}

type PerformanceConfig struct {
	ConnectionPoolSize int `mapstructure:"connection_pool_size"`
	QueryTimeout       int `mapstructure:"query_timeout"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			DefaultLimit:  100,
			ConfirmExport: true,
		},
		UI: UIConfig{
			Theme:           "default",
			MouseEnabled:    true,
			PanelWidthRatio: 25,
			ShowPreview:     false,
		},
		Catalog: CatalogConfig{
			Path:                 "catalog.json",
			MaxCellDisplayLength: 100,
			Postgres: PostgresConfig{
				Port:    5432,
				SSLMode: "prefer",
				Table:   "products",
			},
		},
		History: HistoryConfig{
			Enabled:        true,
			MaxEntries:     1000,
			SaveFailedRuns: true,
		},
		Performance: PerformanceConfig{
			ConnectionPoolSize: 5,
			QueryTimeout:       30000,
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths in priority order
	// 1. User config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "lazyshelf"))
	}

	// 2. Current directory
	v.AddConfigPath(".")

	// 3. Default config directory
	v.AddConfigPath("./config")

	v.SetDefault("general.default_limit", 100)
	v.SetDefault("general.confirm_export", true)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("ui.panel_width_ratio", 25)
	v.SetDefault("ui.show_preview", false)
	v.SetDefault("catalog.path", "catalog.json")
	v.SetDefault("catalog.max_cell_display_length", 100)
	v.SetDefault("catalog.postgres.port", 5432)
	v.SetDefault("catalog.postgres.ssl_mode", "prefer")
	v.SetDefault("catalog.postgres.table", "products")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 1000)
	v.SetDefault("history.save_failed_runs", true)
	v.SetDefault("performance.connection_pool_size", 5)
	v.SetDefault("performance.query_timeout", 30000)

	// Read config (it's okay if file doesn't exist, we have defaults)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	// Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// UsesPostgres reports whether the catalog source is a PostgreSQL table.
func (c *Config) UsesPostgres() bool {
	return c.Catalog.Postgres.Host != ""
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "lazyshelf"), nil
}
