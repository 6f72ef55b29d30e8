package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/viper"
)

type ReportConfig struct {
	// Days since last disinfection after which a bay is flagged near-due.
	NearDueDays int `mapstructure:"near_due_days"`
	// Days since last disinfection after which a bay is flagged overdue.
	OverdueDays int `mapstructure:"overdue_days"`
}

type AuthConfig struct {
	AdminUser string `mapstructure:"admin_user"`
	// bcrypt hash of the admin password. Empty disables login.
	AdminPasswordHash string `mapstructure:"admin_password_hash"`
	// Session TTL in hours.
	SessionTTL uint `mapstructure:"session_ttl"`
}

type Config struct {
	// Secret key for signing session tokens. Must be set in production.
	Secret   string `mapstructure:"secret"`
	LogLevel string `mapstructure:"log_level"`

	BaseURL string `mapstructure:"base_url"` // Base URL for the application. May be relative, e.g. /sanitation/, or absolute.

	// Path to the YAML catalog of permitted disinfection methods.
	// Empty means methods are free text.
	MethodsFile string `mapstructure:"methods_file"`

	Report ReportConfig `mapstructure:"report"`
	Auth   AuthConfig   `mapstructure:"auth"`

	Storage Storage `mapstructure:"storage"`
}

var Cfg *Config

// Check if running in Docker container by checking for the presence of /.dockerenv file
func runningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	return false
}

func getConfigPath() string {
	if runningInDocker() {
		return "/app/instance"
	}
	return "./instance"
}

// LoadConfig reads configuration from file and environment variables and returns a Config struct.
func LoadConfig(configFile ...string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(getConfigPath())
	v.AddConfigPath(".")
	v.SetEnvPrefix("")

	if len(configFile) > 0 {
		for _, path := range configFile {
			v.SetConfigFile(path)
		}
	}

	for k, val := range Defaults() {
		v.SetDefault(k, val)
	}

	// Load configuration from environment variables
	v.AutomaticEnv()

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	// Near-due must stay strictly below overdue
	if cfg.Report.NearDueDays >= cfg.Report.OverdueDays {
		slog.Warn("REPORT_NEAR_DUE_DAYS must be below REPORT_OVERDUE_DAYS, using defaults",
			slog.Int("near_due_days", cfg.Report.NearDueDays), slog.Int("overdue_days", cfg.Report.OverdueDays))
		cfg.Report.NearDueDays = defaults["report.near_due_days"].(int)
		cfg.Report.OverdueDays = defaults["report.overdue_days"].(int)
	}

	// Convert relative sqlite path to absolute instance folder
	if cfg.Storage.SQLite != nil {
		if cfg.Storage.SQLite.Path == ":memory:" {
			// In-memory database, do nothing
		} else if !os.IsPathSeparator(cfg.Storage.SQLite.Path[0]) {
			cfg.Storage.SQLite.Path = fmt.Sprintf("%s/%s", getConfigPath(), cfg.Storage.SQLite.Path)
		}
	}

	// Warn if secret is missing - this is a critical security setting for production
	if cfg.Secret == "" {
		if os.Getenv("GIN_MODE") == "release" {
			panic("SECRET configuration variable is required in production")
		} else {
			slog.Warn("Secret is not set. Do not use in production.")
		}
	}

	return &cfg, nil
}
