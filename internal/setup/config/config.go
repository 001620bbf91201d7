package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var (
	ErrConfigFileNotFound    = errors.New("could not find config file in any config path")
	ErrConfigVersionMismatch = errors.New("config file version mismatch")
)

// Current version of the config file.
const (
	CurrentCommonVersion = 1
	CurrentWorkerVersion = 1
)

// Config represents the entire application configuration.
type Config struct {
	Common CommonConfig
	Worker WorkerConfig
}

// CommonConfig contains configuration shared between the API and the worker.
type CommonConfig struct {
	// Version of the common config.
	Version    int        `koanf:"version"`
	Debug      Debug      `koanf:"debug"`
	Server     Server     `koanf:"server"`
	PostgreSQL PostgreSQL `koanf:"postgresql"`
	Redis      Redis      `koanf:"redis"`
	Identity   Identity   `koanf:"identity"`
}

// WorkerConfig contains worker specific configuration.
type WorkerConfig struct {
	// Version of the worker config.
	Version   int       `koanf:"version"`
	Scheduler Scheduler `koanf:"scheduler"`
	Rating    Rating    `koanf:"rating"`
}

// Debug contains debug-related configuration.
type Debug struct {
	// Log level (debug, info, warn, error).
	LogLevel string `koanf:"log_level"`
	// Directory for log files.
	LogDir string `koanf:"log_dir"`
}

// Server contains HTTP server configuration.
type Server struct {
	// Listen address for the REST API.
	Addr string `koanf:"addr"`
	// Request timeout in milliseconds.
	RequestTimeout int `koanf:"request_timeout"`
}

// PostgreSQL contains database connection configuration.
type PostgreSQL struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	DBName   string `koanf:"db_name"`
	// Maximum number of open connections.
	MaxOpenConns int `koanf:"max_open_conns"`
	// Maximum number of idle connections.
	MaxIdleConns int `koanf:"max_idle_conns"`
	// Connection lifetime in minutes.
	MaxLifetime int `koanf:"max_lifetime"`
	// Idle connection timeout in minutes.
	MaxIdleTime int `koanf:"max_idle_time"`
}

// Redis contains Redis connection configuration.
type Redis struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Identity contains bearer-token configuration.
type Identity struct {
	// HMAC secret for signing tokens.
	JWTSecret string `koanf:"jwt_secret"`
	// Token lifetime in minutes.
	TokenExpiryMin int `koanf:"token_expiry_min"`
}

// Scheduler configures the periodic topic lifecycle runs.
type Scheduler struct {
	// Minutes between runs.
	IntervalMinutes int `koanf:"interval_minutes"`
	// Minutes to wait after a failed run before the next attempt. Kept
	// shorter than the interval so a failure does not lose a full period.
	FailureBackoffMinutes int `koanf:"failure_backoff_minutes"`
}

// Rating configures the lifecycle engine's scoring behavior.
type Rating struct {
	// Age in days before an active topic is processed and archived.
	TopicMaxAgeDays int `koanf:"topic_max_age_days"`
	// Topics fetched per page during the scan.
	BatchSize int `koanf:"batch_size"`
	// Signed delta applied per target of an aged conflict topic.
	ConflictPenalty int `koanf:"conflict_penalty"`
	// Signed delta applied per target of an aged mentions topic.
	MentionReward int `koanf:"mention_reward"`
}

// LoadConfig loads the configuration from the search paths.
// Returns the config along with the used config directory.
func LoadConfig() (*Config, string, error) {
	k := koanf.New(".")

	// Get user's home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get home directory: %w", err)
	}

	// List search paths
	configPaths := []string{
		".nestara",
		homeDir + "/.nestara/config",
		"/etc/nestara/config",
		"/app/config",
		"config",
		".",
	}

	// Load all config files
	var usedConfigPath string

	configFiles := []string{"common", "worker"}
	for _, configName := range configFiles {
		configLoaded := false

		for _, path := range configPaths {
			configPath := fmt.Sprintf("%s/%s.toml", path, configName)
			if err := k.Load(file.Provider(configPath), toml.Parser()); err == nil {
				configLoaded = true

				if usedConfigPath == "" {
					usedConfigPath = path
				}

				break
			}
		}

		if !configLoaded {
			return nil, "", fmt.Errorf("%w: %s.toml", ErrConfigFileNotFound, configName)
		}
	}

	var config Config
	if err := k.Unmarshal("common", &config.Common); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling common config: %w", err)
	}
	if err := k.Unmarshal("worker", &config.Worker); err != nil {
		return nil, "", fmt.Errorf("error unmarshaling worker config: %w", err)
	}

	// Check versions for each config file
	if err := checkConfigVersion("common", config.Common.Version, CurrentCommonVersion); err != nil {
		return nil, "", err
	}

	if err := checkConfigVersion("worker", config.Worker.Version, CurrentWorkerVersion); err != nil {
		return nil, "", err
	}

	return &config, usedConfigPath, nil
}

// checkConfigVersion checks if the config file version is correct.
func checkConfigVersion(name string, current, expected int) error {
	if current != expected {
		return fmt.Errorf("%w: %s.toml has version %d, expected %d",
			ErrConfigVersionMismatch, name, current, expected)
	}
	return nil
}
