// Package config loads client settings from flags, LEDGERSYNC_* environment
// variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/ledgersync/internal/logging"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "LEDGERSYNC"

// Config holds the client configuration.
type Config struct {
	Server    string         `mapstructure:"server"`
	DB        string         `mapstructure:"db"`
	DataDir   string         `mapstructure:"data_dir"`
	Broker    string         `mapstructure:"broker"`
	Namespace string         `mapstructure:"namespace"`
	Log       logging.Config `mapstructure:"log"`
	Sync      SyncConfig     `mapstructure:"sync"`
}

// SyncConfig настройки движка синхронизации
type SyncConfig struct {
	BatchLimit          int           `mapstructure:"batch_limit"`
	PullLimit           int           `mapstructure:"pull_limit"`
	ResyncInterval      time.Duration `mapstructure:"resync_interval"`
	OnlineCheckInterval time.Duration `mapstructure:"online_check_interval"`
	CallTimeout         time.Duration `mapstructure:"call_timeout"`
	Ack                 bool          `mapstructure:"ack"`
}

// ImagesDir returns the directory attached image files are copied into.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"server":                     "http://localhost:8080",
		"db":                         "ledgersync.db",
		"data_dir":                   ".ledgersync",
		"broker":                     "",
		"namespace":                  "heji",
		"log.level":                  "info",
		"log.format":                 logging.FormatText,
		"log.file":                   "",
		"sync.batch_limit":           100,
		"sync.pull_limit":            500,
		"sync.resync_interval":       30 * time.Second,
		"sync.online_check_interval": 10 * time.Second,
		"sync.call_timeout":          30 * time.Second,
		"sync.ack":                   false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// BindFlags registers the global flags and binds them to viper keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("config", "", "Path to YAML config file")
	fs.String("server", "http://localhost:8080", "Server URL")
	fs.String("db", "ledgersync.db", "Path to local database")
	fs.String("data-dir", ".ledgersync", "Directory for attached images and logs")
	fs.String("broker", "", "MQTT broker URL (tcp://host:port); empty asks the server")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", logging.FormatText, "Log format (text, json)")
	fs.String("log-file", "", "Write logs to a rotated file instead of stderr")

	binds := map[string]string{
		"server":     "server",
		"db":         "db",
		"data_dir":   "data-dir",
		"broker":     "broker",
		"log.level":  "log-level",
		"log.format": "log-format",
		"log.file":   "log-file",
	}
	for key, flag := range binds {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}
	return nil
}

// Load reads the configuration. configFile may be empty.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	u, err := url.Parse(c.Server)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("server must be an http(s) URL, got %q", c.Server))
	}
	if c.DB == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.Namespace == "" {
		errs = append(errs, errors.New("namespace is required"))
	}
	if c.Sync.BatchLimit <= 0 {
		errs = append(errs, fmt.Errorf("sync.batch_limit must be positive, got %d", c.Sync.BatchLimit))
	}
	if c.Sync.PullLimit <= 0 {
		errs = append(errs, fmt.Errorf("sync.pull_limit must be positive, got %d", c.Sync.PullLimit))
	}

	return errors.Join(errs...)
}
