// Package config loads server settings from flags, LEDGERSYNC_SERVER_*
// environment variables and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/ledgersync/internal/logging"
	"github.com/iudanet/ledgersync/pkg/api"
)

// EnvPrefix префикс переменных окружения сервера
const EnvPrefix = "LEDGERSYNC_SERVER"

// MinSecretLen минимальная длина секрета подписи JWT
const MinSecretLen = 16

// Config holds the server configuration.
type Config struct {
	Log       logging.Config `mapstructure:"log"`
	Broker    BrokerConfig   `mapstructure:"broker"`
	Addr      string         `mapstructure:"addr"`
	DB        string         `mapstructure:"db"`
	DataDir   string         `mapstructure:"data_dir"`
	Namespace string         `mapstructure:"namespace"`
	Auth      AuthConfig     `mapstructure:"auth"`
	HTTP      HTTPConfig     `mapstructure:"http"`
}

// AuthConfig настройки выдачи токенов и лимита на auth эндпоинты
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret"`
	TokenTTL   time.Duration `mapstructure:"token_ttl"`
	RateWindow time.Duration `mapstructure:"rate_window"`
	RateLimit  int           `mapstructure:"rate_limit"`
}

// BrokerConfig адрес MQTT брокера для уведомлений.
// Public* сообщаются клиентам; по умолчанию берутся из URL.
type BrokerConfig struct {
	URL           string `mapstructure:"url"`
	PublicAddress string `mapstructure:"public_address"`
	PublicPort    int    `mapstructure:"public_port"`
	PublicWSPort  int    `mapstructure:"public_ws_port"`
}

// HTTPConfig таймауты HTTP сервера
type HTTPConfig struct {
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxImageSize    int64         `mapstructure:"max_image_size"`
}

// ImagesDir returns the directory uploaded image files are stored in.
func (c *Config) ImagesDir() string {
	return filepath.Join(c.DataDir, "images")
}

// BrokerInfo returns the broker address advertised to clients.
// Пустой Address означает, что брокер не настроен.
func (c *Config) BrokerInfo() api.BrokerInfo {
	info := api.BrokerInfo{
		Address: c.Broker.PublicAddress,
		TCPPort: c.Broker.PublicPort,
		WSPort:  c.Broker.PublicWSPort,
	}
	if c.Broker.URL == "" {
		return info
	}

	u, err := url.Parse(c.Broker.URL)
	if err != nil {
		return info
	}
	if info.Address == "" {
		info.Address = u.Hostname()
	}
	if info.TCPPort == 0 {
		if port, err := strconv.Atoi(u.Port()); err == nil {
			info.TCPPort = port
		}
	}
	return info
}

func setDefaults(v *viper.Viper) {
	defaults := map[string]any{
		"addr":                  ":8080",
		"db":                    "ledgersync-server.db",
		"data_dir":              "data",
		"namespace":             api.DefaultNamespace,
		"auth.jwt_secret":       "",
		"auth.token_ttl":        24 * time.Hour,
		"auth.rate_limit":       10,
		"auth.rate_window":      time.Minute,
		"broker.url":            "",
		"broker.public_address": "",
		"broker.public_port":    0,
		"broker.public_ws_port": 0,
		"http.read_timeout":     15 * time.Second,
		"http.write_timeout":    30 * time.Second,
		"http.idle_timeout":     60 * time.Second,
		"http.shutdown_timeout": 10 * time.Second,
		"http.max_image_size":   10 << 20,
		"log.level":             "info",
		"log.format":            logging.FormatText,
		"log.file":              "",
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// BindFlags registers the server flags and binds them to viper keys.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	fs.String("config", "", "Path to YAML config file")
	fs.String("addr", ":8080", "HTTP listen address")
	fs.String("db", "ledgersync-server.db", "Path to SQLite database")
	fs.String("data-dir", "data", "Directory for uploaded images")
	fs.String("namespace", api.DefaultNamespace, "MQTT topic namespace")
	fs.String("jwt-secret", "", "Secret for signing access tokens (min 16 chars)")
	fs.Duration("token-ttl", 24*time.Hour, "Access token lifetime")
	fs.String("broker", "", "MQTT broker URL for notifications (tcp://host:port)")
	fs.String("broker-public-address", "", "Broker host advertised to clients")
	fs.Int("broker-public-port", 0, "Broker TCP port advertised to clients")
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	fs.String("log-format", logging.FormatText, "Log format (text, json)")
	fs.String("log-file", "", "Write logs to a rotated file instead of stderr")
	fs.Bool("version", false, "Show version information")

	binds := map[string]string{
		"addr":                  "addr",
		"db":                    "db",
		"data_dir":              "data-dir",
		"namespace":             "namespace",
		"auth.jwt_secret":       "jwt-secret",
		"auth.token_ttl":        "token-ttl",
		"broker.url":            "broker",
		"broker.public_address": "broker-public-address",
		"broker.public_port":    "broker-public-port",
		"log.level":             "log-level",
		"log.format":            "log-format",
		"log.file":              "log-file",
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

	if _, _, err := net.SplitHostPort(c.Addr); err != nil {
		errs = append(errs, fmt.Errorf("addr must be host:port, got %q", c.Addr))
	}
	if c.DB == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir is required"))
	}
	if c.Namespace == "" {
		errs = append(errs, errors.New("namespace is required"))
	}
	if len(c.Auth.JWTSecret) < MinSecretLen {
		errs = append(errs, fmt.Errorf("jwt secret must be at least %d characters", MinSecretLen))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("token ttl must be positive, got %s", c.Auth.TokenTTL))
	}
	if c.Auth.RateLimit <= 0 || c.Auth.RateWindow <= 0 {
		errs = append(errs, errors.New("auth rate limit and window must be positive"))
	}
	if c.HTTP.MaxImageSize <= 0 {
		errs = append(errs, errors.New("http.max_image_size must be positive"))
	}
	if c.Broker.URL != "" {
		u, err := url.Parse(c.Broker.URL)
		if err != nil || u.Host == "" {
			errs = append(errs, fmt.Errorf("broker must be a URL like tcp://host:port, got %q", c.Broker.URL))
		}
	}

	return errors.Join(errs...)
}
