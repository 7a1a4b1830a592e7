package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Config is the marketplace service configuration.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Consul   ConsulConfig   `json:"consul"`
	Jaeger   JaegerConfig   `json:"jaeger"`
	Auth     AuthConfig     `json:"auth"`
	Log      LogConfig      `json:"log"`
}

type ServerConfig struct {
	Name     string `json:"name"`      // service name (also the Consul service name)
	Host     string `json:"host"`      // bind address
	HTTPPort int    `json:"http_port"` // HTTP listen port
}

type DatabaseConfig struct {
	Driver   string `json:"driver"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Database string `json:"database"`
	MaxIdle  int    `json:"max_idle"`
	MaxOpen  int    `json:"max_open"`
}

type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type JaegerConfig struct {
	Endpoint string  `json:"endpoint"`
	Sampler  float64 `json:"sampler"` // sampling ratio 0.0-1.0
}

// AuthConfig drives JWT issuing and verification.
type AuthConfig struct {
	JWTSecret     string `json:"jwt_secret"`
	Issuer        string `json:"issuer"`
	Audience      string `json:"audience"`
	TokenTTLHours int    `json:"token_ttl_hours"`
}

type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stdout, file
	Path   string `json:"path"`   // log file path when output=file
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig reads the JSON config file at configPath. A missing file is not
// fatal: the development defaults are used instead. Secrets can be supplied
// through the environment (see applyEnvOverrides) so they stay out of the
// config file on disk.
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			logrus.Warnf("config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			applyEnvOverrides(globalConfig)
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}
		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
		applyEnvOverrides(globalConfig)
	})

	if err != nil {
		return nil, err
	}
	return globalConfig, nil
}

// GetConfig returns the loaded config, or the defaults when LoadConfig has not
// run yet.
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// applyEnvOverrides lets the environment win for values that should not live
// in a checked-in JSON file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VEHICLESHARE_JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("VEHICLESHARE_DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("VEHICLESHARE_DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("VEHICLESHARE_HTTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			cfg.Server.HTTPPort = p
		}
	}
}

// defaultConfig is the development fallback.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name:     "marketplace-service",
			Host:     "0.0.0.0",
			HTTPPort: 8080,
		},
		Database: DatabaseConfig{
			Driver:   "mysql",
			Host:     "localhost",
			Port:     3306,
			User:     "root",
			Password: "root",
			Database: "vehicleshare",
			MaxIdle:  10,
			MaxOpen:  100,
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
		},
		Jaeger: JaegerConfig{
			Endpoint: "localhost:6831",
			Sampler:  1.0,
		},
		Auth: AuthConfig{
			Issuer:        "vehicleshare",
			Audience:      "vehicleshare",
			TokenTTLHours: 24,
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
			Output: "stdout",
			Path:   "logs/app.log",
		},
	}
}
