package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HBNB_"

// Config is read from HBNB_* environment variables (a local .env is loaded first).
// HBNB_API_PORT maps to the "api_port" key, and so on.
type Config struct {
	Env string `koanf:"env"`

	APIHost string `koanf:"api_host" validate:"required"`
	APIPort int    `koanf:"api_port" validate:"gt=0,lte=65535"`

	TypeStorage string `koanf:"type_storage" validate:"oneof=file db"`
	FilePath    string `koanf:"file_path" validate:"required_if=TypeStorage file"`

	MySQLUser string `koanf:"mysql_user" validate:"required_if=TypeStorage db"`
	MySQLPwd  string `koanf:"mysql_pwd"`
	MySQLHost string `koanf:"mysql_host" validate:"required_if=TypeStorage db"`
	MySQLPort int    `koanf:"mysql_port" validate:"gt=0,lte=65535"`
	MySQLDB   string `koanf:"mysql_db" validate:"required_if=TypeStorage db"`

	LogLevel    string   `koanf:"log_level"`
	CORSOrigins []string `koanf:"cors_origins"`
	Gzip        bool     `koanf:"gzip"`
}

// Load reads, defaults and validates the configuration.
func Load() (*Config, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.TypeStorage = strings.ToLower(strings.TrimSpace(c.TypeStorage))
	if c.APIHost == "" {
		c.APIHost = "0.0.0.0"
	}
	if c.APIPort == 0 {
		c.APIPort = 5000
	}
	if c.TypeStorage == "" {
		c.TypeStorage = "file"
	}
	if c.FilePath == "" {
		c.FilePath = "file.json"
	}
	if c.MySQLHost == "" {
		c.MySQLHost = "localhost"
	}
	if c.MySQLPort == 0 {
		c.MySQLPort = 3306
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	// The env provider hands over "a, b" as a single element.
	var origins []string
	for _, item := range c.CORSOrigins {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.CORSOrigins = origins
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.APIHost, strconv.Itoa(c.APIPort))
}

// DSN builds the MySQL connection string for the db engine.
func (c *Config) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.MySQLUser
	cfg.Passwd = c.MySQLPwd
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.MySQLHost, strconv.Itoa(c.MySQLPort))
	cfg.DBName = c.MySQLDB
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	return cfg.FormatDSN()
}
