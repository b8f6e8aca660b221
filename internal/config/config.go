package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort        int           `yaml:"http_port"`
	JwtTTL          time.Duration `yaml:"jwt_ttl"`
	DefaultPageSize int           `yaml:"default_page_size"`
	MaxPageSize     int           `yaml:"max_page_size"`
	LogLevel        string        `yaml:"log_level"`
	LogJSON         bool          `yaml:"log_json"`
	RateLimitRPS    float64       `yaml:"rate_limit_rps"` // per-IP request budget
	RateLimitBurst  int           `yaml:"rate_limit_burst"`
	AllowedOrigins  []string      `yaml:"allowed_origins"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	if cfg.Private.JwtKey == "" {
		panic("jwt_key is required")
	}
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.HttpPort == 0 {
		c.Public.HttpPort = 8080
	}
	if c.Public.DefaultPageSize == 0 {
		c.Public.DefaultPageSize = 10
	}
	if c.Public.MaxPageSize == 0 {
		c.Public.MaxPageSize = 100
	}
	if c.Public.JwtTTL == 0 {
		c.Public.JwtTTL = 24 * time.Hour
	}
	if c.Public.RateLimitRPS == 0 {
		c.Public.RateLimitRPS = 100
	}
	if c.Public.RateLimitBurst == 0 {
		c.Public.RateLimitBurst = 200
	}
}
