package config

import (
	"bytes"
	"fmt"
	"net"
	neturl "net/url"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5000
	defaultEnv        = "development"
	defaultMongoHost  = "127.0.0.1"
	defaultMongoPort  = 27017
	defaultMongoName  = "emotion_detection"
	defaultRedisHost  = "localhost"
	defaultRedisPort  = 6379
	defaultRedisDB    = 0
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                `yaml:"port"`
	Env            string             `yaml:"env"` // "development" | "production"
	Mongo          MongoRuntimeConfig `yaml:"mongo"`
	Redis          RedisRuntimeConfig `yaml:"redis"`
	Model          ModelRuntimeConfig `yaml:"model"`
	JWTSecret      string             `yaml:"jwt_secret"`
	AllowedOrigins []string           `yaml:"allowed_origins"`
}

type MongoRuntimeConfig struct {
	URI  string `yaml:"uri"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

type RedisRuntimeConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ModelRuntimeConfig struct {
	// Endpoint is the model server prediction URL, e.g.
	// http://localhost:8501/v1/models/emotion:predict
	Endpoint string `yaml:"endpoint"`
}

type rawAppConfig struct {
	Port            int                `yaml:"port"`
	Env             string             `yaml:"env"`
	FlaskEnv        string             `yaml:"flask_env"` // legacy key compatibility
	Mongo           rawMongoConfig     `yaml:"mongo"`
	MongoURI        string             `yaml:"mongodb_uri"`
	Redis           RedisRuntimeConfig `yaml:"redis"`
	RedisURL        string             `yaml:"redis_url"`
	Model           ModelRuntimeConfig `yaml:"model"`
	ModelEndpoint   string             `yaml:"model_endpoint"`
	JWTSecret       string             `yaml:"jwt_secret"`
	JWTSecretLegacy string             `yaml:"jwt_secret_key"`
	AllowedOrigins  []string           `yaml:"allowed_origins"`
}

type rawMongoConfig struct {
	URI  string `yaml:"uri"`
	URL  string `yaml:"url"`
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Name string `yaml:"name"`
}

// Load reads and validates the YAML config at path, falling back to defaults
// for anything unset. Unknown keys are rejected.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := defaultAppConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	raw := rawAppConfig{}
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	applyRawAppConfig(&cfg, raw)
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Mongo.Port < 1 || cfg.Mongo.Port > 65535 {
		return nil, fmt.Errorf("invalid mongo.port %d in %q, expected 1-65535", cfg.Mongo.Port, path)
	}
	if cfg.Redis.Port < 1 || cfg.Redis.Port > 65535 {
		return nil, fmt.Errorf("invalid redis.port %d in %q, expected 1-65535", cfg.Redis.Port, path)
	}
	if cfg.Redis.DB < 0 {
		return nil, fmt.Errorf("invalid redis.db %d in %q, expected >= 0", cfg.Redis.DB, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Mongo: MongoRuntimeConfig{
			Host: defaultMongoHost,
			Port: defaultMongoPort,
			Name: defaultMongoName,
		},
		Redis: RedisRuntimeConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
			DB:   defaultRedisDB,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.FlaskEnv); v != "" {
		cfg.Env = v
	}

	if v := strings.TrimSpace(raw.Mongo.URI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := strings.TrimSpace(raw.Mongo.URL); v != "" {
		cfg.Mongo.URI = v
	}
	if v := strings.TrimSpace(raw.MongoURI); v != "" {
		cfg.Mongo.URI = v
	}
	if v := strings.TrimSpace(raw.Mongo.Host); v != "" {
		cfg.Mongo.Host = v
	}
	if raw.Mongo.Port != 0 {
		cfg.Mongo.Port = raw.Mongo.Port
	}
	if v := strings.TrimSpace(raw.Mongo.Name); v != "" {
		cfg.Mongo.Name = v
	}

	if v := strings.TrimSpace(raw.Redis.URL); v != "" {
		cfg.Redis.URL = v
	}
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.Redis.URL = v
	}
	if v := strings.TrimSpace(raw.Redis.Host); v != "" {
		cfg.Redis.Host = v
	}
	if raw.Redis.Port != 0 {
		cfg.Redis.Port = raw.Redis.Port
	}
	if v := strings.TrimSpace(raw.Redis.Password); v != "" {
		cfg.Redis.Password = v
	}
	if raw.Redis.DB != 0 {
		cfg.Redis.DB = raw.Redis.DB
	}

	if v := strings.TrimSpace(raw.Model.Endpoint); v != "" {
		cfg.Model.Endpoint = v
	}
	if v := strings.TrimSpace(raw.ModelEndpoint); v != "" {
		cfg.Model.Endpoint = v
	}

	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(raw.JWTSecretLegacy); v != "" {
		cfg.JWTSecret = v
	}

	if raw.AllowedOrigins != nil {
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	}

	cfg.Env = normalizeEnv(cfg.Env)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}

// MongoURI returns the explicit URI when set, otherwise one built from
// host/port.
func (c *AppConfig) MongoURI() string {
	if v := strings.TrimSpace(c.Mongo.URI); v != "" {
		return v
	}
	host := c.Mongo.Host
	if host == "" {
		host = defaultMongoHost
	}
	port := c.Mongo.Port
	if port == 0 {
		port = defaultMongoPort
	}
	return fmt.Sprintf("mongodb://%s", net.JoinHostPort(host, strconv.Itoa(port)))
}

// RedisURL returns the explicit URL when set, otherwise one built from
// host/port/db.
func (c *AppConfig) RedisURL() string {
	if v := strings.TrimSpace(c.Redis.URL); v != "" {
		if strings.HasPrefix(v, "redis://") || strings.HasPrefix(v, "rediss://") {
			return v
		}
		return "redis://" + v
	}
	host := c.Redis.Host
	if host == "" {
		host = defaultRedisHost
	}
	port := c.Redis.Port
	if port == 0 {
		port = defaultRedisPort
	}
	u := &neturl.URL{
		Scheme: "redis",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + strconv.Itoa(c.Redis.DB),
	}
	if c.Redis.Password != "" {
		u.User = neturl.UserPassword("", c.Redis.Password)
	}
	return u.String()
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
