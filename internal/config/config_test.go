package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false, want true")
	}
	if cfg.Mongo.Host != "127.0.0.1" || cfg.Mongo.Port != 27017 {
		t.Errorf("Mongo = %s:%d, want 127.0.0.1:27017", cfg.Mongo.Host, cfg.Mongo.Port)
	}
	if cfg.Mongo.Name != "emotion_detection" {
		t.Errorf("Mongo.Name = %q, want emotion_detection", cfg.Mongo.Name)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != 6379 {
		t.Errorf("Redis = %s:%d, want localhost:6379", cfg.Redis.Host, cfg.Redis.Port)
	}
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
port: 8080
env: Production
mongo:
  host: db.internal
  port: 27018
  name: emotions
redis:
  host: cache.internal
  port: 6380
  password: hunter2
  db: 3
model:
  endpoint: http://model:8501/v1/models/emotion:predict
jwt_secret: topsecret
allowed_origins:
  - https://app.example.com
  - "  https://staging.example.com  "
  - ""
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production (lowercased)", cfg.Env)
	}
	if cfg.IsDev() {
		t.Error("IsDev() = true, want false")
	}
	if cfg.Model.Endpoint != "http://model:8501/v1/models/emotion:predict" {
		t.Errorf("Model.Endpoint = %q", cfg.Model.Endpoint)
	}
	if cfg.JWTSecret != "topsecret" {
		t.Errorf("JWTSecret = %q, want topsecret", cfg.JWTSecret)
	}
	wantOrigins := []string{"https://app.example.com", "https://staging.example.com"}
	if !reflect.DeepEqual(cfg.AllowedOrigins, wantOrigins) {
		t.Errorf("AllowedOrigins = %v, want %v", cfg.AllowedOrigins, wantOrigins)
	}
}

func TestLoadLegacyKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
flask_env: production
mongodb_uri: mongodb://legacy:27017/emotions
redis_url: redis://legacy:6379/1
model_endpoint: http://legacy:8501/v1/models/emotion:predict
jwt_secret_key: legacysecret
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.MongoURI() != "mongodb://legacy:27017/emotions" {
		t.Errorf("MongoURI() = %q", cfg.MongoURI())
	}
	if cfg.RedisURL() != "redis://legacy:6379/1" {
		t.Errorf("RedisURL() = %q", cfg.RedisURL())
	}
	if cfg.Model.Endpoint != "http://legacy:8501/v1/models/emotion:predict" {
		t.Errorf("Model.Endpoint = %q", cfg.Model.Endpoint)
	}
	if cfg.JWTSecret != "legacysecret" {
		t.Errorf("JWTSecret = %q, want legacysecret", cfg.JWTSecret)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	if _, err := Load(writeConfig(t, "bogus_key: true\n")); err == nil {
		t.Error("Load() accepted an unknown key")
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	for _, content := range []string{
		"port: -1\n",
		"port: 70000\n",
		"mongo:\n  port: 70000\n",
		"redis:\n  port: -1\n",
		"redis:\n  db: -2\n",
	} {
		if _, err := Load(writeConfig(t, content)); err == nil {
			t.Errorf("Load(%q) accepted invalid value", content)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("Load() succeeded for a missing file")
	}
}

func TestMongoURIBuiltFromHostPort(t *testing.T) {
	cfg := &AppConfig{Mongo: MongoRuntimeConfig{Host: "db.internal", Port: 27018}}
	if got := cfg.MongoURI(); got != "mongodb://db.internal:27018" {
		t.Errorf("MongoURI() = %q, want mongodb://db.internal:27018", got)
	}
}

func TestRedisURLBuiltFromHostPort(t *testing.T) {
	cfg := &AppConfig{Redis: RedisRuntimeConfig{Host: "cache.internal", Port: 6380, DB: 2}}
	if got := cfg.RedisURL(); got != "redis://cache.internal:6380/2" {
		t.Errorf("RedisURL() = %q, want redis://cache.internal:6380/2", got)
	}
}

func TestRedisURLSchemePrepended(t *testing.T) {
	cfg := &AppConfig{Redis: RedisRuntimeConfig{URL: "cache.internal:6379/0"}}
	if got := cfg.RedisURL(); got != "redis://cache.internal:6379/0" {
		t.Errorf("RedisURL() = %q, want redis://cache.internal:6379/0", got)
	}
}
