package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
security:
  jwt:
    secret: test-secret
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "./data/libris.db" {
		t.Errorf("Database.Path = %q, want default", cfg.Database.Path)
	}
	if !cfg.Database.WALMode {
		t.Error("WALMode should default to true")
	}
	if cfg.API.Port != 8080 {
		t.Errorf("API.Port = %d, want 8080", cfg.API.Port)
	}
	if cfg.API.Timeouts.Read != 30 || cfg.API.Timeouts.Idle != 60 {
		t.Errorf("Timeouts = %+v, want defaults", cfg.API.Timeouts)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want defaults", cfg.Logging)
	}
	if cfg.Security.JWT.AccessTokenTTL != 15 {
		t.Errorf("AccessTokenTTL = %d, want 15", cfg.Security.JWT.AccessTokenTTL)
	}
	if cfg.MQTT.Enabled || cfg.InfluxDB.Enabled {
		t.Error("MQTT and InfluxDB should be disabled by default")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
database:
  path: /var/lib/libris/catalog.db
api:
  port: 9090
logging:
  level: debug
security:
  jwt:
    secret: test-secret
    access_token_ttl: 60
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Path != "/var/lib/libris/catalog.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if cfg.API.Port != 9090 {
		t.Errorf("API.Port = %d, want 9090", cfg.API.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Security.JWT.AccessTokenTTL != 60 {
		t.Errorf("AccessTokenTTL = %d, want 60", cfg.Security.JWT.AccessTokenTTL)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
api:
  port: 9090
security:
  jwt:
    secret: file-secret
`)

	t.Setenv("LIBRIS_API_PORT", "7070")
	t.Setenv("LIBRIS_JWT_SECRET", "env-secret")
	t.Setenv("LIBRIS_DATABASE_PATH", "/tmp/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.Port != 7070 {
		t.Errorf("API.Port = %d, want env override 7070", cfg.API.Port)
	}
	if cfg.Security.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, want env override", cfg.Security.JWT.Secret)
	}
	if cfg.Database.Path != "/tmp/env.db" {
		t.Errorf("Database.Path = %q, want env override", cfg.Database.Path)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "api: [not: valid")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Security.JWT.Secret = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing secret", func(c *Config) { c.Security.JWT.Secret = "" }, "security.jwt.secret"},
		{"bad port", func(c *Config) { c.API.Port = 0 }, "api.port"},
		{"port too high", func(c *Config) { c.API.Port = 70000 }, "api.port"},
		{"missing db path", func(c *Config) { c.Database.Path = "" }, "database.path"},
		{"bad ttl", func(c *Config) { c.Security.JWT.AccessTokenTTL = 0 }, "access_token_ttl"},
		{"mqtt enabled without host", func(c *Config) {
			c.MQTT.Enabled = true
			c.MQTT.Broker.Host = ""
		}, "mqtt.broker.host"},
		{"mqtt bad qos", func(c *Config) {
			c.MQTT.Enabled = true
			c.MQTT.QoS = 3
		}, "mqtt.qos"},
		{"influxdb enabled without url", func(c *Config) {
			c.InfluxDB.Enabled = true
			c.InfluxDB.Token = "token"
		}, "influxdb.url"},
		{"influxdb enabled without token", func(c *Config) {
			c.InfluxDB.Enabled = true
			c.InfluxDB.URL = "http://localhost:8086"
		}, "influxdb.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := defaultConfig()
	cfg.API.Port = 0
	// secret also missing

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	msg := err.Error()
	if !strings.Contains(msg, "api.port") || !strings.Contains(msg, "security.jwt.secret") {
		t.Errorf("error %q should report every problem", msg)
	}
}
