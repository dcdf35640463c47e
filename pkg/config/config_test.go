package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv() {
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"RELAY_BASE_URL", "RELAY_TIMEOUT", "RELAY_DEFAULT_MODEL",
		"TENANCY_DEV_HOST_PATTERN",
		"LOG_LEVEL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "chat-relay" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "chat-relay")
	}

	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}

	if cfg.Relay.BaseURL != "https://text.uuuuai.ai" {
		t.Errorf("Relay.BaseURL = %q, want %q", cfg.Relay.BaseURL, "https://text.uuuuai.ai")
	}

	if cfg.Relay.Timeout != 30*time.Second {
		t.Errorf("Relay.Timeout = %v, want %v", cfg.Relay.Timeout, 30*time.Second)
	}

	if cfg.Relay.DefaultModel != "gpt-3.5-turbo" {
		t.Errorf("Relay.DefaultModel = %q, want %q", cfg.Relay.DefaultModel, "gpt-3.5-turbo")
	}

	if cfg.Tenancy.DevHostPattern != "replit" {
		t.Errorf("Tenancy.DevHostPattern = %q, want %q", cfg.Tenancy.DevHostPattern, "replit")
	}
}

func TestLoad_WithEnvOverride(t *testing.T) {
	clearEnv()

	os.Setenv("APP_NAME", "test-app")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("RELAY_BASE_URL", "http://relay.example.com")
	os.Setenv("RELAY_TIMEOUT", "5s")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "test-app")
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}

	if cfg.Relay.BaseURL != "http://relay.example.com" {
		t.Errorf("Relay.BaseURL = %q, want %q", cfg.Relay.BaseURL, "http://relay.example.com")
	}

	if cfg.Relay.Timeout != 5*time.Second {
		t.Errorf("Relay.Timeout = %v, want %v", cfg.Relay.Timeout, 5*time.Second)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn := cfg.DSN(); dsn != expected {
		t.Errorf("DSN() = %q, want %q", dsn, expected)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := ServerConfig{
		Host: "0.0.0.0",
		Port: 8081,
	}

	expected := "0.0.0.0:8081"
	if addr := cfg.Addr(); addr != expected {
		t.Errorf("Addr() = %q, want %q", addr, expected)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"missing app name", func(c *Config) { c.App.Name = "" }, true},
		{"invalid port", func(c *Config) { c.Server.Port = 0 }, true},
		{"missing database host", func(c *Config) { c.Database.Host = "" }, true},
		{"missing relay base URL", func(c *Config) { c.Relay.BaseURL = "" }, true},
		{"non-positive relay timeout", func(c *Config) { c.Relay.Timeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}

			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
