// VibeTravels - Travel Notes and AI Trip Planning
// Copyright 2026 Rob M. (robm15)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/robm15/vibetravels

// Package config handles application configuration loaded via Koanf v2 with
// layered sources: built-in defaults, an optional YAML config file, and
// environment variables (highest priority).
package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	AI       AIConfig       `koanf:"ai"`
	Store    StoreConfig    `koanf:"store"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds authentication and rate limiting settings.
//
// When JWTSecret is empty the server runs in offline mode: every request is
// attributed to a single fixed local principal instead of verifying bearer
// tokens. This is a startup-time decision, selected once when wiring the
// credential verifier.
type SecurityConfig struct {
	// JWTSecret is the shared HMAC key used to verify bearer tokens.
	// Minimum 32 characters when set. Empty selects offline mode.
	JWTSecret string `koanf:"jwt_secret"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// AIConfig holds settings for the AI completion backend and the per-user
// generation quota that bounds its cost.
type AIConfig struct {
	// APIKey authenticates against the OpenAI-compatible API.
	APIKey string `koanf:"api_key"`

	// BaseURL overrides the API endpoint (empty = provider default).
	BaseURL string `koanf:"base_url"`

	// Model is the chat completion model used for plan generation.
	Model string `koanf:"model"`

	// Timeout bounds a single completion call.
	Timeout time.Duration `koanf:"timeout"`

	// DailyLimit caps successful generations per user in any trailing
	// 24-hour window. Applies system-wide; no per-user overrides.
	DailyLimit int `koanf:"daily_limit"`

	// Offline forces the canned completion client regardless of APIKey.
	Offline bool `koanf:"offline"`
}

// StoreConfig holds BadgerDB storage settings.
type StoreConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory runs the store without disk persistence (tests, demos).
	InMemory bool `koanf:"in_memory"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Security.JWTSecret != "" && len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters, got %d", len(c.Security.JWTSecret))
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.AI.DailyLimit < 1 {
		return fmt.Errorf("ai.daily_limit must be positive, got %d", c.AI.DailyLimit)
	}
	if c.AI.Timeout <= 0 {
		return fmt.Errorf("ai.timeout must be positive, got %s", c.AI.Timeout)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("store.path is required unless store.in_memory is set")
	}
	return nil
}

// OfflineMode reports whether the server should run without credential
// verification and without a real AI backend.
func (c *Config) OfflineMode() bool {
	return c.Security.JWTSecret == ""
}
