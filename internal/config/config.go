// Convene - Event and Social Networking Platform API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/convene

// Package config loads and validates the Convene server configuration.
// Settings layer in order of precedence: built-in defaults, then an
// optional YAML config file, then environment variables.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the Convene server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	API       APIConfig       `koanf:"api"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// DatabaseConfig holds the BadgerDB settings.
type DatabaseConfig struct {
	Path       string        `koanf:"path"`
	InMemory   bool          `koanf:"in_memory"`
	GCInterval time.Duration `koanf:"gc_interval"`
}

// LoggingConfig holds the logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// APIConfig holds pagination bounds for list endpoints.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// RecommendConfig holds the recommendation engine weights and limits.
type RecommendConfig struct {
	InterestWeight         float64 `koanf:"interest_weight"`
	ProximityWeight        float64 `koanf:"proximity_weight"`
	SharedInterestWeight   float64 `koanf:"shared_interest_weight"`
	MutualConnectionWeight float64 `koanf:"mutual_connection_weight"`
	SharedEventWeight      float64 `koanf:"shared_event_weight"`
	DefaultLimit           int     `koanf:"default_limit"`
	DefaultMaxDistanceKm   float64 `koanf:"default_max_distance_km"`
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// defaultConfig returns the built-in defaults, applied before the config
// file and environment layers.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Database: DatabaseConfig{
			Path:       "/data/convene",
			InMemory:   false,
			GCInterval: 10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Recommend: RecommendConfig{
			InterestWeight:         0.5,
			ProximityWeight:        0.5,
			SharedInterestWeight:   2,
			MutualConnectionWeight: 3,
			SharedEventWeight:      1,
			DefaultLimit:           10,
			DefaultMaxDistanceKm:   50,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
	}
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Database.Path == "" && !c.Database.InMemory {
		return fmt.Errorf("database.path is required unless database.in_memory is set")
	}
	if c.Database.GCInterval <= 0 {
		return fmt.Errorf("database.gc_interval must be positive, got %v", c.Database.GCInterval)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.Recommend.InterestWeight < 0 || c.Recommend.ProximityWeight < 0 ||
		c.Recommend.SharedInterestWeight < 0 || c.Recommend.MutualConnectionWeight < 0 ||
		c.Recommend.SharedEventWeight < 0 {
		return fmt.Errorf("recommend weights must be non-negative")
	}
	if c.Recommend.InterestWeight+c.Recommend.ProximityWeight == 0 {
		return fmt.Errorf("recommend.interest_weight and recommend.proximity_weight must not both be zero")
	}
	if c.Recommend.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be positive, got %d", c.Recommend.DefaultLimit)
	}
	if c.Recommend.DefaultMaxDistanceKm < 0 {
		return fmt.Errorf("recommend.default_max_distance_km must be non-negative, got %v",
			c.Recommend.DefaultMaxDistanceKm)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be positive, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
