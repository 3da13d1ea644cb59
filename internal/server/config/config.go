// Package config handles configuration for the server,
// including defaults, environment overlay, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/Anish2905/JobApplicantTracker/internal/server/blob"
)

// Config holds runtime settings for the tracker server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDriver: "sqlite" for the local shape, "postgres" for cloud sync.
//   - DatabaseDSN: file path (sqlite) or pgx DSN (postgres).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: bearer token lifetime.
//   - BcryptCost: cost for PIN hashing.
//   - RateLimit*: fixed-window limiter for the auth endpoints.
//   - RedisAddr: optional; moves the limiter counters to Redis.
//   - S3*: optional; offloads résumé payloads to an S3-compatible bucket.
type Config struct {
	EndpointAddr          string
	DatabaseDriver        string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	BcryptCost            int

	RateLimitEnabled     bool
	RateLimitMaxAttempts int
	RateLimitWindow      time.Duration
	RedisAddr            string

	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "applications.db"
	c.SecretKey = "dev-only-insecure-secret-do-not-use-in-prod"
	c.TokenValidityDuration = 30 * 24 * time.Hour
	c.BcryptCost = 10
	c.RateLimitEnabled = true
	c.RateLimitMaxAttempts = 5
	c.RateLimitWindow = time.Minute
}

// S3 reports whether payload offload is configured and returns its settings.
func (c *Config) S3() (blob.S3Config, bool) {
	if c.S3Bucket == "" {
		return blob.S3Config{}, false
	}
	return blob.S3Config{
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
	}, true
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
