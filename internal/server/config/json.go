package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Anish2905/JobApplicantTracker/internal/flagx"
	"github.com/Anish2905/JobApplicantTracker/internal/timex"
)

// JsonConfig is the DTO for reading a JSON configuration file. Duration
// fields accept either "720h" strings or integer nanoseconds; zero values
// mean "not set" and leave the current config untouched.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDriver        string         `json:"database_driver"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	BcryptCost            int            `json:"bcrypt_cost"`
	RateLimitEnabled      *bool          `json:"rate_limit_enabled"`
	RateLimitMaxAttempts  int            `json:"rate_limit_max_attempts"`
	RateLimitWindow       timex.Duration `json:"rate_limit_window"`
	RedisAddr             string         `json:"redis_addr"`
	S3AccessKey           string         `json:"s3_access_key"`
	S3SecretKey           string         `json:"s3_secret_key"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags. If no flag is given, nothing is loaded. An unreadable
// or invalid file panics: a half-applied configuration is worse than a
// refusal to start.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString := func(v string, dst *string) {
		if v != "" {
			*dst = v
		}
	}

	setString(c.EndpointAddr, &config.EndpointAddr)
	setString(c.DatabaseDriver, &config.DatabaseDriver)
	setString(c.DatabaseDSN, &config.DatabaseDSN)
	setString(c.SecretKey, &config.SecretKey)
	setString(c.RedisAddr, &config.RedisAddr)
	setString(c.S3AccessKey, &config.S3AccessKey)
	setString(c.S3SecretKey, &config.S3SecretKey)
	setString(c.S3Bucket, &config.S3Bucket)
	setString(c.S3Region, &config.S3Region)
	setString(c.S3BaseEndpoint, &config.S3BaseEndpoint)

	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.RateLimitEnabled != nil {
		config.RateLimitEnabled = *c.RateLimitEnabled
	}
	if c.RateLimitMaxAttempts != 0 {
		config.RateLimitMaxAttempts = c.RateLimitMaxAttempts
	}
	if c.RateLimitWindow.Duration != 0 {
		config.RateLimitWindow = time.Duration(c.RateLimitWindow.Duration)
	}
}
