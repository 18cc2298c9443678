package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	var errs []error

	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.Database.DSN == "" {
			errs = append(errs, errors.New("database.dsn is required for the postgres store"))
		}
		if c.Database.MaxConns < 1 {
			errs = append(errs, fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns))
		}
		if c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
			errs = append(errs, fmt.Errorf("database.min_conns must be in [0, max_conns] (got %d)", c.Database.MinConns))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be %q or %q (got %q)", StoreMemory, StorePostgres, c.Store.Driver))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be in [1, 65535] (got %d)", c.Server.Port))
	}
	if c.Server.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes))
	}

	if c.Auth.Enabled() {
		if len(c.Auth.JWTSecret) < 32 {
			errs = append(errs, fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret)))
		}
		if c.Auth.AccessTokenTTL <= 0 {
			errs = append(errs, fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL))
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format))
	}

	if c.RateLimit.Enabled() {
		if c.RateLimit.CalculatePerMinute < 1 {
			errs = append(errs, fmt.Errorf("rate_limit.calculate_per_minute must be >= 1, set rate_limit.disabled to turn limiting off (got %d)", c.RateLimit.CalculatePerMinute))
		}
		if c.RateLimit.CleanupInterval <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %s)", c.RateLimit.CleanupInterval))
		}
	}

	return errors.Join(errs...)
}
